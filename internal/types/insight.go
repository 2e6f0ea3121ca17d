package types

// UIDensity is the qualitative spacing mode of a design system.
type UIDensity string

// Supported densities
const (
	DensityCompact  UIDensity = "compact"
	DensityRegular  UIDensity = "regular"
	DensitySpacious UIDensity = "spacious"
)

// Valid reports whether d is one of the known densities.
func (d UIDensity) Valid() bool {
	switch d {
	case DensityCompact, DensityRegular, DensitySpacious:
		return true
	}
	return false
}

// MaxPaletteSize bounds DesignInsight.ImageryPalette.
const MaxPaletteSize = 8

// DesignInsight is the normalized summary of visual and brand signals
// extracted from an inspiration.
type DesignInsight struct {
	ImageryPalette       []string  `json:"imageryPalette"`
	TypographyFamilies   []string  `json:"typographyFamilies"`
	SpacingScale         []float64 `json:"spacingScale"`
	UIDensity            UIDensity `json:"uiDensity"`
	BrandKeywords        []string  `json:"brandKeywords"`
	SupportingReferences []string  `json:"supportingReferences"`
}

// RawTokenSuggestion holds the token values proposed by the model, before
// deterministic generation. Only colors are strongly typed; other categories
// vary too much between responses.
type RawTokenSuggestion struct {
	Colors       map[string]map[string]string `json:"colors,omitempty"`
	Typography   map[string]any               `json:"typography,omitempty"`
	Spacing      map[string]any               `json:"spacing,omitempty"`
	BorderRadius map[string]any               `json:"border_radius,omitempty"`
	Shadows      map[string]any               `json:"shadows,omitempty"`
}

// RawPrincipleSuggestion is a principle proposed by the model.
type RawPrincipleSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ComponentRecommendation is a component the model suggests building.
type ComponentRecommendation struct {
	Name      string `json:"name"`
	Priority  string `json:"priority,omitempty"`
	Rationale string `json:"rationale,omitempty"`
}

// AnalysisResult is the structured output of one inspiration analysis.
type AnalysisResult struct {
	Insights                 DesignInsight             `json:"insights"`
	DesignRationale          string                    `json:"designRationale"`
	ExtractedTokens          RawTokenSuggestion        `json:"extractedTokens"`
	InferredPrinciples       []RawPrincipleSuggestion  `json:"inferredPrinciples"`
	ComponentRecommendations []ComponentRecommendation `json:"componentRecommendations,omitempty"`
	Provider                 string                    `json:"provider,omitempty"`
	FromCache                bool                      `json:"fromCache,omitempty"`
}
