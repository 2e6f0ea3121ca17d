package analyzer

import (
	"sort"
	"strings"

	"github.com/jonathan/supercomponents/internal/contrast"
	"github.com/jonathan/supercomponents/internal/types"
)

// analysisResponse mirrors the JSON requested by the analysis prompt.
type analysisResponse struct {
	DesignAnalysis struct {
		DominantColors       []string  `json:"dominant_colors"`
		TypographyFamilies   []string  `json:"typography_families"`
		SpacingScale         []float64 `json:"spacing_scale"`
		UIDensity            string    `json:"ui_density"`
		BrandKeywords        []string  `json:"brand_keywords"`
		SupportingReferences []string  `json:"supporting_references"`
		DesignRationale      string    `json:"design_rationale"`
	} `json:"design_analysis"`
	ExtractedTokens          types.RawTokenSuggestion        `json:"extracted_tokens"`
	Principles               []types.RawPrincipleSuggestion  `json:"principles"`
	ComponentRecommendations []types.ComponentRecommendation `json:"component_recommendations"`
}

// toResult converts a parsed response into an AnalysisResult, merging the
// user's own brand keywords ahead of the model's.
func (r *analysisResponse) toResult(insp types.UserInspiration) *types.AnalysisResult {
	da := r.DesignAnalysis
	insight := types.DesignInsight{
		ImageryPalette:       normalizePalette(da.DominantColors),
		TypographyFamilies:   dedupe(da.TypographyFamilies),
		SpacingScale:         normalizeSpacing(da.SpacingScale),
		UIDensity:            normalizeDensity(da.UIDensity),
		BrandKeywords:        dedupe(append(append([]string{}, insp.BrandKeywords...), da.BrandKeywords...)),
		SupportingReferences: dedupe(da.SupportingReferences),
	}

	return &types.AnalysisResult{
		Insights:                 insight,
		DesignRationale:          strings.TrimSpace(da.DesignRationale),
		ExtractedTokens:          normalizeRawTokens(r.ExtractedTokens),
		InferredPrinciples:       normalizePrinciples(r.Principles),
		ComponentRecommendations: normalizeRecommendations(r.ComponentRecommendations),
	}
}

// normalizePalette keeps valid hex colors in lowercase #rrggbb form, dropping
// duplicates and capping the palette at types.MaxPaletteSize.
func normalizePalette(colors []string) []string {
	palette := make([]string, 0, len(colors))
	seen := make(map[string]bool)
	for _, c := range colors {
		hex, ok := contrast.NormalizeHex(c)
		if !ok || seen[hex] {
			continue
		}
		seen[hex] = true
		palette = append(palette, hex)
		if len(palette) == types.MaxPaletteSize {
			break
		}
	}
	return palette
}

// normalizeSpacing drops non-positive values and sorts ascending without duplicates.
func normalizeSpacing(scale []float64) []float64 {
	out := make([]float64, 0, len(scale))
	for _, v := range scale {
		if v > 0 {
			out = append(out, v)
		}
	}
	sort.Float64s(out)

	deduped := out[:0]
	for i, v := range out {
		if i == 0 || v != out[i-1] {
			deduped = append(deduped, v)
		}
	}
	return deduped
}

func normalizeDensity(d string) types.UIDensity {
	density := types.UIDensity(strings.ToLower(strings.TrimSpace(d)))
	if !density.Valid() {
		return types.DensityRegular
	}
	return density
}

// dedupe trims entries and removes case-insensitive duplicates, keeping the
// first spelling.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool)
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

func normalizeRawTokens(raw types.RawTokenSuggestion) types.RawTokenSuggestion {
	if len(raw.Colors) == 0 {
		return raw
	}
	colors := make(map[string]map[string]string, len(raw.Colors))
	for role, scale := range raw.Colors {
		steps := make(map[string]string, len(scale))
		for step, value := range scale {
			if hex, ok := contrast.NormalizeHex(value); ok {
				steps[step] = hex
			}
		}
		if len(steps) > 0 {
			colors[strings.ToLower(role)] = steps
		}
	}
	raw.Colors = colors
	return raw
}

func normalizePrinciples(in []types.RawPrincipleSuggestion) []types.RawPrincipleSuggestion {
	out := make([]types.RawPrincipleSuggestion, 0, len(in))
	for _, p := range in {
		p.Title = strings.TrimSpace(p.Title)
		p.Description = strings.TrimSpace(p.Description)
		if p.Title == "" || p.Description == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func normalizeRecommendations(in []types.ComponentRecommendation) []types.ComponentRecommendation {
	out := make([]types.ComponentRecommendation, 0, len(in))
	seen := make(map[string]bool)
	for _, r := range in {
		r.Name = strings.TrimSpace(r.Name)
		key := strings.ToLower(r.Name)
		if r.Name == "" || seen[key] {
			continue
		}
		seen[key] = true
		r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))
		switch r.Priority {
		case "high", "medium", "low":
		default:
			r.Priority = "medium"
		}
		out = append(out, r)
	}
	return out
}
