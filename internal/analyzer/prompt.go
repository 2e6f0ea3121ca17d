package analyzer

import (
	"strings"

	"github.com/jonathan/supercomponents/internal/prompts"
	"github.com/jonathan/supercomponents/internal/types"
)

const notSpecified = "not specified"

// BuildPrompt renders the analysis prompt for an inspiration. The output is
// deterministic for equal inputs so that it can serve as a cache key.
func BuildPrompt(insp types.UserInspiration) string {
	kind, source := insp.Source()
	level := insp.AccessibilityOrDefault()

	guidance, err := prompts.Get(prompts.AccessibilityFile, string(level))
	if err != nil {
		guidance = notSpecified
	}

	styles := make([]string, 0, len(insp.StylePreferences))
	for _, s := range insp.StylePreferences {
		styles = append(styles, string(s))
	}

	template := prompts.MustGet(prompts.AnalysisFile, prompts.KeyAnalyzeInspiration)
	return prompts.Format(template, map[string]string{
		"SourceKind":            string(kind),
		"Source":                strings.TrimSpace(source),
		"BrandKeywords":         joinOrDefault(insp.BrandKeywords),
		"Industry":              orDefault(insp.IndustryType),
		"TargetUsers":           orDefault(insp.TargetUsers),
		"StylePreferences":      joinOrDefault(styles),
		"ColorPreferences":      joinOrDefault(insp.ColorPreferences),
		"Accessibility":         string(level),
		"AccessibilityGuidance": guidance,
	})
}

func systemPrompt() string {
	s, err := prompts.Get(prompts.AnalysisFile, prompts.KeySystem)
	if err != nil {
		return ""
	}
	return s
}

func joinOrDefault(values []string) string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return notSpecified
	}
	return strings.Join(cleaned, ", ")
}

func orDefault(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notSpecified
	}
	return v
}
