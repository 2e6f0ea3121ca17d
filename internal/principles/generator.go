// Package principles derives 3-5 brand design principles from a
// DesignInsight and renders them as markdown and Storybook MDX.
package principles

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/supercomponents/internal/types"
)

// Principle count bounds
const (
	MinPrinciples = 3
	MaxPrinciples = 5
)

// DensityVocabulary lists the terms that describe each density. Every
// generated set uses terms from its density's list.
var DensityVocabulary = map[types.UIDensity][]string{
	types.DensityCompact:  {"efficient", "streamlined", "minimal"},
	types.DensityRegular:  {"balanced", "harmonious", "optimized", "flexible"},
	types.DensitySpacious: {"generous", "expansive", "thoughtful", "adaptable"},
}

// keywords longer than this are shortened so descriptions stay within the
// word limit without cutting the keyword
const maxKeywordWords = 4

// fallbackKeywords fill the set when the insight has fewer than
// MinPrinciples brand keywords.
var fallbackKeywords = []string{"clarity", "consistency", "accessibility", "craft", "trust"}

type template struct {
	title       string // %s: keyword in title case
	description string // %[1]s: keyword, %[2]s: density term
}

var templates = []template{
	{
		title:       "Lead with %s",
		description: "Lead with a %[1]s point of view. Every screen should make its purpose obvious, using %[2]s layouts that put the most important action first and keep supporting detail one step away.",
	},
	{
		title:       "%s in Every Detail",
		description: "Treat %[1]s as a property of the smallest details. Spacing, type and color choices should stay %[2]s and repeatable, so components compose into pages without one-off overrides.",
	},
	{
		title:       "Designed to Feel %s",
		description: "People should sense %[1]s the moment they interact with the product. Favor %[2]s interactions and clear feedback, and write copy that respects their time and intent.",
	},
	{
		title:       "%s at Scale",
		description: "A system built on %[1]s has to hold up as it grows. Prefer %[2]s patterns over special cases, record decisions as tokens, and let new components inherit behavior instead of reinventing it.",
	},
	{
		title:       "Inclusive %s",
		description: "Accessibility is part of %[1]s. Keep contrast, focus states and motion %[2]s for every user, and treat a failing check as a defect rather than a polish item.",
	},
}

// Generate builds the principle set for insight. The count is the number of
// distinct non-blank brand keywords, compared case-insensitively, clamped to
// [MinPrinciples, MaxPrinciples]. Duplicates and blanks do not add principles.
func Generate(insight types.DesignInsight) types.PrincipleSet {
	keywords := selectKeywords(insight.BrandKeywords)
	vocab := vocabularyFor(insight.UIDensity)

	principles := make([]types.Principle, 0, len(keywords))
	for i, kw := range keywords {
		principles = append(principles, buildPrinciple(i, kw, vocab[i%len(vocab)]))
	}

	return types.PrincipleSet{
		Principles:       principles,
		MarkdownContent:  RenderMarkdown(principles),
		StorybookContent: RenderStorybook(principles),
	}
}

// Count returns how many principles Generate produces for n keywords.
func Count(n int) int {
	if n < MinPrinciples {
		return MinPrinciples
	}
	if n > MaxPrinciples {
		return MaxPrinciples
	}
	return n
}

// selectKeywords returns the first distinct usable keywords, padded with
// fallbacks to MinPrinciples.
func selectKeywords(brand []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(kw string) {
		fields := strings.Fields(kw)
		if len(fields) > maxKeywordWords {
			fields = fields[:maxKeywordWords]
		}
		kw = strings.Join(fields, " ")
		key := strings.ToLower(kw)
		if kw == "" || seen[key] || len(out) >= MaxPrinciples {
			return
		}
		seen[key] = true
		out = append(out, kw)
	}

	for _, kw := range brand {
		add(kw)
	}
	for _, kw := range fallbackKeywords {
		if len(out) >= MinPrinciples {
			break
		}
		add(kw)
	}
	return out
}

func vocabularyFor(d types.UIDensity) []string {
	if v, ok := DensityVocabulary[d]; ok {
		return v
	}
	return DensityVocabulary[types.DensityRegular]
}

func buildPrinciple(i int, keyword, term string) types.Principle {
	t := templates[i%len(templates)]
	description := truncateWords(fmt.Sprintf(t.description, keyword, term), types.MaxPrincipleWords)
	return types.Principle{
		Title:         fmt.Sprintf(t.title, titleCase(keyword)),
		Description:   description,
		WordCount:     len(strings.Fields(description)),
		BrandKeywords: []string{keyword},
	}
}

// truncateWords keeps at most limit words, ending with a period.
func truncateWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	out := strings.Join(words[:limit], " ")
	return strings.TrimRight(out, ",;:") + "."
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
