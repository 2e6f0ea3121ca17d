package tokens

import (
	"strings"

	"github.com/jonathan/supercomponents/internal/types"
)

const (
	defaultFontFamily = "Inter"
	sansFallback      = "system-ui, -apple-system, 'Segoe UI', Roboto, sans-serif"
	monoFallback      = "ui-monospace, SFMono-Regular, Menlo, monospace"
	defaultMono       = "JetBrains Mono"
)

var fontSizes = []struct {
	name string
	rem  string
}{
	{"xs", "0.75rem"},
	{"sm", "0.875rem"},
	{"base", "1rem"},
	{"lg", "1.125rem"},
	{"xl", "1.25rem"},
	{"2xl", "1.5rem"},
	{"3xl", "1.875rem"},
	{"4xl", "2.25rem"},
}

var fontWeights = map[string]int{
	"light":    300,
	"regular":  400,
	"medium":   500,
	"semibold": 600,
	"bold":     700,
}

// line heights per density: tight, normal, relaxed
var lineHeights = map[types.UIDensity][3]float64{
	types.DensityCompact:  {1.15, 1.35, 1.5},
	types.DensityRegular:  {1.25, 1.5, 1.75},
	types.DensitySpacious: {1.35, 1.65, 1.9},
}

func quoteFamily(f string) string {
	if strings.ContainsAny(f, " ") && !strings.HasPrefix(f, "'") && !strings.HasPrefix(f, "\"") {
		return "'" + f + "'"
	}
	return f
}

func isMono(f string) bool {
	lower := strings.ToLower(f)
	return strings.Contains(lower, "mono") || strings.Contains(lower, "code") || strings.Contains(lower, "courier")
}

// fontStacks splits the insight families into sans, heading and mono stacks.
func fontStacks(families []string) (sans, heading, mono string) {
	var text []string
	var monos []string
	for _, f := range families {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if isMono(f) {
			monos = append(monos, f)
		} else {
			text = append(text, f)
		}
	}

	body := defaultFontFamily
	if len(text) > 0 {
		body = text[0]
	}
	head := body
	if len(text) > 1 {
		head = text[1]
	}
	code := defaultMono
	if len(monos) > 0 {
		code = monos[0]
	}

	return quoteFamily(body) + ", " + sansFallback,
		quoteFamily(head) + ", " + sansFallback,
		quoteFamily(code) + ", " + monoFallback
}

func (g *generator) buildTypography() types.TokenGroup {
	sans, heading, mono := fontStacks(g.insight.TypographyFamilies)

	sizes := make(types.TokenGroup, len(fontSizes))
	for _, s := range fontSizes {
		sizes[s.name] = types.Leaf(types.TokenTypeDimension, s.rem, "")
	}

	weights := make(types.TokenGroup, len(fontWeights))
	for name, w := range fontWeights {
		weights[name] = types.Leaf(types.TokenTypeFontWeight, w, "")
	}

	lh, ok := lineHeights[g.insight.UIDensity]
	if !ok {
		lh = lineHeights[types.DensityRegular]
	}

	return types.TokenGroup{
		"fontFamily": types.Group(types.TokenGroup{
			"sans":    types.Leaf(types.TokenTypeFontFamily, sans, "Body text"),
			"heading": types.Leaf(types.TokenTypeFontFamily, heading, "Headings"),
			"mono":    types.Leaf(types.TokenTypeFontFamily, mono, "Code"),
		}),
		"fontSize":   types.Group(sizes),
		"fontWeight": types.Group(weights),
		"lineHeight": types.Group(types.TokenGroup{
			"tight":   types.Leaf(types.TokenTypeNumber, lh[0], ""),
			"normal":  types.Leaf(types.TokenTypeNumber, lh[1], ""),
			"relaxed": types.Leaf(types.TokenTypeNumber, lh[2], ""),
		}),
	}
}
