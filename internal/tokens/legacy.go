package tokens

import (
	"strings"

	"github.com/jonathan/supercomponents/internal/types"
)

// ConvertToLegacyFormat flattens W3C tokens into the DesignTokens shape.
// Sizing and token descriptions are dropped.
func ConvertToLegacyFormat(tokens types.W3CDesignTokens) types.DesignTokens {
	legacy := types.DesignTokens{
		Colors:       make(map[string]map[string]string),
		Spacing:      flatten(tokens.Spacing),
		BorderRadius: flatten(tokens.BorderRadius),
		Shadows:      flatten(tokens.Shadow),
		Typography: types.LegacyTypography{
			FontFamily: flattenChild(tokens.Typography, "fontFamily"),
			FontSize:   flattenChild(tokens.Typography, "fontSize"),
			FontWeight: flattenChild(tokens.Typography, "fontWeight"),
			LineHeight: flattenChild(tokens.Typography, "lineHeight"),
		},
	}

	for _, role := range tokens.Color.SortedKeys() {
		node := tokens.Color[role]
		if !node.IsGroup() {
			continue
		}
		legacy.Colors[role] = flatten(node.Children)
	}
	return legacy
}

// flatten maps each leaf's dash-joined path to its value.
func flatten(g types.TokenGroup) map[string]string {
	out := make(map[string]string)
	g.Walk(func(path []string, leaf *types.TokenNode) {
		out[strings.Join(path, "-")] = leaf.StringValue()
	})
	return out
}

func flattenChild(g types.TokenGroup, name string) map[string]string {
	node := g.Lookup(name)
	if !node.IsGroup() {
		return map[string]string{}
	}
	return flatten(node.Children)
}
