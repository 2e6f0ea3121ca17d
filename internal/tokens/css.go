package tokens

import (
	"strings"
	"unicode"

	"github.com/jonathan/supercomponents/internal/types"
)

// RenderCSS renders tokens as CSS custom properties on :root, one per leaf,
// named --<category>-<path> in kebab case.
func RenderCSS(tokens types.W3CDesignTokens) string {
	categories := []struct {
		prefix string
		group  types.TokenGroup
	}{
		{"color", tokens.Color},
		{"typography", tokens.Typography},
		{"spacing", tokens.Spacing},
		{"radius", tokens.BorderRadius},
		{"shadow", tokens.Shadow},
		{"sizing", tokens.Sizing},
	}

	var sb strings.Builder
	sb.WriteString("/* Generated design tokens. Do not edit by hand. */\n:root {\n")
	for _, c := range categories {
		c.group.Walk(func(path []string, leaf *types.TokenNode) {
			sb.WriteString("  --")
			sb.WriteString(VarName(c.prefix, path...))
			sb.WriteString(": ")
			sb.WriteString(leaf.StringValue())
			sb.WriteString(";\n")
		})
	}
	sb.WriteString("}\n")
	return sb.String()
}

// VarName joins path segments into a kebab-case custom property name
// without the leading dashes.
func VarName(prefix string, path ...string) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, kebab(prefix))
	for _, p := range path {
		parts = append(parts, kebab(p))
	}
	return strings.Join(parts, "-")
}

func kebab(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
