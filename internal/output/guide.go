package output

import (
	"fmt"
	"strings"

	"github.com/jonathan/supercomponents/internal/types"
)

// GuideInput is the data rendered into the implementation guide.
type GuideInput struct {
	Inspiration     types.UserInspiration
	Insight         types.DesignInsight
	DesignRationale string
	Principles      []types.Principle
	Plan            types.ComponentPlan
	Warnings        []string
}

// RenderImplementationGuide renders the project README.
func RenderImplementationGuide(in GuideInput) string {
	var sb strings.Builder

	sb.WriteString("# Design System Implementation Guide\n\n")
	kind, source := in.Inspiration.Source()
	fmt.Fprintf(&sb, "Generated from a %s inspiration: %s\n\n", kind, source)
	if in.DesignRationale != "" {
		sb.WriteString("## Design Rationale\n\n")
		sb.WriteString(in.DesignRationale)
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Foundations\n\n")
	fmt.Fprintf(&sb, "- **UI density:** %s\n", orNone(string(in.Insight.UIDensity)))
	fmt.Fprintf(&sb, "- **Palette:** %s\n", orNone(strings.Join(in.Insight.ImageryPalette, ", ")))
	fmt.Fprintf(&sb, "- **Typography:** %s\n", orNone(strings.Join(in.Insight.TypographyFamilies, ", ")))
	fmt.Fprintf(&sb, "- **Brand keywords:** %s\n", orNone(strings.Join(in.Insight.BrandKeywords, ", ")))
	fmt.Fprintf(&sb, "- **Accessibility:** %s\n\n", in.Inspiration.AccessibilityOrDefault())

	sb.WriteString("## Project Layout\n\n")
	fmt.Fprintf(&sb, "| Path | Contents |\n|---|---|\n")
	fmt.Fprintf(&sb, "| `%s` | W3C design tokens |\n", TokensJSONPath)
	fmt.Fprintf(&sb, "| `%s` | CSS custom properties |\n", TokensCSSPath)
	fmt.Fprintf(&sb, "| `%s` | Flat tokens for older tooling |\n", LegacyTokensJSONPath)
	fmt.Fprintf(&sb, "| `%s` | Design principles |\n", PrinciplesPath)
	fmt.Fprintf(&sb, "| `%s` | Storybook principles page |\n", PrinciplesStoryPath)
	fmt.Fprintf(&sb, "| `%s` | Generation metadata |\n\n", MetadataPath)

	if len(in.Principles) > 0 {
		sb.WriteString("## Principles\n\n")
		for i, p := range in.Principles {
			fmt.Fprintf(&sb, "%d. **%s**\n", i+1, p.Title)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Component Plan\n\n")
	fmt.Fprintf(&sb, "%d components, estimated %s.\n\n", in.Plan.TotalComponents, in.Plan.EstimatedDuration)
	for i, phase := range in.Plan.Phases {
		fmt.Fprintf(&sb, "### Phase %d: %s (%s)\n\n", i+1, phase.Name, phase.Duration)
		if phase.Description != "" {
			sb.WriteString(phase.Description)
			sb.WriteString("\n\n")
		}
		for _, c := range phase.Components {
			fmt.Fprintf(&sb, "- [ ] %s\n", c)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Using the Tokens\n\n")
	sb.WriteString("```css\n@import './src/tokens/tokens.css';\n\n.button {\n")
	sb.WriteString("  background: var(--color-primary-500);\n  color: var(--color-text-on-primary);\n")
	sb.WriteString("  padding: var(--spacing-2) var(--spacing-4);\n  border-radius: var(--radius-md);\n}\n```\n")

	if len(in.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, w := range in.Warnings {
			fmt.Fprintf(&sb, "- %s\n", w)
		}
	}
	return sb.String()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
