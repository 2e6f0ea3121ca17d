// Package observability provides logging setup and formatted output utilities
// for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/supercomponents/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to maxItemsToShow items and a "more" line.
func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for _, item := range items[:count] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintInsight outputs a summary of the analyzed design insight.
func (p *Printer) PrintInsight(analysis *types.AnalysisResult) {
	if analysis == nil {
		return
	}
	in := analysis.Insights

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Provider: %s", orDash(analysis.Provider)))
	if analysis.FromCache {
		sb.WriteString(" (cached)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Density:  %s\n", in.UIDensity))
	if len(in.BrandKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(in.BrandKeywords, ", ")))
	}
	sb.WriteString("\n")
	writeList(&sb, "Palette", in.ImageryPalette)
	writeList(&sb, "Typography", in.TypographyFamilies)
	if len(in.SpacingScale) > 0 {
		values := make([]string, len(in.SpacingScale))
		for i, v := range in.SpacingScale {
			values[i] = fmt.Sprintf("%g", v)
		}
		sb.WriteString(fmt.Sprintf("Spacing:  %s\n", strings.Join(values, " ")))
	}

	p.printBox("DESIGN INSIGHT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTokens outputs the size of each token category and the base color of
// every color role.
func (p *Printer) PrintTokens(tokens types.W3CDesignTokens) {
	var sb strings.Builder
	categories := tokens.Categories()
	for _, name := range []string{"color", "typography", "spacing", "borderRadius", "shadow", "sizing"} {
		count := 0
		categories[name].Walk(func([]string, *types.TokenNode) { count++ })
		sb.WriteString(fmt.Sprintf("%-13s %3d tokens\n", name, count))
	}

	sb.WriteString("\nColor roles (500):\n")
	for _, role := range tokens.Color.SortedKeys() {
		if node := tokens.Color.Lookup(role, "500"); node != nil {
			sb.WriteString(fmt.Sprintf("  • %-10s %s\n", role, node.StringValue()))
		}
	}

	p.printBox("DESIGN TOKENS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any contrast violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations []types.ContrastViolation) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO CONTRAST VIOLATIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	for i, v := range violations {
		sb.WriteString(fmt.Sprintf("⚠ %s on %s (%s)\n", v.Foreground, v.Background, v.Severity))
		sb.WriteString(fmt.Sprintf("  %s on %s: %.2f:1, needs %.1f:1\n", v.ForegroundHex, v.BackgroundHex, v.Ratio, v.Required))
		if i < len(violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTRAST VIOLATIONS", sb.String())
}

// PrintPrinciples outputs the generated principles.
func (p *Printer) PrintPrinciples(principles []types.Principle) {
	if len(principles) == 0 {
		return
	}

	var sb strings.Builder
	for i, pr := range principles {
		sb.WriteString(fmt.Sprintf("%d. %s (%d words)\n", i+1, pr.Title, pr.WordCount))
		if len(pr.BrandKeywords) > 0 {
			sb.WriteString(fmt.Sprintf("   %s\n", strings.Join(pr.BrandKeywords, ", ")))
		}
	}

	p.printBox("DESIGN PRINCIPLES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComponentPlan outputs the phased component plan.
func (p *Printer) PrintComponentPlan(plan types.ComponentPlan) {
	if len(plan.Phases) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d components, %s\n\n", plan.TotalComponents, plan.EstimatedDuration))
	for _, phase := range plan.Phases {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", phase.Name, phase.Duration))
		count := min(len(phase.Components), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s", strings.Join(phase.Components[:count], ", ")))
		if len(phase.Components) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(", +%d", len(phase.Components)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.printBox("COMPONENT PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFiles outputs the generated file list.
func (p *Printer) PrintFiles(dir string, files []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Output: %s\n\n", dir))
	for _, f := range files {
		sb.WriteString(fmt.Sprintf("  • %s\n", f))
	}
	p.printBox("GENERATED FILES", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
