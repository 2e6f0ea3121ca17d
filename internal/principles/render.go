package principles

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/supercomponents/internal/output"
	"github.com/jonathan/supercomponents/internal/types"
)

const intro = "These principles guide every design and engineering decision in this system. They are ordered by priority: when two principles conflict, the earlier one wins."

// RenderMarkdown renders principles with numbered "## N. Title" headings.
func RenderMarkdown(principles []types.Principle) string {
	var sb strings.Builder
	sb.WriteString("# Design Principles\n\n")
	sb.WriteString(intro)
	sb.WriteString("\n")
	for i, p := range principles {
		fmt.Fprintf(&sb, "\n## %d. %s\n\n%s\n\n", i+1, p.Title, p.Description)
		fmt.Fprintf(&sb, "**Keywords:** %s\n", strings.Join(p.BrandKeywords, ", "))
	}
	return sb.String()
}

// RenderStorybook renders the Storybook MDX page mirroring RenderMarkdown.
func RenderStorybook(principles []types.Principle) string {
	var sb strings.Builder
	sb.WriteString("import { Meta } from '@storybook/blocks';\n\n")
	sb.WriteString("<Meta title=\"Foundations/Principles\" />\n\n")
	sb.WriteString("# Design Principles\n\n")
	sb.WriteString(intro)
	sb.WriteString("\n")
	for i, p := range principles {
		fmt.Fprintf(&sb, "\n## %d. %s\n\n%s\n\n", i+1, p.Title, escapeMDX(p.Description))
		fmt.Fprintf(&sb, "<small>Keywords: %s</small>\n", escapeMDX(strings.Join(p.BrandKeywords, ", ")))
	}
	return sb.String()
}

var mdxEscaper = strings.NewReplacer("{", "\\{", "}", "\\}", "<", "&lt;", ">", "&gt;")

func escapeMDX(s string) string {
	return mdxEscaper.Replace(s)
}

// Files returns the principle documents as output files.
func Files(set types.PrincipleSet) []output.File {
	return []output.File{
		{Path: output.PrinciplesPath, Content: []byte(set.MarkdownContent)},
		{Path: output.PrinciplesStoryPath, Content: []byte(set.StorybookContent)},
	}
}

// WriteToFiles writes the markdown and MDX documents under root.
func WriteToFiles(ctx context.Context, w output.Writer, root string, set types.PrincipleSet) error {
	if err := w.Write(ctx, root, Files(set)); err != nil {
		return fmt.Errorf("failed to write principles: %w", err)
	}
	return nil
}
