package workflow

import (
	"encoding/json"
	"time"

	"github.com/jonathan/supercomponents/internal/output"
	"github.com/jonathan/supercomponents/internal/principles"
	"github.com/jonathan/supercomponents/internal/schemas"
	"github.com/jonathan/supercomponents/internal/tokens"
	"github.com/jonathan/supercomponents/internal/types"
)

// metadataFile is the content of .supercomponents/metadata.json.
type metadataFile struct {
	Version            string                    `json:"version"`
	Timestamp          time.Time                 `json:"timestamp"`
	RunID              string                    `json:"runId"`
	Provider           string                    `json:"provider,omitempty"`
	Inspiration        types.UserInspiration     `json:"inspiration"`
	Insights           types.DesignInsight       `json:"insights"`
	DesignRationale    string                    `json:"designRationale,omitempty"`
	Tokens             types.W3CDesignTokens     `json:"tokens"`
	Principles         []types.Principle         `json:"principles"`
	ComponentPlan      types.ComponentPlan       `json:"componentPlan"`
	A11yBypassed       bool                      `json:"a11yBypassed"`
	Warnings           []string                  `json:"warnings,omitempty"`
	ContrastViolations []types.ContrastViolation `json:"contrastViolations,omitempty"`
}

func buildManifest(insp types.UserInspiration, result *types.GenerationResult, generated *tokens.Result) (*output.Manifest, error) {
	meta := metadataFile{
		Version:            result.Metadata.Version,
		Timestamp:          result.Metadata.GeneratedAt,
		RunID:              result.Metadata.RunID,
		Provider:           result.Metadata.Provider,
		Inspiration:        insp,
		Insights:           result.Insights,
		DesignRationale:    result.Metadata.DesignRationale,
		Tokens:             generated.Tokens,
		Principles:         result.Principles,
		ComponentPlan:      result.ComponentPlan,
		A11yBypassed:       result.Metadata.A11yBypassed,
		Warnings:           result.Metadata.Warnings,
		ContrastViolations: result.Metadata.ContrastViolations,
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, &OutputError{Message: "failed to encode metadata", Cause: err}
	}
	if err := schemas.Validate(schemas.MetadataSchema, string(metaJSON)); err != nil {
		return nil, &OutputError{Message: "metadata does not match its schema", Cause: err}
	}

	manifest := &output.Manifest{}
	if err := manifest.AddJSON(output.MetadataPath, meta); err != nil {
		return nil, &OutputError{Message: "failed to encode metadata", Cause: err}
	}
	manifest.AddString(output.ReadmePath, result.ImplementationGuide)
	for _, f := range principles.Files(result.PrincipleSet) {
		manifest.Add(f.Path, f.Content)
	}

	html, err := output.RenderHTML("Design Principles", []byte(result.PrincipleSet.MarkdownContent))
	if err != nil {
		return nil, &OutputError{Message: "failed to render principles preview", Cause: err}
	}
	manifest.Add(output.PrinciplesHTMLPath, html)

	if err := manifest.AddJSON(output.TokensJSONPath, generated.Tokens); err != nil {
		return nil, &OutputError{Message: "failed to encode tokens", Cause: err}
	}
	if err := manifest.AddJSON(output.LegacyTokensJSONPath, result.Tokens); err != nil {
		return nil, &OutputError{Message: "failed to encode legacy tokens", Cause: err}
	}
	manifest.AddString(output.TokensCSSPath, tokens.RenderCSS(generated.Tokens))
	return manifest, nil
}
