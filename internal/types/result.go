package types

import "time"

// MetadataVersion is written to metadata.json.
const MetadataVersion = "1.0.0"

// GenerationMetadata describes one workflow run.
type GenerationMetadata struct {
	Version            string              `json:"version"`
	RunID              string              `json:"runId"`
	GeneratedAt        time.Time           `json:"generatedAt"`
	Provider           string              `json:"provider,omitempty"`
	Duration           time.Duration       `json:"duration"`
	DesignRationale    string              `json:"designRationale,omitempty"`
	A11yBypassed       bool                `json:"a11yBypassed"`
	Warnings           []string            `json:"warnings,omitempty"`
	ContrastViolations []ContrastViolation `json:"contrastViolations,omitempty"`
	Files              []string            `json:"files"`
}

// GenerationResult is the in-memory output of a workflow run.
type GenerationResult struct {
	Tokens              DesignTokens       `json:"tokens"`
	W3CTokens           W3CDesignTokens    `json:"w3cTokens"`
	Principles          []Principle        `json:"principles"`
	PrincipleSet        PrincipleSet       `json:"-"`
	ComponentPlan       ComponentPlan      `json:"componentPlan"`
	ImplementationGuide string             `json:"implementationGuide"`
	Insights            DesignInsight      `json:"insights"`
	Metadata            GenerationMetadata `json:"metadata"`
}
