// Package workflow coordinates one inspiration-to-design-system run: analysis,
// token and principle generation, the accessibility policy, the component
// plan, and the output manifest.
package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/supercomponents/internal/output"
	"github.com/jonathan/supercomponents/internal/plan"
	"github.com/jonathan/supercomponents/internal/principles"
	"github.com/jonathan/supercomponents/internal/tokens"
	"github.com/jonathan/supercomponents/internal/types"
)

// SoftBudget is the expected upper bound for a run. Exceeding it is reported
// as a warning, never as a failure.
const SoftBudget = 60 * time.Second

const totalSteps = 6

// Analyzer produces the design analysis for an inspiration.
type Analyzer interface {
	AnalyzeInspiration(ctx context.Context, insp types.UserInspiration) (*types.AnalysisResult, error)
}

// StreamingAnalyzer is an Analyzer that can also stream the raw response.
type StreamingAnalyzer interface {
	Analyzer
	AnalyzeInspirationStreaming(ctx context.Context, insp types.UserInspiration, onChunk func(string)) (*types.AnalysisResult, error)
}

// Run outcomes reported to Observer
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Observer receives run-level measurements.
type Observer interface {
	ObserveRun(outcome string, duration time.Duration)
	ObserveViolations(severity string, count int)
}

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds per-run settings
type Options struct {
	// BypassA11yFail downgrades unresolved contrast failures to warnings
	BypassA11yFail bool
	// Stream uses the analyzer's streaming mode when available
	Stream     bool
	OnChunk    func(chunk string)
	OnProgress ProgressCallback
}

// Config holds the collaborators of a Workflow.
type Config struct {
	Analyzer Analyzer
	Writer   output.Writer
	Logger   *slog.Logger
	// Out receives "Step N/M" progress lines; nil discards them
	Out      io.Writer
	Observer Observer
	Now      func() time.Time
	// GenerateTokens replaces tokens.Generate when set
	GenerateTokens func(types.DesignInsight, tokens.Options) *tokens.Result
}

// Workflow generates design systems. It is safe for concurrent use when its
// collaborators are.
type Workflow struct {
	analyzer Analyzer
	writer   output.Writer
	logger   *slog.Logger
	out      io.Writer
	observer Observer
	now      func() time.Time

	generateTokens func(types.DesignInsight, tokens.Options) *tokens.Result
}

// New creates a Workflow. A nil Writer writes to the local filesystem.
func New(cfg Config) *Workflow {
	w := &Workflow{
		analyzer: cfg.Analyzer,
		writer:   cfg.Writer,
		logger:   cfg.Logger,
		out:      cfg.Out,
		observer: cfg.Observer,
		now:      cfg.Now,

		generateTokens: cfg.GenerateTokens,
	}
	if w.writer == nil {
		w.writer = output.NewFSWriter()
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.out == nil {
		w.out = io.Discard
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.generateTokens == nil {
		w.generateTokens = tokens.Generate
	}
	return w
}

type run struct {
	*Workflow
	id   string
	opts Options
}

func (r *run) step(n int, name, message string, content any) {
	_, _ = fmt.Fprintf(r.out, "Step %d/%d: %s\n", n, totalSteps, message)
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{Step: name, Message: message, RunID: r.id, Content: content})
	}
}

// GenerateDesignSystem runs the full generation for insp and writes the
// result under outputDir. Analysis failures are returned unchanged and
// nothing is written. With contrast failures that correction could not fix,
// the run fails with *AccessibilityError unless opts.BypassA11yFail is set.
func (w *Workflow) GenerateDesignSystem(ctx context.Context, insp types.UserInspiration, outputDir string, opts Options) (result *types.GenerationResult, err error) {
	start := w.now()
	r := &run{Workflow: w, id: uuid.New().String(), opts: opts}
	logger := w.logger.With("run_id", r.id)

	defer func() {
		outcome := OutcomeSuccess
		if err != nil {
			outcome = OutcomeFailure
			logger.Error("generation failed", "error", err)
		}
		if w.observer != nil {
			w.observer.ObserveRun(outcome, w.now().Sub(start))
		}
	}()

	if err := insp.Validate(); err != nil {
		return nil, err
	}
	if w.analyzer == nil {
		return nil, fmt.Errorf("workflow has no analyzer")
	}

	// Step 1: Analyze inspiration
	kind, _ := insp.Source()
	r.step(1, "analyze", fmt.Sprintf("Analyzing %s inspiration...", kind), nil)
	analysis, err := r.analyze(ctx, insp)
	if err != nil {
		return nil, err
	}
	logger.Info("inspiration analyzed", "provider", analysis.Provider, "cached", analysis.FromCache)

	// Step 2: Generate tokens
	enforce := !opts.BypassA11yFail
	r.step(2, "tokens", "Generating design tokens...", analysis.Insights)
	generated := w.generateTokens(analysis.Insights, tokens.Options{
		EnforceWCAG: enforce,
		TargetRatio: tokens.TargetRatioFor(insp.AccessibilityOrDefault()),
	})

	// Step 3: Accessibility policy
	r.step(3, "accessibility", "Checking contrast...", generated.Violations)
	warnings, err := r.applyAccessibilityPolicy(generated, enforce)
	if err != nil {
		return nil, err
	}

	// Step 4: Principles
	r.step(4, "principles", "Generating design principles...", nil)
	principleSet := principles.Generate(analysis.Insights)

	// Step 5: Component plan
	componentPlan := plan.BuildComponentPlan(insp, analysis.Insights, analysis.ComponentRecommendations)
	r.step(5, "plan", fmt.Sprintf("Planning %d components...", componentPlan.TotalComponents), componentPlan)

	result = &types.GenerationResult{
		Tokens:        tokens.ConvertToLegacyFormat(generated.Tokens),
		W3CTokens:     generated.Tokens,
		Principles:    principleSet.Principles,
		PrincipleSet:  principleSet,
		ComponentPlan: componentPlan,
		Insights:      analysis.Insights,
		Metadata: types.GenerationMetadata{
			Version:            types.MetadataVersion,
			RunID:              r.id,
			GeneratedAt:        start.UTC(),
			Provider:           analysis.Provider,
			DesignRationale:    analysis.DesignRationale,
			A11yBypassed:       opts.BypassA11yFail,
			Warnings:           warnings,
			ContrastViolations: generated.Violations,
		},
	}
	result.ImplementationGuide = output.RenderImplementationGuide(output.GuideInput{
		Inspiration:     insp,
		Insight:         analysis.Insights,
		DesignRationale: analysis.DesignRationale,
		Principles:      principleSet.Principles,
		Plan:            componentPlan,
		Warnings:        warnings,
	})

	// Step 6: Assemble and write files
	manifest, err := buildManifest(insp, result, generated)
	if err != nil {
		return nil, err
	}
	r.step(6, "write", fmt.Sprintf("Writing %d files to %s...", len(manifest.Files), outputDir), manifest.Paths())
	if err := w.writer.Write(ctx, outputDir, manifest.Files); err != nil {
		return nil, &OutputError{Message: "failed to write files", Cause: err}
	}

	result.Metadata.Files = manifest.Paths()
	result.Metadata.Duration = w.now().Sub(start)
	logger.Info("design system generated",
		"files", len(manifest.Files),
		"principles", len(principleSet.Principles),
		"components", componentPlan.TotalComponents,
		"duration", result.Metadata.Duration.Round(time.Millisecond))
	return result, nil
}

func (r *run) analyze(ctx context.Context, insp types.UserInspiration) (*types.AnalysisResult, error) {
	if r.opts.Stream {
		if s, ok := r.analyzer.(StreamingAnalyzer); ok {
			return s.AnalyzeInspirationStreaming(ctx, insp, r.opts.OnChunk)
		}
	}
	return r.analyzer.AnalyzeInspiration(ctx, insp)
}

// applyAccessibilityPolicy fails the run on unresolved violations when
// enforcing, and otherwise turns every violation into a warning.
func (r *run) applyAccessibilityPolicy(generated *tokens.Result, enforce bool) ([]string, error) {
	if r.observer != nil {
		counts := make(map[string]int)
		for _, v := range generated.Violations {
			counts[v.Severity]++
		}
		for severity, n := range counts {
			r.observer.ObserveViolations(severity, n)
		}
	}

	if enforce {
		if unresolved := generated.Unresolved(); len(unresolved) > 0 {
			return nil, &AccessibilityError{Violations: unresolved}
		}
	}

	var warnings []string
	for _, v := range generated.Violations {
		warnings = append(warnings, "contrast: "+v.Details)
	}
	for _, a := range generated.Adjustments {
		r.logger.Debug("adjusted text color", "token", a.Token, "from", a.From, "to", a.To, "ratio", a.Ratio)
	}
	return warnings, nil
}
