// Package analyzer turns a UserInspiration into a structured design analysis
// by prompting an AI provider under rate limiting and response caching.
package analyzer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jonathan/supercomponents/internal/cache"
	"github.com/jonathan/supercomponents/internal/llm"
	"github.com/jonathan/supercomponents/internal/ratelimit"
	"github.com/jonathan/supercomponents/internal/schemas"
	"github.com/jonathan/supercomponents/internal/types"
)

// Options configures an Analyzer.
type Options struct {
	// Request options sent with every completion; they are part of the cache key
	Request llm.Options
	Logger  *slog.Logger
}

// Analyzer produces AnalysisResults from inspirations. It is safe for
// concurrent use; the limiter and cache are shared by all callers.
type Analyzer struct {
	adapter   llm.Adapter
	limiter   *ratelimit.Limiter
	responses *cache.ResponseCache
	request   llm.Options
	logger    *slog.Logger
}

// New creates an Analyzer. A nil limiter or cache gets a private default
// instance. A nil adapter is accepted; every call then fails with
// *llm.ConfigurationError.
func New(adapter llm.Adapter, limiter *ratelimit.Limiter, responses *cache.ResponseCache, opts Options) *Analyzer {
	if limiter == nil {
		limiter = ratelimit.NewLimiter(ratelimit.DefaultConfig())
	}
	if responses == nil {
		responses = cache.New(0)
	}
	if opts.Request.System == "" {
		opts.Request.System = systemPrompt()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		adapter:   adapter,
		limiter:   limiter,
		responses: responses,
		request:   opts.Request,
		logger:    logger,
	}
}

// Provider returns the adapter name, or "" when unconfigured.
func (a *Analyzer) Provider() string {
	if a.adapter == nil {
		return ""
	}
	return a.adapter.Name()
}

// AnalyzeInspiration waits for rate-limiter admission, then returns the
// cached analysis for this prompt or requests one from the provider. Only
// responses that parse and carry all required keys are cached.
func (a *Analyzer) AnalyzeInspiration(ctx context.Context, insp types.UserInspiration) (*types.AnalysisResult, error) {
	if a.adapter == nil {
		return nil, &llm.ConfigurationError{Message: "no AI provider credentials"}
	}

	prompt := BuildPrompt(insp)
	if err := a.admit(ctx); err != nil {
		return nil, err
	}

	key := cache.Key(a.adapter.Name(), prompt, a.request)
	start := time.Now()
	raw, hit, err := a.responses.Do(key, func() (string, error) {
		text, err := a.adapter.Complete(ctx, prompt, a.request)
		if err != nil {
			return "", err
		}
		cleaned, _, err := decode(text)
		if err != nil {
			return "", err
		}
		return cleaned, nil
	})
	if err != nil {
		a.logger.Error("analysis failed", "provider", a.adapter.Name(), "error", err)
		return nil, err
	}

	return a.finish(raw, insp, hit, start)
}

// AnalyzeInspirationStreaming is AnalyzeInspiration over the provider's
// streaming API. onChunk receives chunks in arrival order; a cache hit
// delivers the whole cached response as one chunk.
func (a *Analyzer) AnalyzeInspirationStreaming(ctx context.Context, insp types.UserInspiration, onChunk func(string)) (*types.AnalysisResult, error) {
	if a.adapter == nil {
		return nil, &llm.ConfigurationError{Message: "no AI provider credentials"}
	}

	prompt := BuildPrompt(insp)
	if err := a.admit(ctx); err != nil {
		return nil, err
	}

	key := cache.Key(a.adapter.Name(), prompt, a.request)
	start := time.Now()
	if raw, ok := a.responses.Get(key); ok {
		if onChunk != nil {
			onChunk(raw)
		}
		return a.finish(raw, insp, true, start)
	}

	stream, err := a.adapter.StreamComplete(ctx, prompt, a.request)
	if err != nil {
		return nil, err
	}
	text, err := llm.Collect(stream, onChunk)
	if err != nil {
		return nil, err
	}

	cleaned, _, err := decode(text)
	if err != nil {
		return nil, err
	}
	a.responses.Set(key, cleaned)
	return a.finish(cleaned, insp, false, start)
}

func (a *Analyzer) admit(ctx context.Context) error {
	if a.limiter.CheckAdmission() {
		return nil
	}
	a.logger.Debug("waiting for rate limiter", "remaining", a.limiter.Status().Remaining)
	return a.limiter.AwaitAdmission(ctx)
}

func (a *Analyzer) finish(raw string, insp types.UserInspiration, hit bool, start time.Time) (*types.AnalysisResult, error) {
	_, resp, err := decode(raw)
	if err != nil {
		return nil, err
	}
	result := resp.toResult(insp)
	result.Provider = a.adapter.Name()
	result.FromCache = hit

	a.logger.Info("analysis complete",
		"provider", result.Provider,
		"cached", hit,
		"palette", len(result.Insights.ImageryPalette),
		"density", result.Insights.UIDensity,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return result, nil
}

// decode cleans, validates and parses a raw completion. It returns the
// cleaned JSON text alongside the parsed response.
func decode(text string) (string, *analysisResponse, error) {
	cleaned := llm.CleanJSONBlock(text)
	if !json.Valid([]byte(cleaned)) {
		return "", nil, &AnalysisError{Message: "AI response is not valid JSON"}
	}
	if err := schemas.ValidateAnalysisResponse(cleaned); err != nil {
		return "", nil, &AnalysisError{Message: "AI response is missing required fields", Cause: err}
	}

	var resp analysisResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return "", nil, &AnalysisError{Message: "failed to parse AI response", Cause: err}
	}
	return cleaned, &resp, nil
}
