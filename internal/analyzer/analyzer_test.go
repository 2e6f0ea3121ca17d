package analyzer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/supercomponents/internal/cache"
	"github.com/jonathan/supercomponents/internal/llm"
	"github.com/jonathan/supercomponents/internal/ratelimit"
	"github.com/jonathan/supercomponents/internal/schemas"
	"github.com/jonathan/supercomponents/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testInspiration() types.UserInspiration {
	return types.UserInspiration{
		Description:   "Modern tech startup design",
		BrandKeywords: []string{"modern", "tech", "clean"},
		Accessibility: types.AccessibilityEnhanced,
	}
}

func newTestAnalyzer(adapter llm.Adapter) *Analyzer {
	return New(adapter, nil, cache.New(0), Options{Logger: testLogger})
}

func TestAnalyzeInspiration_NoAdapter(t *testing.T) {
	a := newTestAnalyzer(nil)

	_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.Error(t, err)

	var cfgErr *llm.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "LLM service not configured")
	assert.Empty(t, a.Provider())
}

func TestAnalyzeInspiration_Success(t *testing.T) {
	mock := llm.NewMockAdapter()
	a := newTestAnalyzer(mock)

	result, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)

	assert.Equal(t, "mock", result.Provider)
	assert.False(t, result.FromCache)
	assert.Equal(t, []string{"#2563eb", "#7c3aed", "#0f172a", "#f97316"}, result.Insights.ImageryPalette)
	assert.Equal(t, types.DensityRegular, result.Insights.UIDensity)
	assert.Equal(t, []float64{4, 8, 12, 16, 24, 32, 48, 64}, result.Insights.SpacingScale)
	// user keywords first, model keywords deduplicated after
	assert.Equal(t, []string{"modern", "tech", "clean", "trustworthy"}, result.Insights.BrandKeywords)
	assert.NotEmpty(t, result.DesignRationale)
	assert.Len(t, result.ExtractedTokens.Colors["primary"], 10)
	assert.Len(t, result.InferredPrinciples, 3)
	assert.Len(t, result.ComponentRecommendations, 3)
}

func TestAnalyzeInspiration_CacheIdempotence(t *testing.T) {
	mock := llm.NewMockAdapter()
	a := newTestAnalyzer(mock)

	first, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)
	second, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)

	assert.Equal(t, 1, mock.CompleteCalls())
	assert.False(t, first.FromCache)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Insights, second.Insights)
}

func TestAnalyzeInspiration_SharedCacheAcrossAnalyzers(t *testing.T) {
	mock := llm.NewMockAdapter()
	shared := cache.New(0)

	a1 := New(mock, nil, shared, Options{Logger: testLogger})
	a2 := New(mock, nil, shared, Options{Logger: testLogger})

	_, err := a1.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)
	_, err = a2.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)

	assert.Equal(t, 1, mock.CompleteCalls())
	assert.Equal(t, 1, shared.Stats().Size)
}

func TestAnalyzeInspiration_ConcurrentCallsFillOnce(t *testing.T) {
	release := make(chan struct{})
	mock := &llm.MockAdapter{
		CompleteFunc: func(context.Context, string, llm.Options) (string, error) {
			<-release
			return llm.MockAnalysisResponse, nil
		},
	}
	a := newTestAnalyzer(mock)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
			assert.NoError(t, err)
		}()
	}
	require.Eventually(t, func() bool { return mock.CompleteCalls() == 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, 1, mock.CompleteCalls())
}

func TestAnalyzeInspiration_DifferentPromptsMiss(t *testing.T) {
	mock := llm.NewMockAdapter()
	a := newTestAnalyzer(mock)

	other := testInspiration()
	other.IndustryType = "fintech"

	_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)
	_, err = a.AnalyzeInspiration(context.Background(), other)
	require.NoError(t, err)

	assert.Equal(t, 2, mock.CompleteCalls())
}

func TestAnalyzeInspiration_InvalidJSON(t *testing.T) {
	mock := &llm.MockAdapter{
		CompleteFunc: func(context.Context, string, llm.Options) (string, error) {
			return "I'm sorry, I can't produce that.", nil
		},
	}
	a := newTestAnalyzer(mock)

	_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr))
	assert.Contains(t, err.Error(), "not valid JSON")

	// failures are not cached
	_, err = a.AnalyzeInspiration(context.Background(), testInspiration())
	require.Error(t, err)
	assert.Equal(t, 2, mock.CompleteCalls())
}

func TestAnalyzeInspiration_MissingKeys(t *testing.T) {
	mock := &llm.MockAdapter{
		CompleteFunc: func(context.Context, string, llm.Options) (string, error) {
			return `{"design_analysis": {"ui_density": "compact"}}`, nil
		},
	}
	a := newTestAnalyzer(mock)

	_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr))
	var validationErr *schemas.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "extracted_tokens")
}

func TestAnalyzeInspiration_ProviderErrorPropagates(t *testing.T) {
	apiErr := &llm.APIError{Provider: llm.ProviderOpenAI, StatusCode: 500, Message: "upstream down"}
	mock := &llm.MockAdapter{
		CompleteFunc: func(context.Context, string, llm.Options) (string, error) {
			return "", apiErr
		},
	}
	a := newTestAnalyzer(mock)

	_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	assert.Same(t, apiErr, err)
	assert.Equal(t, "OpenAI API Error: upstream down", err.Error())
}

func TestAnalyzeInspiration_ConfigurationErrorFromProvider(t *testing.T) {
	mock := &llm.MockAdapter{
		CompleteFunc: func(context.Context, string, llm.Options) (string, error) {
			return "", &llm.ConfigurationError{}
		},
	}
	a := newTestAnalyzer(mock)

	_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	assert.EqualError(t, err, "LLM service not configured")
}

func TestAnalyzeInspiration_FencedResponse(t *testing.T) {
	mock := &llm.MockAdapter{
		CompleteFunc: func(context.Context, string, llm.Options) (string, error) {
			return "Here you go:\n```json\n" + llm.MockAnalysisResponse + "\n```", nil
		},
	}
	a := newTestAnalyzer(mock)

	result, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Insights.ImageryPalette)
}

func TestAnalyzeInspiration_WaitsForAdmission(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter := ratelimit.NewLimiter(&ratelimit.Config{
		MaxTokens:    1,
		RefillRate:   1,
		PollInterval: time.Millisecond,
		Now:          func() time.Time { return now },
	})
	mock := llm.NewMockAdapter()
	a := New(mock, limiter, cache.New(0), Options{Logger: testLogger})

	_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = a.AnalyzeInspiration(ctx, testInspiration())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, mock.CompleteCalls())
}

func TestAnalyzeInspiration_RequestOptionsReachAdapter(t *testing.T) {
	var got llm.Options
	mock := &llm.MockAdapter{
		CompleteFunc: func(_ context.Context, _ string, opts llm.Options) (string, error) {
			got = opts
			return llm.MockAnalysisResponse, nil
		},
	}
	a := New(mock, nil, nil, Options{Request: llm.Options{Model: "gpt-4o-mini"}, Logger: testLogger})

	_, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.NotEmpty(t, got.System)
}

func TestAnalyzeInspirationStreaming(t *testing.T) {
	mock := llm.NewMockAdapter()
	a := newTestAnalyzer(mock)

	var sb strings.Builder
	chunks := 0
	result, err := a.AnalyzeInspirationStreaming(context.Background(), testInspiration(), func(c string) {
		chunks++
		sb.WriteString(c)
	})
	require.NoError(t, err)
	assert.Greater(t, chunks, 1)
	assert.Equal(t, llm.MockAnalysisResponse, sb.String())
	assert.False(t, result.FromCache)

	// the streamed response is cached for both modes
	again, err := a.AnalyzeInspiration(context.Background(), testInspiration())
	require.NoError(t, err)
	assert.True(t, again.FromCache)
	assert.Equal(t, 0, mock.CompleteCalls())

	chunks = 0
	cached, err := a.AnalyzeInspirationStreaming(context.Background(), testInspiration(), func(string) { chunks++ })
	require.NoError(t, err)
	assert.True(t, cached.FromCache)
	assert.Equal(t, 1, chunks)
	assert.Equal(t, 1, mock.StreamCalls())
}

func TestAnalyzeInspirationStreaming_StreamError(t *testing.T) {
	streamErr := errors.New("connection reset")
	mock := &llm.MockAdapter{
		StreamFunc: func(context.Context, string, llm.Options) (llm.Stream, error) {
			return llm.NewSliceStream(streamErr, `{"design_analysis":`), nil
		},
	}
	a := newTestAnalyzer(mock)

	_, err := a.AnalyzeInspirationStreaming(context.Background(), testInspiration(), nil)
	assert.ErrorIs(t, err, streamErr)
}

func TestAnalyzeInspirationStreaming_NoAdapter(t *testing.T) {
	_, err := newTestAnalyzer(nil).AnalyzeInspirationStreaming(context.Background(), testInspiration(), nil)
	var cfgErr *llm.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}
