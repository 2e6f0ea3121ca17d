package llm

import (
	"context"
	"strings"
	"sync"
)

// MockAnalysisResponse is a complete, schema-valid analysis used by
// --mock-ai and by tests.
const MockAnalysisResponse = `{
  "design_analysis": {
    "dominant_colors": ["#2563eb", "#7c3aed", "#0f172a", "#f97316"],
    "typography_families": ["Inter", "JetBrains Mono"],
    "spacing_scale": [4, 8, 12, 16, 24, 32, 48, 64],
    "ui_density": "regular",
    "brand_keywords": ["modern", "trustworthy", "clean"],
    "supporting_references": ["Linear", "Vercel", "Stripe"],
    "design_rationale": "A confident blue primary balanced with a violet accent and generous neutral surfaces keeps the interface calm and legible."
  },
  "extracted_tokens": {
    "colors": {
      "primary": {"50": "#eff6ff", "100": "#dbeafe", "200": "#bfdbfe", "300": "#93c5fd", "400": "#60a5fa", "500": "#3b82f6", "600": "#2563eb", "700": "#1d4ed8", "800": "#1e40af", "900": "#1e3a8a"},
      "secondary": {"50": "#f5f3ff", "100": "#ede9fe", "200": "#ddd6fe", "300": "#c4b5fd", "400": "#a78bfa", "500": "#8b5cf6", "600": "#7c3aed", "700": "#6d28d9", "800": "#5b21b6", "900": "#4c1d95"},
      "neutral": {"50": "#f8fafc", "100": "#f1f5f9", "200": "#e2e8f0", "300": "#cbd5e1", "400": "#94a3b8", "500": "#64748b", "600": "#475569", "700": "#334155", "800": "#1e293b", "900": "#0f172a"}
    },
    "typography": {
      "font_families": {"sans": "Inter", "mono": "JetBrains Mono"},
      "font_sizes": {"xs": "0.75rem", "sm": "0.875rem", "base": "1rem", "lg": "1.125rem", "xl": "1.25rem", "2xl": "1.5rem", "3xl": "1.875rem", "4xl": "2.25rem"}
    },
    "spacing": {"1": "4px", "2": "8px", "3": "12px", "4": "16px", "6": "24px", "8": "32px"},
    "border_radius": {"sm": "4px", "md": "8px", "lg": "12px"},
    "shadows": {"sm": "0 1px 2px rgba(0,0,0,0.05)", "md": "0 4px 6px rgba(0,0,0,0.1)"}
  },
  "principles": [
    {"title": "Clarity First", "description": "Every screen should communicate one clear purpose with a modern, uncluttered hierarchy."},
    {"title": "Earned Trust", "description": "Consistent, predictable patterns make the product feel trustworthy."},
    {"title": "Clean Momentum", "description": "Clean layouts and responsive feedback keep users moving forward."}
  ],
  "component_recommendations": [
    {"name": "Button", "priority": "high", "rationale": "Primary call to action"},
    {"name": "Input", "priority": "high", "rationale": "Forms are central"},
    {"name": "Card", "priority": "medium", "rationale": "Content grouping"}
  ]
}`

// MockAdapter is an in-process Adapter for tests and offline runs. With nil
// funcs it returns MockAnalysisResponse.
type MockAdapter struct {
	CompleteFunc func(ctx context.Context, prompt string, opts Options) (string, error)
	StreamFunc   func(ctx context.Context, prompt string, opts Options) (Stream, error)
	NameValue    string

	mu          sync.Mutex
	completions int
	streams     int
}

// NewMockAdapter returns a MockAdapter serving the canned analysis.
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{}
}

// Name returns the configured name or "mock".
func (m *MockAdapter) Name() string {
	if m.NameValue != "" {
		return m.NameValue
	}
	return string(ProviderMock)
}

// Complete returns CompleteFunc's result or the canned analysis.
func (m *MockAdapter) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	m.mu.Lock()
	m.completions++
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, opts)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return MockAnalysisResponse, nil
}

// StreamComplete returns StreamFunc's result or the canned analysis split
// into line chunks.
func (m *MockAdapter) StreamComplete(ctx context.Context, prompt string, opts Options) (Stream, error) {
	m.mu.Lock()
	m.streams++
	m.mu.Unlock()

	if m.StreamFunc != nil {
		return m.StreamFunc(ctx, prompt, opts)
	}
	lines := strings.SplitAfter(MockAnalysisResponse, "\n")
	return NewSliceStream(nil, lines...), nil
}

// CompleteCalls returns how many times Complete was invoked.
func (m *MockAdapter) CompleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completions
}

// StreamCalls returns how many times StreamComplete was invoked.
func (m *MockAdapter) StreamCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.streams
}
