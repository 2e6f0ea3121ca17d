package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_CodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json fence", "```json\n{\"ui_density\": \"regular\"}\n```", `{"ui_density": "regular"}`},
		{"bare fence", "```\n{\"ui_density\": \"regular\"}\n```", `{"ui_density": "regular"}`},
		{"fence with language", "```javascript\n{\"ui_density\": \"regular\"}\n```", `{"ui_density": "regular"}`},
		{"plain object", `{"ui_density": "regular"}`, `{"ui_density": "regular"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_SurroundingText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before object",
			input:    "Here is the analysis:\n{\"palette\": [\"#2563eb\"]}",
			expected: `{"palette": ["#2563eb"]}`,
		},
		{
			name:     "preamble before array",
			input:    "Recommended components:\n[\"Button\", \"Card\"]",
			expected: `["Button", "Card"]`,
		},
		{
			name:     "trailing commentary",
			input:    "{\"density\": \"compact\"}\n\nLet me know if you want a darker palette!",
			expected: `{"density": "compact"}`,
		},
		{
			name:     "escaped quotes inside strings",
			input:    "Result: {\"rationale\": \"A \\\"calm\\\" blue\"}",
			expected: `{"rationale": "A \"calm\" blue"}`,
		},
		{
			name:     "deep nesting",
			input:    "Tokens: {\"colors\": {\"primary\": {\"500\": \"#3b82f6\"}}}",
			expected: `{"colors": {"primary": {"500": "#3b82f6"}}}`,
		},
		{
			name:     "unclosed object returned as is",
			input:    `{"colors": {`,
			expected: `{"colors": {`,
		},
		{
			name:     "no json at all",
			input:    "I cannot help with that.",
			expected: "I cannot help with that.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", `{"k": "v"}`, `{"k": "v"}`},
		{"nested", `{"a": {"b": 1}}`, `{"a": {"b": 1}}`},
		{"with array", `{"spacing": [4, 8, 16]}`, `{"spacing": [4, 8, 16]}`},
		{"trailing text", `{"k": "v"} and more`, `{"k": "v"}`},
		{"braces inside string", `{"css": "a { color: red }"}`, `{"css": "a { color: red }"}`},
		{"empty", "", ""},
		{"not an object", "palette", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", `["a", "b"]`, `["a", "b"]`},
		{"nested", `[[1, 2], [3]]`, `[[1, 2], [3]]`},
		{"objects", `[{"name": "Button"}, {"name": "Card"}]`, `[{"name": "Button"}, {"name": "Card"}]`},
		{"bracket inside string", `["a]b"]`, `["a]b"]`},
		{"trailing text", `[1, 2] extra`, `[1, 2]`},
		{"empty", "", ""},
		{"not an array", "list", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONArray(tt.input))
		})
	}
}
