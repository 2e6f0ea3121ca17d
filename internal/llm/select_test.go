package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectConfig_PrefersAnthropic(t *testing.T) {
	cfg, err := Settings{AnthropicAPIKey: "a", OpenAIAPIKey: "o"}.SelectConfig()
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "a", cfg.APIKey)
}

func TestSelectConfig_FallsBackToOpenAI(t *testing.T) {
	cfg, err := Settings{OpenAIAPIKey: "o", OpenAIModel: "gpt-4o-mini", MaxTokens: 100}.SelectConfig()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 100, cfg.MaxTokens)
}

func TestSelectConfig_NoCredentials(t *testing.T) {
	_, err := Settings{}.SelectConfig()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "LLM service not configured")
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999")

	s := SettingsFromEnv()
	assert.Empty(t, s.AnthropicAPIKey)
	assert.Equal(t, "sk-env", s.OpenAIAPIKey)
	assert.Equal(t, "http://localhost:9999", s.OpenAIBaseURL)
}

func TestNewAdapter(t *testing.T) {
	a, err := NewAdapter(&Config{Provider: ProviderAnthropic, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", a.Name())

	o, err := NewAdapter(&Config{Provider: ProviderOpenAI, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", o.Name())

	m, err := NewAdapter(&Config{Provider: ProviderMock})
	require.NoError(t, err)
	assert.Equal(t, "mock", m.Name())

	_, err = NewAdapter(&Config{Provider: "gemini", APIKey: "k"})
	assert.Error(t, err)

	_, err = NewAdapter(nil)
	assert.Error(t, err)
}

func TestNewAdapterFromSettings_NoCredentials(t *testing.T) {
	a, err := NewAdapterFromSettings(Settings{})
	assert.Nil(t, a)
	assert.Error(t, err)
}
