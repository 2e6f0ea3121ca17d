package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	anthropicCfg := DefaultConfig(ProviderAnthropic)
	assert.Equal(t, ProviderAnthropic, anthropicCfg.Provider)
	assert.Equal(t, DefaultAnthropicModel, anthropicCfg.Model)
	assert.Equal(t, DefaultMaxTokens, anthropicCfg.MaxTokens)

	openaiCfg := DefaultConfig(ProviderOpenAI)
	assert.Equal(t, DefaultOpenAIModel, openaiCfg.Model)
	assert.InDelta(t, DefaultTemperature, openaiCfg.Temperature, 1e-9)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig(ProviderOpenAI)
	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "LLM service not configured")
	assert.Contains(t, err.Error(), "OpenAI")

	cfg.APIKey = "sk-test"
	assert.NoError(t, cfg.Validate())

	cfg.Temperature = 3
	assert.Error(t, cfg.Validate())

	assert.NoError(t, DefaultConfig(ProviderMock).Validate())
}

func TestConfig_Resolve(t *testing.T) {
	cfg := DefaultConfig(ProviderAnthropic)

	resolved := cfg.resolve(Options{})
	assert.Equal(t, DefaultAnthropicModel, resolved.Model)
	assert.Equal(t, DefaultMaxTokens, resolved.MaxTokens)
	require.NotNil(t, resolved.Temperature)
	assert.InDelta(t, DefaultTemperature, *resolved.Temperature, 1e-9)

	resolved = cfg.resolve(Options{Model: "custom", MaxTokens: 10, Temperature: Temperature(0)})
	assert.Equal(t, "custom", resolved.Model)
	assert.Equal(t, 10, resolved.MaxTokens)
	assert.Zero(t, *resolved.Temperature)
}

func TestProvider_DisplayName(t *testing.T) {
	assert.Equal(t, "Anthropic", ProviderAnthropic.DisplayName())
	assert.Equal(t, "OpenAI", ProviderOpenAI.DisplayName())
	assert.Equal(t, "custom", Provider("custom").DisplayName())
}
