package llm

import (
	"os"
)

// Settings carries provider credentials and per-provider overrides.
type Settings struct {
	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIBaseURL    string
	MaxTokens        int
	Temperature      float64
}

// SettingsFromEnv reads credentials and overrides from the environment.
func SettingsFromEnv() Settings {
	return Settings{
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   os.Getenv("ANTHROPIC_MODEL"),
		AnthropicBaseURL: os.Getenv("ANTHROPIC_BASE_URL"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      os.Getenv("OPENAI_MODEL"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
	}
}

// SelectConfig picks the provider from the credentials present: Anthropic
// first, then OpenAI. With neither it fails with a *ConfigurationError before
// any network call.
func (s Settings) SelectConfig() (*Config, error) {
	var cfg *Config
	switch {
	case s.AnthropicAPIKey != "":
		cfg = DefaultConfig(ProviderAnthropic)
		cfg.APIKey = s.AnthropicAPIKey
		cfg.BaseURL = s.AnthropicBaseURL
		if s.AnthropicModel != "" {
			cfg.Model = s.AnthropicModel
		}
	case s.OpenAIAPIKey != "":
		cfg = DefaultConfig(ProviderOpenAI)
		cfg.APIKey = s.OpenAIAPIKey
		cfg.BaseURL = s.OpenAIBaseURL
		if s.OpenAIModel != "" {
			cfg.Model = s.OpenAIModel
		}
	default:
		return nil, &ConfigurationError{Message: "set ANTHROPIC_API_KEY or OPENAI_API_KEY"}
	}

	if s.MaxTokens > 0 {
		cfg.MaxTokens = s.MaxTokens
	}
	if s.Temperature > 0 {
		cfg.Temperature = s.Temperature
	}
	return cfg, nil
}

// NewAdapter creates the adapter for cfg.Provider.
func NewAdapter(cfg *Config) (Adapter, error) {
	if cfg == nil {
		return nil, &ConfigurationError{Message: "no provider configuration"}
	}
	switch cfg.Provider {
	case ProviderAnthropic:
		return NewAnthropicAdapter(cfg)
	case ProviderOpenAI:
		return NewOpenAIAdapter(cfg)
	case ProviderMock:
		return NewMockAdapter(), nil
	default:
		return nil, &ConfigurationError{Message: "unknown provider " + string(cfg.Provider)}
	}
}

// NewAdapterFromSettings selects a provider and builds its adapter.
func NewAdapterFromSettings(s Settings) (Adapter, error) {
	cfg, err := s.SelectConfig()
	if err != nil {
		return nil, err
	}
	return NewAdapter(cfg)
}
