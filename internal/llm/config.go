// Package llm provides provider adapters over the Anthropic and OpenAI APIs,
// provider selection from credentials, and response helpers.
package llm

import (
	"fmt"
	"time"
)

// Provider identifies an AI provider.
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderAnthropic is the Anthropic/Claude provider
	ProviderAnthropic Provider = "anthropic"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
	// ProviderMock serves canned responses without network access
	ProviderMock Provider = "mock"
)

// DisplayName returns the provider name used in error messages.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderMock:
		return "Mock"
	default:
		return string(p)
	}
}

// Default models and limits
const (
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultOpenAIModel    = "gpt-4o"
	DefaultMaxTokens      = 4096
	DefaultTemperature    = 0.3
	DefaultTimeout        = 30 * time.Second
)

// Options are per-request completion options. They are part of the cache
// key, so field order is fixed and JSON serialization is stable.
type Options struct {
	Model       string   `json:"model,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	System      string   `json:"system,omitempty"`
}

// Temperature returns a pointer for Options.Temperature.
func Temperature(t float64) *float64 {
	return &t
}

// Config holds the configuration of a single provider adapter.
type Config struct {
	Provider    Provider
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default configuration for a provider.
func DefaultConfig(provider Provider) *Config {
	cfg := &Config{
		Provider:    provider,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
	switch provider {
	case ProviderAnthropic:
		cfg.Model = DefaultAnthropicModel
	case ProviderOpenAI:
		cfg.Model = DefaultOpenAIModel
	}
	return cfg
}

// Validate checks the adapter configuration.
func (c *Config) Validate() error {
	if c.Provider != ProviderMock && c.APIKey == "" {
		return &ConfigurationError{Message: fmt.Sprintf("%s API key is required", c.Provider.DisplayName())}
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	return nil
}

// resolve fills zero request options from the adapter configuration.
func (c *Config) resolve(opts Options) Options {
	if opts.Model == "" {
		opts.Model = c.Model
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = c.MaxTokens
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Temperature == nil {
		opts.Temperature = Temperature(c.Temperature)
	}
	return opts
}
