// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/supercomponents/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inspiration
	Image         string   `json:"image,omitempty" yaml:"image,omitempty"`             // Inspiration image URL
	URL           string   `json:"url,omitempty" yaml:"url,omitempty"`                 // Inspiration website URL
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"` // Text description
	Brand         []string `json:"brand,omitempty" yaml:"brand,omitempty"`             // Brand keywords
	Industry      string   `json:"industry,omitempty" yaml:"industry,omitempty"`
	Audience      string   `json:"audience,omitempty" yaml:"audience,omitempty"`
	Style         []string `json:"style,omitempty" yaml:"style,omitempty"`
	Colors        []string `json:"colors,omitempty" yaml:"colors,omitempty"`
	Accessibility string   `json:"accessibility,omitempty" yaml:"accessibility,omitempty"` // basic, enhanced or enterprise

	// Output
	Output         string `json:"output,omitempty" yaml:"output,omitempty"` // Output directory
	BypassA11yFail bool   `json:"bypass_a11y_fail,omitempty" yaml:"bypass_a11y_fail,omitempty"`
	MetricsFile    string `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty"` // Prometheus textfile path

	// AI provider
	MockAI                bool `json:"mock_ai,omitempty" yaml:"mock_ai,omitempty"` // Use canned responses instead of a provider
	Stream                bool `json:"stream,omitempty" yaml:"stream,omitempty"`
	RequestTimeoutMS      int  `json:"request_timeout_ms,omitempty" yaml:"request_timeout_ms,omitempty"`
	MaxConcurrentRequests int  `json:"max_concurrent_requests,omitempty" yaml:"max_concurrent_requests,omitempty"`
	CacheMaxEntries       int  `json:"cache_max_entries,omitempty" yaml:"cache_max_entries,omitempty"` // 0 keeps every response

	// Behavior
	Verbose     bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed summaries
	LogLevel    string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`
	MCPCacheTTL int    `json:"mcp_cache_ttl,omitempty" yaml:"mcp_cache_ttl,omitempty"` // Seconds; surfaced only
}

// Default values applied by MergeWithDefaults
const (
	DefaultOutput                = "./design-system"
	DefaultAccessibility         = string(types.AccessibilityBasic)
	DefaultLogLevel              = "info"
	DefaultEnvironment           = "development"
	DefaultRequestTimeoutMS      = 30000
	DefaultMaxConcurrentRequests = 4
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Output:                DefaultOutput,
		Accessibility:         DefaultAccessibility,
		LogLevel:              DefaultLogLevel,
		Environment:           DefaultEnvironment,
		RequestTimeoutMS:      DefaultRequestTimeoutMS,
		MaxConcurrentRequests: DefaultMaxConcurrentRequests,
	}
}

// LoadConfig loads configuration from a JSON or YAML file. The format is
// chosen by extension: .yaml and .yml are YAML, everything else JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	sources := 0
	for _, s := range []string{c.Image, c.URL, c.Description} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'image', 'url' and 'description' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.RequestTimeoutMS < 0 {
		return fmt.Errorf("config error: 'request_timeout_ms' must be non-negative")
	}
	if c.MaxConcurrentRequests < 0 {
		return fmt.Errorf("config error: 'max_concurrent_requests' must be non-negative")
	}
	if c.CacheMaxEntries < 0 {
		return fmt.Errorf("config error: 'cache_max_entries' must be non-negative")
	}
	if c.MCPCacheTTL < 0 {
		return fmt.Errorf("config error: 'mcp_cache_ttl' must be non-negative")
	}

	switch types.AccessibilityLevel(c.Accessibility) {
	case "", types.AccessibilityBasic, types.AccessibilityEnhanced, types.AccessibilityEnterprise:
	default:
		return fmt.Errorf("config error: unknown accessibility level %q", c.Accessibility)
	}

	if c.LogLevel != "" && !logLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file and environment values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Image == "" {
		result.Image = defaults.Image
	}
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.Description == "" {
		result.Description = defaults.Description
	}
	if result.Industry == "" {
		result.Industry = defaults.Industry
	}
	if result.Audience == "" {
		result.Audience = defaults.Audience
	}
	if result.Accessibility == "" {
		result.Accessibility = defaults.Accessibility
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.MetricsFile == "" {
		result.MetricsFile = defaults.MetricsFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Environment == "" {
		result.Environment = defaults.Environment
	}

	// Slice fields
	if len(result.Brand) == 0 {
		result.Brand = defaults.Brand
	}
	if len(result.Style) == 0 {
		result.Style = defaults.Style
	}
	if len(result.Colors) == 0 {
		result.Colors = defaults.Colors
	}

	// Int fields: use default if zero
	if result.RequestTimeoutMS == 0 {
		result.RequestTimeoutMS = defaults.RequestTimeoutMS
	}
	if result.MaxConcurrentRequests == 0 {
		result.MaxConcurrentRequests = defaults.MaxConcurrentRequests
	}
	if result.CacheMaxEntries == 0 {
		result.CacheMaxEntries = defaults.CacheMaxEntries
	}
	if result.MCPCacheTTL == 0 {
		result.MCPCacheTTL = defaults.MCPCacheTTL
	}

	// Bool fields: true in either wins
	// (CLI flags set explicitly to false are applied by the caller)
	result.BypassA11yFail = result.BypassA11yFail || defaults.BypassA11yFail
	result.MockAI = result.MockAI || defaults.MockAI
	result.Stream = result.Stream || defaults.Stream
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Inspiration builds the UserInspiration described by the configuration.
func (c *Config) Inspiration() types.UserInspiration {
	insp := types.UserInspiration{
		ImageURL:         c.Image,
		WebsiteURL:       c.URL,
		Description:      c.Description,
		BrandKeywords:    c.Brand,
		IndustryType:     c.Industry,
		TargetUsers:      c.Audience,
		ColorPreferences: c.Colors,
		Accessibility:    types.AccessibilityLevel(c.Accessibility),
	}
	for _, s := range c.Style {
		insp.StylePreferences = append(insp.StylePreferences, types.StylePreference(s))
	}
	return insp
}
