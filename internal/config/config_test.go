package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/supercomponents/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"description": "Calm banking app",
		"brand": ["calm", "secure"],
		"accessibility": "enterprise",
		"request_timeout_ms": 10000,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Calm banking app", cfg.Description)
	assert.Equal(t, []string{"calm", "secure"}, cfg.Brand)
	assert.Equal(t, "enterprise", cfg.Accessibility)
	assert.Equal(t, 10000, cfg.RequestTimeoutMS)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
url: https://example.com
industry: fintech
style:
  - minimal
  - professional
bypass_a11y_fail: true
cache_max_entries: 64
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, "fintech", cfg.Industry)
	assert.Equal(t, []string{"minimal", "professional"}, cfg.Style)
	assert.True(t, cfg.BypassA11yFail)
	assert.Equal(t, 64, cfg.CacheMaxEntries)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "brand: [unclosed")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "two sources", cfg: Config{Image: "https://x/a.png", Description: "x"}, wantErr: "mutually exclusive"},
		{name: "negative timeout", cfg: Config{RequestTimeoutMS: -1}, wantErr: "request_timeout_ms"},
		{name: "negative concurrency", cfg: Config{MaxConcurrentRequests: -2}, wantErr: "max_concurrent_requests"},
		{name: "negative cache", cfg: Config{CacheMaxEntries: -1}, wantErr: "cache_max_entries"},
		{name: "negative ttl", cfg: Config{MCPCacheTTL: -5}, wantErr: "mcp_cache_ttl"},
		{name: "unknown accessibility", cfg: Config{Accessibility: "gold"}, wantErr: "accessibility"},
		{name: "unknown log level", cfg: Config{LogLevel: "verbose"}, wantErr: "log level"},
		{name: "upper-case log level", cfg: Config{LogLevel: "DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		Description: "Playful kids app",
		Brand:       []string{"playful"},
		LogLevel:    "debug",
	}
	merged := cfg.MergeWithDefaults(Config{
		Output:           "./out",
		Brand:            []string{"ignored"},
		Colors:           []string{"#ff0000"},
		LogLevel:         "info",
		RequestTimeoutMS: 5000,
		Verbose:          true,
	})

	assert.Equal(t, "Playful kids app", merged.Description)
	assert.Equal(t, []string{"playful"}, merged.Brand)
	assert.Equal(t, []string{"#ff0000"}, merged.Colors)
	assert.Equal(t, "debug", merged.LogLevel)
	assert.Equal(t, "./out", merged.Output)
	assert.Equal(t, 5000, merged.RequestTimeoutMS)
	assert.True(t, merged.Verbose)

	// original is unchanged
	assert.Empty(t, cfg.Output)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Output: "./mine", MaxConcurrentRequests: 2}
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, cfg, merged)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, DefaultOutput, d.Output)
	assert.Equal(t, "basic", d.Accessibility)
	assert.Equal(t, 30000, d.RequestTimeoutMS)
	assert.Equal(t, 4, d.MaxConcurrentRequests)
	assert.NoError(t, d.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("MCP_CACHE_TTL", "300")
	t.Setenv("REQUEST_TIMEOUT_MS", "15000")
	t.Setenv("MAX_CONCURRENT_REQUESTS", "not-a-number")
	t.Setenv("RESPONSE_CACHE_MAX_ENTRIES", "128")

	cfg := FromEnv()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 300, cfg.MCPCacheTTL)
	assert.Equal(t, 15000, cfg.RequestTimeoutMS)
	assert.Zero(t, cfg.MaxConcurrentRequests)
	assert.Equal(t, 128, cfg.CacheMaxEntries)
}

func TestFromEnv_AppEnvWins(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("NODE_ENV", "production")
	assert.Equal(t, "staging", FromEnv().Environment)
}

func TestInspiration(t *testing.T) {
	cfg := Config{
		Description:   "Luxury fashion brand",
		Brand:         []string{"elegant"},
		Industry:      "fashion",
		Audience:      "affluent shoppers",
		Style:         []string{"elegant", "minimal"},
		Colors:        []string{"#000000"},
		Accessibility: "enhanced",
	}

	insp := cfg.Inspiration()
	assert.Equal(t, "Luxury fashion brand", insp.Description)
	assert.Equal(t, "fashion", insp.IndustryType)
	assert.Equal(t, "affluent shoppers", insp.TargetUsers)
	assert.Equal(t, []types.StylePreference{types.StyleElegant, types.StyleMinimal}, insp.StylePreferences)
	assert.Equal(t, types.AccessibilityEnhanced, insp.Accessibility)
	assert.NoError(t, insp.Validate())
}
