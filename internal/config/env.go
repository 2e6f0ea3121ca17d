package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv reads the settings that have environment variables. Unset or
// unparsable variables leave the field zero so MergeWithDefaults can fill it.
func FromEnv() Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("NODE_ENV")
	}
	return Config{
		LogLevel:              strings.ToLower(os.Getenv("LOG_LEVEL")),
		Environment:           env,
		MCPCacheTTL:           getEnvInt("MCP_CACHE_TTL"),
		RequestTimeoutMS:      getEnvInt("REQUEST_TIMEOUT_MS"),
		MaxConcurrentRequests: getEnvInt("MAX_CONCURRENT_REQUESTS"),
		CacheMaxEntries:       getEnvInt("RESPONSE_CACHE_MAX_ENTRIES"),
	}
}

// getEnvInt gets an environment variable as an integer, or 0.
func getEnvInt(key string) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return 0
}
