package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the AI admission bucket
const (
	DefaultMaxTokens    = 10
	DefaultRefillRate   = 1.0
	DefaultPollInterval = time.Second
)

// Config holds token bucket configuration.
type Config struct {
	MaxTokens    int
	RefillRate   float64 // tokens per second
	PollInterval time.Duration
	Now          func() time.Time // injectable clock; defaults to time.Now
}

// DefaultConfig returns 10 tokens refilling at 1 token per second.
func DefaultConfig() *Config {
	return &Config{
		MaxTokens:    DefaultMaxTokens,
		RefillRate:   DefaultRefillRate,
		PollInterval: DefaultPollInterval,
	}
}

// LoadConfig loads bucket configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		MaxTokens:    getEnvInt("RATE_LIMIT_MAX_TOKENS", DefaultMaxTokens),
		RefillRate:   getEnvFloat("RATE_LIMIT_REFILL_RATE", DefaultRefillRate),
		PollInterval: getEnvDuration("RATE_LIMIT_POLL_INTERVAL", DefaultPollInterval),
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets an environment variable as a float with a default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
