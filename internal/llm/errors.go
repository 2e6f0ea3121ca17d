package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError means no usable AI credential is available.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message == "" {
		return "LLM service not configured"
	}
	return fmt.Sprintf("LLM service not configured: %s", e.Message)
}

// APIError is a provider failure normalized to "<Provider> API Error: <message>".
type APIError struct {
	Provider   Provider
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API Error: %s", e.Provider.DisplayName(), e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// normalizeError wraps err as an *APIError for provider. Context errors are
// returned unchanged so callers can match them with errors.Is.
func normalizeError(provider Provider, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}
	return &APIError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    extractErrorMessage(err.Error()),
		Cause:      err,
	}
}

// extractErrorMessage pulls the "message" field out of an error string that
// embeds a JSON error body, falling back to the whole string.
func extractErrorMessage(s string) string {
	idx := strings.Index(s, "{")
	if idx < 0 {
		return s
	}
	body := extractJSONObject(s[idx:])
	if body == "" {
		return s
	}
	var payload struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return s
	}
	prefix := strings.TrimSpace(s[:idx])
	msg := payload.Error.Message
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		return s
	}
	if prefix != "" {
		return prefix + " " + msg
	}
	return msg
}
