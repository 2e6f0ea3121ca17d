package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
)

// AnthropicAdapter implements Adapter for the Anthropic messages API.
type AnthropicAdapter struct {
	client anthropic.Client
	config *Config
}

// NewAnthropicAdapter creates an Anthropic adapter. SDK retries are disabled;
// rate limiting is the only backoff mechanism.
func NewAnthropicAdapter(config *Config) (*AnthropicAdapter, error) {
	if config == nil {
		config = DefaultConfig(ProviderAnthropic)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &AnthropicAdapter{
		client: anthropic.NewClient(opts...),
		config: config,
	}, nil
}

// Name returns the provider identifier
func (a *AnthropicAdapter) Name() string {
	return string(ProviderAnthropic)
}

// Complete performs a non-streaming messages request.
func (a *AnthropicAdapter) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	msg, err := a.client.Messages.New(ctx, a.buildParams(prompt, opts))
	if err != nil {
		return "", a.normalize(err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &APIError{Provider: ProviderAnthropic, Message: "no text content in response"}
	}
	return sb.String(), nil
}

// StreamComplete performs a streaming messages request.
func (a *AnthropicAdapter) StreamComplete(ctx context.Context, prompt string, opts Options) (Stream, error) {
	stream := a.client.Messages.NewStreaming(ctx, a.buildParams(prompt, opts))
	return &anthropicStream{stream: stream, adapter: a}, nil
}

func (a *AnthropicAdapter) buildParams(prompt string, opts Options) anthropic.MessageNewParams {
	opts = a.config.resolve(opts)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(opts.Model),
		MaxTokens: int64(opts.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if opts.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: opts.System}}
	}
	if opts.Temperature != nil {
		params.Temperature = anthropic.Float(*opts.Temperature)
	}
	return params
}

func (a *AnthropicAdapter) normalize(err error) error {
	status := 0
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}
	return normalizeError(ProviderAnthropic, status, err)
}

type anthropicStream struct {
	stream  *ssestream.Stream[anthropic.MessageStreamEventUnion]
	adapter *AnthropicAdapter
	current string
}

func (s *anthropicStream) Next() bool {
	for s.stream.Next() {
		event := s.stream.Current()
		delta, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		if text, ok := delta.Delta.AsAny().(anthropic.TextDelta); ok && text.Text != "" {
			s.current = text.Text
			return true
		}
	}
	return false
}

func (s *anthropicStream) Current() string { return s.current }

func (s *anthropicStream) Err() error {
	if err := s.stream.Err(); err != nil {
		return s.adapter.normalize(err)
	}
	return nil
}

func (s *anthropicStream) Close() error { return s.stream.Close() }
