package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// OpenAIAdapter implements Adapter for the OpenAI chat-completions API.
type OpenAIAdapter struct {
	client openai.Client
	config *Config
}

// NewOpenAIAdapter creates an OpenAI adapter. SDK retries are disabled.
func NewOpenAIAdapter(config *Config) (*OpenAIAdapter, error) {
	if config == nil {
		config = DefaultConfig(ProviderOpenAI)
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

	return &OpenAIAdapter{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// Name returns the provider identifier
func (o *OpenAIAdapter) Name() string {
	return string(ProviderOpenAI)
}

// Complete performs a non-streaming chat completion.
func (o *OpenAIAdapter) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, o.buildParams(prompt, opts))
	if err != nil {
		return "", o.normalize(err)
	}
	if len(resp.Choices) == 0 {
		return "", &APIError{Provider: ProviderOpenAI, Message: "empty choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

// StreamComplete performs a streaming chat completion.
func (o *OpenAIAdapter) StreamComplete(ctx context.Context, prompt string, opts Options) (Stream, error) {
	stream := o.client.Chat.Completions.NewStreaming(ctx, o.buildParams(prompt, opts))
	return &openAIStream{stream: stream, adapter: o}, nil
}

func (o *OpenAIAdapter) buildParams(prompt string, opts Options) openai.ChatCompletionNewParams {
	opts = o.config.resolve(opts)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if opts.System != "" {
		messages = append(messages, openai.SystemMessage(opts.System))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(opts.Model),
		Messages:  messages,
		MaxTokens: openai.Int(int64(opts.MaxTokens)),
	}
	if opts.Temperature != nil {
		params.Temperature = openai.Float(*opts.Temperature)
	}
	return params
}

func (o *OpenAIAdapter) normalize(err error) error {
	status := 0
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}
	return normalizeError(ProviderOpenAI, status, err)
}

type openAIStream struct {
	stream  *ssestream.Stream[openai.ChatCompletionChunk]
	adapter *OpenAIAdapter
	current string
}

func (s *openAIStream) Next() bool {
	for s.stream.Next() {
		chunk := s.stream.Current()
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		s.current = chunk.Choices[0].Delta.Content
		return true
	}
	return false
}

func (s *openAIStream) Current() string { return s.current }

func (s *openAIStream) Err() error {
	if err := s.stream.Err(); err != nil {
		return s.adapter.normalize(err)
	}
	return nil
}

func (s *openAIStream) Close() error { return s.stream.Close() }
