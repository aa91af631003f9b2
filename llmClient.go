// Package llmutils wraps hosted large-language-model APIs (OpenAI and Azure
// OpenAI): streaming chat completion with buffered echo and cutoff detection,
// text embedding, and audio transcription.
package llmutils

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/boat-builder/llmutils/config"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// Define a custom type for context keys
type ContextKey string

// RequestIDHeader carries the id generated for every upstream request.
const RequestIDHeader = "X-Request-ID"

// LLM is the client handle shared by every call site. Build it once at
// startup with NewLLM and pass it around; it is safe for concurrent use.
type LLM struct {
	Provider string
	Models   config.ModelsConfig
	client   openai.Client
	logger   *slog.Logger
}

// NewLLM builds the client for the configured provider. Missing credentials
// are reported here rather than on the first call. Extra request options are
// applied last and override the configured ones.
//
// The SDK's automatic retries are disabled: an upstream failure surfaces on
// the first attempt.
func NewLLM(cfg *config.Config, opts ...option.RequestOption) (*LLM, error) {
	var clientOpts []option.RequestOption

	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("%w: openai api key is not set", ErrMissingCredentials)
		}
		clientOpts = append(clientOpts, option.WithAPIKey(cfg.OpenAI.APIKey))
		if cfg.OpenAI.BaseURL != "" {
			clientOpts = append(clientOpts, option.WithBaseURL(cfg.OpenAI.BaseURL))
		}
	case config.ProviderAzure:
		if cfg.Azure.APIKey == "" {
			return nil, fmt.Errorf("%w: azure api key is not set", ErrMissingCredentials)
		}
		if cfg.Azure.Endpoint == "" {
			return nil, fmt.Errorf("%w: azure endpoint is not set", ErrMissingCredentials)
		}
		clientOpts = append(clientOpts,
			azure.WithEndpoint(cfg.Azure.Endpoint, cfg.Azure.APIVersion),
			azure.WithAPIKey(cfg.Azure.APIKey),
		)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	clientOpts = append(clientOpts, option.WithMaxRetries(0))
	clientOpts = append(clientOpts, opts...)

	return &LLM{
		Provider: cfg.Provider,
		Models:   cfg.Models,
		client:   openai.NewClient(clientOpts...),
		logger:   slog.Default(),
	}, nil
}

func (c *LLM) GetLogger() *slog.Logger {
	return c.logger
}

func (c *LLM) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// withRequestID tags the request with a fresh id so client and upstream logs
// can be matched.
func withRequestID(opts []option.RequestOption) (string, []option.RequestOption) {
	requestID, err := gonanoid.New()
	if err != nil {
		return "", opts
	}
	return requestID, append(opts, option.WithHeader(RequestIDHeader, requestID))
}

// optsWithIds copies the identifiers found on the context into the JSON
// request body, for proxies that attribute usage per session or customer.
// Nothing is added when the context carries none.
func optsWithIds(ctx context.Context, opts []option.RequestOption) []option.RequestOption {
	if sessionID, ok := ctx.Value(ContextKey("sessionID")).(string); ok {
		opts = append(opts, option.WithJSONSet("custom_identifier", sessionID))
	}

	if customerID, ok := ctx.Value(ContextKey("customerID")).(string); ok {
		opts = append(opts, option.WithJSONSet("customer_identifier", customerID))
	}

	if extraMeta, ok := ctx.Value(ContextKey("extra")).(map[string]string); ok {
		for key, value := range extraMeta {
			opts = append(opts, option.WithJSONSet(key, value))
		}
	}

	return opts
}

// NewStreaming opens a streaming chat completion. Request errors surface from
// the returned stream's Err.
func (c *LLM) NewStreaming(ctx context.Context, params openai.ChatCompletionNewParams) *ssestream.Stream[openai.ChatCompletionChunk] {
	requestID, opts := withRequestID(optsWithIds(ctx, []option.RequestOption{}))
	c.logger.Debug("Opening completion stream", "model", params.Model, "requestID", requestID)
	return c.client.Chat.Completions.NewStreaming(ctx, params, opts...)
}
