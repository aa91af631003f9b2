package llmutils

import (
	"context"
	"time"

	"github.com/boat-builder/llmutils/observability"
	"github.com/openai/openai-go"
)

// Inference streams a chat completion for messages, echoing it to sink in
// batches of FlushEvery fragments, and returns the full text with usage.
//
// An empty model selects the configured chat model. The sink is required; use
// StdoutSink for the usual terminal echo. Upstream errors are returned as is
// (wrapped) and no partial text is kept.
func (c *LLM) Inference(ctx context.Context, model string, messages []Message, sink Sink) (*InferenceResult, error) {
	if sink.Writer == nil {
		return nil, ErrNoSinkWriter
	}
	if model == "" {
		model = c.Models.Chat
	}

	msgs, err := NewMessageList(messages...).OpenAI()
	if err != nil {
		return nil, err
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: msgs,
		StreamOptions: openai.ChatCompletionStreamOptionsParam{
			IncludeUsage: openai.Bool(true),
		},
	}

	start := time.Now()
	aggregator := NewAggregator(sink)
	aggregator.SetLogger(c.logger)
	result, err := aggregator.Run(c.NewStreaming(ctx, params), model)
	observability.ObserveRequest(observability.OperationInference, model, start, err)
	if err != nil {
		c.logger.Error("Inference failed", "model", model, "error", err)
		return nil, err
	}

	observability.AddTokens(observability.OperationInference, model, result.Usage.PromptTokens, result.Usage.CompletionTokens)
	return result, nil
}
