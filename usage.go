package llmutils

import "github.com/openai/openai-go"

// Usage is the accounting reported by the upstream service, tagged with the
// model identifier the caller asked for. Model is always set, even when the
// upstream never reported usage.
type Usage struct {
	Model              string `json:"model"`
	PromptTokens       int64  `json:"prompt_tokens,omitempty"`
	CompletionTokens   int64  `json:"completion_tokens,omitempty"`
	TotalTokens        int64  `json:"total_tokens,omitempty"`
	CachedPromptTokens int64  `json:"cached_prompt_tokens,omitempty"`
	ReasoningTokens    int64  `json:"reasoning_tokens,omitempty"`
}

func usageFromCompletion(u openai.CompletionUsage) Usage {
	return Usage{
		PromptTokens:       u.PromptTokens,
		CompletionTokens:   u.CompletionTokens,
		TotalTokens:        u.TotalTokens,
		CachedPromptTokens: u.PromptTokensDetails.CachedTokens,
		ReasoningTokens:    u.CompletionTokensDetails.ReasoningTokens,
	}
}

func usageFromEmbedding(model string, u openai.CreateEmbeddingResponseUsage) Usage {
	return Usage{
		Model:        model,
		PromptTokens: u.PromptTokens,
		TotalTokens:  u.TotalTokens,
	}
}
