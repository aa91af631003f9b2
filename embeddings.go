package llmutils

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/boat-builder/llmutils/observability"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// VectorizeResult holds one vector per input text, in input order.
type VectorizeResult struct {
	Vectors [][]float64 `json:"vectors"`
	Usage   Usage       `json:"usage"`
}

// Vectorize embeds texts in a single request. An empty model selects the
// configured embedding model.
//
// The upstream may return results in any order tagged by index; they are
// sorted by that index before being returned positionally.
func (c *LLM) Vectorize(ctx context.Context, texts []string, model string) (*VectorizeResult, error) {
	if model == "" {
		model = c.Models.Embedding
	}
	requestID, opts := withRequestID(optsWithIds(ctx, []option.RequestOption{}))
	c.logger.Debug("Creating embeddings", "model", model, "inputs", len(texts), "requestID", requestID)

	start := time.Now()
	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model:          openai.EmbeddingModel(model),
		Input:          openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
	}, opts...)
	observability.ObserveRequest(observability.OperationVectorize, model, start, err)
	if err != nil {
		c.logger.Error("Vectorize failed", "model", model, "error", err)
		return nil, fmt.Errorf("creating embeddings: %w", err)
	}

	data := slices.Clone(resp.Data)
	slices.SortStableFunc(data, func(a, b openai.Embedding) int {
		return cmp.Compare(a.Index, b.Index)
	})

	vectors := make([][]float64, len(data))
	for i, embedding := range data {
		vectors[i] = embedding.Embedding
	}

	usage := usageFromEmbedding(model, resp.Usage)
	observability.AddTokens(observability.OperationVectorize, model, usage.PromptTokens, 0)

	return &VectorizeResult{
		Vectors: vectors,
		Usage:   usage,
	}, nil
}
