package llmutils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/openai/openai-go"
)

func TestVectorizeSortsByIndex(t *testing.T) {
	var body struct {
		Model          string   `json:"model"`
		Input          []string `json:"input"`
		EncodingFormat string   `json:"encoding_format"`
	}
	llm := newTestLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("path = %q, want /embeddings", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"object": "list",
			"model": "text-embedding-3-small",
			"data": [
				{"object": "embedding", "index": 2, "embedding": [0.3, 0.33]},
				{"object": "embedding", "index": 0, "embedding": [0.1, 0.11]},
				{"object": "embedding", "index": 1, "embedding": [0.2, 0.22]}
			],
			"usage": {"prompt_tokens": 9, "total_tokens": 9}
		}`)
	}))

	texts := []string{"first", "second", "third"}
	result, err := llm.Vectorize(context.Background(), texts, "")
	if err != nil {
		t.Fatalf("Vectorize() error: %v", err)
	}

	if body.Model != "text-embedding-3-small" {
		t.Errorf("model = %q, want configured default", body.Model)
	}
	if !reflect.DeepEqual(body.Input, texts) {
		t.Errorf("input = %q, want %q", body.Input, texts)
	}
	if body.EncodingFormat != "float" {
		t.Errorf("encoding_format = %q, want \"float\"", body.EncodingFormat)
	}

	want := [][]float64{{0.1, 0.11}, {0.2, 0.22}, {0.3, 0.33}}
	if !reflect.DeepEqual(result.Vectors, want) {
		t.Errorf("vectors = %v, want %v", result.Vectors, want)
	}
	wantUsage := Usage{Model: "text-embedding-3-small", PromptTokens: 9, TotalTokens: 9}
	if result.Usage != wantUsage {
		t.Errorf("usage = %+v, want %+v", result.Usage, wantUsage)
	}
}

func TestVectorizeExplicitModel(t *testing.T) {
	var model string
	llm := newTestLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		model = body.Model
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"object":"list","model":"text-embedding-3-large","data":[{"object":"embedding","index":0,"embedding":[1]}],"usage":{"prompt_tokens":1,"total_tokens":1}}`)
	}))

	result, err := llm.Vectorize(context.Background(), []string{"only"}, "text-embedding-3-large")
	if err != nil {
		t.Fatalf("Vectorize() error: %v", err)
	}
	if model != "text-embedding-3-large" {
		t.Errorf("model = %q, want \"text-embedding-3-large\"", model)
	}
	if result.Usage.Model != "text-embedding-3-large" {
		t.Errorf("usage.model = %q, want \"text-embedding-3-large\"", result.Usage.Model)
	}
	if len(result.Vectors) != 1 || len(result.Vectors[0]) != 1 {
		t.Errorf("vectors = %v, want one single-dimension vector", result.Vectors)
	}
}

func TestVectorizeUpstreamError(t *testing.T) {
	llm := newTestLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusBadRequest)
	}))

	result, err := llm.Vectorize(context.Background(), []string{"x"}, "")
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("error = %v, want a 400 *openai.Error", err)
	}
}
