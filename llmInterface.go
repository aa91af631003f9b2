package llmutils

import (
	"github.com/openai/openai-go"
)

// ChunkStream is the lazy sequence of completion chunks the aggregator drains.
// *ssestream.Stream[openai.ChatCompletionChunk] satisfies it; tests supply
// in-memory sequences.
type ChunkStream interface {
	// Next advances to the next chunk and reports whether one is available.
	// It returns false on exhaustion or error.
	Next() bool

	// Current returns the chunk Next advanced to.
	Current() openai.ChatCompletionChunk

	// Err reports the error that stopped iteration, if any.
	Err() error

	// Close releases the underlying connection.
	Close() error
}
