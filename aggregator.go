package llmutils

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/boat-builder/llmutils/observability"
	"github.com/openai/openai-go"
)

const (
	// FlushEvery is the number of non-empty fragments between writes to the sink.
	FlushEvery = 5

	// CutoffPlaceholder replaces buffered text in flushes after the cutoff.
	CutoffPlaceholder = " ..."
)

// InferenceResult is the fully assembled response of a streaming inference.
type InferenceResult struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// Aggregator assembles a streamed chat completion and echoes it to a sink.
// It holds no per-run state, so one Aggregator may run several streams
// concurrently as long as they do not share a sink writer.
type Aggregator struct {
	sink   Sink
	logger *slog.Logger
}

func NewAggregator(sink Sink) *Aggregator {
	return &Aggregator{
		sink:   sink,
		logger: slog.Default(),
	}
}

func (a *Aggregator) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// Run drains the stream and returns the full text with the last reported
// usage, tagged with model.
//
// Every FlushEvery non-empty fragments the buffered text is written to the
// sink, or CutoffPlaceholder once the accumulated text contains the sink's
// cutoff. Fragments left in the buffer when the stream ends are not echoed.
// A single newline is written after the stream ends. Any stream or sink error
// aborts the run and nothing is returned.
func (a *Aggregator) Run(stream ChunkStream, model string) (*InferenceResult, error) {
	defer stream.Close()
	if a.sink.Writer == nil {
		return nil, ErrNoSinkWriter
	}

	var (
		text          strings.Builder
		buffer        strings.Builder
		fragments     int
		cutoffReached bool
		usage         Usage
	)

	for stream.Next() {
		chunk := stream.Current()

		if content := deltaContent(chunk); content != "" {
			text.WriteString(content)
			buffer.WriteString(content)
			fragments++

			// The whole text is searched so a cutoff split across fragments is found.
			if a.sink.Cutoff != "" && !cutoffReached && strings.Contains(text.String(), a.sink.Cutoff) {
				cutoffReached = true
				a.logger.Debug("Cutoff reached", "model", model, "fragment", fragments)
			}

			if fragments%FlushEvery == 0 {
				if err := a.flush(buffer.String(), cutoffReached); err != nil {
					return nil, err
				}
				buffer.Reset()
			}
		}

		// A usage payload replaces the previous one entirely.
		if chunk.JSON.Usage.Valid() {
			usage = usageFromCompletion(chunk.Usage)
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("streaming completion: %w", err)
	}

	if err := a.sink.write("\n"); err != nil {
		return nil, fmt.Errorf("writing to sink: %w", err)
	}

	usage.Model = model
	return &InferenceResult{
		Text:  text.String(),
		Usage: usage,
	}, nil
}

func (a *Aggregator) flush(buffered string, cutoffReached bool) error {
	out, mode := buffered, "text"
	if cutoffReached {
		out, mode = CutoffPlaceholder, "placeholder"
	}
	if err := a.sink.write(out); err != nil {
		return fmt.Errorf("writing to sink: %w", err)
	}
	observability.EchoFlushesTotal.WithLabelValues(mode).Inc()
	return nil
}

// deltaContent returns the text delta of the first choice, or "".
func deltaContent(chunk openai.ChatCompletionChunk) string {
	if len(chunk.Choices) == 0 {
		return ""
	}
	return chunk.Choices[0].Delta.Content
}
