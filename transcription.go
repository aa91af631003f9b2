package llmutils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/boat-builder/llmutils/observability"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// TranscriptionResult holds the text recognised in an audio file.
type TranscriptionResult struct {
	Transcript string `json:"transcript"`
}

// Transcribe uploads the audio file at path with the configured transcription
// model and returns the transcript.
func (c *LLM) Transcribe(ctx context.Context, path string) (*TranscriptionResult, error) {
	c.logger.Debug("Transcribe received", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}
	defer file.Close()

	model := c.Models.Transcription
	// Context identifiers are JSON body fields and cannot ride on a multipart upload.
	requestID, opts := withRequestID([]option.RequestOption{})

	start := time.Now()
	resp, err := c.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  file,
		Model: openai.AudioModel(model),
	}, opts...)
	observability.ObserveRequest(observability.OperationTranscribe, model, start, err)
	if err != nil {
		c.logger.Error("Transcribe failed", "path", path, "requestID", requestID, "error", err)
		return nil, fmt.Errorf("transcribing %s: %w", path, err)
	}

	c.logger.Debug("Transcribe", "path", path, "requestID", requestID, "text", resp.Text)
	return &TranscriptionResult{
		Transcript: resp.Text,
	}, nil
}
