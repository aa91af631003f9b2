package llmutils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestTranscribeUploadsFile(t *testing.T) {
	audio := []byte("RIFF fake wav payload")
	path := filepath.Join(t.TempDir(), "note.wav")
	if err := os.WriteFile(path, audio, 0o600); err != nil {
		t.Fatalf("writing audio fixture: %v", err)
	}

	var (
		model    string
		uploaded []byte
	)
	llm := newTestLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("path = %q, want /audio/transcriptions", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart body: %v", err)
			writeJSONError(w, http.StatusBadRequest)
			return
		}
		model = r.FormValue("model")
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("reading file part: %v", err)
		} else {
			uploaded, _ = io.ReadAll(file)
			file.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text":"remember to buy milk"}`)
	}))

	result, err := llm.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe() error: %v", err)
	}
	if result.Transcript != "remember to buy milk" {
		t.Errorf("transcript = %q", result.Transcript)
	}
	if model != "whisper-1" {
		t.Errorf("model = %q, want \"whisper-1\"", model)
	}
	if string(uploaded) != string(audio) {
		t.Errorf("uploaded = %q, want %q", uploaded, audio)
	}
}

func TestTranscribeMissingFile(t *testing.T) {
	var hits atomic.Int32
	llm := newTestLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := llm.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist", err)
	}
	if hits.Load() != 0 {
		t.Errorf("upstream hits = %d, want 0", hits.Load())
	}
}

func TestTranscribeUpstreamError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.wav")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing audio fixture: %v", err)
	}
	llm := newTestLLM(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusUnauthorized)
	}))

	if _, err := llm.Transcribe(context.Background(), path); err == nil {
		t.Fatal("expected an error")
	}
}
