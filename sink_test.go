package llmutils

import (
	"io"
	"os"
	"testing"
)

func TestDefaultSinks(t *testing.T) {
	if s := StdoutSink(); s.Writer != os.Stdout || s.Cutoff != "" {
		t.Errorf("StdoutSink() = %+v, want stdout without cutoff", s)
	}
	if s := DiscardSink(); s.Writer != io.Discard {
		t.Errorf("DiscardSink() = %+v, want io.Discard", s)
	}
}
