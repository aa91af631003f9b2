package llmutils

import (
	"io"
	"os"
)

// Sink receives the echoed output of a streaming inference.
//
// Cutoff is optional. Once the accumulated response contains it, every later
// flush writes CutoffPlaceholder instead of the buffered text. The returned
// text is never redacted.
type Sink struct {
	Writer io.Writer
	Cutoff string
}

// StdoutSink is the default sink: the process standard output, no cutoff.
func StdoutSink() Sink {
	return Sink{Writer: os.Stdout}
}

// DiscardSink drops all echoed output.
func DiscardSink() Sink {
	return Sink{Writer: io.Discard}
}

func (s Sink) write(text string) error {
	_, err := io.WriteString(s.Writer, text)
	return err
}
