package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/Geun-Oh/qlog/internal/entry"
)

// StreamSink writes log entries to an io.Writer, one line per entry.
// When styled, each line is rendered with the entry's display style.
type StreamSink struct {
	levelGate
	w      io.Writer
	styled bool
	name   string
}

// NewStreamSink creates a sink writing to w. A nil writer falls back to
// os.Stdout.
func NewStreamSink(w io.Writer, styled bool, name string) *StreamSink {
	if w == nil {
		w = os.Stdout
	}
	return &StreamSink{w: w, styled: styled, name: name}
}

// NewStdoutSink creates a sink writing to standard output.
func NewStdoutSink(styled bool) *StreamSink {
	return NewStreamSink(os.Stdout, styled, "stdout")
}

// NewStderrSink creates a sink writing to standard error.
func NewStderrSink(styled bool) *StreamSink {
	return NewStreamSink(os.Stderr, styled, "stderr")
}

// Write outputs the entry text, styled or plain, if it clears the gate.
func (s *StreamSink) Write(e entry.LogEntry) error {
	if !s.pass(e.Level()) {
		return nil
	}
	text := e.Text()
	if s.styled {
		text = e.Style().Render(text)
	}
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// Flush is a no-op for stream output.
func (s *StreamSink) Flush() error { return nil }

// Close is a no-op for stream output.
func (s *StreamSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *StreamSink) Name() string { return s.name }
