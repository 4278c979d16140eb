package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Geun-Oh/qlog/internal/entry"
)

// FileSink appends log entries as plain text lines to a file.
type FileSink struct {
	levelGate
	file *os.File
}

// NewFileSink creates a sink that appends to the given file path.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &FileSink{file: f}, nil
}

// NewTimestampedFileSink creates a sink over a fresh timestamped file, see
// CreateFile.
func NewTimestampedFileSink(rootName, subdir string) (*FileSink, error) {
	f, err := CreateFile(rootName, subdir)
	if err != nil {
		return nil, err
	}
	return &FileSink{file: f}, nil
}

// CreateFile opens a timestamped log file inside a subdirectory of the
// platform temp directory: "<tmp>/<subdir>/[YYYY-MM-DD=HH-MM-SS] <rootName>.log".
func CreateFile(rootName, subdir string) (*os.File, error) {
	dir := filepath.Join(os.TempDir(), subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}
	stamp := time.Now().Format("[2006-01-02=15-04-05]")
	path := filepath.Join(dir, stamp+" "+rootName+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("create log file %s: %w", path, err)
	}
	return f, nil
}

// Write appends the entry text plus a newline if it clears the gate.
// Write failures are swallowed: logging is best-effort and must never
// disturb the caller.
func (s *FileSink) Write(e entry.LogEntry) error {
	if !s.pass(e.Level()) {
		return nil
	}
	_, _ = fmt.Fprintln(s.file, e.Text())
	return nil
}

// Flush syncs the file to disk.
func (s *FileSink) Flush() error { return s.file.Sync() }

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	return s.file.Close()
}

// Name returns the sink identifier.
func (s *FileSink) Name() string { return "file:" + s.file.Name() }
