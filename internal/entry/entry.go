// Package entry defines the core LogEntry type carried through the qlog pipeline.
package entry

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Level represents log severity levels, ordered from least to most severe.
type Level int

const (
	LevelMessage Level = iota
	LevelTrace
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "MESSAGE"
	}
}

// ParseLevel converts a string to a Level. Case-insensitive.
// Unrecognized strings fall back to LevelMessage, the plain catch-all.
func ParseLevel(s string) Level {
	switch s {
	case "TRACE", "trace", "Trace", "DEBUG", "debug", "Debug":
		return LevelTrace
	case "INFO", "info", "Info":
		return LevelInfo
	case "WARN", "warn", "Warn", "WARNING", "warning":
		return LevelWarn
	case "ERROR", "error", "Error", "ERR", "err", "FATAL", "fatal", "Fatal":
		return LevelError
	default:
		return LevelMessage
	}
}

// Default display styles per severity. These are documented defaults;
// callers that want something else construct entries with New.
var (
	MessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	TraceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4682B4"))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00A550")).Italic(true)
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)
)

// StyleFor returns the default display style for a severity level.
func StyleFor(l Level) lipgloss.Style {
	switch l {
	case LevelTrace:
		return TraceStyle
	case LevelInfo:
		return InfoStyle
	case LevelWarn:
		return WarnStyle
	case LevelError:
		return ErrorStyle
	default:
		return MessageStyle
	}
}

// LogEntry is one immutable, pre-rendered, severity-tagged log message.
// The text is fully formatted at construction time; nothing is deferred.
type LogEntry struct {
	level Level
	style lipgloss.Style
	text  string
}

// New creates an entry with an explicit level, style, and pre-rendered text.
func New(level Level, style lipgloss.Style, text string) LogEntry {
	return LogEntry{level: level, style: style, text: text}
}

func render(level Level, format string, args []any) LogEntry {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	return LogEntry{level: level, style: StyleFor(level), text: text}
}

// Message creates a plain entry. format is used verbatim when no args are given.
func Message(format string, args ...any) LogEntry {
	return render(LevelMessage, format, args)
}

// Trace creates a trace-level entry.
func Trace(format string, args ...any) LogEntry {
	return render(LevelTrace, format, args)
}

// Info creates an info-level entry.
func Info(format string, args ...any) LogEntry {
	return render(LevelInfo, format, args)
}

// Warn creates a warn-level entry.
func Warn(format string, args ...any) LogEntry {
	return render(LevelWarn, format, args)
}

// Error creates an error-level entry.
func Error(format string, args ...any) LogEntry {
	return render(LevelError, format, args)
}

// Level returns the entry's severity.
func (e LogEntry) Level() Level { return e.level }

// Style returns the entry's display style.
func (e LogEntry) Style() lipgloss.Style { return e.style }

// Text returns the rendered message text.
func (e LogEntry) Text() string { return e.text }

// String implements fmt.Stringer.
func (e LogEntry) String() string { return e.text }
