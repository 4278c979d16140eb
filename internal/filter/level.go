package filter

import (
	"regexp"
	"strings"

	"github.com/Geun-Oh/qlog/internal/entry"
)

// levelRegex detects severity keywords in common formats like [ERROR],
// level=error, etc.
var levelRegex = regexp.MustCompile(`(?i)\b(DEBUG|TRACE|INFO|WARN(?:ING)?|ERR(?:OR)?|FATAL|PANIC|CRITICAL)\b`)

// levelKeywords maps detected keywords to severity levels.
// Ordered by likelihood of occurrence for early exit.
var levelKeywords = []struct {
	keywords []string
	level    entry.Level
}{
	{[]string{"ERROR", "ERR", "FATAL", "PANIC", "CRITICAL"}, entry.LevelError},
	{[]string{"WARN", "WARNING"}, entry.LevelWarn},
	{[]string{"INFO"}, entry.LevelInfo},
	{[]string{"DEBUG", "TRACE"}, entry.LevelTrace},
}

// LevelFilter passes only entries whose severity is in the allowed set.
type LevelFilter struct {
	allowed map[entry.Level]bool
}

// NewLevelFilter creates a filter that passes entries matching any of the
// given levels. Example: NewLevelFilter(entry.LevelError, entry.LevelWarn)
func NewLevelFilter(levels ...entry.Level) *LevelFilter {
	allowed := make(map[entry.Level]bool, len(levels))
	for _, l := range levels {
		allowed[l] = true
	}
	return &LevelFilter{allowed: allowed}
}

// Match returns true if the entry's level is in the allowed set.
func (f *LevelFilter) Match(e entry.LogEntry) bool {
	return f.allowed[e.Level()]
}

// Name returns the filter description.
func (f *LevelFilter) Name() string {
	var levels []string
	for l := range f.allowed {
		levels = append(levels, l.String())
	}
	return "level:" + strings.Join(levels, ",")
}

// DetectLevel attempts to extract a severity level from a raw message
// string. Lines without a recognizable keyword map to LevelMessage.
func DetectLevel(msg string) entry.Level {
	match := levelRegex.FindString(msg)
	if match == "" {
		return entry.LevelMessage
	}

	upper := strings.ToUpper(match)
	for _, p := range levelKeywords {
		for _, kw := range p.keywords {
			if upper == kw {
				return p.level
			}
		}
	}
	return entry.LevelMessage
}
