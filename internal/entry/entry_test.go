package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrdering(t *testing.T) {
	assert.Less(t, LevelMessage, LevelTrace)
	assert.Less(t, LevelTrace, LevelInfo)
	assert.Less(t, LevelInfo, LevelWarn)
	assert.Less(t, LevelWarn, LevelError)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "MESSAGE", LevelMessage.String())
	assert.Equal(t, "TRACE", LevelTrace.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelTrace,
		"info":    LevelInfo,
		"WARNING": LevelWarn,
		"err":     LevelError,
		"FATAL":   LevelError,
		"message": LevelMessage,
		"bogus":   LevelMessage,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestConstructorsRenderImmediately(t *testing.T) {
	e := Info("user %s logged in from %s", "ana", "10.0.0.2")
	assert.Equal(t, LevelInfo, e.Level())
	assert.Equal(t, "user ana logged in from 10.0.0.2", e.Text())
}

func TestConstructorLiteralPassthrough(t *testing.T) {
	// Without args the format string is taken verbatim, so stray verbs
	// like "100%" stay intact.
	e := Warn("disk 100% full")
	assert.Equal(t, "disk 100% full", e.Text())
	assert.Equal(t, LevelWarn, e.Level())
}

func TestConstructorLevels(t *testing.T) {
	assert.Equal(t, LevelMessage, Message("m").Level())
	assert.Equal(t, LevelTrace, Trace("t").Level())
	assert.Equal(t, LevelInfo, Info("i").Level())
	assert.Equal(t, LevelWarn, Warn("w").Level())
	assert.Equal(t, LevelError, Error("e").Level())
}

func TestDefaultStyles(t *testing.T) {
	assert.Equal(t, MessageStyle, StyleFor(LevelMessage))
	assert.Equal(t, TraceStyle, StyleFor(LevelTrace))
	assert.Equal(t, InfoStyle, StyleFor(LevelInfo))
	assert.Equal(t, WarnStyle, StyleFor(LevelWarn))
	assert.Equal(t, ErrorStyle, StyleFor(LevelError))

	assert.True(t, WarnStyle.GetBold())
	assert.True(t, ErrorStyle.GetBold())
	assert.True(t, InfoStyle.GetItalic())
}

func TestExplicitConstruction(t *testing.T) {
	e := New(LevelError, WarnStyle, "custom")
	assert.Equal(t, LevelError, e.Level())
	assert.Equal(t, WarnStyle, e.Style())
	assert.Equal(t, "custom", e.Text())
	assert.Equal(t, "custom", e.String())
}
