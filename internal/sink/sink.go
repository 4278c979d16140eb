// Package sink defines drain targets for rendered log entries.
package sink

import (
	"sync/atomic"

	"github.com/Geun-Oh/qlog/internal/entry"
)

// Sink receives log entries at or above its severity threshold and writes
// them to an output destination.
type Sink interface {
	// Write outputs a single entry if it clears the sink's minimum level.
	Write(e entry.LogEntry) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close releases resources held by the sink.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string

	// Level returns the minimum severity this sink emits.
	Level() entry.Level

	// SetLevel changes the minimum severity. Safe to call at runtime.
	SetLevel(l entry.Level)
}

// levelGate holds the runtime-mutable severity threshold shared by every
// sink implementation.
type levelGate struct {
	min atomic.Int32
}

// Level returns the minimum severity this sink emits.
func (g *levelGate) Level() entry.Level { return entry.Level(g.min.Load()) }

// SetLevel changes the minimum severity.
func (g *levelGate) SetLevel(l entry.Level) { g.min.Store(int32(l)) }

func (g *levelGate) pass(l entry.Level) bool { return l >= g.Level() }
