// Package monitor provides real-time statistics collection for the logger.
package monitor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats collects logging metrics in a lock-free manner.
type Stats struct {
	logged    atomic.Uint64 // entries accepted by Log
	emitted   atomic.Uint64 // entries fanned out to sinks
	dropped   atomic.Uint64 // entries rejected by a full queue
	startTime time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return &Stats{
		startTime: time.Now(),
	}
}

// RecordLogged increments the accepted-entry counter.
func (s *Stats) RecordLogged() {
	s.logged.Add(1)
}

// RecordEmitted increments the emitted-entry counter.
func (s *Stats) RecordEmitted() {
	s.emitted.Add(1)
}

// RecordDropped increments the dropped-entry counter.
func (s *Stats) RecordDropped() {
	s.dropped.Add(1)
}

// Logged returns the number of entries accepted by the logger.
func (s *Stats) Logged() uint64 {
	return s.logged.Load()
}

// Emitted returns the number of entries fanned out to sinks.
func (s *Stats) Emitted() uint64 {
	return s.emitted.Load()
}

// Dropped returns the number of entries rejected by a full queue.
func (s *Stats) Dropped() uint64 {
	return s.dropped.Load()
}

// Elapsed returns the time since collection started.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Rate returns accepted entries per second.
func (s *Stats) Rate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(s.Logged()) / elapsed
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	elapsed := s.Elapsed()
	logged := s.Logged()
	emitted := s.Emitted()
	dropped := s.Dropped()

	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Logged:     %d\n"+
			"  Emitted:    %d\n"+
			"  Dropped:    %d\n"+
			"  Duration:   %s\n"+
			"  Throughput: %.0f entries/s\n"+
			"─────────────",
		logged, emitted, dropped,
		elapsed.Round(time.Millisecond),
		s.Rate(),
	)
}
