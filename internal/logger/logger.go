// Package logger implements the queue-backed logging pipeline: entries are
// gated by a global minimum level and an optional filter chain, then either
// fanned out to the sinks inline or queued for a background drain
// goroutine, depending on the threading policy.
package logger

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/Geun-Oh/qlog/internal/entry"
	"github.com/Geun-Oh/qlog/internal/filter"
	"github.com/Geun-Oh/qlog/internal/monitor"
	"github.com/Geun-Oh/qlog/internal/queue"
	"github.com/Geun-Oh/qlog/internal/sink"
)

// ThreadingPolicy selects how log calls reach the sinks.
type ThreadingPolicy int

const (
	// SingleThreaded writes to the sinks inline; one calling goroutine only.
	SingleThreaded ThreadingPolicy = iota
	// SingleThreadedAsync queues entries for a background drain goroutine;
	// one logging goroutine only.
	SingleThreadedAsync
	// MultiThreaded writes to the sinks inline, serialized by a fan-out
	// mutex so concurrent callers do not interleave sink writes.
	MultiThreaded
	// MultiThreadedAsync queues entries from any number of goroutines for
	// a background drain goroutine.
	MultiThreadedAsync
)

// String returns the policy name.
func (p ThreadingPolicy) String() string {
	switch p {
	case SingleThreadedAsync:
		return "single-threaded-async"
	case MultiThreaded:
		return "multi-threaded"
	case MultiThreadedAsync:
		return "multi-threaded-async"
	default:
		return "single-threaded"
	}
}

func (p ThreadingPolicy) async() bool {
	return p == SingleThreadedAsync || p == MultiThreadedAsync
}

func (p ThreadingPolicy) concurrent() bool {
	return p == MultiThreaded || p == MultiThreadedAsync
}

// Config holds logger configuration.
type Config struct {
	Threading ThreadingPolicy
	// Retention is the push-when-full behavior of the internal queue.
	// Only meaningful under async threading policies.
	Retention queue.Policy
	// MinLevel is the global minimum severity; entries below it are
	// discarded before filters, queue, and sinks.
	MinLevel entry.Level
	// QueueCapacity sizes the internal queue. Non-positive values take the
	// ring's default.
	QueueCapacity int
	Sinks         []sink.Sink
	// Filters is an optional entry filter chain applied after MinLevel.
	Filters *filter.Chain
	// Stats is an optional metrics collector.
	Stats *monitor.Stats
}

// Logger drives entries from call sites to sinks according to a threading
// policy. Sinks are owned by the logger and closed by Close.
type Logger struct {
	cfg    Config
	q      *queue.Queue[entry.LogEntry] // nil under synchronous policies
	mu     sync.Mutex                   // serializes fan-out under concurrent policies
	done   atomic.Bool                  // drain shutdown flag
	closed atomic.Bool
	wg     sync.WaitGroup
}

// New validates the configuration and creates a logger. Under async
// threading policies the drain goroutine is started immediately.
//
// MultiThreadedAsync with OverwriteWhenFull is rejected: the overwrite
// rewind is not safe against racing producers.
func New(cfg Config) (*Logger, error) {
	if cfg.Threading == MultiThreadedAsync && cfg.Retention == queue.OverwriteWhenFull {
		return nil, fmt.Errorf("logger: %s cannot use %s retention", cfg.Threading, cfg.Retention)
	}

	l := &Logger{cfg: cfg}
	if cfg.Threading.async() {
		l.q = queue.New[entry.LogEntry](cfg.QueueCapacity, cfg.Retention)
		l.wg.Add(1)
		go l.drain()
	}
	return l, nil
}

// drain pops queued entries and fans them out until the shutdown flag is
// set. An empty queue is a normal condition, not an error: the goroutine
// yields and polls again.
func (l *Logger) drain() {
	defer l.wg.Done()
	for !l.done.Load() {
		e, err := l.q.Read()
		if err != nil {
			runtime.Gosched()
			continue
		}
		l.fanOut(e)
	}
}

// fanOut writes one entry to every sink. Sink errors are swallowed:
// logging is best-effort and must never disturb the caller.
func (l *Logger) fanOut(e entry.LogEntry) {
	if l.cfg.Threading.concurrent() {
		l.mu.Lock()
		defer l.mu.Unlock()
	}
	if l.cfg.Stats != nil {
		l.cfg.Stats.RecordEmitted()
	}
	for _, s := range l.cfg.Sinks {
		_ = s.Write(e)
	}
}

// Log submits one entry. Under async threading policies the entry is
// queued and the call returns immediately; otherwise the sinks are written
// inline. The returned error is non-nil only when the retention policy is
// ErrorWhenFull and the queue is full; the caller decides retry or drop.
func (l *Logger) Log(e entry.LogEntry) error {
	if e.Level() < l.cfg.MinLevel {
		return nil
	}
	if l.cfg.Filters != nil && l.cfg.Filters.Len() > 0 && !l.cfg.Filters.Match(e) {
		return nil
	}
	if l.cfg.Stats != nil {
		l.cfg.Stats.RecordLogged()
	}

	if l.q == nil {
		l.fanOut(e)
		return nil
	}
	if err := l.q.Push(e); err != nil {
		if l.cfg.Stats != nil {
			l.cfg.Stats.RecordDropped()
		}
		return err
	}
	return nil
}

// Message logs a plain entry. format is used verbatim when no args are given.
func (l *Logger) Message(format string, args ...any) error {
	return l.Log(entry.Message(format, args...))
}

// Trace logs a trace-level entry.
func (l *Logger) Trace(format string, args ...any) error {
	return l.Log(entry.Trace(format, args...))
}

// Info logs an info-level entry.
func (l *Logger) Info(format string, args ...any) error {
	return l.Log(entry.Info(format, args...))
}

// Warn logs a warn-level entry.
func (l *Logger) Warn(format string, args ...any) error {
	return l.Log(entry.Warn(format, args...))
}

// Error logs an error-level entry.
func (l *Logger) Error(format string, args ...any) error {
	return l.Log(entry.Error(format, args...))
}

// AddSink registers another drain target. Not safe to call while other
// goroutines are logging.
func (l *Logger) AddSink(s sink.Sink) {
	l.cfg.Sinks = append(l.cfg.Sinks, s)
}

// Pending returns the approximate number of queued, not-yet-drained
// entries. Always zero under synchronous policies.
func (l *Logger) Pending() int {
	if l.q == nil {
		return 0
	}
	return l.q.Len()
}

// Close stops the drain goroutine, then flushes and closes every sink.
// Entries still queued when the drain goroutine observes the stop flag are
// dropped; callers needing a full drain should poll Pending first.
// Close is idempotent.
func (l *Logger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	l.done.Store(true)
	l.wg.Wait()

	var firstErr error
	for _, s := range l.cfg.Sinks {
		if err := s.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
