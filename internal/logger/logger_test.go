package logger

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Geun-Oh/qlog/internal/entry"
	"github.com/Geun-Oh/qlog/internal/filter"
	"github.com/Geun-Oh/qlog/internal/monitor"
	"github.com/Geun-Oh/qlog/internal/queue"
	"github.com/Geun-Oh/qlog/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a goroutine-safe writer for capturing sink output.
type syncBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func (b *syncBuffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// gateSink blocks inside Write until released, to hold the drain goroutine
// in place during backpressure tests.
type gateSink struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
	level   entry.Level
}

func newGateSink() *gateSink {
	return &gateSink{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gateSink) Write(e entry.LogEntry) error {
	g.once.Do(func() { close(g.started) })
	<-g.release
	return nil
}

func (g *gateSink) Flush() error           { return nil }
func (g *gateSink) Close() error           { return nil }
func (g *gateSink) Name() string           { return "gate" }
func (g *gateSink) Level() entry.Level     { return g.level }
func (g *gateSink) SetLevel(l entry.Level) { g.level = l }

func TestIllegalPolicyCombinationRejected(t *testing.T) {
	_, err := New(Config{
		Threading: MultiThreadedAsync,
		Retention: queue.OverwriteWhenFull,
	})
	require.Error(t, err)

	// Every other combination constructs.
	for _, th := range []ThreadingPolicy{SingleThreaded, SingleThreadedAsync, MultiThreaded, MultiThreadedAsync} {
		for _, p := range []queue.Policy{queue.ErrorWhenFull, queue.OverwriteWhenFull, queue.BlockWhenFull} {
			if th == MultiThreadedAsync && p == queue.OverwriteWhenFull {
				continue
			}
			l, err := New(Config{Threading: th, Retention: p})
			require.NoError(t, err, "threading=%s retention=%s", th, p)
			require.NoError(t, l.Close())
		}
	}
}

func TestSynchronousFanOut(t *testing.T) {
	var buf syncBuffer
	l, err := New(Config{
		Threading: SingleThreaded,
		Sinks:     []sink.Sink{sink.NewStreamSink(&buf, false, "capture")},
	})
	require.NoError(t, err)

	require.NoError(t, l.Info("first"))
	require.NoError(t, l.Warn("second"))
	assert.Equal(t, []string{"first", "second"}, buf.Lines(), "sync policy writes inline")

	require.NoError(t, l.Close())
}

func TestGlobalMinLevelGate(t *testing.T) {
	var buf syncBuffer
	l, err := New(Config{
		Threading: SingleThreaded,
		MinLevel:  entry.LevelWarn,
		Sinks:     []sink.Sink{sink.NewStreamSink(&buf, false, "capture")},
	})
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Info("quiet"))
	require.NoError(t, l.Error("loud"))
	assert.Equal(t, []string{"loud"}, buf.Lines())
}

func TestFilterChainGate(t *testing.T) {
	var buf syncBuffer
	l, err := New(Config{
		Threading: SingleThreaded,
		Filters:   filter.NewChain(filter.MatchAll, filter.NewExcludeFilter("healthz")),
		Sinks:     []sink.Sink{sink.NewStreamSink(&buf, false, "capture")},
	})
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Message("GET /healthz 200"))
	require.NoError(t, l.Message("GET /login 200"))
	assert.Equal(t, []string{"GET /login 200"}, buf.Lines())
}

func TestPerSinkLevelStillApplies(t *testing.T) {
	var quiet, loud syncBuffer
	quietSink := sink.NewStreamSink(&quiet, false, "quiet")
	quietSink.SetLevel(entry.LevelError)
	loudSink := sink.NewStreamSink(&loud, false, "loud")

	l, err := New(Config{
		Threading: SingleThreaded,
		Sinks:     []sink.Sink{quietSink, loudSink},
	})
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Warn("warned"))
	assert.Empty(t, quiet.Lines())
	assert.Equal(t, []string{"warned"}, loud.Lines())
}

func TestAsyncDrainDeliversInOrder(t *testing.T) {
	var buf syncBuffer
	l, err := New(Config{
		Threading:     SingleThreadedAsync,
		Retention:     queue.ErrorWhenFull,
		QueueCapacity: 4,
		Sinks:         []sink.Sink{sink.NewStreamSink(&buf, false, "capture")},
	})
	require.NoError(t, err)

	for _, msg := range []string{"e1", "e2", "e3", "e4"} {
		require.NoError(t, l.Message(msg))
	}

	require.Eventually(t, func() bool {
		return len(buf.Lines()) == 4
	}, 2*time.Second, time.Millisecond, "drain goroutine delivers everything")
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, buf.Lines())

	require.NoError(t, l.Close())
}

func TestAsyncFullQueueReturnsErrFull(t *testing.T) {
	gate := newGateSink()
	stats := monitor.NewStats()
	l, err := New(Config{
		Threading:     SingleThreadedAsync,
		Retention:     queue.ErrorWhenFull,
		QueueCapacity: 2,
		Sinks:         []sink.Sink{gate},
		Stats:         stats,
	})
	require.NoError(t, err)

	// First entry is popped by the drain goroutine, which then blocks in
	// the sink; the queue is free to fill completely behind it.
	require.NoError(t, l.Message("in flight"))
	<-gate.started

	require.NoError(t, l.Message("q1"))
	require.NoError(t, l.Message("q2"))

	err = l.Message("overflow")
	require.Error(t, err)
	assert.True(t, errors.Is(err, queue.ErrFull))
	assert.Equal(t, uint64(1), stats.Dropped())

	close(gate.release)
	require.Eventually(t, func() bool { return l.Pending() == 0 }, 2*time.Second, time.Millisecond)
	require.NoError(t, l.Close())

	assert.Equal(t, uint64(4), stats.Logged())
	assert.Equal(t, uint64(3), stats.Emitted())
}

func TestMultiThreadedConcurrentLogging(t *testing.T) {
	var buf syncBuffer
	l, err := New(Config{
		Threading: MultiThreaded,
		Sinks:     []sink.Sink{sink.NewStreamSink(&buf, false, "capture")},
	})
	require.NoError(t, err)

	const goroutines = 8
	const perGoroutine = 50
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				assert.NoError(t, l.Message("line"))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, l.Close())

	lines := buf.Lines()
	require.Len(t, lines, goroutines*perGoroutine)
	for _, line := range lines {
		assert.Equal(t, "line", line, "fan-out mutex keeps writes whole")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	l, err := New(Config{Threading: SingleThreadedAsync, Retention: queue.BlockWhenFull})
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
}

func TestAddSink(t *testing.T) {
	var buf syncBuffer
	l, err := New(Config{Threading: SingleThreaded})
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Message("before"))
	l.AddSink(sink.NewStreamSink(&buf, false, "late"))
	require.NoError(t, l.Message("after"))

	assert.Equal(t, []string{"after"}, buf.Lines())
}

func TestPendingIsZeroWhenSynchronous(t *testing.T) {
	l, err := New(Config{Threading: MultiThreaded})
	require.NoError(t, err)
	defer l.Close()
	assert.Equal(t, 0, l.Pending())
}

func TestThreadingPolicyStrings(t *testing.T) {
	assert.Equal(t, "single-threaded", SingleThreaded.String())
	assert.Equal(t, "single-threaded-async", SingleThreadedAsync.String())
	assert.Equal(t, "multi-threaded", MultiThreaded.String())
	assert.Equal(t, "multi-threaded-async", MultiThreadedAsync.String())
}
