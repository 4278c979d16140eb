// Package queue wraps the lock-free ring with a retention policy and
// typed errors.
package queue

import "github.com/Geun-Oh/qlog/internal/buffer"

// QueueError enumerates the queue's failure conditions. Values are
// comparable, so errors.Is works against the constants below.
type QueueError int

const (
	ErrUnknown QueueError = iota
	ErrFull
	ErrEmpty
)

// Error implements the error interface.
func (e QueueError) Error() string {
	switch e {
	case ErrFull:
		return "queue: full"
	case ErrEmpty:
		return "queue: empty"
	default:
		return "queue: unknown error"
	}
}

// Policy selects the push-when-full behavior.
type Policy int

const (
	// ErrorWhenFull makes Push return ErrFull instead of writing.
	ErrorWhenFull Policy = iota
	// OverwriteWhenFull makes Push clobber the newest queued entry.
	OverwriteWhenFull
	// BlockWhenFull makes Push spin until a slot frees up.
	BlockWhenFull
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case OverwriteWhenFull:
		return "overwrite-when-full"
	case BlockWhenFull:
		return "block-when-full"
	default:
		return "error-when-full"
	}
}

// Queue is a bounded FIFO over buffer.Ring that reports fullness and
// emptiness as typed errors according to its retention policy. It carries
// the ring's concurrency contract: many producers, one consumer.
type Queue[T any] struct {
	ring   *buffer.Ring[T]
	policy Policy
}

// New creates a queue with the given capacity and retention policy.
func New[T any](capacity int, policy Policy) *Queue[T] {
	return &Queue[T]{ring: buffer.NewRing[T](capacity), policy: policy}
}

// Push appends v according to the retention policy. The returned error is
// non-nil only under ErrorWhenFull, and then always ErrFull.
func (q *Queue[T]) Push(v T) error {
	switch q.policy {
	case OverwriteWhenFull:
		q.ring.ForcePush(v)
	case BlockWhenFull:
		q.ring.Push(v)
	default:
		if !q.ring.TryPush(v) {
			return ErrFull
		}
	}
	return nil
}

// Read removes and returns the oldest entry, or ErrEmpty when there is
// nothing committed to read. Non-blocking. Single consumer only.
func (q *Queue[T]) Read() (T, error) {
	v, ok := q.ring.Pop()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}
	return v, nil
}

// Empty reports whether the queue currently holds no entries.
func (q *Queue[T]) Empty() bool { return q.ring.Empty() }

// Full reports whether the queue is currently at capacity.
func (q *Queue[T]) Full() bool { return q.ring.Full() }

// Len returns the approximate number of queued entries.
func (q *Queue[T]) Len() int { return q.ring.Len() }

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int { return q.ring.Cap() }

// Policy returns the queue's retention policy.
func (q *Queue[T]) Policy() Policy { return q.policy }
