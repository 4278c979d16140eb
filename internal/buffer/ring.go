// Package buffer provides the bounded lock-free buffering core of qlog.
package buffer

import (
	"math"
	"runtime"
	"sync/atomic"
)

// DefaultCapacity is used when a ring is constructed with a non-positive capacity.
const DefaultCapacity = 16

// Ring is a fixed-capacity circular buffer safe for many concurrent
// producers and exactly one consumer.
//
// Producers reserve space by optimistically incrementing an atomic size
// counter (rolled back on overflow), claim a unique slot with a fetch-add
// on the write cursor, store the value, and finally publish it by
// advancing maxRead. The consumer polls maxRead and advances its own
// plain read cursor, so only one consumer is supported.
//
// Reserve and Clear are the exceptions: they require exclusive access and
// must not run concurrently with any push or pop.
//
// Cursors are uint32 and increase monotonically; they wrap after ~4
// billion operations, which is a documented limitation (see MaxSize).
type Ring[T any] struct {
	slots   []T
	read    uint32        // consumer-owned, deliberately not atomic
	write   atomic.Uint32 // next slot to claim
	maxRead atomic.Uint32 // committed-write boundary the consumer may read up to
	size    atomic.Int64  // occupied slots; may transiently exceed capacity mid-reservation
}

// NewRing creates an empty ring. A non-positive capacity defaults to
// DefaultCapacity.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring[T]{slots: make([]T, capacity)}
}

// NewRingFilled creates a ring with every slot holding a copy of v.
// Len() == Cap() on return.
func NewRingFilled[T any](capacity int, v T) *Ring[T] {
	r := NewRing[T](capacity)
	for i := range r.slots {
		r.slots[i] = v
	}
	c := uint32(len(r.slots))
	r.write.Store(c)
	r.maxRead.Store(c)
	r.size.Store(int64(c))
	return r
}

// MaxSize returns the largest capacity the uint32 cursor arithmetic supports.
func MaxSize() int { return math.MaxUint32 - 1 }

// Cap returns the ring capacity.
func (r *Ring[T]) Cap() int { return len(r.slots) }

// Len returns the current number of occupied slots. The value is a single
// atomic load: under concurrent mutation it is approximate, and no
// snapshot consistency holds across two calls.
func (r *Ring[T]) Len() int {
	n := r.size.Load()
	if n < 0 {
		return 0
	}
	if n > int64(len(r.slots)) {
		return len(r.slots)
	}
	return int(n)
}

// Empty reports whether the ring currently holds no entries.
func (r *Ring[T]) Empty() bool { return r.Len() == 0 }

// Full reports whether the ring is currently at capacity.
func (r *Ring[T]) Full() bool { return r.Len() == len(r.slots) }

// TryPush attempts to append v. It reserves a slot by incrementing the
// size counter; if that overshoots the capacity the reservation is rolled
// back and false is returned without writing.
func (r *Ring[T]) TryPush(v T) bool {
	if r.size.Add(1) > int64(len(r.slots)) {
		r.size.Add(-1)
		return false
	}
	w := r.write.Add(1) - 1
	r.slots[w%uint32(len(r.slots))] = v
	// Publish. atomic.Uint32.Add is sequentially consistent, so the slot
	// store above is visible to the consumer before maxRead advances.
	r.maxRead.Add(1)
	return true
}

// Push appends v, spinning until a slot frees up. It never fails, and
// blocks indefinitely if no consumer ever pops from a full ring.
func (r *Ring[T]) Push(v T) {
	for !r.TryPush(v) {
		runtime.Gosched()
	}
}

// ForcePush appends v if a slot is free; when the ring is full it
// overwrites the most recently written slot instead of the oldest one.
// The publish cursor is rewound so the consumer cannot read the slot
// mid-rewrite, then re-advanced.
func (r *Ring[T]) ForcePush(v T) {
	if r.TryPush(v) {
		return
	}
	m := r.maxRead.Add(^uint32(0)) // decrement; m is now the newest committed cursor
	r.slots[m%uint32(len(r.slots))] = v
	r.maxRead.Add(1)
}

// Front returns a copy of the oldest committed entry without removing it.
// The second return is false when nothing is readable.
func (r *Ring[T]) Front() (T, bool) {
	if r.read == r.maxRead.Load() {
		var zero T
		return zero, false
	}
	return r.slots[r.read%uint32(len(r.slots))], true
}

// Pop removes and returns the oldest committed entry. Single consumer
// only: the read cursor is not atomic, so concurrent Pop calls race.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.read == r.maxRead.Load() {
		return zero, false
	}
	i := r.read % uint32(len(r.slots))
	v := r.slots[i]
	r.slots[i] = zero
	r.read++
	r.size.Add(-1)
	return v, true
}

// Reserve grows the backing storage so the ring holds at least capacity
// elements. Committed entries are copied oldest-to-newest into the new
// storage and the cursors reset, leaving contents and order unchanged.
// A capacity at or below the current one is a no-op.
//
// Requires exclusive access: not safe concurrently with push or pop.
func (r *Ring[T]) Reserve(capacity int) {
	if capacity <= len(r.slots) {
		return
	}
	old := uint32(len(r.slots))
	n := r.maxRead.Load() - r.read // committed entries; exact under exclusive access
	grown := make([]T, capacity)
	for i := uint32(0); i < n; i++ {
		grown[i] = r.slots[(r.read+i)%old]
	}
	r.slots = grown
	r.read = 0
	r.write.Store(n)
	r.maxRead.Store(n)
	r.size.Store(int64(n))
}

// Clear discards all entries and resets every cursor. Requires exclusive
// access, like Reserve.
func (r *Ring[T]) Clear() {
	r.slots = make([]T, len(r.slots))
	r.read = 0
	r.write.Store(0)
	r.maxRead.Store(0)
	r.size.Store(0)
}
