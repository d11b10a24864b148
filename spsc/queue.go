// File: spsc/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core ring buffer. Exactly one goroutine may call the producer-side methods
// (Push, TryPush) and exactly one other the consumer-side methods (Front,
// Pop); the index protocol depends on that split and is unsafe without it.

package spsc

import (
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/momentics/spscq/api"
	"github.com/momentics/spscq/pool"
)

// cacheLine is the assumed coherency-unit size for this architecture.
const cacheLine = unsafe.Sizeof(cpu.CacheLinePad{})

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a fixed-capacity lock-free SPSC ring buffer.
//
// Field layout matters: the two cursors and the two cursor caches each sit on
// their own cache line so the producer core and the consumer core never
// invalidate each other's hot state. New verifies the separation.
type Queue[T any] struct {
	slots   []T
	guard   uint64 // guard slots preceding the logical window
	bound   uint64 // logical capacity + 1 slack slot; modulo for both cursors
	logical int    // capacity reported to callers
	alloc   api.Allocator[T]
	release func(T)
	closed  bool

	_             cpu.CacheLinePad
	writeIdx      atomic.Uint64 // next slot the producer fills
	_             cpu.CacheLinePad
	readIdx       atomic.Uint64 // next slot the consumer empties
	_             cpu.CacheLinePad
	readIdxCache  uint64 // producer's last observation of readIdx
	_             cpu.CacheLinePad
	writeIdxCache uint64 // consumer's last observation of writeIdx
	_             cpu.CacheLinePad
}

// New creates a queue holding up to capacity items. A capacity below 1 is
// coerced to 1. The backing store is obtained once from the configured
// allocator (pool.Heap by default) and held until Close.
func New[T any](capacity int, opts ...Option[T]) (*Queue[T], error) {
	if capacity < 1 {
		capacity = 1
	}
	q := &Queue[T]{logical: capacity}
	for _, opt := range opts {
		opt(q)
	}
	if q.alloc == nil {
		q.alloc = pool.Heap[T]{}
	}
	q.assertLayout()

	// Guard slots keep the slot window off the cache lines of whatever
	// the allocator placed next to it.
	elem := unsafe.Sizeof(*new(T))
	guard := uint64(1)
	if elem > 0 {
		guard = (uint64(cacheLine)-1)/uint64(elem) + 1
	}

	// One slack slot lets cursor equality mean empty and next==readIdx
	// mean full without a shared counter. Clamp instead of overflowing
	// the allocation size.
	bound := uint64(capacity) + 1
	if bound > uint64(math.MaxInt)-2*guard {
		bound = uint64(math.MaxInt) - 2*guard
		q.logical = int(bound) - 1
	}

	slots, err := q.alloc.Allocate(int(bound + 2*guard))
	if err != nil {
		return nil, fmt.Errorf("spsc: %w: %v", api.ErrAllocFailed, err)
	}
	q.slots = slots
	q.guard = guard
	q.bound = bound
	return q, nil
}

// assertLayout panics if the cursor fields ended up closer than one cache
// line apart. The padding fields make this structurally impossible; the
// check guards against future layout edits.
func (q *Queue[T]) assertLayout() {
	w := unsafe.Offsetof(q.writeIdx)
	r := unsafe.Offsetof(q.readIdx)
	rc := unsafe.Offsetof(q.readIdxCache)
	wc := unsafe.Offsetof(q.writeIdxCache)
	if r-w < cacheLine || rc-r < cacheLine || wc-rc < cacheLine {
		panic("spsc: cursor fields share a cache line")
	}
}

// Push adds item, busy-waiting while the queue is full. The spin re-reads
// the consumer's cursor until a slot frees up; a live consumer must exist.
func (q *Queue[T]) Push(item T) {
	w := q.writeIdx.Load()
	next := w + 1
	if next == q.bound {
		next = 0
	}
	for next == q.readIdxCache {
		q.readIdxCache = q.readIdx.Load()
	}
	q.slots[q.guard+w] = item
	q.writeIdx.Store(next)
}

// TryPush adds item, returning false if the queue is full. The cached
// consumer cursor is refreshed at most once before giving up.
func (q *Queue[T]) TryPush(item T) bool {
	w := q.writeIdx.Load()
	next := w + 1
	if next == q.bound {
		next = 0
	}
	if next == q.readIdxCache {
		q.readIdxCache = q.readIdx.Load()
		if next == q.readIdxCache {
			return false
		}
	}
	q.slots[q.guard+w] = item
	q.writeIdx.Store(next)
	return true
}

// Front returns a pointer to the oldest item, or nil if the queue is empty.
// The slot stays valid until the matching Pop. The cheap path compares
// against the cached producer cursor; the atomic is re-read only when the
// cache can no longer prove an item is present.
func (q *Queue[T]) Front() *T {
	r := q.readIdx.Load()
	if r == q.writeIdxCache {
		q.writeIdxCache = q.writeIdx.Load()
		if r == q.writeIdxCache {
			return nil
		}
	}
	return &q.slots[q.guard+r]
}

// Pop releases the slot a preceding successful Front exposed. The slot is
// zeroed before the cursor is published, so the producer can only observe
// it free after any references it held are gone. Popping an empty queue
// panics; that is a caller bug, not a queue state.
func (q *Queue[T]) Pop() {
	r := q.readIdx.Load()
	if r == q.writeIdxCache {
		q.writeIdxCache = q.writeIdx.Load()
		if r == q.writeIdxCache {
			panic("spsc: Pop without a preceding successful Front")
		}
	}
	slot := &q.slots[q.guard+r]
	if q.release != nil {
		q.release(*slot)
	}
	var zero T
	*slot = zero
	next := r + 1
	if next == q.bound {
		next = 0
	}
	q.readIdx.Store(next)
}

// Len returns an instantaneous item count in [0, Cap()]. The consumer
// cursor is read first so a concurrent producer can only make the result
// stale, never out of range.
func (q *Queue[T]) Len() int {
	r := q.readIdx.Load()
	w := q.writeIdx.Load()
	if w >= r {
		return int(w - r)
	}
	return int(w + q.bound - r)
}

// Empty reports whether the queue held no items at the instant of the check.
func (q *Queue[T]) Empty() bool {
	return q.writeIdx.Load() == q.readIdx.Load()
}

// Cap returns the fixed logical capacity. Slack and guard slots are
// invisible to callers.
func (q *Queue[T]) Cap() int {
	return q.logical
}

// Close drains every remaining item exactly once, running the release hook
// per live item, then returns the backing store to the allocator. Idempotent.
// Both sides must have stopped before Close is called; any later operation
// panics.
func (q *Queue[T]) Close() error {
	if q.closed {
		return nil
	}
	for q.Front() != nil {
		q.Pop()
	}
	q.closed = true
	slots := q.slots
	q.slots = nil
	return q.alloc.Deallocate(slots)
}
