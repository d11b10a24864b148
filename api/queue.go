// File: api/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free handoff of values between exactly one producer goroutine and
// exactly one consumer goroutine. Full and empty are normal transient states,
// never errors.

package api

// Queue is the single-producer/single-consumer queue contract.
//
// Producer-side methods (Push, TryPush) must only ever be called from one
// goroutine at a time, and consumer-side methods (Front, Pop) from one other;
// the implementation relies on that ownership split instead of locks.
type Queue[T any] interface {
	// Push adds an item, busy-waiting while the queue is full.
	// A live consumer must exist or Push spins forever.
	Push(item T)

	// TryPush adds an item, returning false immediately if full.
	TryPush(item T) bool

	// Front returns a pointer to the oldest item, or nil if empty.
	// The pointee is owned by the consumer until the matching Pop.
	Front() *T

	// Pop removes the item a preceding successful Front exposed.
	// Calling Pop on an empty queue is a contract violation.
	Pop()

	// Len returns the current number of items. Under concurrent use the
	// value is an instantaneous snapshot, not a synchronized count.
	Len() int

	// Cap returns the fixed logical capacity.
	Cap() int

	// Empty reports whether the queue holds no items; same snapshot
	// semantics as Len.
	Empty() bool

	// Close drains any remaining items and returns the backing store to
	// its allocator. Must be called only after both sides have stopped.
	Close() error
}
