// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocation accounting shared by the pool allocators.

package pool

import (
	"sync/atomic"

	"github.com/momentics/spscq/api"
)

// Stats aggregates allocation counters for one allocator instance.
type Stats struct {
	allocs atomic.Int64
	frees  atomic.Int64
	inUse  atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Allocs int64
	Frees  int64
	InUse  int64
}

func (s *Stats) onAlloc() {
	s.allocs.Add(1)
	s.inUse.Add(1)
}

func (s *Stats) onFree() {
	s.frees.Add(1)
	s.inUse.Add(-1)
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Allocs: s.allocs.Load(),
		Frees:  s.frees.Load(),
		InUse:  s.inUse.Load(),
	}
}

// Ensure compile-time interface compliance.
var _ api.Allocator[any] = (*Instrumented[any])(nil)

// Instrumented wraps another allocator and counts its traffic.
type Instrumented[T any] struct {
	inner api.Allocator[T]
	stats Stats
}

// NewInstrumented wraps inner with allocation accounting.
func NewInstrumented[T any](inner api.Allocator[T]) *Instrumented[T] {
	return &Instrumented[T]{inner: inner}
}

// Allocate forwards to the wrapped allocator, counting successes.
func (a *Instrumented[T]) Allocate(n int) ([]T, error) {
	slots, err := a.inner.Allocate(n)
	if err == nil {
		a.stats.onAlloc()
	}
	return slots, err
}

// Deallocate forwards to the wrapped allocator, counting successes.
func (a *Instrumented[T]) Deallocate(slots []T) error {
	err := a.inner.Deallocate(slots)
	if err == nil {
		a.stats.onFree()
	}
	return err
}

// Stats returns a snapshot of the wrapper's counters.
func (a *Instrumented[T]) Stats() StatsSnapshot {
	return a.stats.Snapshot()
}
