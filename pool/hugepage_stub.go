//go:build !linux
// +build !linux

// File: pool/hugepage_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without huge-page support: delegate to the heap
// allocator so callers keep a single construction path.

package pool

import "github.com/momentics/spscq/api"

// Ensure compile-time interface compliance.
var _ api.Allocator[int] = (*HugePage[int])(nil)

// HugePage falls back to heap allocation on this platform.
type HugePage[T any] struct {
	heap  Heap[T]
	stats Stats
}

// NewHugePage creates the fallback allocator.
func NewHugePage[T any]() *HugePage[T] {
	return &HugePage[T]{}
}

// Allocate returns a heap slice of n slots.
func (h *HugePage[T]) Allocate(n int) ([]T, error) {
	slots, err := h.heap.Allocate(n)
	if err == nil {
		h.stats.onAlloc()
	}
	return slots, err
}

// Deallocate releases a slice returned by Allocate.
func (h *HugePage[T]) Deallocate(slots []T) error {
	err := h.heap.Deallocate(slots)
	if err == nil {
		h.stats.onFree()
	}
	return err
}

// Stats returns the allocator's counters.
func (h *HugePage[T]) Stats() StatsSnapshot {
	return h.stats.Snapshot()
}
