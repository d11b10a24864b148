//go:build linux
// +build linux

// File: pool/hugepage_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Huge-page backed allocation for Linux. Regions are mmap'd outside the Go
// heap, so the element type must not contain Go pointers; the garbage
// collector never scans these slots.

package pool

import (
	"fmt"
	"math"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/spscq/api"
)

// Ensure compile-time interface compliance.
var _ api.Allocator[int] = (*HugePage[int])(nil)

// hugePageSize matches the default 2 MiB huge page; MAP_HUGETLB requires
// the mapping length to be a multiple of it.
const hugePageSize = 2 << 20

// HugePage allocates backing stores from huge pages when the system has
// them configured, falling back to regular anonymous pages otherwise.
type HugePage[T any] struct {
	mu      sync.Mutex
	regions map[uintptr][]byte
	stats   Stats
}

// NewHugePage creates a huge-page allocator for element type T.
func NewHugePage[T any]() *HugePage[T] {
	return &HugePage[T]{regions: make(map[uintptr][]byte)}
}

// Allocate maps a region of at least n slots.
func (h *HugePage[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, api.ErrInvalidSize
	}
	elem := int(unsafe.Sizeof(*new(T)))
	if elem == 0 {
		// Zero-size elements need no real storage.
		return make([]T, n), nil
	}
	if n > math.MaxInt/elem {
		return nil, fmt.Errorf("pool: %d slots of %d bytes: %w", n, elem, api.ErrInvalidSize)
	}
	size := n * elem

	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS
	hugeLen := (size + hugePageSize - 1) &^ (hugePageSize - 1)
	region, err := unix.Mmap(-1, 0, hugeLen, prot, flags|unix.MAP_HUGETLB)
	if err != nil {
		// No huge pages reserved on this host; regular pages still
		// avoid the Go heap.
		region, err = unix.Mmap(-1, 0, size, prot, flags)
	}
	if err != nil {
		return nil, fmt.Errorf("pool: mmap %d bytes: %w", size, err)
	}

	base := unsafe.Pointer(&region[0])
	h.mu.Lock()
	h.regions[uintptr(base)] = region
	h.mu.Unlock()
	h.stats.onAlloc()
	return unsafe.Slice((*T)(base), n), nil
}

// Deallocate unmaps a region previously returned by Allocate.
func (h *HugePage[T]) Deallocate(slots []T) error {
	if len(slots) == 0 {
		return nil
	}
	key := uintptr(unsafe.Pointer(&slots[0]))
	h.mu.Lock()
	region, ok := h.regions[key]
	delete(h.regions, key)
	h.mu.Unlock()
	if !ok {
		// Heap-backed zero-size fallback; nothing to unmap.
		return nil
	}
	h.stats.onFree()
	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("pool: munmap: %w", err)
	}
	return nil
}

// Stats returns the allocator's region counters.
func (h *HugePage[T]) Stats() StatsSnapshot {
	return h.stats.Snapshot()
}
