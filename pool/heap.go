// File: pool/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/spscq/api"

// Ensure compile-time interface compliance.
var _ api.Allocator[any] = Heap[any]{}

// Heap is the default allocation strategy: a garbage-collected Go slice.
type Heap[T any] struct{}

// Allocate returns a zeroed heap slice of n slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, api.ErrInvalidSize
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector reclaims heap storage.
func (Heap[T]) Deallocate([]T) error {
	return nil
}
