// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pluggable memory source for queue backing stores. Lets callers pick huge
// pages, pools, or plain heap slices without touching the queue algorithm.

package api

// Allocator provides contiguous typed storage.
type Allocator[T any] interface {
	// Allocate returns a slice of exactly n slots. The contents are not
	// required to be zeroed.
	Allocate(n int) ([]T, error)

	// Deallocate releases storage previously returned by Allocate.
	// Passing any other slice is a contract violation.
	Deallocate(slots []T) error
}
