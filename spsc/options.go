// File: spsc/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package spsc

import "github.com/momentics/spscq/api"

// Option configures a Queue at construction time.
type Option[T any] func(*Queue[T])

// WithAllocator selects the memory source for the backing store, e.g.
// pool.NewHugePage for huge-page regions.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(q *Queue[T]) {
		q.alloc = a
	}
}

// WithReleaseFunc installs a hook invoked once per item as it leaves the
// queue, either through Pop or through the Close drain. The hook runs on
// the consumer side and must not panic.
func WithReleaseFunc[T any](fn func(T)) Option[T] {
	return func(q *Queue[T]) {
		q.release = fn
	}
}
