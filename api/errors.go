// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values shared across the library.

package api

import "errors"

var (
	// ErrAllocFailed wraps a backing-store allocation failure at
	// construction time.
	ErrAllocFailed = errors.New("allocation failed")

	// ErrInvalidSize reports a non-positive slot count passed to an
	// allocator.
	ErrInvalidSize = errors.New("invalid allocation size")

	// ErrNotSupported reports a platform facility (CPU pinning, huge
	// pages) that is unavailable on this OS.
	ErrNotSupported = errors.New("operation not supported on this platform")
)
