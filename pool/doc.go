// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Memory layer for spscq. Implements the api.Allocator strategies a queue can
// be constructed with: plain heap slices, huge-page backed regions on Linux
// (with transparent fallback), and an instrumented wrapper for accounting.
package pool
