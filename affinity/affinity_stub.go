//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub for platforms without a thread-affinity API.

package affinity

import "github.com/momentics/spscq/api"

// pinPlatform reports that pinning is unavailable here.
func pinPlatform(int) error {
	return api.ErrNotSupported
}
