// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files guarded by build tags.
//
// The producer/consumer handoff in spsc is engineered around cache-line
// traffic between two cores; pinning each side to its own core is how
// harnesses and benchmarks make that placement deterministic.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that thread to
// the given logical CPU. Call it from the goroutine that should stay pinned;
// pair with runtime.UnlockOSThread once the pinning is no longer needed.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	if err := pinPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}
