//go:build linux
// +build linux

// File: affinity/affinity_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

import (
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

func TestPinBindsToSingleCPU(t *testing.T) {
	// Pick a CPU the current cgroup/cpuset actually allows.
	var allowed unix.CPUSet
	if err := unix.SchedGetaffinity(0, &allowed); err != nil {
		t.Fatalf("SchedGetaffinity: %v", err)
	}
	target := -1
	for cpu := 0; cpu < runtime.NumCPU()*2; cpu++ {
		if allowed.IsSet(cpu) {
			target = cpu
			break
		}
	}
	if target < 0 {
		t.Skip("no usable CPU in the allowed set")
	}

	if err := Pin(target); err != nil {
		t.Fatalf("Pin(%d): %v", target, err)
	}
	defer runtime.UnlockOSThread()

	var got unix.CPUSet
	if err := unix.SchedGetaffinity(0, &got); err != nil {
		t.Fatalf("SchedGetaffinity after Pin: %v", err)
	}
	if got.Count() != 1 || !got.IsSet(target) {
		t.Errorf("affinity after Pin(%d): %d CPUs set", target, got.Count())
	}
}
