//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows implementation via SetThreadAffinityMask on the current thread.

package affinity

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// pinPlatform binds the calling thread to a single logical CPU.
func pinPlatform(cpuID int) error {
	mask := uintptr(1) << cpuID
	ret, _, err := setThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask cpu %d: %w", cpuID, err)
	}
	return nil
}
