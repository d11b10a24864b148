// File: control/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counter registry for harnesses and benchmarks. The queue itself records
// nothing; producers and consumers that want throughput or retry numbers
// register counters here and read them out after the run.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds named monotonic counters with dynamic registration.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]int64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]int64),
	}
}

// Add increments a counter by delta, registering it on first use.
func (mr *MetricsRegistry) Add(key string, delta int64) {
	mr.mu.Lock()
	mr.counters[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Inc increments a counter by one.
func (mr *MetricsRegistry) Inc(key string) {
	mr.Add(key, 1)
}

// Get returns the current value of one counter.
func (mr *MetricsRegistry) Get(key string) int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counters[key]
}

// Snapshot returns a copy of all counters.
func (mr *MetricsRegistry) Snapshot() map[string]int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]int64, len(mr.counters))
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last counter change.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
