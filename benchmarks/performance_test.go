// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance comparison of the SPSC queue against the usual alternatives:
// a buffered channel and a mutex-guarded FIFO. Run with -cpu=2 or higher;
// the pinned variants additionally place producer and consumer on separate
// cores.

package benchmarks

import (
	"runtime"
	"sync"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/spscq/affinity"
	"github.com/momentics/spscq/spsc"
)

const ringCapacity = 1024

// BenchmarkQueuePushPop measures the uncontended single-goroutine hot path.
func BenchmarkQueuePushPop(b *testing.B) {
	q, err := spsc.New[int](ringCapacity)
	if err != nil {
		b.Fatal(err)
	}
	defer q.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		if q.Front() != nil {
			q.Pop()
		}
	}
}

// BenchmarkQueueTransfer measures cross-goroutine throughput.
func BenchmarkQueueTransfer(b *testing.B) {
	q, err := spsc.New[int](ringCapacity)
	if err != nil {
		b.Fatal(err)
	}
	defer q.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < b.N; i++ {
			for q.Front() == nil {
			}
			q.Pop()
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
	wg.Wait()
}

// BenchmarkQueueTransferPinned is BenchmarkQueueTransfer with producer and
// consumer bound to distinct cores, making the coherency traffic pattern
// reproducible.
func BenchmarkQueueTransferPinned(b *testing.B) {
	if runtime.NumCPU() < 2 {
		b.Skip("needs at least two CPUs")
	}
	q, err := spsc.New[int](ringCapacity)
	if err != nil {
		b.Fatal(err)
	}
	defer q.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if affinity.Pin(1) == nil {
			defer runtime.UnlockOSThread()
		}
		for i := 0; i < b.N; i++ {
			for q.Front() == nil {
			}
			q.Pop()
		}
	}()

	if affinity.Pin(0) == nil {
		defer runtime.UnlockOSThread()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
	wg.Wait()
}

// BenchmarkChannelTransfer is the baseline every Go reader knows.
func BenchmarkChannelTransfer(b *testing.B) {
	ch := make(chan int, ringCapacity)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < b.N; i++ {
			<-ch
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ch <- i
	}
	wg.Wait()
}

// BenchmarkMutexQueueTransfer guards an unbounded FIFO with a mutex, the
// design the SPSC ring exists to beat.
func BenchmarkMutexQueueTransfer(b *testing.B) {
	var mu sync.Mutex
	fifo := queue.New()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for received := 0; received < b.N; {
			mu.Lock()
			if fifo.Length() == 0 {
				mu.Unlock()
				continue
			}
			fifo.Remove()
			mu.Unlock()
			received++
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mu.Lock()
		fifo.Add(i)
		mu.Unlock()
	}
	wg.Wait()
}
