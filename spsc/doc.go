// Package spsc
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer ring buffer.
//
// The queue owns a fixed backing store of capacity+1 slots (one slack slot
// distinguishes full from empty) plus cache-line guard slots on both sides.
// Two atomic cursors coordinate the handoff: the producer publishes writeIdx
// after filling a slot, the consumer publishes readIdx after emptying one.
// Each side additionally keeps a private, non-atomic copy of the opposing
// cursor and refreshes it only when the cached value no longer proves the
// operation legal, so the common case never touches the other core's cache
// line. No mutex, no CAS loop; single-writer-per-cursor makes plain atomic
// load/store sufficient.
package spsc
