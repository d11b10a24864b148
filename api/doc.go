// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts of the spscq library: the single-producer/single-consumer
// queue interface and the pluggable allocation strategy for its backing store.
// Implementations live in spsc/ and pool/; this package carries no logic.
package api
