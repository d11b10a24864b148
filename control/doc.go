// Package control
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Side-channel observability for spscq harnesses. The queue's hot path is
// deliberately silent; anything that wants numbers keeps them here.
package control
