// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - statistics counters that may be read from another
// go routine while they are being updated
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned counter, the zero value is ready to use
type Counter struct {
	n atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return ic.n.Add(1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return ic.n.Add(^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return ic.n.Load()
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.n.Load()
}

// Reset - set back to zero, returns the value before the reset
func (ic *Counter) Reset() uint64 {
	return ic.n.Swap(0)
}
