// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - bounded count of active connections
package counter

import (
	"sync/atomic"
)

// Counter - number of slots currently held
type Counter uint64

// Acquire - take a slot if fewer than limit are held
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// Release - give back a slot taken by Acquire
func (c *Counter) Release() {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if 0 == n {
			return
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n-1) {
			return
		}
	}
}

// Uint64 - slots currently held
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
