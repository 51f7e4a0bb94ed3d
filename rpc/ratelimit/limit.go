// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - pace RPC handlers against a shared token bucket
//
// a handler waits for its reservation rather than failing; only a
// request that can never fit in the bucket is refused
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/basketd/fault"
)

// Limit - wait for one token
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - wait for one token per record requested
//
// a count outside 1..maximumCount still costs a single token and is
// rejected with InvalidCount
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count < 1 || count > maximumCount {
		if err := wait(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return wait(limiter, count)
}

func wait(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
