// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - signed client requests
//
// a mutating request names its caller, carries a nonce and an ed25519
// signature over:
//
//   method ++ caller ++ field... ++ varint(nonce)
//
// where each field is length prefixed.  The nonce is the client's clock
// in nanoseconds so a guard can reject stale requests and only needs
// to remember nonces seen within the acceptance window.
package request

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/util"
)

// DefaultWindow - how far a nonce may differ from the server clock
const DefaultWindow = 5 * time.Minute

// Message - the bytes covered by a request signature
func Message(method string, caller account.Account, nonce uint64, fields ...[]byte) []byte {
	message := util.AppendBytes(nil, []byte(method))
	message = append(message, caller.Bytes()...)
	for _, field := range fields {
		message = util.AppendBytes(message, field)
	}
	return util.AppendVarint64(message, nonce)
}

// Uint64 - a numeric field
func Uint64(value uint64) []byte {
	return util.ToVarint64(value)
}

// Nonce - nonce for a request made now
func Nonce() uint64 {
	return uint64(time.Now().UnixNano())
}

// Guard - signature check and replay protection
type Guard struct {
	window time.Duration
	seen   *cache.Cache
	now    func() time.Time
}

// NewGuard - accept nonces within window of the current time
func NewGuard(window time.Duration) *Guard {
	return &Guard{
		window: window,
		seen:   cache.New(2*window, window),
		now:    time.Now,
	}
}

// Verify - check a signed request, remembering its nonce
func (g *Guard) Verify(method string, caller account.Account, nonce uint64, signature account.Signature, fields ...[]byte) error {
	if caller.IsZero() {
		return fault.ZeroAccount
	}

	now := g.now().UnixNano()
	delta := now - int64(nonce)
	if delta < 0 {
		delta = -delta
	}
	if int64(nonce) < 0 || time.Duration(delta) > g.window {
		return fault.ExpiredRequest
	}

	message := Message(method, caller, nonce, fields...)
	if err := caller.CheckSignature(message, signature); nil != err {
		return err
	}

	key := caller.String() + ":" + strconv.FormatUint(nonce, 10)
	if err := g.seen.Add(key, struct{}{}, cache.DefaultExpiration); nil != err {
		return fault.DuplicateRequest
	}
	return nil
}
