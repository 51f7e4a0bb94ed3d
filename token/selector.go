// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/hex"

	"github.com/bitmark-inc/basketd/fault"
)

// Selector - four byte operation identifier
type Selector [4]byte

// TransferFromSelector - the delegated transfer every basket asset must expose
var TransferFromSelector = Selector{0, 0, 0, 6}

// String - hex form
func (s Selector) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalText - hex form
func (s Selector) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(s))
	buffer := make([]byte, size)
	hex.Encode(buffer, s[:])
	return buffer, nil
}

// UnmarshalText - from hex
func (s *Selector) UnmarshalText(text []byte) error {
	if hex.EncodedLen(len(s)) != len(text) {
		return fault.NotTokenSelector
	}
	if _, err := hex.Decode(s[:], text); nil != err {
		return fault.NotTokenSelector
	}
	return nil
}
