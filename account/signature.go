// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
)

// Signature - detached ed25519 signature, hex in text form
type Signature []byte

// String - hex form for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to hex text
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	b := make([]byte, size)
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert hex text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}
