// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/basketd/fault"
)

// PrivateKey - ed25519 signing key of an account
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh random key
func NewPrivateKey() (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromHex - decode a hex encoded seed or full private key
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	buffer, err := hex.DecodeString(strings.TrimSpace(s))
	if nil != err {
		return nil, err
	}
	switch len(buffer) {
	case ed25519.SeedSize:
		return &PrivateKey{key: ed25519.NewKeyFromSeed(buffer)}, nil
	case ed25519.PrivateKeySize:
		return &PrivateKey{key: ed25519.PrivateKey(buffer)}, nil
	default:
		return nil, fault.InvalidKeyLength
	}
}

// Account - the public account for this key
func (p *PrivateKey) Account() Account {
	var a Account
	copy(a[:], p.key.Public().(ed25519.PublicKey))
	return a
}

// Sign - detached signature of a message
func (p *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(p.key, message))
}

// String - hex form of the seed
func (p *PrivateKey) String() string {
	return hex.EncodeToString(p.key.Seed())
}
