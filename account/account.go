// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/basketd/fault"
)

// miscellaneous constants
const (
	// AccountLength - number of bytes in the binary form of an account
	AccountLength = ed25519.PublicKeySize

	checksumLength = 4

	// key variant: algorithm in the upper nibble, public key flag in bit 0
	ed25519Algorithm = 0x01
	algorithmShift   = 4
	publicKeyCode    = 0x01
	keyVariant       = ed25519Algorithm<<algorithmShift | publicKeyCode
)

// Account - an ed25519 public key identifying a holder of balances
//
// basket assets are also named by an Account (the address of their
// token ledger) so that both share one key space
type Account [AccountLength]byte

// Zero - the all zero account, never a valid holder
var Zero Account

// FromBytes - convert a binary public key to an account
func FromBytes(buffer []byte) (Account, error) {
	var a Account
	if AccountLength != len(buffer) {
		return a, fault.InvalidKeyLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the checksummed text form of an account
func FromBase58(s string) (Account, error) {
	var a Account

	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return a, fault.CannotDecodeAccount
	}

	if 1+AccountLength+checksumLength != len(buffer) {
		return a, fault.InvalidKeyLength
	}
	if keyVariant != buffer[0] {
		return a, fault.CannotDecodeAccount
	}

	checksumStart := len(buffer) - checksumLength
	checksum := sha3.Sum256(buffer[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], buffer[checksumStart:]) {
		return a, fault.ChecksumMismatch
	}

	copy(a[:], buffer[1:checksumStart])
	return a, nil
}

// Bytes - binary public key
func (a Account) Bytes() []byte {
	return a[:]
}

// IsZero - true for the all zero account
func (a Account) IsZero() bool {
	return Zero == a
}

// String - base58 encoding with key variant and checksum
func (a Account) String() string {
	buffer := make([]byte, 0, 1+AccountLength+checksumLength)
	buffer = append(buffer, keyVariant)
	buffer = append(buffer, a[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (a Account) GoString() string {
	return "<account:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an account to its base58 JSON form
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 JSON form to an account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// CheckSignature - verify an ed25519 signature made by this account
func (a Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(a[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
