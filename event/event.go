// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - vault lifecycle notifications
//
// events are appended to a log inside the transaction that caused
// them, so only committed operations are ever recorded
package event

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/registry"
)

// Kind - type of lifecycle event
type Kind byte

// the event kinds
const (
	VaultOpened Kind = 1
	VaultClosed Kind = 2
)

const packedLength = 1 + 4 + account.AccountLength

var kindNames = map[Kind]string{
	VaultOpened: "VaultOpened",
	VaultClosed: "VaultClosed",
}

// String - event name
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// MarshalText - event name
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fault.UnknownEventKind
	}
	return []byte(k.String()), nil
}

// UnmarshalText - from event name
func (k *Kind) UnmarshalText(s []byte) error {
	for kind, name := range kindNames {
		if name == string(s) {
			*k = kind
			return nil
		}
	}
	return fault.UnknownEventKind
}

// Event - one lifecycle notification
type Event struct {
	Sequence uint64           `json:"sequence"`
	Kind     Kind             `json:"kind"`
	Vault    registry.VaultId `json:"vault"`
	Owner    account.Account  `json:"owner"`
}

// Id - digest identifying the event
type Id [32]byte

// String - hex form
func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - hex form
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Id - SHA3-256 of sequence ++ packed event
func (e *Event) Id() Id {
	buffer := make([]byte, 8, 8+packedLength)
	binary.BigEndian.PutUint64(buffer, e.Sequence)
	return Id(sha3.Sum256(append(buffer, e.Pack()...)))
}

// Pack - kind ++ vault ++ owner
func (e *Event) Pack() []byte {
	buffer := make([]byte, 0, packedLength)
	buffer = append(buffer, byte(e.Kind))
	buffer = append(buffer, e.Vault.Bytes()...)
	return append(buffer, e.Owner.Bytes()...)
}

// Unpack - decode a packed event
func Unpack(sequence uint64, buffer []byte) (*Event, error) {
	if packedLength != len(buffer) {
		return nil, fault.TruncatedRecord
	}
	kind := Kind(buffer[0])
	if _, ok := kindNames[kind]; !ok {
		return nil, fault.UnknownEventKind
	}
	vault, err := registry.VaultIdFromBytes(buffer[1:5])
	if nil != err {
		return nil, err
	}
	owner, err := account.FromBytes(buffer[5:])
	if nil != err {
		return nil, err
	}
	return &Event{
		Sequence: sequence,
		Kind:     kind,
		Vault:    vault,
		Owner:    owner,
	}, nil
}
