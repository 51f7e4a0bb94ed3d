// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - vault identities and ownership
//
// a vault id is present in the registry only while the vault is
// open; the running total counts every vault ever assigned
package registry

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/storage"
)

// VaultId - identifies a vault
type VaultId uint32

// key of the running total in the counters pool
var totalKey = []byte("vaults")

// Bytes - big endian key form
func (id VaultId) Bytes() []byte {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(id))
	return buffer
}

// VaultIdFromBytes - decode the key form
func VaultIdFromBytes(buffer []byte) (VaultId, error) {
	if 4 != len(buffer) {
		return 0, fault.InvalidKeyLength
	}
	return VaultId(binary.BigEndian.Uint32(buffer)), nil
}

// Registry - the vault registry over storage pools
type Registry struct {
	vaults   *storage.PoolHandle
	owners   *storage.PoolHandle
	counters *storage.PoolHandle
}

// New - registry on the standard pools of a store
func New(store *storage.Store) *Registry {
	return &Registry{
		vaults:   store.Pool.Vaults,
		owners:   store.Pool.OwnerVaultCount,
		counters: store.Pool.Counters,
	}
}

// Owner - the owner of an open vault
func (r *Registry) Owner(rd storage.Reader, id VaultId) (account.Account, error) {
	buffer := rd.Get(r.vaults, id.Bytes())
	if nil == buffer {
		return account.Zero, fault.VaultNotFound
	}
	return account.FromBytes(buffer)
}

// IsOpen - true if the id is currently assigned
func (r *Registry) IsOpen(rd storage.Reader, id VaultId) bool {
	return rd.Has(r.vaults, id.Bytes())
}

// CountFor - vaults currently owned, zero for an unknown owner
func (r *Registry) CountFor(rd storage.Reader, owner account.Account) uint64 {
	n, _ := rd.GetN(r.owners, owner.Bytes())
	return n
}

// Total - vaults ever assigned
func (r *Registry) Total(rd storage.Reader) uint64 {
	n, _ := rd.GetN(r.counters, totalKey)
	return n
}

// AssignNew - give the owner the next unused id
//
// the search starts at the running total and steps over ids that a
// specific assignment already holds open
func (r *Registry) AssignNew(trx storage.Transaction, owner account.Account) (VaultId, error) {
	total := r.Total(trx)
	for n := total; n <= math.MaxUint32; n += 1 {
		id := VaultId(n)
		if r.IsOpen(trx, id) {
			continue
		}
		r.record(trx, id, owner, total)
		return id, nil
	}
	return 0, fault.VaultLimitReached
}

// Assign - give the owner a specific id
func (r *Registry) Assign(trx storage.Transaction, id VaultId, owner account.Account) error {
	if r.IsOpen(trx, id) {
		return fault.VaultAlreadyExists
	}
	total := r.Total(trx)
	if math.MaxUint64 == total {
		return fault.VaultLimitReached
	}
	r.record(trx, id, owner, total)
	return nil
}

func (r *Registry) record(trx storage.Transaction, id VaultId, owner account.Account, total uint64) {
	trx.Put(r.vaults, id.Bytes(), owner.Bytes())
	trx.PutN(r.counters, totalKey, total+1)
	trx.PutN(r.owners, owner.Bytes(), r.CountFor(trx, owner)+1)
}

// Release - remove an open vault and return its recorded owner
func (r *Registry) Release(trx storage.Transaction, id VaultId) (account.Account, error) {
	owner, err := r.Owner(trx, id)
	if fault.VaultNotFound == err {
		return account.Zero, fault.VaultNotOpen
	} else if nil != err {
		return account.Zero, err
	}

	count := r.CountFor(trx, owner)
	if 0 == count {
		return account.Zero, fault.OwnerCountUnderflow
	}

	trx.Delete(r.vaults, id.Bytes())
	if 1 == count {
		trx.Delete(r.owners, owner.Bytes())
	} else {
		trx.PutN(r.owners, owner.Bytes(), count-1)
	}
	return owner, nil
}
