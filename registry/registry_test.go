// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func setupTestRegistry(t *testing.T) (*storage.Store, *registry.Registry) {
	setupTestLogger()
	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory store error: %s", err)
	}
	return store, registry.New(store)
}

func teardownTestRegistry(store *storage.Store) {
	store.Close()
	removeFiles()
}

func owner(b byte) account.Account {
	a := account.Account{}
	a[0] = 0xee
	a[31] = b
	return a
}

func TestEmptyRegistry(t *testing.T) {
	store, r := setupTestRegistry(t)
	defer teardownTestRegistry(store)

	_, err := r.Owner(store, 0)
	assert.Equal(t, fault.VaultNotFound, err, "wrong error for missing vault")
	assert.False(t, r.IsOpen(store, 0), "missing vault is open")
	assert.Equal(t, uint64(0), r.CountFor(store, owner(1)), "unknown owner has vaults")
	assert.Equal(t, uint64(0), r.Total(store), "empty registry has vaults")
}

func TestAssignNewAndRelease(t *testing.T) {
	store, r := setupTestRegistry(t)
	defer teardownTestRegistry(store)

	alice := owner(1)

	err := store.Update(func(trx storage.Transaction) error {
		id, err := r.AssignNew(trx, alice)
		assert.Nil(t, err, "first assign")
		assert.Equal(t, registry.VaultId(0), id, "first id")

		id, err = r.AssignNew(trx, alice)
		assert.Nil(t, err, "second assign")
		assert.Equal(t, registry.VaultId(1), id, "second id")
		return nil
	})
	assert.Nil(t, err, "update error")

	assert.Equal(t, uint64(2), r.Total(store), "wrong total")
	assert.Equal(t, uint64(2), r.CountFor(store, alice), "wrong owner count")
	o, err := r.Owner(store, 1)
	assert.Nil(t, err, "owner error")
	assert.Equal(t, alice, o, "wrong owner")

	err = store.Update(func(trx storage.Transaction) error {
		o, err := r.Release(trx, 0)
		assert.Nil(t, err, "release error")
		assert.Equal(t, alice, o, "released wrong owner")
		return nil
	})
	assert.Nil(t, err, "update error")

	assert.False(t, r.IsOpen(store, 0), "released vault still open")
	assert.Equal(t, uint64(1), r.CountFor(store, alice), "owner count not decremented")
	assert.Equal(t, uint64(2), r.Total(store), "total must never decrease")

	err = store.Update(func(trx storage.Transaction) error {
		_, err := r.Release(trx, 0)
		return err
	})
	assert.Equal(t, fault.VaultNotOpen, err, "double release")
}

func TestAssignCandidate(t *testing.T) {
	store, r := setupTestRegistry(t)
	defer teardownTestRegistry(store)

	alice := owner(1)
	bob := owner(2)

	err := store.Update(func(trx storage.Transaction) error {
		return r.Assign(trx, 7, alice)
	})
	assert.Nil(t, err, "assign error")

	err = store.Update(func(trx storage.Transaction) error {
		return r.Assign(trx, 7, bob)
	})
	assert.Equal(t, fault.VaultAlreadyExists, err, "collision accepted")

	assert.Equal(t, uint64(1), r.Total(store), "wrong total")
	assert.Equal(t, uint64(0), r.CountFor(store, bob), "failed assign changed count")
}

func TestAssignNewSkipsOpenIds(t *testing.T) {
	store, r := setupTestRegistry(t)
	defer teardownTestRegistry(store)

	// specific assignments took the ids the counter produces next
	err := store.Update(func(trx storage.Transaction) error {
		if err := r.Assign(trx, 1, owner(1)); nil != err {
			return err
		}
		return r.Assign(trx, 2, owner(1))
	})
	assert.Nil(t, err, "assign error")
	assert.Equal(t, uint64(2), r.Total(store), "wrong total")

	var id registry.VaultId
	err = store.Update(func(trx storage.Transaction) error {
		id, err = r.AssignNew(trx, owner(2))
		return err
	})
	assert.Nil(t, err, "counter assign blocked by open ids")
	assert.Equal(t, registry.VaultId(3), id, "wrong skipped id")
	assert.Equal(t, uint64(3), r.Total(store), "wrong total")

	o, err := r.Owner(store, 2)
	assert.Nil(t, err, "owner error")
	assert.Equal(t, owner(1), o, "open vault overwritten")

	// the next counter id is open again, so it is skipped as well
	err = store.Update(func(trx storage.Transaction) error {
		id, err = r.AssignNew(trx, owner(2))
		return err
	})
	assert.Nil(t, err, "second counter assign")
	assert.Equal(t, registry.VaultId(4), id, "wrong second id")
	assert.Equal(t, uint64(2), r.CountFor(store, owner(2)), "wrong owner count")
}

func TestAssignNewLimit(t *testing.T) {
	store, r := setupTestRegistry(t)
	defer teardownTestRegistry(store)

	err := store.Update(func(trx storage.Transaction) error {
		trx.PutN(store.Pool.Counters, []byte("vaults"), math.MaxUint32+1)
		return nil
	})
	assert.Nil(t, err, "seed error")

	err = store.Update(func(trx storage.Transaction) error {
		_, err := r.AssignNew(trx, owner(1))
		return err
	})
	assert.Equal(t, fault.VaultLimitReached, err, "id space exhausted but assigned")
	assert.Equal(t, uint64(math.MaxUint32+1), r.Total(store), "total changed")
	assert.Equal(t, uint64(0), r.CountFor(store, owner(1)), "owner count changed")

	// the last id is still available to the counter
	err = store.Update(func(trx storage.Transaction) error {
		trx.PutN(store.Pool.Counters, []byte("vaults"), math.MaxUint32)
		return nil
	})
	assert.Nil(t, err, "seed error")

	err = store.Update(func(trx storage.Transaction) error {
		id, err := r.AssignNew(trx, owner(1))
		assert.Equal(t, registry.VaultId(math.MaxUint32), id, "wrong last id")
		return err
	})
	assert.Nil(t, err, "last id refused")

	err = store.Update(func(trx storage.Transaction) error {
		trx.PutN(store.Pool.Counters, []byte("vaults"), math.MaxUint64)
		return nil
	})
	assert.Nil(t, err, "seed error")

	err = store.Update(func(trx storage.Transaction) error {
		return r.Assign(trx, 9, owner(2))
	})
	assert.Equal(t, fault.VaultLimitReached, err, "total wrapped")
	assert.False(t, r.IsOpen(store, 9), "vault recorded past the limit")
}

func TestReleaseOwnerCountUnderflow(t *testing.T) {
	store, r := setupTestRegistry(t)
	defer teardownTestRegistry(store)

	alice := owner(1)
	id := registry.VaultId(5)

	// an open vault whose owner has no count on record
	err := store.Update(func(trx storage.Transaction) error {
		trx.Put(store.Pool.Vaults, id.Bytes(), alice.Bytes())
		return nil
	})
	assert.Nil(t, err, "seed error")

	trx, err := store.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	_, err = r.Release(trx, id)
	assert.Equal(t, fault.OwnerCountUnderflow, err, "underflow not detected")
	assert.Equal(t, 0, trx.Pending(), "release wrote before failing")
	trx.Abort()

	assert.True(t, r.IsOpen(store, id), "vault removed on underflow")
	assert.Equal(t, uint64(0), r.CountFor(store, alice), "owner count changed")
}

func TestVaultIdBytes(t *testing.T) {
	id := registry.VaultId(0x01020304)
	assert.Equal(t, []byte{1, 2, 3, 4}, id.Bytes(), "wrong bytes")

	decoded, err := registry.VaultIdFromBytes(id.Bytes())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, id, decoded, "round trip")

	_, err = registry.VaultIdFromBytes([]byte{1})
	assert.Equal(t, fault.InvalidKeyLength, err, "short key")
}
