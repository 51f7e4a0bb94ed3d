// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - all writes to the pools
//
// nothing is written until Commit; Abort discards every pending write
type Transaction interface {
	Reader
	Put(pool *PoolHandle, key []byte, value []byte)
	PutN(pool *PoolHandle, key []byte, value uint64)
	Delete(pool *PoolHandle, key []byte)
	InUse() bool
	Pending() int
	Commit() error
	Abort()
}

type transaction struct {
	store *Store
	inUse bool
}

func newTransaction(store *Store) *transaction {
	return &transaction{
		store: store,
	}
}

// called with the store's txLock held
func (t *transaction) begin() {
	t.store.access.reset()
	t.inUse = true
}

func (t *transaction) Get(pool *PoolHandle, key []byte) []byte {
	t.mustBeActive("Get")
	t.store.dbLock.RLock()
	defer t.store.dbLock.RUnlock()
	value, err := t.store.access.get(pool.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(pool, key))
}

func (t *transaction) Has(pool *PoolHandle, key []byte) bool {
	t.mustBeActive("Has")
	t.store.dbLock.RLock()
	defer t.store.dbLock.RUnlock()
	found, err := t.store.access.has(pool.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

func (t *transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	t.mustBeActive("Put")
	t.store.access.put(pool.prefixKey(key), value)
}

func (t *transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	t.Put(pool, key, encodeN(value))
}

func (t *transaction) Delete(pool *PoolHandle, key []byte) {
	t.mustBeActive("Delete")
	t.store.access.delete(pool.prefixKey(key))
}

func (t *transaction) InUse() bool {
	return t.inUse
}

// Pending - number of buffered writes
func (t *transaction) Pending() int {
	return t.store.access.pending()
}

// Commit - write all pending data atomically and release the store
func (t *transaction) Commit() error {
	if !t.inUse {
		return fault.NotInitialised
	}
	defer t.finish()

	t.store.dbLock.RLock()
	defer t.store.dbLock.RUnlock()
	if nil == t.store.db {
		return fault.DatabaseIsNotSet
	}
	err := t.store.access.commit()
	if nil != err {
		t.store.log.Errorf("commit error: %s", err)
	}
	return err
}

// Abort - discard all pending data and release the store
func (t *transaction) Abort() {
	if !t.inUse {
		return
	}
	t.finish()
}

func (t *transaction) finish() {
	t.store.access.reset()
	t.inUse = false
	t.store.txLock.Unlock()
}

func (t *transaction) mustBeActive(op string) {
	if !t.inUse {
		logger.Panicf("transaction.%s: no active transaction", op)
	}
}
