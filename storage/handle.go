// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - the structure for a pool
type PoolHandle struct {
	prefix byte
	limit  []byte
	store  *Store
}

// Element - a key/value pair returned by a cursor
type Element struct {
	Key   []byte
	Value []byte
}

// Reader - read access to the pools
//
// both the committed store and an open transaction satisfy this;
// a transaction also sees its own uncommitted writes
type Reader interface {
	Get(pool *PoolHandle, key []byte) []byte
	GetN(pool *PoolHandle, key []byte) (uint64, bool)
	Has(pool *PoolHandle, key []byte) bool
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read committed data for a key, nil if not present
func (p *PoolHandle) Get(key []byte) []byte {
	s := p.store
	s.dbLock.RLock()
	defer s.dbLock.RUnlock()
	if nil == s.db {
		return nil
	}
	value, err := s.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read committed data as a big endian uint64
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check whether committed data exists for a key
func (p *PoolHandle) Has(key []byte) bool {
	s := p.store
	s.dbLock.RLock()
	defer s.dbLock.RUnlock()
	if nil == s.db {
		return false
	}
	value, err := s.db.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// Get - Reader access to committed data
func (s *Store) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

// GetN - Reader access to committed data
func (s *Store) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.GetN(key)
}

// Has - Reader access to committed data
func (s *Store) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func encodeN(value uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}
