// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/basketd/fault"
)

// FetchCursor - ordered iteration over the committed data of a pool
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - cursor over the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {

	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// NewPrefixCursor - cursor restricted to keys beginning with prefix
func (p *PoolHandle) NewPrefixCursor(prefix []byte) *FetchCursor {
	start := p.prefixKey(prefix)
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: start,
			Limit: successor(start),
		},
	}
}

// Seek - move the start of the range to key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements and advance the cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.Map(func(key []byte, value []byte) error {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		if len(results) >= count {
			return errStop
		}
		return nil
	})
	if errStop == err {
		err = nil
	}

	if n := len(results); n > 0 {
		// next key after the last one returned
		last := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(last, 0x00)
	}
	return results, err
}

// Map - call f for each element in the range, stopping on error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	s := cursor.pool.store
	s.dbLock.RLock()
	defer s.dbLock.RUnlock()
	if nil == s.db {
		return nil
	}

	iter := s.access.iterator(&cursor.maxRange)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

type stopError struct{}

func (stopError) Error() string { return "stop" }

var errStop error = stopError{}

// smallest key greater than every key having b as prefix
func successor(b []byte) []byte {
	limit := make([]byte, len(b))
	copy(limit, b)
	for i := len(limit) - 1; i >= 0; i -= 1 {
		if limit[i] < 0xff {
			limit[i] += 1
			return limit[:i+1]
		}
	}
	return nil
}
