// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// accessData - a batch of pending writes over the database
type accessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache overlay
}

func newDA(db *leveldb.DB, cache overlay) *accessData {
	return &accessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *accessData) put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

func (d *accessData) delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// pending writes shadow the database
func (d *accessData) get(key []byte) ([]byte, error) {
	if data, found := d.cache.Get(string(key)); found {
		if dbDelete == data.op {
			return nil, leveldb.ErrNotFound
		}
		return data.value, nil
	}
	return d.db.Get(key, nil)
}

func (d *accessData) has(key []byte) (bool, error) {
	if data, found := d.cache.Get(string(key)); found {
		return dbPut == data.op, nil
	}
	return d.db.Has(key, nil)
}

func (d *accessData) pending() int {
	return d.batch.Len()
}

func (d *accessData) commit() error {
	if 0 == d.batch.Len() {
		return nil
	}
	return d.db.Write(d.batch, nil)
}

func (d *accessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *accessData) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
