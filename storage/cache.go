// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// the write overlay of an uncommitted transaction
type overlay interface {
	Get(string) (cacheData, bool)
	Set(int, string, []byte)
	Clear()
}

const (
	dbPut = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

// entries must live for the whole transaction so never expire
func newCache() overlay {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *dbCache) Get(key string) (cacheData, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
