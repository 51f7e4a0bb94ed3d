// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "key", []byte("value"))
	data, found := c.Get("key")
	assert.True(t, found, "key not found")
	assert.Equal(t, dbPut, data.op, "wrong op")
	assert.Equal(t, []byte("value"), data.value, "wrong value")

	c.Set(dbDelete, "key", nil)
	data, found = c.Get("key")
	assert.True(t, found, "deleted key must still be recorded")
	assert.Equal(t, dbDelete, data.op, "wrong op")

	c.Clear()
	_, found = c.Get("key")
	assert.False(t, found, "cache not cleared")
}

func TestSuccessor(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x03}, successor([]byte{0x01, 0x02}), "simple increment")
	assert.Equal(t, []byte{0x02}, successor([]byte{0x01, 0xff}), "carry")
	assert.Nil(t, successor([]byte{0xff, 0xff}), "no successor")
}
