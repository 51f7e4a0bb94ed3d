// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/storage"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

func loadElements(t *testing.T, s *storage.Store) {
	err := s.Update(func(trx storage.Transaction) error {
		for i := len(expectedElements) - 1; i >= 0; i -= 1 {
			e := expectedElements[i]
			trx.Put(s.Pool.TestData, e.Key, e.Value)
		}
		// neighbouring pool must not leak into the cursor
		trx.Put(s.Pool.Vaults, []byte("key-zero"), []byte("other"))
		return nil
	})
	assert.Nil(t, err, "load error")
}

func TestFetchAll(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore(s)
	loadElements(t, s)

	cursor := s.Pool.TestData.NewFetchCursor()
	data, err := cursor.Fetch(100)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements, data, "wrong elements")
}

func TestFetchInPages(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore(s)
	loadElements(t, s)

	cursor := s.Pool.TestData.NewFetchCursor()

	all := []storage.Element{}
	for {
		data, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch error")
		if 0 == len(data) {
			break
		}
		all = append(all, data...)
	}
	assert.Equal(t, expectedElements, all, "paged fetch mismatch")
}

func TestFetchSeek(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore(s)
	loadElements(t, s)

	data, err := s.Pool.TestData.NewFetchCursor().Seek([]byte("key-seven")).Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[3:5], data, "wrong elements after seek")
}

func TestPrefixCursor(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore(s)
	loadElements(t, s)

	data, err := s.Pool.TestData.NewPrefixCursor([]byte("key-t")).Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[5:], data, "wrong prefix elements")
}

func TestFetchInvalid(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore(s)

	_, err := s.Pool.TestData.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")

	var cursor *storage.FetchCursor
	_, err = cursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "wrong error")
}

func TestMapStopsOnError(t *testing.T) {
	s := setupTestStore(t)
	defer teardownTestStore(s)
	loadElements(t, s)

	n := 0
	err := s.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 2 == n {
			return fault.InvalidItem
		}
		return nil
	})
	assert.Equal(t, fault.InvalidItem, err, "wrong error")
	assert.Equal(t, 2, n, "map did not stop")
}
