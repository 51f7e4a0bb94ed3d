// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package basket

import (
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/storage"
)

var basketKey = []byte("basket")

// Establish - record the basket on first use, afterwards verify
// that the configured basket matches the stored one
func Establish(store *storage.Store, b *Basket) error {
	return store.Update(func(trx storage.Transaction) error {
		packed := trx.Get(store.Pool.Basket, basketKey)
		if nil == packed {
			trx.Put(store.Pool.Basket, basketKey, b.Pack())
			return nil
		}
		stored, err := Unpack(packed)
		if nil != err {
			return err
		}
		if !stored.Equal(b) {
			return fault.BasketMismatch
		}
		return nil
	})
}

// Load - the stored basket
func Load(store *storage.Store) (*Basket, error) {
	packed := store.Pool.Basket.Get(basketKey)
	if nil == packed {
		return nil, fault.NotInitialised
	}
	return Unpack(packed)
}
