// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package basket - the fixed set of asset amounts deposited per vault
//
// a basket is two index-aligned sequences, assets and amounts, set
// once when the system is initialised and never changed afterwards
package basket

import (
	"bytes"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/util"
)

// limit on items in a packed basket
const maximumItems = 64

// Item - one required deposit
type Item struct {
	Asset  account.Account `json:"asset"`
	Amount uint64          `json:"amount"`
}

// Basket - immutable after New
type Basket struct {
	items []Item
}

// New - validate and build a basket from parallel sequences
func New(assets []account.Account, amounts []uint64) (*Basket, error) {
	if len(assets) != len(amounts) {
		return nil, fault.BasketLengthMismatch
	}
	if 0 == len(assets) {
		return nil, fault.EmptyBasket
	}
	if len(assets) > maximumItems {
		return nil, fault.InvalidCount
	}

	seen := make(map[account.Account]struct{}, len(assets))
	items := make([]Item, len(assets))
	for i, asset := range assets {
		if asset.IsZero() {
			return nil, fault.ZeroAccount
		}
		if 0 == amounts[i] {
			return nil, fault.ZeroAmount
		}
		if _, ok := seen[asset]; ok {
			return nil, fault.DuplicateAsset
		}
		seen[asset] = struct{}{}
		items[i] = Item{
			Asset:  asset,
			Amount: amounts[i],
		}
	}
	return &Basket{items: items}, nil
}

// FromItems - build a basket from a list of items
func FromItems(items []Item) (*Basket, error) {
	assets := make([]account.Account, len(items))
	amounts := make([]uint64, len(items))
	for i, item := range items {
		assets[i] = item.Asset
		amounts[i] = item.Amount
	}
	return New(assets, amounts)
}

// Len - number of assets
func (b *Basket) Len() int {
	return len(b.items)
}

// Assets - a copy of the required assets in order
func (b *Basket) Assets() []account.Account {
	assets := make([]account.Account, len(b.items))
	for i, item := range b.items {
		assets[i] = item.Asset
	}
	return assets
}

// Amounts - a copy of the required amounts in order
func (b *Basket) Amounts() []uint64 {
	amounts := make([]uint64, len(b.items))
	for i, item := range b.items {
		amounts[i] = item.Amount
	}
	return amounts
}

// Items - a copy of the items in order
func (b *Basket) Items() []Item {
	items := make([]Item, len(b.items))
	copy(items, b.items)
	return items
}

// Equal - same assets with the same amounts in the same order
func (b *Basket) Equal(other *Basket) bool {
	if nil == b || nil == other {
		return b == other
	}
	return bytes.Equal(b.Pack(), other.Pack())
}

// Pack - binary form
//
//   count ++ (asset ++ amount)...   where count, amount are varints
func (b *Basket) Pack() []byte {
	buffer := util.ToVarint64(uint64(len(b.items)))
	for _, item := range b.items {
		buffer = append(buffer, item.Asset.Bytes()...)
		buffer = util.AppendVarint64(buffer, item.Amount)
	}
	return buffer
}

// Unpack - decode and validate a packed basket
func Unpack(buffer []byte) (*Basket, error) {
	count, n := util.BoundedVarint64(buffer, maximumItems)
	if 0 == n {
		return nil, fault.TruncatedRecord
	}

	assets := make([]account.Account, count)
	amounts := make([]uint64, count)
	for i := 0; i < count; i += 1 {
		if len(buffer) < n+account.AccountLength {
			return nil, fault.TruncatedRecord
		}
		asset, err := account.FromBytes(buffer[n : n+account.AccountLength])
		if nil != err {
			return nil, err
		}
		n += account.AccountLength

		amount, amountLength := util.FromVarint64(buffer[n:])
		if 0 == amountLength {
			return nil, fault.TruncatedRecord
		}
		n += amountLength

		assets[i] = asset
		amounts[i] = amount
	}
	if n != len(buffer) {
		return nil, fault.InvalidItem
	}
	return New(assets, amounts)
}
