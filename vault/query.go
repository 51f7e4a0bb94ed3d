// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/event"
	"github.com/bitmark-inc/basketd/registry"
)

// queries read committed state only

func (e *engine) RequiredAssets() []account.Account {
	return e.basket.Assets()
}

func (e *engine) RequiredAmounts() []uint64 {
	return e.basket.Amounts()
}

func (e *engine) VaultOwner(id registry.VaultId) (account.Account, error) {
	return e.registry.Owner(e.store, id)
}

func (e *engine) VaultCountFor(owner account.Account) uint64 {
	return e.registry.CountFor(e.store, owner)
}

func (e *engine) TotalVaultCount() uint64 {
	return e.registry.Total(e.store)
}

func (e *engine) BalanceOf(owner account.Account) uint64 {
	return e.ledger.Shares.BalanceOf(e.store, owner)
}

func (e *engine) EscrowOf(asset account.Account) uint64 {
	return e.ledger.Escrow.BalanceOf(e.store, asset)
}

func (e *engine) TotalSupply() uint64 {
	return e.ledger.TotalSupply(e.store)
}

func (e *engine) Name() string {
	return Name
}

func (e *engine) Symbol() string {
	return Symbol
}

func (e *engine) Owner() account.Account {
	return e.owner
}

func (e *engine) Events(filter event.Filter, start uint64, count int) ([]*event.Event, error) {
	return e.events.List(filter, start, count)
}
