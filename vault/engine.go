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

//go:generate mockgen -source=engine.go -destination=mocks/engine.go -package=mocks

// Engine - the vault lifecycle operations and queries
type Engine interface {
	OpenVault(caller account.Account, candidate registry.VaultId) (registry.VaultId, error)
	CloseVault(caller account.Account, id registry.VaultId) error

	Transfer(caller account.Account, to account.Account, value uint64) (uint64, error)
	TransferFrom(from account.Account, to account.Account, value uint64) (uint64, error)

	RequiredAssets() []account.Account
	RequiredAmounts() []uint64
	VaultOwner(id registry.VaultId) (account.Account, error)
	VaultCountFor(owner account.Account) uint64
	TotalVaultCount() uint64
	BalanceOf(owner account.Account) uint64
	EscrowOf(asset account.Account) uint64
	TotalSupply() uint64
	Name() string
	Symbol() string
	Owner() account.Account
	Events(filter event.Filter, start uint64, count int) ([]*event.Event, error)
}
