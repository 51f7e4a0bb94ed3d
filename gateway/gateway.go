// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gateway - delegated transfers of basket assets
//
// every basket asset is a token ledger exposing the transfer-from
// operation; a gateway performs that operation on the engine's behalf
package gateway

//go:generate mockgen -source=gateway.go -destination=mocks/gateway.go -package=mocks

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/storage"
)

// Gateway - move amount of asset from one account to another
//
// TransferFrom returns the new balance of from. A transactional
// gateway writes into trx so an abort undoes it; a non-transactional
// one has already completed the move when it returns
type Gateway interface {
	Supports(asset account.Account) error
	Transactional(asset account.Account) bool
	TransferFrom(trx storage.Transaction, asset account.Account, from account.Account, to account.Account, amount uint64) (uint64, error)
}
