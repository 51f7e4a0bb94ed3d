// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - escrow and pooled share balances
//
// escrow holds the system's deposit of each basket asset and is keyed
// by asset; shares are keyed by account; the two never share a pool
package ledger

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/storage"
)

// key of the share supply in the counters pool
var supplyKey = []byte("supply")

// Ledger - escrow and share balances with the share supply
type Ledger struct {
	Escrow   Balances
	Shares   Balances
	counters *storage.PoolHandle
}

// New - ledger on the standard pools of a store
func New(store *storage.Store) *Ledger {
	return &Ledger{
		Escrow:   NewBalances(store.Pool.Escrow, nil),
		Shares:   NewBalances(store.Pool.Shares, nil),
		counters: store.Pool.Counters,
	}
}

// TotalSupply - sum of all share balances
func (l *Ledger) TotalSupply(rd storage.Reader) uint64 {
	n, _ := rd.GetN(l.counters, supplyKey)
	return n
}

// Mint - create shares for an account
func (l *Ledger) Mint(trx storage.Transaction, to account.Account, amount uint64) (uint64, error) {
	supply := l.TotalSupply(trx)
	if supply+amount < supply {
		return 0, fault.Overflow
	}
	balance, err := l.Shares.Credit(trx, to, amount)
	if nil != err {
		return balance, err
	}
	trx.PutN(l.counters, supplyKey, supply+amount)
	return balance, nil
}

// Burn - destroy shares held by an account
func (l *Ledger) Burn(trx storage.Transaction, from account.Account, amount uint64) (uint64, error) {
	balance, err := l.Shares.Debit(trx, from, amount)
	if nil != err {
		return balance, err
	}
	supply := l.TotalSupply(trx)
	if supply < amount {
		return 0, fault.InsufficientBalance
	}
	trx.PutN(l.counters, supplyKey, supply-amount)
	return balance, nil
}
