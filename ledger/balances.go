// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/storage"
)

// Balances - account to amount mapping stored in one pool
//
// an optional prefix partitions a pool between several mappings
type Balances struct {
	pool   *storage.PoolHandle
	prefix []byte
}

// NewBalances - mapping over pool, keys prefixed by prefix
func NewBalances(pool *storage.PoolHandle, prefix []byte) Balances {
	return Balances{
		pool:   pool,
		prefix: prefix,
	}
}

func (b Balances) key(a account.Account) []byte {
	k := make([]byte, 0, len(b.prefix)+account.AccountLength)
	k = append(k, b.prefix...)
	return append(k, a.Bytes()...)
}

// BalanceOf - zero for an unknown account
func (b Balances) BalanceOf(rd storage.Reader, a account.Account) uint64 {
	n, _ := rd.GetN(b.pool, b.key(a))
	return n
}

// Credit - add amount, failing on wraparound
func (b Balances) Credit(trx storage.Transaction, a account.Account, amount uint64) (uint64, error) {
	balance := b.BalanceOf(trx, a)
	if 0 == amount {
		return balance, nil
	}
	total := balance + amount
	if total < balance {
		return balance, fault.Overflow
	}
	trx.PutN(b.pool, b.key(a), total)
	return total, nil
}

// Debit - subtract amount, failing if the balance is short
//
// a balance reaching zero is removed
func (b Balances) Debit(trx storage.Transaction, a account.Account, amount uint64) (uint64, error) {
	balance := b.BalanceOf(trx, a)
	if balance < amount {
		return balance, fault.InsufficientBalance
	}
	if 0 == amount {
		return balance, nil
	}
	remaining := balance - amount
	if 0 == remaining {
		trx.Delete(b.pool, b.key(a))
	} else {
		trx.PutN(b.pool, b.key(a), remaining)
	}
	return remaining, nil
}

// Move - debit from and credit to, returning the new balance of from
func (b Balances) Move(trx storage.Transaction, from account.Account, to account.Account, amount uint64) (uint64, error) {
	remaining, err := b.Debit(trx, from, amount)
	if nil != err {
		return remaining, err
	}
	if _, err := b.Credit(trx, to, amount); nil != err {
		return 0, err
	}
	return b.BalanceOf(trx, from), nil
}
