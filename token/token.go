// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - plain single-asset transfer ledgers
//
// each token is identified by an account and holds balances for any
// number of accounts; a token can serve as a basket asset
package token

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/ledger"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/util"
)

// limit on packed name and symbol
const maximumNameLength = 64

// Info - token metadata
type Info struct {
	Id          account.Account `json:"id"`
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Owner       account.Account `json:"owner"`
	TotalSupply uint64          `json:"totalSupply"`
	Selectors   []Selector      `json:"selectors"`
}

// Tokens - all tokens held in a store
type Tokens struct {
	data       *storage.PoolHandle
	balances   *storage.PoolHandle
	references *storage.PoolHandle
}

// outcomes of a referenced transfer
const (
	referenceVoided  = byte(0x00)
	referenceApplied = byte(0x01)
)

// New - tokens on the standard pools of a store
func New(store *storage.Store) *Tokens {
	return &Tokens{
		data:       store.Pool.TokenData,
		balances:   store.Pool.TokenBalances,
		references: store.Pool.TokenReferences,
	}
}

func (t *Tokens) ledger(id account.Account) ledger.Balances {
	return ledger.NewBalances(t.balances, id.Bytes())
}

// Create - a new token with its whole supply held by owner
func (t *Tokens) Create(trx storage.Transaction, id account.Account, name string, symbol string, owner account.Account, supply uint64) error {
	if id.IsZero() || owner.IsZero() {
		return fault.ZeroAccount
	}
	if len(name) > maximumNameLength || len(symbol) > maximumNameLength {
		return fault.InvalidItem
	}
	if trx.Has(t.data, id.Bytes()) {
		return fault.TokenAlreadyExists
	}
	info := &Info{
		Id:          id,
		Name:        name,
		Symbol:      symbol,
		Owner:       owner,
		TotalSupply: supply,
	}
	trx.Put(t.data, id.Bytes(), info.pack())
	_, err := t.ledger(id).Credit(trx, owner, supply)
	return err
}

// Exists - true if the token has been created
func (t *Tokens) Exists(rd storage.Reader, id account.Account) bool {
	return rd.Has(t.data, id.Bytes())
}

// Info - metadata of one token
func (t *Tokens) Info(rd storage.Reader, id account.Account) (*Info, error) {
	packed := rd.Get(t.data, id.Bytes())
	if nil == packed {
		return nil, fault.TokenNotFound
	}
	info, err := unpackInfo(packed)
	if nil != err {
		return nil, err
	}
	info.Id = id
	return info, nil
}

// List - metadata of all tokens
func (t *Tokens) List() ([]*Info, error) {
	tokens := []*Info{}
	err := t.data.NewFetchCursor().Map(func(key []byte, value []byte) error {
		id, err := account.FromBytes(key)
		if nil != err {
			return err
		}
		info, err := unpackInfo(value)
		if nil != err {
			return err
		}
		info.Id = id
		tokens = append(tokens, info)
		return nil
	})
	return tokens, err
}

// BalanceOf - zero for an unknown account
func (t *Tokens) BalanceOf(rd storage.Reader, id account.Account, owner account.Account) uint64 {
	return t.ledger(id).BalanceOf(rd, owner)
}

// TotalSupply - zero for an unknown token
func (t *Tokens) TotalSupply(rd storage.Reader, id account.Account) uint64 {
	info, err := t.Info(rd, id)
	if nil != err {
		return 0
	}
	return info.TotalSupply
}

// Transfer - move value from the caller, returning the caller's new balance
func (t *Tokens) Transfer(trx storage.Transaction, id account.Account, caller account.Account, to account.Account, value uint64) (uint64, error) {
	if !t.Exists(trx, id) {
		return 0, fault.TokenNotFound
	}
	return t.ledger(id).Move(trx, caller, to, value)
}

// TransferFrom - move value between any two accounts, returning the
// new balance of from
//
// no authorization is performed: any caller can move any balance
func (t *Tokens) TransferFrom(trx storage.Transaction, id account.Account, from account.Account, to account.Account, value uint64) (uint64, error) {
	if !t.Exists(trx, id) {
		return 0, fault.TokenNotFound
	}
	return t.ledger(id).Move(trx, from, to, value)
}

// TransferFromReference - TransferFrom recorded under a reference
//
// repeating an applied reference moves nothing and returns the current
// balance of from; a reference voided by Resolve can never be applied
func (t *Tokens) TransferFromReference(trx storage.Transaction, id account.Account, reference []byte, from account.Account, to account.Account, value uint64) (uint64, error) {
	if 0 == len(reference) {
		return t.TransferFrom(trx, id, from, to, value)
	}
	if !t.Exists(trx, id) {
		return 0, fault.TokenNotFound
	}
	key := append(id.Bytes(), reference...)
	if outcome := trx.Get(t.references, key); nil != outcome {
		if 1 == len(outcome) && referenceApplied == outcome[0] {
			return t.BalanceOf(trx, id, from), nil
		}
		return 0, fault.ReferenceVoided
	}
	balance, err := t.TransferFrom(trx, id, from, to, value)
	if nil != err {
		return balance, err
	}
	trx.Put(t.references, key, []byte{referenceApplied})
	return balance, nil
}

// Resolve - true if the referenced transfer was applied
//
// an unknown reference is voided so a late arrival of the same
// transfer is refused and the answer stays true to what happens
func (t *Tokens) Resolve(trx storage.Transaction, id account.Account, reference []byte) (bool, error) {
	if 0 == len(reference) {
		return false, fault.InvalidItem
	}
	if !t.Exists(trx, id) {
		return false, fault.TokenNotFound
	}
	key := append(id.Bytes(), reference...)
	if outcome := trx.Get(t.references, key); nil != outcome {
		return 1 == len(outcome) && referenceApplied == outcome[0], nil
	}
	trx.Put(t.references, key, []byte{referenceVoided})
	return false, nil
}

// MintTo - create value for to, only the token owner may do this
func (t *Tokens) MintTo(trx storage.Transaction, id account.Account, caller account.Account, to account.Account, value uint64) (uint64, error) {
	info, err := t.Info(trx, id)
	if nil != err {
		return 0, err
	}
	if caller != info.Owner {
		return 0, fault.NotTokenOwner
	}
	if info.TotalSupply+value < info.TotalSupply {
		return 0, fault.Overflow
	}
	balance, err := t.ledger(id).Credit(trx, to, value)
	if nil != err {
		return balance, err
	}
	info.TotalSupply += value
	trx.Put(t.data, id.Bytes(), info.pack())
	return balance, nil
}

// pack the metadata
//
//   name ++ symbol ++ owner ++ supply   where name, symbol are length prefixed
func (info *Info) pack() []byte {
	buffer := util.AppendBytes(nil, []byte(info.Name))
	buffer = util.AppendBytes(buffer, []byte(info.Symbol))
	buffer = append(buffer, info.Owner.Bytes()...)
	return util.AppendVarint64(buffer, info.TotalSupply)
}

func unpackInfo(buffer []byte) (*Info, error) {
	name, n := util.ReadBytes(buffer, maximumNameLength)
	if 0 == n {
		return nil, fault.TruncatedRecord
	}
	buffer = buffer[n:]

	symbol, n := util.ReadBytes(buffer, maximumNameLength)
	if 0 == n {
		return nil, fault.TruncatedRecord
	}
	buffer = buffer[n:]

	if len(buffer) < account.AccountLength {
		return nil, fault.TruncatedRecord
	}
	owner, err := account.FromBytes(buffer[:account.AccountLength])
	if nil != err {
		return nil, err
	}
	buffer = buffer[account.AccountLength:]

	supply, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.TruncatedRecord
	}

	return &Info{
		Name:        string(name),
		Symbol:      string(symbol),
		Owner:       owner,
		TotalSupply: supply,
		Selectors:   []Selector{TransferFromSelector},
	}, nil
}

// Establish - create the token unless it already exists
//
// an existing token keeps its balances and supply
func (t *Tokens) Establish(store *storage.Store, id account.Account, name string, symbol string, owner account.Account, supply uint64) error {
	return store.Update(func(trx storage.Transaction) error {
		if t.Exists(trx, id) {
			return nil
		}
		return t.Create(trx, id, name, symbol, owner, supply)
	})
}
