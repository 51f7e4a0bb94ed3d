// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shares

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/rpc/ratelimit"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/vault"
)

// Share
// -----

const (
	rateLimitShare = 200
	rateBurstShare = 100
)

// Share - type for RPC
type Share struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  vault.Engine
	Guard   *request.Guard
}

// New - share ledger handler
func New(log *logger.L, engine vault.Engine, guard *request.Guard) *Share {
	return &Share{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitShare, rateBurstShare),
		Engine:  engine,
		Guard:   guard,
	}
}

// Get share balance
// -----------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner account.Account `json:"owner"`
}

// BalanceReply - a share balance
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Balance - shares held by an account
func (share *Share) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(share.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	share.Log.Infof("Share.Balance: %s", arguments.Owner)

	reply.Balance = share.Engine.BalanceOf(arguments.Owner)
	return nil
}

// Share token information
// -----------------------

// InfoArguments - empty arguments
type InfoArguments struct{}

// EscrowEntry - amount of one asset held across all vaults
type EscrowEntry struct {
	Asset  account.Account `json:"asset"`
	Amount uint64          `json:"amount"`
}

// InfoReply - share token metadata
type InfoReply struct {
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	TotalSupply uint64          `json:"totalSupply"`
	Owner       account.Account `json:"owner"`
	Escrow      []EscrowEntry   `json:"escrow"`
}

// Info - name, symbol, supply and escrow totals
func (share *Share) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(share.Limiter); nil != err {
		return err
	}

	share.Log.Info("Share.Info")

	reply.Name = share.Engine.Name()
	reply.Symbol = share.Engine.Symbol()
	reply.TotalSupply = share.Engine.TotalSupply()
	reply.Owner = share.Engine.Owner()

	assets := share.Engine.RequiredAssets()
	reply.Escrow = make([]EscrowEntry, len(assets))
	for i, asset := range assets {
		reply.Escrow[i] = EscrowEntry{
			Asset:  asset,
			Amount: share.Engine.EscrowOf(asset),
		}
	}
	return nil
}

// Transfer shares
// ---------------

// TransferArguments - signed share transfer
type TransferArguments struct {
	Caller    account.Account   `json:"caller"`
	To        account.Account   `json:"to"`
	Value     uint64            `json:"value"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

func (arguments *TransferArguments) fields() [][]byte {
	return [][]byte{arguments.To.Bytes(), request.Uint64(arguments.Value)}
}

// Pack - the signed part of the request
func (arguments *TransferArguments) Pack() []byte {
	return request.Message("Share.Transfer", arguments.Caller, arguments.Nonce, arguments.fields()...)
}

// Transfer - move shares from the caller
func (share *Share) Transfer(arguments *TransferArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(share.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	share.Log.Infof("Share.Transfer: %s -> %s  value: %d", arguments.Caller, arguments.To, arguments.Value)

	err := share.Guard.Verify("Share.Transfer", arguments.Caller, arguments.Nonce, arguments.Signature, arguments.fields()...)
	if nil != err {
		share.Log.Warnf("Share.Transfer: rejected: %s", err)
		return err
	}

	balance, err := share.Engine.Transfer(arguments.Caller, arguments.To, arguments.Value)
	if nil != err {
		return err
	}
	reply.Balance = balance
	return nil
}

// TransferFromArguments - unsigned transfer between any two accounts
type TransferFromArguments struct {
	From  account.Account `json:"from"`
	To    account.Account `json:"to"`
	Value uint64          `json:"value"`
}

// TransferFrom - move shares between accounts
//
// no authorization is performed: any client may move any holder's shares
func (share *Share) TransferFrom(arguments *TransferFromArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(share.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	share.Log.Infof("Share.TransferFrom: %s -> %s  value: %d", arguments.From, arguments.To, arguments.Value)

	balance, err := share.Engine.TransferFrom(arguments.From, arguments.To, arguments.Value)
	if nil != err {
		return err
	}
	reply.Balance = balance
	return nil
}
