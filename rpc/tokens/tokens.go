// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"github.com/pborman/uuid"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/gateway"
	"github.com/bitmark-inc/basketd/rpc/ratelimit"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/token"
)

// Token
// -----

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for RPC
//
// Token.Info, Token.TransferFrom and Token.Applied are the calls a
// remote gateway makes
type Token struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Store   *storage.Store
	Tokens  *token.Tokens
	Guard   *request.Guard
}

// New - token ledger handler
func New(log *logger.L, store *storage.Store, tokens *token.Tokens, guard *request.Guard) *Token {
	return &Token{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitToken, rateBurstToken),
		Store:   store,
		Tokens:  tokens,
		Guard:   guard,
	}
}

// Token balance
// -------------

// BalanceArguments - token and holder
type BalanceArguments struct {
	Token account.Account `json:"token"`
	Owner account.Account `json:"owner"`
}

// Balance - token balance of a holder
func (t *Token) Balance(arguments *BalanceArguments, reply *gateway.BalanceReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	t.Log.Infof("Token.Balance: token: %s  owner: %s", arguments.Token, arguments.Owner)

	if !t.Tokens.Exists(t.Store, arguments.Token) {
		return fault.TokenNotFound
	}
	reply.Balance = t.Tokens.BalanceOf(t.Store, arguments.Token, arguments.Owner)
	return nil
}

// Info - token metadata with its selectors
func (t *Token) Info(arguments *gateway.InfoArguments, reply *token.Info) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	t.Log.Infof("Token.Info: %s", arguments.Token)

	info, err := t.Tokens.Info(t.Store, arguments.Token)
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}

// ListArguments - empty arguments
type ListArguments struct{}

// ListReply - all tokens
type ListReply struct {
	Tokens []*token.Info `json:"tokens"`
}

// List - metadata of every token held by this node
func (t *Token) List(_ *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Info("Token.List")

	list, err := t.Tokens.List()
	if nil != err {
		return err
	}
	reply.Tokens = list
	return nil
}

// Transfer tokens
// ---------------

// TransferArguments - signed token transfer or mint
type TransferArguments struct {
	Token     account.Account   `json:"token"`
	Caller    account.Account   `json:"caller"`
	To        account.Account   `json:"to"`
	Value     uint64            `json:"value"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

func (arguments *TransferArguments) fields() [][]byte {
	return [][]byte{arguments.Token.Bytes(), arguments.To.Bytes(), request.Uint64(arguments.Value)}
}

// Pack - the signed part of the request for a method
func (arguments *TransferArguments) Pack(method string) []byte {
	return request.Message(method, arguments.Caller, arguments.Nonce, arguments.fields()...)
}

// Transfer - move tokens from the caller
func (t *Token) Transfer(arguments *TransferArguments, reply *gateway.BalanceReply) error {
	return t.signed("Token.Transfer", arguments, reply, t.Tokens.Transfer)
}

// Mint - create tokens, only the token owner may call this
func (t *Token) Mint(arguments *TransferArguments, reply *gateway.BalanceReply) error {
	return t.signed("Token.Mint", arguments, reply, t.Tokens.MintTo)
}

type mutation func(trx storage.Transaction, id account.Account, caller account.Account, to account.Account, value uint64) (uint64, error)

func (t *Token) signed(method string, arguments *TransferArguments, reply *gateway.BalanceReply, apply mutation) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	t.Log.Infof("%s: token: %s  %s -> %s  value: %d", method, arguments.Token, arguments.Caller, arguments.To, arguments.Value)

	err := t.Guard.Verify(method, arguments.Caller, arguments.Nonce, arguments.Signature, arguments.fields()...)
	if nil != err {
		t.Log.Warnf("%s: rejected: %s", method, err)
		return err
	}

	return t.Store.Update(func(trx storage.Transaction) error {
		balance, err := apply(trx, arguments.Token, arguments.Caller, arguments.To, arguments.Value)
		if nil != err {
			return err
		}
		reply.Balance = balance
		return nil
	})
}

// TransferFrom - move tokens between any two accounts
//
// no authorization is performed
func (t *Token) TransferFrom(arguments *gateway.TransferFromArguments, reply *gateway.BalanceReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	t.Log.Infof("Token.TransferFrom: token: %s  %s -> %s  value: %d  reference: %q", arguments.Token, arguments.From, arguments.To, arguments.Value, arguments.Reference)

	reference, err := parseReference(arguments.Reference, true)
	if nil != err {
		return err
	}

	return t.Store.Update(func(trx storage.Transaction) error {
		balance, err := t.Tokens.TransferFromReference(trx, arguments.Token, reference, arguments.From, arguments.To, arguments.Value)
		if nil != err {
			return err
		}
		reply.Balance = balance
		return nil
	})
}

// Applied - outcome of a referenced transfer
//
// an unknown reference is voided, so the answer is final
func (t *Token) Applied(arguments *gateway.AppliedArguments, reply *gateway.AppliedReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	t.Log.Infof("Token.Applied: token: %s  reference: %q", arguments.Token, arguments.Reference)

	reference, err := parseReference(arguments.Reference, false)
	if nil != err {
		return err
	}

	return t.Store.Update(func(trx storage.Transaction) error {
		applied, err := t.Tokens.Resolve(trx, arguments.Token, reference)
		if nil != err {
			return err
		}
		reply.Applied = applied
		return nil
	})
}

// a reference is a UUID in its text form
func parseReference(s string, optional bool) ([]byte, error) {
	if "" == s && optional {
		return nil, nil
	}
	reference := uuid.Parse(s)
	if nil == reference {
		return nil, fault.InvalidItem
	}
	return []byte(reference), nil
}
