// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens_test

import (
	"testing"

	"github.com/pborman/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/gateway"
	"github.com/bitmark-inc/basketd/rpc/fixtures"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/rpc/tokens"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/token"
	"github.com/bitmark-inc/logger"
)

// token A owned by the caller key with 1000 held by the owner
func setupTokens(t *testing.T) (*storage.Store, *tokens.Token) {
	fixtures.SetupTestLogger()

	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open store error: %s", err)
	}
	ledger := token.New(store)
	err = ledger.Establish(store, fixtures.AssetA, "Asset A", "AAA", fixtures.CallerKey.Account(), 1000)
	if nil != err {
		t.Fatalf("establish error: %s", err)
	}

	h := tokens.New(logger.New(fixtures.LogCategory), store, ledger, request.NewGuard(request.DefaultWindow))
	return store, h
}

func teardownTokens(store *storage.Store) {
	store.Close()
	fixtures.TeardownTestLogger()
}

func TestTokenInfoAndBalance(t *testing.T) {
	store, h := setupTokens(t)
	defer teardownTokens(store)

	var info token.Info
	err := h.Info(&gateway.InfoArguments{Token: fixtures.AssetA}, &info)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "AAA", info.Symbol, "wrong symbol")
	assert.Equal(t, uint64(1000), info.TotalSupply, "wrong supply")
	assert.Equal(t, []token.Selector{token.TransferFromSelector}, info.Selectors, "wrong selectors")

	err = h.Info(&gateway.InfoArguments{Token: fixtures.AssetB}, &info)
	assert.Equal(t, fault.TokenNotFound, err, "unknown token")

	var balance gateway.BalanceReply
	err = h.Balance(&tokens.BalanceArguments{Token: fixtures.AssetA, Owner: fixtures.CallerKey.Account()}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(1000), balance.Balance, "wrong balance")

	err = h.Balance(&tokens.BalanceArguments{Token: fixtures.AssetB, Owner: fixtures.Alice}, &balance)
	assert.Equal(t, fault.TokenNotFound, err, "unknown token")

	var list tokens.ListReply
	err = h.List(&tokens.ListArguments{}, &list)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 1, len(list.Tokens), "wrong token count")
	assert.Equal(t, fixtures.AssetA, list.Tokens[0].Id, "wrong token id")
}

func TestTokenTransferAndMint(t *testing.T) {
	store, h := setupTokens(t)
	defer teardownTokens(store)

	caller := fixtures.CallerKey.Account()

	arg := tokens.TransferArguments{
		Token:  fixtures.AssetA,
		Caller: caller,
		To:     fixtures.Alice,
		Value:  300,
		Nonce:  request.Nonce(),
	}
	arg.Signature = fixtures.CallerKey.Sign(arg.Pack("Token.Transfer"))

	var reply gateway.BalanceReply
	err := h.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, uint64(700), reply.Balance, "wrong caller balance")

	// a transfer signature is not a mint signature
	arg.Nonce += 1
	arg.Signature = fixtures.CallerKey.Sign(arg.Pack("Token.Transfer"))
	err = h.Mint(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")

	arg.Signature = fixtures.CallerKey.Sign(arg.Pack("Token.Mint"))
	err = h.Mint(&arg, &reply)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, uint64(600), reply.Balance, "wrong minted balance")

	var info token.Info
	_ = h.Info(&gateway.InfoArguments{Token: fixtures.AssetA}, &info)
	assert.Equal(t, uint64(1300), info.TotalSupply, "wrong supply")
}

func TestTokenMintNotOwner(t *testing.T) {
	store, h := setupTokens(t)
	defer teardownTokens(store)

	key, _ := fixtures.NewKey()
	arg := tokens.TransferArguments{
		Token:  fixtures.AssetA,
		Caller: key.Account(),
		To:     key.Account(),
		Value:  5,
		Nonce:  request.Nonce(),
	}
	arg.Signature = key.Sign(arg.Pack("Token.Mint"))

	var reply gateway.BalanceReply
	err := h.Mint(&arg, &reply)
	assert.Equal(t, fault.NotTokenOwner, err, "wrong error")
}

func TestTokenTransferFrom(t *testing.T) {
	store, h := setupTokens(t)
	defer teardownTokens(store)

	caller := fixtures.CallerKey.Account()

	var reply gateway.BalanceReply
	err := h.TransferFrom(&gateway.TransferFromArguments{Token: fixtures.AssetA, From: caller, To: fixtures.Bob, Value: 250}, &reply)
	assert.Nil(t, err, "wrong TransferFrom")
	assert.Equal(t, uint64(750), reply.Balance, "wrong balance")

	err = h.TransferFrom(&gateway.TransferFromArguments{Token: fixtures.AssetA, From: fixtures.Bob, To: caller, Value: 251}, &reply)
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")

	err = h.TransferFrom(&gateway.TransferFromArguments{Token: fixtures.AssetB, From: caller, To: fixtures.Bob, Value: 1}, &reply)
	assert.Equal(t, fault.TokenNotFound, err, "unknown token")

	var balance gateway.BalanceReply
	_ = h.Balance(&tokens.BalanceArguments{Token: fixtures.AssetA, Owner: fixtures.Bob}, &balance)
	assert.Equal(t, uint64(250), balance.Balance, "failed transfer changed balance")
}

func TestTokenReferencedTransferFrom(t *testing.T) {
	store, h := setupTokens(t)
	defer teardownTokens(store)

	caller := fixtures.CallerKey.Account()
	reference := uuid.NewRandom().String()
	args := &gateway.TransferFromArguments{Token: fixtures.AssetA, From: caller, To: fixtures.Bob, Value: 250, Reference: reference}

	var reply gateway.BalanceReply
	err := h.TransferFrom(args, &reply)
	assert.Nil(t, err, "wrong TransferFrom")
	err = h.TransferFrom(args, &reply)
	assert.Nil(t, err, "wrong repeated TransferFrom")
	assert.Equal(t, uint64(750), reply.Balance, "repeat was applied")

	var applied gateway.AppliedReply
	err = h.Applied(&gateway.AppliedArguments{Token: fixtures.AssetA, Reference: reference}, &applied)
	assert.Nil(t, err, "wrong Applied")
	assert.True(t, applied.Applied, "transfer not applied")

	// asking first voids the reference
	late := uuid.NewRandom().String()
	err = h.Applied(&gateway.AppliedArguments{Token: fixtures.AssetA, Reference: late}, &applied)
	assert.Nil(t, err, "wrong Applied")
	assert.False(t, applied.Applied, "unknown reference applied")
	args.Reference = late
	err = h.TransferFrom(args, &reply)
	assert.Equal(t, fault.ReferenceVoided, err, "voided reference applied")

	args.Reference = "not-a-uuid"
	err = h.TransferFrom(args, &reply)
	assert.Equal(t, fault.InvalidItem, err, "bad reference accepted")
	err = h.Applied(&gateway.AppliedArguments{Token: fixtures.AssetA}, &applied)
	assert.Equal(t, fault.InvalidItem, err, "empty reference accepted")
}
