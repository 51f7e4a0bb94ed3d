// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaults_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/rpc/fixtures"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/rpc/vaults"
	"github.com/bitmark-inc/basketd/vault/mocks"
	"github.com/bitmark-inc/logger"
)

func TestVaultOpen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	v := vaults.New(logger.New(fixtures.LogCategory), e, request.NewGuard(request.DefaultWindow))

	caller := fixtures.CallerKey.Account()
	arg := vaults.OpenArguments{
		Caller:    caller,
		Candidate: 7,
		Nonce:     request.Nonce(),
	}
	arg.Signature = fixtures.CallerKey.Sign(arg.Pack())

	e.EXPECT().OpenVault(caller, registry.VaultId(7)).Return(registry.VaultId(3), nil).Times(1)

	var reply vaults.OpenReply
	err := v.Open(&arg, &reply)
	assert.Nil(t, err, "wrong Open")
	assert.Equal(t, registry.VaultId(3), reply.Vault, "wrong vault")

	// same nonce again
	err = v.Open(&arg, &reply)
	assert.Equal(t, fault.DuplicateRequest, err, "replay accepted")
}

func TestVaultOpenBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	v := vaults.New(logger.New(fixtures.LogCategory), e, request.NewGuard(request.DefaultWindow))

	arg := vaults.OpenArguments{
		Caller:    fixtures.CallerKey.Account(),
		Candidate: 7,
		Nonce:     request.Nonce(),
	}
	arg.Signature = fixtures.CallerKey.Sign(arg.Pack())

	// signature covers candidate 7
	arg.Candidate = 8

	var reply vaults.OpenReply
	err := v.Open(&arg, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")
}

func TestVaultOpenEngineError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	v := vaults.New(logger.New(fixtures.LogCategory), e, request.NewGuard(request.DefaultWindow))

	caller := fixtures.CallerKey.Account()
	arg := vaults.OpenArguments{
		Caller:    caller,
		Candidate: 0,
		Nonce:     request.Nonce(),
	}
	arg.Signature = fixtures.CallerKey.Sign(arg.Pack())

	e.EXPECT().OpenVault(caller, registry.VaultId(0)).Return(registry.VaultId(0), fault.InsufficientBalance).Times(1)

	var reply vaults.OpenReply
	err := v.Open(&arg, &reply)
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")
}

func TestVaultClose(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	v := vaults.New(logger.New(fixtures.LogCategory), e, request.NewGuard(request.DefaultWindow))

	caller := fixtures.CallerKey.Account()
	arg := vaults.CloseArguments{
		Caller: caller,
		Vault:  4,
		Nonce:  request.Nonce(),
	}
	arg.Signature = fixtures.CallerKey.Sign(arg.Pack())

	e.EXPECT().CloseVault(caller, registry.VaultId(4)).Return(nil).Times(1)

	var reply vaults.CloseReply
	err := v.Close(&arg, &reply)
	assert.Nil(t, err, "wrong Close")
	assert.Equal(t, registry.VaultId(4), reply.Vault, "wrong vault")
}

func TestVaultOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	v := vaults.New(logger.New(fixtures.LogCategory), e, request.NewGuard(request.DefaultWindow))

	e.EXPECT().VaultOwner(registry.VaultId(1)).Return(fixtures.Alice, nil).Times(1)
	e.EXPECT().VaultOwner(registry.VaultId(2)).Return(account.Zero, fault.VaultNotFound).Times(1)

	var reply vaults.OwnerReply
	err := v.Owner(&vaults.OwnerArguments{Vault: 1}, &reply)
	assert.Nil(t, err, "wrong Owner")
	assert.Equal(t, fixtures.Alice, reply.Owner, "wrong owner")

	err = v.Owner(&vaults.OwnerArguments{Vault: 2}, &reply)
	assert.Equal(t, fault.VaultNotFound, err, "wrong error")
}

func TestVaultCountAndBasket(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	v := vaults.New(logger.New(fixtures.LogCategory), e, request.NewGuard(request.DefaultWindow))

	owner := fixtures.Bob
	e.EXPECT().VaultCountFor(owner).Return(uint64(2)).Times(1)
	e.EXPECT().TotalVaultCount().Return(uint64(5)).Times(2)
	e.EXPECT().RequiredAssets().Return([]account.Account{fixtures.AssetA, fixtures.AssetB}).Times(1)
	e.EXPECT().RequiredAmounts().Return([]uint64{50, 20}).Times(1)

	var count vaults.CountReply
	err := v.Count(&vaults.CountArguments{Owner: &owner}, &count)
	assert.Nil(t, err, "wrong Count")
	assert.Equal(t, vaults.CountReply{Count: 2, Total: 5}, count, "wrong counts")

	count = vaults.CountReply{}
	err = v.Count(&vaults.CountArguments{}, &count)
	assert.Nil(t, err, "wrong Count")
	assert.Equal(t, vaults.CountReply{Count: 0, Total: 5}, count, "wrong total only")

	var b vaults.BasketReply
	err = v.Basket(&vaults.BasketArguments{}, &b)
	assert.Nil(t, err, "wrong Basket")
	assert.Equal(t, []account.Account{fixtures.AssetA, fixtures.AssetB}, b.Assets, "wrong assets")
	assert.Equal(t, []uint64{50, 20}, b.Amounts, "wrong amounts")
}
