// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/basket"
	"github.com/bitmark-inc/basketd/gateway"
	"github.com/bitmark-inc/basketd/messagebus"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/token"
	"github.com/bitmark-inc/basketd/vault"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func acc(b byte) account.Account {
	a := account.Account{}
	a[0] = 0x66
	a[31] = b
	return a
}

var (
	assetA     = acc(0xa0)
	assetB     = acc(0xb0)
	self       = acc(0xff)
	tokenOwner = acc(0xf0)
	alice      = acc(1)
	bob        = acc(2)
)

// basket = [(A, 50), (B, 20)]
func testBasket(t *testing.T) *basket.Basket {
	b, err := basket.New([]account.Account{assetA, assetB}, []uint64{50, 20})
	if nil != err {
		t.Fatalf("basket error: %s", err)
	}
	return b
}

type fixture struct {
	store  *storage.Store
	tokens *token.Tokens
	bus    *messagebus.Broadcast
	engine vault.Engine
}

// engine over local tokens where alice holds 200 A and 80 B and bob
// holds 50 A only
func setupTestEngine(t *testing.T, policy vault.Policy) *fixture {
	setupTestLogger()

	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open store error: %s", err)
	}

	tokens := token.New(store)
	for _, a := range []account.Account{assetA, assetB} {
		if err := tokens.Establish(store, a, "asset", "AST", tokenOwner, 0); nil != err {
			t.Fatalf("establish token error: %s", err)
		}
	}
	err = store.Update(func(trx storage.Transaction) error {
		mints := []struct {
			asset account.Account
			to    account.Account
			value uint64
		}{
			{assetA, alice, 200},
			{assetB, alice, 80},
			{assetA, bob, 50},
		}
		for _, m := range mints {
			if _, err := tokens.MintTo(trx, m.asset, tokenOwner, m.to, m.value); nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}

	bus := messagebus.New()
	configuration := &vault.Configuration{
		Self:   self,
		Owner:  tokenOwner,
		Policy: policy,
	}
	e, err := vault.New(logger.New("vault"), store, testBasket(t), gateway.NewLocal(store, tokens), configuration, bus)
	if nil != err {
		t.Fatalf("engine error: %s", err)
	}

	return &fixture{
		store:  store,
		tokens: tokens,
		bus:    bus,
		engine: e,
	}
}

// a new engine over the same store, as after a restart with a changed policy
func (f *fixture) reopen(t *testing.T, policy vault.Policy) vault.Engine {
	configuration := &vault.Configuration{
		Self:   self,
		Owner:  tokenOwner,
		Policy: policy,
	}
	e, err := vault.New(logger.New("vault"), f.store, testBasket(t), gateway.NewLocal(f.store, f.tokens), configuration, f.bus)
	if nil != err {
		t.Fatalf("engine error: %s", err)
	}
	return e
}

func (f *fixture) teardown() {
	f.store.Close()
	removeFiles()
}
