// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/basket"
	"github.com/bitmark-inc/basketd/event"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/gateway"
	"github.com/bitmark-inc/basketd/ledger"
	"github.com/bitmark-inc/basketd/messagebus"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/logger"
)

// share token constants
const (
	Shares = uint64(100)
	Name   = "X-ETF-INDEX-0"
	Symbol = "XTF"
)

// name used for messages sent to the bus
const busName = "vault"

// Policy - how the id of a new vault is chosen
type Policy string

// the id policies
const (
	// the candidate is only checked for collision and the running
	// counter is assigned
	PolicyCounter Policy = "counter"

	// the candidate itself is assigned
	PolicyCandidate Policy = "candidate"
)

// ParsePolicy - empty selects PolicyCounter
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyCounter:
		return PolicyCounter, nil
	case PolicyCandidate:
		return PolicyCandidate, nil
	default:
		return "", fault.InvalidVaultIdPolicy
	}
}

// Configuration - engine parameters
type Configuration struct {
	Self   account.Account // holds the escrowed basket
	Owner  account.Account // reported as the share token owner
	Policy Policy
}

type engine struct {
	log      *logger.L
	store    *storage.Store
	basket   *basket.Basket
	gateway  gateway.Gateway
	registry *registry.Registry
	ledger   *ledger.Ledger
	events   *event.Log
	bus      *messagebus.Broadcast
	self     account.Account
	owner    account.Account
	policy   Policy
}

// New - create an engine over a store
//
// the basket is recorded in the store on first use and must not
// change afterwards; every basket asset must be supported by the
// gateway. bus may be nil
func New(log *logger.L, store *storage.Store, b *basket.Basket, g gateway.Gateway, configuration *Configuration, bus *messagebus.Broadcast) (Engine, error) {
	if nil == log || nil == store || nil == b || nil == g || nil == configuration {
		return nil, fault.MissingParameters
	}
	if configuration.Self.IsZero() {
		return nil, fault.ZeroAccount
	}
	policy, err := ParsePolicy(string(configuration.Policy))
	if nil != err {
		return nil, err
	}

	err = basket.Establish(store, b)
	if nil != err {
		log.Criticalf("basket error: %s", err)
		return nil, err
	}

	for _, asset := range b.Assets() {
		if err := g.Supports(asset); nil != err {
			log.Errorf("asset: %s  not supported: %s", asset, err)
			return nil, fault.UnsupportedToken
		}
	}

	log.Infof("vault account: %s  policy: %s  basket size: %d", configuration.Self, policy, b.Len())

	return &engine{
		log:      log,
		store:    store,
		basket:   b,
		gateway:  g,
		registry: registry.New(store),
		ledger:   ledger.New(store),
		events:   event.NewLog(store),
		bus:      bus,
		self:     configuration.Self,
		owner:    configuration.Owner,
		policy:   policy,
	}, nil
}
