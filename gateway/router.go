// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/storage"
)

// Router - choose a gateway per asset
type Router struct {
	routes   map[account.Account]Gateway
	fallback Gateway
}

// NewRouter - assets without a route use fallback, which may be nil
func NewRouter(fallback Gateway) *Router {
	return &Router{
		routes:   make(map[account.Account]Gateway),
		fallback: fallback,
	}
}

// Route - send transfers of asset to g
func (r *Router) Route(asset account.Account, g Gateway) {
	r.routes[asset] = g
}

func (r *Router) get(asset account.Account) Gateway {
	if g, ok := r.routes[asset]; ok {
		return g
	}
	return r.fallback
}

// Supports - the routed gateway supports asset
func (r *Router) Supports(asset account.Account) error {
	g := r.get(asset)
	if nil == g {
		return fault.UnsupportedToken
	}
	return g.Supports(asset)
}

// Transactional - the routed gateway writes into the transaction
func (r *Router) Transactional(asset account.Account) bool {
	g := r.get(asset)
	if nil == g {
		return false
	}
	return g.Transactional(asset)
}

// TransferFrom - move through the routed gateway
func (r *Router) TransferFrom(trx storage.Transaction, asset account.Account, from account.Account, to account.Account, amount uint64) (uint64, error) {
	g := r.get(asset)
	if nil == g {
		return 0, fault.UnsupportedToken
	}
	return g.TransferFrom(trx, asset, from, to, amount)
}
