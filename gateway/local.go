// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/token"
)

type local struct {
	store  *storage.Store
	tokens *token.Tokens
}

// NewLocal - gateway to tokens held in the same store as the engine
func NewLocal(store *storage.Store, tokens *token.Tokens) Gateway {
	return &local{
		store:  store,
		tokens: tokens,
	}
}

func (l *local) Supports(asset account.Account) error {
	info, err := l.tokens.Info(l.store, asset)
	if nil != err {
		return fault.UnsupportedToken
	}
	return hasTransferFrom(info.Selectors)
}

func (l *local) Transactional(asset account.Account) bool {
	return true
}

func (l *local) TransferFrom(trx storage.Transaction, asset account.Account, from account.Account, to account.Account, amount uint64) (uint64, error) {
	return l.tokens.TransferFrom(trx, asset, from, to, amount)
}

func hasTransferFrom(selectors []token.Selector) error {
	for _, s := range selectors {
		if token.TransferFromSelector == s {
			return nil
		}
	}
	return fault.UnsupportedToken
}
