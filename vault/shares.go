// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/storage"
)

// Transfer - move shares from the caller, returning the caller's new balance
func (e *engine) Transfer(caller account.Account, to account.Account, value uint64) (uint64, error) {
	return e.move(caller, to, value)
}

// TransferFrom - move shares between any two accounts, returning
// the new balance of from
//
// no authorization is performed: any caller can move any balance
func (e *engine) TransferFrom(from account.Account, to account.Account, value uint64) (uint64, error) {
	return e.move(from, to, value)
}

func (e *engine) move(from account.Account, to account.Account, value uint64) (uint64, error) {
	balance := uint64(0)
	err := e.store.Update(func(trx storage.Transaction) error {
		var err error
		balance, err = e.ledger.Shares.Move(trx, from, to, value)
		return err
	})
	if nil != err {
		e.log.Warnf("share transfer: %d  from: %s  to: %s  error: %s", value, from, to, err)
		return 0, err
	}
	e.log.Debugf("share transfer: %d  from: %s  to: %s", value, from, to)
	return balance, nil
}
