// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/event"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/storage"
)

// a completed transfer that an abort cannot undo
type movement struct {
	asset  account.Account
	from   account.Account
	to     account.Account
	amount uint64
}

// state of one lifecycle operation
type operation struct {
	e       *engine
	trx     storage.Transaction
	pending []movement
}

func (e *engine) begin() (*operation, error) {
	trx, err := e.store.Begin()
	if nil != err {
		return nil, err
	}
	return &operation{
		e:   e,
		trx: trx,
	}, nil
}

// move one basket asset through the gateway
func (op *operation) move(asset account.Account, from account.Account, to account.Account, amount uint64) error {
	_, err := op.e.gateway.TransferFrom(op.trx, asset, from, to, amount)
	if fault.TransferInDoubt == err {
		// neither committed nor compensated: needs an operator
		op.e.log.Criticalf("asset: %s  transfer: %d  from: %s  to: %s  outcome unknown", asset, amount, from, to)
		return err
	}
	if nil != err {
		op.e.log.Warnf("asset: %s  transfer: %d  from: %s  to: %s  error: %s", asset, amount, from, to, err)
		if fault.IsFault(err) {
			return err
		}
		return fault.TransferFailed
	}
	if !op.e.gateway.Transactional(asset) {
		op.pending = append(op.pending, movement{
			asset:  asset,
			from:   from,
			to:     to,
			amount: amount,
		})
	}
	return nil
}

// reverse completed external transfers, newest first
//
// these never touch trx so it does not matter whether it is still open
func (op *operation) reverse() error {
	failed := false
	for i := len(op.pending) - 1; i >= 0; i -= 1 {
		m := op.pending[i]
		if _, err := op.e.gateway.TransferFrom(op.trx, m.asset, m.to, m.from, m.amount); nil != err {
			op.e.log.Criticalf("compensation failed: asset: %s  amount: %d  from: %s  to: %s  error: %s", m.asset, m.amount, m.to, m.from, err)
			failed = true
		}
	}
	op.pending = nil
	if failed {
		return fault.CompensationFailed
	}
	return nil
}

// fail - undo everything and return err
func (op *operation) fail(err error) error {
	compensationErr := op.reverse()
	op.trx.Abort()
	if nil != compensationErr {
		return compensationErr
	}
	return err
}

// commit - log the event, write the batch and publish the event
func (op *operation) commit(e *event.Event) error {
	op.e.events.Append(op.trx, e)

	// a failed commit has already discarded the batch
	if err := op.trx.Commit(); nil != err {
		if compensationErr := op.reverse(); nil != compensationErr {
			return compensationErr
		}
		return err
	}

	if nil != op.e.bus {
		op.e.bus.Send(busName, *e)
	}
	return nil
}

// OpenVault - deposit the basket and receive Shares
//
// the id returned depends on the policy: the candidate itself, or
// the next value of the running counter
func (e *engine) OpenVault(caller account.Account, candidate registry.VaultId) (registry.VaultId, error) {
	if caller.IsZero() {
		return 0, fault.ZeroAccount
	}

	op, err := e.begin()
	if nil != err {
		return 0, err
	}

	if e.registry.IsOpen(op.trx, candidate) {
		e.log.Debugf("open: candidate: %d already open", candidate)
		return 0, op.fail(fault.VaultAlreadyExists)
	}

	for _, item := range e.basket.Items() {
		if err := op.move(item.Asset, caller, e.self, item.Amount); nil != err {
			return 0, op.fail(err)
		}
		if _, err := e.ledger.Escrow.Credit(op.trx, item.Asset, item.Amount); nil != err {
			return 0, op.fail(err)
		}
	}

	var id registry.VaultId
	switch e.policy {
	case PolicyCandidate:
		id = candidate
		err = e.registry.Assign(op.trx, candidate, caller)
	default:
		id, err = e.registry.AssignNew(op.trx, caller)
	}
	if nil != err {
		return 0, op.fail(err)
	}

	if _, err := e.ledger.Mint(op.trx, caller, Shares); nil != err {
		return 0, op.fail(err)
	}

	err = op.commit(&event.Event{
		Kind:  event.VaultOpened,
		Vault: id,
		Owner: caller,
	})
	if nil != err {
		return 0, err
	}

	e.log.Infof("opened vault: %d  owner: %s", id, caller)
	return id, nil
}

// CloseVault - redeem Shares for the basket
//
// any holder of enough shares may close any open vault; the event
// names the recorded owner
func (e *engine) CloseVault(caller account.Account, id registry.VaultId) error {
	op, err := e.begin()
	if nil != err {
		return err
	}

	owner, err := e.registry.Owner(op.trx, id)
	if fault.VaultNotFound == err {
		e.log.Debugf("close: vault: %d not open", id)
		return op.fail(fault.CloseVaultFailed)
	} else if nil != err {
		return op.fail(err)
	}

	if e.ledger.Shares.BalanceOf(op.trx, caller) < Shares {
		return op.fail(fault.InsufficientBalance)
	}
	if _, err := e.ledger.Burn(op.trx, caller, Shares); nil != err {
		return op.fail(err)
	}

	for _, item := range e.basket.Items() {
		if err := op.move(item.Asset, e.self, caller, item.Amount); nil != err {
			return op.fail(err)
		}
		if _, err := e.ledger.Escrow.Debit(op.trx, item.Asset, item.Amount); nil != err {
			return op.fail(err)
		}
	}

	if _, err := e.registry.Release(op.trx, id); nil != err {
		return op.fail(err)
	}

	err = op.commit(&event.Event{
		Kind:  event.VaultClosed,
		Vault: id,
		Owner: owner,
	})
	if nil != err {
		return err
	}

	e.log.Infof("closed vault: %d  owner: %s  by: %s", id, owner, caller)
	return nil
}
