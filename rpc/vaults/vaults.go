// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaults

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/rpc/ratelimit"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/vault"
)

// Vault
// -----

const (
	rateLimitVault = 200
	rateBurstVault = 100
)

// Vault - type for RPC
type Vault struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  vault.Engine
	Guard   *request.Guard
}

// New - vault handler
func New(log *logger.L, engine vault.Engine, guard *request.Guard) *Vault {
	return &Vault{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitVault, rateBurstVault),
		Engine:  engine,
		Guard:   guard,
	}
}

// Open a vault
// ------------

// OpenArguments - signed request to lock one basket
type OpenArguments struct {
	Caller    account.Account   `json:"caller"`
	Candidate registry.VaultId  `json:"candidate"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Pack - the signed part of the request
func (arguments *OpenArguments) Pack() []byte {
	return request.Message("Vault.Open", arguments.Caller, arguments.Nonce, arguments.Candidate.Bytes())
}

// OpenReply - the assigned vault
type OpenReply struct {
	Vault registry.VaultId `json:"vault"`
}

// Open - lock the basket assets of the caller and issue shares
func (v *Vault) Open(arguments *OpenArguments, reply *OpenReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	v.Log.Infof("Vault.Open: caller: %s  candidate: %d", arguments.Caller, arguments.Candidate)

	err := v.Guard.Verify("Vault.Open", arguments.Caller, arguments.Nonce, arguments.Signature, arguments.Candidate.Bytes())
	if nil != err {
		v.Log.Warnf("Vault.Open: rejected: %s", err)
		return err
	}

	id, err := v.Engine.OpenVault(arguments.Caller, arguments.Candidate)
	if nil != err {
		return err
	}
	reply.Vault = id
	return nil
}

// Close a vault
// -------------

// CloseArguments - signed request to redeem one vault
type CloseArguments struct {
	Caller    account.Account   `json:"caller"`
	Vault     registry.VaultId  `json:"vault"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Pack - the signed part of the request
func (arguments *CloseArguments) Pack() []byte {
	return request.Message("Vault.Close", arguments.Caller, arguments.Nonce, arguments.Vault.Bytes())
}

// CloseReply - the closed vault
type CloseReply struct {
	Vault registry.VaultId `json:"vault"`
}

// Close - burn the caller's shares and release the vault's assets
func (v *Vault) Close(arguments *CloseArguments, reply *CloseReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	v.Log.Infof("Vault.Close: caller: %s  vault: %d", arguments.Caller, arguments.Vault)

	err := v.Guard.Verify("Vault.Close", arguments.Caller, arguments.Nonce, arguments.Signature, arguments.Vault.Bytes())
	if nil != err {
		v.Log.Warnf("Vault.Close: rejected: %s", err)
		return err
	}

	if err := v.Engine.CloseVault(arguments.Caller, arguments.Vault); nil != err {
		return err
	}
	reply.Vault = arguments.Vault
	return nil
}

// Owner of a vault
// ----------------

// OwnerArguments - vault to look up
type OwnerArguments struct {
	Vault registry.VaultId `json:"vault"`
}

// OwnerReply - the account that opened the vault
type OwnerReply struct {
	Owner account.Account `json:"owner"`
}

// Owner - who holds an open vault
func (v *Vault) Owner(arguments *OwnerArguments, reply *OwnerReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	v.Log.Infof("Vault.Owner: %d", arguments.Vault)

	owner, err := v.Engine.VaultOwner(arguments.Vault)
	if nil != err {
		return err
	}
	reply.Owner = owner
	return nil
}

// Vault counts
// ------------

// CountArguments - optional owner
type CountArguments struct {
	Owner *account.Account `json:"owner,omitempty"`
}

// CountReply - open vaults of the owner and vaults ever opened
type CountReply struct {
	Count uint64 `json:"count"`
	Total uint64 `json:"total"`
}

// Count - vault counters
func (v *Vault) Count(arguments *CountArguments, reply *CountReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	v.Log.Info("Vault.Count")

	if nil != arguments && nil != arguments.Owner {
		reply.Count = v.Engine.VaultCountFor(*arguments.Owner)
	}
	reply.Total = v.Engine.TotalVaultCount()
	return nil
}

// Basket composition
// ------------------

// BasketArguments - empty arguments
type BasketArguments struct{}

// BasketReply - the assets and amounts locked by each vault
type BasketReply struct {
	Assets  []account.Account `json:"assets"`
	Amounts []uint64          `json:"amounts"`
}

// Basket - the required assets and amounts
func (v *Vault) Basket(_ *BasketArguments, reply *BasketReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	v.Log.Info("Vault.Basket")

	reply.Assets = v.Engine.RequiredAssets()
	reply.Amounts = v.Engine.RequiredAmounts()
	return nil
}
