// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/rpc/vaults"
)

// OpenVault - lock one basket from the key's account
func (client *Client) OpenVault(key *account.PrivateKey, candidate registry.VaultId) (*vaults.OpenReply, error) {
	args := vaults.OpenArguments{
		Caller:    key.Account(),
		Candidate: candidate,
		Nonce:     request.Nonce(),
	}
	args.Signature = key.Sign(args.Pack())

	var reply vaults.OpenReply
	if err := client.call("Vault.Open", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CloseVault - redeem a vault to the key's account
func (client *Client) CloseVault(key *account.PrivateKey, vault registry.VaultId) (*vaults.CloseReply, error) {
	args := vaults.CloseArguments{
		Caller: key.Account(),
		Vault:  vault,
		Nonce:  request.Nonce(),
	}
	args.Signature = key.Sign(args.Pack())

	var reply vaults.CloseReply
	if err := client.call("Vault.Close", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// VaultOwner - owner of an open vault
func (client *Client) VaultOwner(vault registry.VaultId) (*vaults.OwnerReply, error) {
	var reply vaults.OwnerReply
	if err := client.call("Vault.Owner", &vaults.OwnerArguments{Vault: vault}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// VaultCount - open vaults of owner (if not nil) and the total
func (client *Client) VaultCount(owner *account.Account) (*vaults.CountReply, error) {
	var reply vaults.CountReply
	if err := client.call("Vault.Count", &vaults.CountArguments{Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Basket - the assets locked by each vault
func (client *Client) Basket() (*vaults.BasketReply, error) {
	var reply vaults.BasketReply
	if err := client.call("Vault.Basket", &vaults.BasketArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
