// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/gateway"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/rpc/tokens"
	"github.com/bitmark-inc/basketd/token"
)

// TokenBalance - token balance of owner
func (client *Client) TokenBalance(id account.Account, owner account.Account) (*gateway.BalanceReply, error) {
	var reply gateway.BalanceReply
	if err := client.call("Token.Balance", &tokens.BalanceArguments{Token: id, Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TokenInfo - token metadata
func (client *Client) TokenInfo(id account.Account) (*token.Info, error) {
	var reply token.Info
	if err := client.call("Token.Info", &gateway.InfoArguments{Token: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TokenTransfer - signed token transfer from the key's account
func (client *Client) TokenTransfer(key *account.PrivateKey, id account.Account, to account.Account, value uint64) (*gateway.BalanceReply, error) {
	return client.signedToken("Token.Transfer", key, id, to, value)
}

// TokenMint - signed mint by the token owner
func (client *Client) TokenMint(key *account.PrivateKey, id account.Account, to account.Account, value uint64) (*gateway.BalanceReply, error) {
	return client.signedToken("Token.Mint", key, id, to, value)
}

func (client *Client) signedToken(method string, key *account.PrivateKey, id account.Account, to account.Account, value uint64) (*gateway.BalanceReply, error) {
	args := tokens.TransferArguments{
		Token:  id,
		Caller: key.Account(),
		To:     to,
		Value:  value,
		Nonce:  request.Nonce(),
	}
	args.Signature = key.Sign(args.Pack(method))

	var reply gateway.BalanceReply
	if err := client.call(method, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
