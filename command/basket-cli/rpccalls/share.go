// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/rpc/events"
	"github.com/bitmark-inc/basketd/rpc/node"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/rpc/shares"
)

// ShareBalance - shares held by owner
func (client *Client) ShareBalance(owner account.Account) (*shares.BalanceReply, error) {
	var reply shares.BalanceReply
	if err := client.call("Share.Balance", &shares.BalanceArguments{Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ShareInfo - share token metadata and escrow totals
func (client *Client) ShareInfo() (*shares.InfoReply, error) {
	var reply shares.InfoReply
	if err := client.call("Share.Info", &shares.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ShareTransfer - signed transfer from the key's account
func (client *Client) ShareTransfer(key *account.PrivateKey, to account.Account, value uint64) (*shares.BalanceReply, error) {
	args := shares.TransferArguments{
		Caller: key.Account(),
		To:     to,
		Value:  value,
		Nonce:  request.Nonce(),
	}
	args.Signature = key.Sign(args.Pack())

	var reply shares.BalanceReply
	if err := client.call("Share.Transfer", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ShareTransferFrom - unsigned transfer between any two accounts
func (client *Client) ShareTransferFrom(from account.Account, to account.Account, value uint64) (*shares.BalanceReply, error) {
	args := shares.TransferFromArguments{
		From:  from,
		To:    to,
		Value: value,
	}

	var reply shares.BalanceReply
	if err := client.call("Share.TransferFrom", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Events - a page of the event log
func (client *Client) Events(args *events.ListArguments) (*events.ListReply, error) {
	var reply events.ListReply
	if err := client.call("Events.List", args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// NodeInfo - daemon status
func (client *Client) NodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
