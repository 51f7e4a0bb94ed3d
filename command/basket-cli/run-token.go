// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/command/basket-cli/rpccalls"
	"github.com/bitmark-inc/basketd/gateway"
)

func runTokenBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := requiredAccount(c, "token")
	if nil != err {
		return err
	}
	owner, err := ownerOrSelf(m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TokenBalance(id, owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTokenInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := requiredAccount(c, "token")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TokenInfo(id)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

type signedTokenCall func(client *rpccalls.Client, key *account.PrivateKey, id account.Account, to account.Account, value uint64) (*gateway.BalanceReply, error)

func runTokenTransfer(c *cli.Context) error {
	return runSignedToken(c, (*rpccalls.Client).TokenTransfer)
}

func runMint(c *cli.Context) error {
	return runSignedToken(c, (*rpccalls.Client).TokenMint)
}

func runSignedToken(c *cli.Context, call signedTokenCall) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := requiredAccount(c, "token")
	if nil != err {
		return err
	}
	to, err := requiredAccount(c, "to")
	if nil != err {
		return err
	}
	value, err := requiredValue(c)
	if nil != err {
		return err
	}
	key, err := loadKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := call(client, key, id, to, value)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
