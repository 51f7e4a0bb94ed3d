// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/rpc/events"
	"github.com/bitmark-inc/basketd/rpc/node"
	"github.com/bitmark-inc/basketd/rpc/shares"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerOrSelf(m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ShareBalance(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

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

	response, err := client.ShareTransfer(key, to, value)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransferFrom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := requiredAccount(c, "from")
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

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ShareTransferFrom(from, to, value)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

type infoReply struct {
	Share *shares.InfoReply `json:"share"`
	Node  *node.InfoReply   `json:"node"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	share, err := client.ShareInfo()
	if nil != err {
		return err
	}
	n, err := client.NodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, &infoReply{Share: share, Node: n})
	return nil
}

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	args := &events.ListArguments{
		Start: c.Uint64("start"),
		Count: c.Int("count"),
	}
	if c.IsSet("vault") {
		vault := registry.VaultId(c.Uint("vault"))
		args.Vault = &vault
	}
	if s := c.String("owner"); "" != s {
		owner, err := account.FromBase58(s)
		if nil != err {
			return err
		}
		args.Owner = &owner
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Events(args)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
