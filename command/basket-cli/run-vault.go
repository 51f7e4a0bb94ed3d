// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/registry"
)

func runOpen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := loadKey(m)
	if nil != err {
		return err
	}

	candidate := registry.VaultId(c.Uint("candidate"))
	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", key.Account())
		fmt.Fprintf(m.e, "candidate: %d\n", candidate)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.OpenVault(key, candidate)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runClose(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("vault") {
		return fmt.Errorf("vault is required")
	}
	vault := registry.VaultId(c.Uint("vault"))

	key, err := loadKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CloseVault(key, vault)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runVault(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("vault") {
		return fmt.Errorf("vault is required")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.VaultOwner(registry.VaultId(c.Uint("vault")))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runVaults(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner *account.Account
	if s := c.String("owner"); "" != s {
		a, err := account.FromBase58(s)
		if nil != err {
			return err
		}
		owner = &a
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.VaultCount(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBasket(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Basket()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
