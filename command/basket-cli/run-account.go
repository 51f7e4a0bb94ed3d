// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/util"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if util.EnsureFileExists(m.keyFile) {
		return fmt.Errorf("not overwriting existing key file: %q", m.keyFile)
	}

	password, err := getPassword(m, true)
	if nil != err {
		return err
	}

	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}
	if err := writeKey(m.keyFile, password, key); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key file: %s\n", m.keyFile)
	}
	fmt.Fprintf(m.w, "account: %s\n", key.Account())
	return nil
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := loadKey(m)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "account: %s\n", key.Account())
	return nil
}
