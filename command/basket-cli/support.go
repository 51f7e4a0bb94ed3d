// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/command/basket-cli/rpccalls"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// either an explicit account or the account of the key file
func ownerOrSelf(m *metadata, s string) (account.Account, error) {
	if "" != s {
		return account.FromBase58(s)
	}
	key, err := loadKey(m)
	if nil != err {
		return account.Zero, err
	}
	return key.Account(), nil
}

func requiredAccount(c *cli.Context, name string) (account.Account, error) {
	s := c.String(name)
	if "" == s {
		return account.Zero, fmt.Errorf("%s is required", name)
	}
	a, err := account.FromBase58(s)
	if nil != err {
		return account.Zero, fmt.Errorf("%s: %q %s", name, s, err)
	}
	return a, nil
}

func requiredValue(c *cli.Context) (uint64, error) {
	value := c.Uint64("value")
	if 0 == value {
		return 0, fmt.Errorf("value is required")
	}
	return value, nil
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}
