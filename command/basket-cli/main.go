// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	keyFile  string
	password string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "basket-cli"
	app.Usage = "client for the basketd share ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2140",
			Usage:  " basketd RPC `HOST:PORT`",
			EnvVar: "BASKET_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "account.private",
			Usage:  " private key `FILE` for signed requests",
			EnvVar: "BASKET_KEY",
		},
		cli.StringFlag{
			Name:   "password, p",
			Value:  "",
			Usage:  " `PASSWORD` unlocking the key file, prompts when absent",
			EnvVar: "BASKET_PASSWORD",
		},
	}

	tokenFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "token, t",
			Value: "",
			Usage: "*token `ACCOUNT`",
		},
		cli.StringFlag{
			Name:  "to, r",
			Value: "",
			Usage: "*recipient `ACCOUNT`",
		},
		cli.Uint64Flag{
			Name:  "value, n",
			Value: 0,
			Usage: "*amount to send `COUNT`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new private key file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "account",
			Usage:     "display the account of the private key",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runAccount,
		},
		{
			Name:      "open",
			Usage:     "lock one basket and receive a share",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "candidate, i",
					Value: 0,
					Usage: " proposed vault `ID`",
				},
			},
			Action: runOpen,
		},
		{
			Name:      "close",
			Usage:     "burn a share and redeem its basket",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "vault, i",
					Value: 0,
					Usage: "*vault `ID`",
				},
			},
			Action: runClose,
		},
		{
			Name:      "vault",
			Usage:     "display the owner of a vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "vault, i",
					Value: 0,
					Usage: "*vault `ID`",
				},
			},
			Action: runVault,
		},
		{
			Name:      "vaults",
			Usage:     "count open vaults",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " only vaults of owner `ACCOUNT`",
				},
			},
			Action: runVaults,
		},
		{
			Name:   "basket",
			Usage:  "display the basket locked by each vault",
			Action: runBasket,
		},
		{
			Name:      "balance",
			Usage:     "display share balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` [default: key account]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "transfer",
			Usage:     "transfer shares from the key account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*recipient `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "value, n",
					Value: 0,
					Usage: "*shares to send `COUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "transfer-from",
			Usage:     "transfer shares between accounts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*sender `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*recipient `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "value, n",
					Value: 0,
					Usage: "*shares to send `COUNT`",
				},
			},
			Action: runTransferFrom,
		},
		{
			Name:   "info",
			Usage:  "display share and daemon information",
			Action: runInfo,
		},
		{
			Name:      "events",
			Usage:     "list vault events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "vault, i",
					Value: 0,
					Usage: " only events of vault `ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " only events of owner `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first event `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum events `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "token-balance",
			Usage:     "display balance of a ledger token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` [default: key account]",
				},
			},
			Action: runTokenBalance,
		},
		{
			Name:      "token-info",
			Usage:     "display ledger token information",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ACCOUNT`",
				},
			},
			Action: runTokenInfo,
		},
		{
			Name:      "token-transfer",
			Usage:     "transfer a ledger token from the key account",
			ArgsUsage: "\n   (* = required)",
			Flags:     tokenFlags,
			Action:    runTokenTransfer,
		},
		{
			Name:      "mint",
			Usage:     "mint a ledger token, key must be the token owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     tokenFlags,
			Action:    runMint,
		},
		{
			Name:  "version",
			Usage: "display basket-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			keyFile:  c.GlobalString("key"),
			password: c.GlobalString("password"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	return app
}
