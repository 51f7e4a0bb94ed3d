// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/event"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/publish"
	"github.com/bitmark-inc/basketd/rpc/certificate"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/util"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = defaultPublishPublicKeyFile
	publishPrivateKeyFilename = defaultPublishPrivateKeyFile

	accountKeyFilename = "account.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-keys", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := publish.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "gen-account", "account":
		privateKeyFilename := getFilenameWithDirectory(arguments, accountKeyFilename)
		a, err := makeAccountKey(privateKeyFilename)
		if nil != err {
			fmt.Printf("generate account key: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated account key: %q\n", privateKeyFilename)
		fmt.Printf("account: %s\n", a)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "fingerprint", "fp":
		return false // defer processing until configuration is read

	case "events", "tokens":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)       - display this message\n\n")
		fmt.Printf("  version                    (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]          - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-keys [DIR]     (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                         and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-account [DIR]          (account) - create an account signing key in: %q\n", "DIR/"+accountKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                         for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)      - display the RPC certificate fingerprint\n")
		fmt.Printf("                                         as needed by a remote token gateway\n")
		fmt.Printf("\n")

		fmt.Printf("  events [START [COUNT]]               - list recorded vault events as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  tokens                               - list local tokens as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson("", options)

	case "fingerprint", "fp":
		fingerprint, err := certificateFingerprint(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("rpc fingerprint: %x\n", fingerprint)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is opened read only so these commands can run beside
// a running daemon
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "events":
		start := uint64(0)
		count := event.MaximumCount
		var err error
		if len(arguments) > 0 {
			start, err = strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start: %s", err)
			}
		}
		if len(arguments) > 1 {
			count, err = strconv.Atoi(arguments[1])
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
		}

		store, _, err := openDatabase(log, options, storage.ReadOnly)
		if nil != err {
			exitwithstatus.Message("database error: %s", err)
		}
		defer store.Close()

		list, err := event.NewLog(store).List(event.Filter{}, start, count)
		if nil != err {
			exitwithstatus.Message("events error: %s", err)
		}
		printJson("", list)

	case "tokens":
		store, tokens, err := openDatabase(log, options, storage.ReadOnly)
		if nil != err {
			exitwithstatus.Message("database error: %s", err)
		}
		defer store.Close()

		list, err := tokens.List()
		if nil != err {
			exitwithstatus.Message("tokens error: %s", err)
		}
		printJson("", list)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

// write a new signing key as hex seed, returning its account
func makeAccountKey(fileName string) (account.Account, error) {
	if util.EnsureFileExists(fileName) {
		return account.Zero, fault.KeyFileAlreadyExists
	}

	key, err := account.NewPrivateKey()
	if nil != err {
		return account.Zero, err
	}

	if err = ioutil.WriteFile(fileName, []byte(key.String()+"\n"), 0600); nil != err {
		return account.Zero, err
	}
	return key.Account(), nil
}

// fingerprint of the RPC certificate
func certificateFingerprint(certificateFileName string, keyFileName string) ([32]byte, error) {
	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		return [32]byte{}, err
	}
	return certificate.Fingerprint(keyPair.Certificate[0]), nil
}

func printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s:\n%s\n", title, b)
	}
	_ = os.Stdout.Sync()
}
