// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
)

// the --password flag wins, otherwise ask on the controlling terminal
func getPassword(m *metadata, verify bool) (string, error) {
	if "" != m.password {
		return m.password, nil
	}

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", fmt.Errorf("password is required")
	}

	fmt.Fprintf(m.e, "key file password: ")
	password, err := terminal.ReadPassword(fd)
	fmt.Fprintf(m.e, "\n")
	if nil != err {
		return "", err
	}
	if !verify {
		return string(password), nil
	}

	if len(password) < minPassword {
		return "", fault.InvalidPasswordLength
	}
	fmt.Fprintf(m.e, "verify password: ")
	again, err := terminal.ReadPassword(fd)
	fmt.Fprintf(m.e, "\n")
	if nil != err {
		return "", err
	}
	if string(password) != string(again) {
		return "", fault.PasswordMismatch
	}
	return string(password), nil
}

// unlock the key file named by the global flags
func loadKey(m *metadata) (*account.PrivateKey, error) {
	password, err := getPassword(m, false)
	if nil != err {
		return nil, err
	}
	return readKey(m.keyFile, password)
}
