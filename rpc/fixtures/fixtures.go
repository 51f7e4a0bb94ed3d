// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the RPC handler tests
package fixtures

import (
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/account"
)

const (
	testingDirName = "testing"
	LogCategory    = "testing"
)

// accounts used by handler tests
var (
	AssetA = testAccount(0xa0)
	AssetB = testAccount(0xb0)
	Owner  = testAccount(0xf0)
	Alice  = testAccount(0x01)
	Bob    = testAccount(0x02)
)

// signing key whose account tests use as a caller
var CallerKey, _ = account.PrivateKeyFromHex("9f6e2b3a1c0d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7")

func testAccount(b byte) account.Account {
	a := account.Account{}
	a[0] = 0x66
	a[31] = b
	return a
}

// SetupTestLogger - start logging into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - remove the scratch directory
func TeardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// CertificatePair - PEM certificate and key for a loopback TLS server
func CertificatePair() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}

// NewKey - a fresh signing key
func NewKey() (*account.PrivateKey, error) {
	return account.NewPrivateKey()
}
