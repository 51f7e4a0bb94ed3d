// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/basket"
	"github.com/bitmark-inc/basketd/configuration"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/gateway"
	"github.com/bitmark-inc/basketd/publish"
	"github.com/bitmark-inc/basketd/rpc/listeners"
	"github.com/bitmark-inc/basketd/util"
	"github.com/bitmark-inc/basketd/vault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "basket.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "basketd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB directory
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// BasketItem - one required asset
type BasketItem struct {
	Asset  string `gluamapper:"asset" json:"asset"`
	Amount uint64 `gluamapper:"amount" json:"amount"`
}

// TokenType - a token ledger reachable by the gateway
//
// with remote.connect set the token is served by another node and
// only id is used, otherwise the token is held in the local database
// and created with its supply credited to owner on first start
type TokenType struct {
	Id     string                      `gluamapper:"id" json:"id"`
	Name   string                      `gluamapper:"name" json:"name"`
	Symbol string                      `gluamapper:"symbol" json:"symbol"`
	Owner  string                      `gluamapper:"owner" json:"owner"`
	Supply uint64                      `gluamapper:"supply" json:"supply"`
	Remote gateway.RemoteConfiguration `gluamapper:"remote" json:"remote"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Basket        []BasketItem `gluamapper:"basket" json:"basket"`
	VaultAccount  string       `gluamapper:"vault_account" json:"vault_account"`
	TokenOwner    string       `gluamapper:"token_owner" json:"token_owner"`
	VaultIdPolicy string       `gluamapper:"vault_id_policy" json:"vault_id_policy"`
	Tokens        []TokenType  `gluamapper:"tokens" json:"tokens"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		VaultIdPolicy: string(vault.PolicyCounter),

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// the values the engine depends on are checked before any file
	// or directory is touched
	if _, err := options.basket(); nil != err {
		return nil, err
	}
	if _, err := vault.ParsePolicy(options.VaultIdPolicy); nil != err {
		return nil, err
	}
	if _, err := account.FromBase58(options.VaultAccount); nil != err {
		return nil, fmt.Errorf("vault_account: %q error: %s", options.VaultAccount, err)
	}
	if _, err := account.FromBase58(options.TokenOwner); nil != err {
		return nil, fmt.Errorf("token_owner: %q error: %s", options.TokenOwner, err)
	}
	for i, t := range options.Tokens {
		if _, err := account.FromBase58(t.Id); nil != err {
			return nil, fmt.Errorf("tokens[%d].id: %q error: %s", i, t.Id, err)
		}
		if "" != t.Remote.Connect {
			continue
		}
		if _, err := account.FromBase58(t.Owner); nil != err {
			return nil, fmt.Errorf("tokens[%d].owner: %q error: %s", i, t.Owner, err)
		}
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		if !util.IsPlainName(*f[0]) {
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
		if nil != f[1] {
			*f[0] = util.EnsureAbsolute(*f[1], *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// basket - the configured basket in order
func (options *Configuration) basket() (*basket.Basket, error) {
	if 0 == len(options.Basket) {
		return nil, fault.EmptyBasket
	}
	assets := make([]account.Account, len(options.Basket))
	amounts := make([]uint64, len(options.Basket))
	for i, item := range options.Basket {
		a, err := account.FromBase58(item.Asset)
		if nil != err {
			return nil, fmt.Errorf("basket[%d].asset: %q error: %s", i, item.Asset, err)
		}
		assets[i] = a
		amounts[i] = item.Amount
	}
	return basket.New(assets, amounts)
}

// accounts - decoded vault and token owner accounts, already validated
func (options *Configuration) accounts() (account.Account, account.Account) {
	self, _ := account.FromBase58(options.VaultAccount)
	owner, _ := account.FromBase58(options.TokenOwner)
	return self, owner
}
