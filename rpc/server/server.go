// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the set of JSON-RPC handlers served to clients
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/counter"
	"github.com/bitmark-inc/basketd/rpc/events"
	"github.com/bitmark-inc/basketd/rpc/node"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/rpc/shares"
	"github.com/bitmark-inc/basketd/rpc/tokens"
	"github.com/bitmark-inc/basketd/rpc/vaults"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/token"
	"github.com/bitmark-inc/basketd/vault"
)

// Create - register all handlers
func Create(log *logger.L, version string, rpcCount *counter.Counter, engine vault.Engine, store *storage.Store, tokenLedger *token.Tokens) *rpc.Server {

	start := time.Now().UTC()
	guard := request.NewGuard(request.DefaultWindow)

	server := rpc.NewServer()

	_ = server.Register(vaults.New(log, engine, guard))
	_ = server.Register(shares.New(log, engine, guard))
	_ = server.Register(events.New(log, engine))
	_ = server.Register(tokens.New(log, store, tokenLedger, guard))
	_ = server.Register(node.New(log, start, version, rpcCount, engine))

	return server
}
