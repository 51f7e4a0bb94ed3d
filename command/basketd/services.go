// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/background"
	"github.com/bitmark-inc/basketd/counter"
	"github.com/bitmark-inc/basketd/gateway"
	"github.com/bitmark-inc/basketd/messagebus"
	"github.com/bitmark-inc/basketd/publish"
	"github.com/bitmark-inc/basketd/rpc/certificate"
	"github.com/bitmark-inc/basketd/rpc/listeners"
	"github.com/bitmark-inc/basketd/rpc/server"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/token"
	"github.com/bitmark-inc/basketd/vault"
)

// the running daemon
type services struct {
	log       *logger.L
	store     *storage.Store
	tokens    *token.Tokens
	engine    vault.Engine
	bus       *messagebus.Broadcast
	publisher *publish.Publisher
	listener  listeners.Listener
	rpcCount  counter.Counter
	processes *background.T
}

// create the local tokens that do not yet exist
func establishTokens(log *logger.L, store *storage.Store, tokens *token.Tokens, options *Configuration) error {
	for _, t := range options.Tokens {
		if "" != t.Remote.Connect {
			continue
		}
		id, _ := account.FromBase58(t.Id)
		owner, _ := account.FromBase58(t.Owner)
		if err := tokens.Establish(store, id, t.Name, t.Symbol, owner, t.Supply); nil != err {
			log.Criticalf("token: %s  establish error: %s", id, err)
			return err
		}
		log.Infof("local token: %s  symbol: %q", id, t.Symbol)
	}
	return nil
}

// route remote tokens to their node, everything else to the local ledger
func setupGateway(store *storage.Store, tokens *token.Tokens, options *Configuration) (gateway.Gateway, error) {
	router := gateway.NewRouter(gateway.NewLocal(store, tokens))
	for _, t := range options.Tokens {
		if "" == t.Remote.Connect {
			continue
		}
		id, _ := account.FromBase58(t.Id)
		remote, err := gateway.NewRemote(logger.New("gateway"), &t.Remote)
		if nil != err {
			return nil, err
		}
		router.Route(id, remote)
	}
	return router, nil
}

// open the database with the basket and tokens ready
func openDatabase(log *logger.L, options *Configuration, readOnly bool) (*storage.Store, *token.Tokens, error) {
	store, err := storage.Open(options.Database.Name, readOnly)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		return nil, nil, err
	}
	tokens := token.New(store)
	if !readOnly {
		if err := establishTokens(log, store, tokens, options); nil != err {
			store.Close()
			return nil, nil, err
		}
	}
	return store, tokens, nil
}

// start everything in dependency order
func startServices(log *logger.L, options *Configuration) (*services, error) {
	s := &services{
		log: log,
		bus: messagebus.New(),
	}

	ok := false
	defer func() {
		if !ok {
			s.stop()
		}
	}()

	var err error
	s.store, s.tokens, err = openDatabase(log, options, storage.ReadWrite)
	if nil != err {
		return nil, err
	}

	b, err := options.basket()
	if nil != err {
		return nil, err
	}
	policy, err := vault.ParsePolicy(options.VaultIdPolicy)
	if nil != err {
		return nil, err
	}
	g, err := setupGateway(s.store, s.tokens, options)
	if nil != err {
		log.Criticalf("gateway setup error: %s", err)
		return nil, err
	}

	self, owner := options.accounts()
	engineConfiguration := &vault.Configuration{
		Self:   self,
		Owner:  owner,
		Policy: policy,
	}
	s.engine, err = vault.New(logger.New("vault"), s.store, b, g, engineConfiguration, s.bus)
	if nil != err {
		log.Criticalf("vault engine error: %s", err)
		return nil, err
	}

	if 0 != len(options.Publishing.Broadcast) {
		s.publisher, err = publish.New(logger.New("publish"), &options.Publishing, s.bus)
		if nil != err {
			log.Criticalf("publish error: %s", err)
			return nil, err
		}
	} else {
		log.Warn("publishing disabled: no broadcast addresses")
	}

	s.listener, err = startRPC(options, s)
	if nil != err {
		return nil, err
	}

	ok = true
	return s, nil
}

func startRPC(options *Configuration, s *services) (listeners.Listener, error) {
	rpcLog := logger.New("rpc")

	cer, err := ioutil.ReadFile(options.ClientRPC.Certificate)
	if nil != err {
		rpcLog.Criticalf("certificate: %q  error: %s", options.ClientRPC.Certificate, err)
		return nil, err
	}
	key, err := ioutil.ReadFile(options.ClientRPC.PrivateKey)
	if nil != err {
		rpcLog.Criticalf("private key: %q  error: %s", options.ClientRPC.PrivateKey, err)
		return nil, err
	}
	tlsConfig, fingerprint, err := certificate.Get(rpcLog, "client_rpc", string(cer), string(key))
	if nil != err {
		return nil, err
	}

	rpcServer := server.Create(rpcLog, version, &s.rpcCount, s.engine, s.store, s.tokens)
	l, err := listeners.NewRPC(&options.ClientRPC, rpcLog, &s.rpcCount, rpcServer, tlsConfig, fingerprint)
	if nil != err {
		return nil, err
	}
	if err := l.Serve(); nil != err {
		return nil, err
	}
	return l, nil
}

// stop in reverse order, any part may be missing
func (s *services) stop() {
	s.processes.Stop()
	if nil != s.listener {
		s.listener.Stop()
	}
	if nil != s.publisher {
		s.publisher.Stop()
	}
	if nil != s.store {
		s.store.Close()
	}
	if dropped := s.bus.Dropped(); 0 != dropped {
		s.log.Warnf("events not published: %d", dropped)
	}
}
