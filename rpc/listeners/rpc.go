// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON-RPC listeners with a connection limit
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/counter"
	"github.com/bitmark-inc/basketd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a set of started listening sockets
type Listener interface {
	Serve() error
	Stop()
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// NewRPC - validate the listen addresses for an RPC server
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: append([]string{}, configuration.Listen...),
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// validate all listen addresses
	var err error
	r.ipType, err = parseListenAddress(r.listenIPAndPort, r.log)
	if nil != err {
		return nil, err
	}

	return &r, nil
}

// Serve - open every listen address and start accepting
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			for _, opened := range r.listeners {
				_ = opened.Close()
			}
			r.listeners = nil
			return err
		}
		r.listeners = append(r.listeners, l)

		go doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Stop - close all listening sockets; open connections run to completion
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Infof("rpc.server terminated: accept error: %s", err)
			break
		}
		if count.Acquire(maximumConnections) {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Release()
			}()
		} else {
			log.Warnf("connection limit reached: %s rejected", conn.RemoteAddr())
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}

func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			return nil, fault.InvalidIpAddress
		}
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
