// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/counter"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/rpc/certificate"
	"github.com/bitmark-inc/basketd/rpc/fixtures"
	"github.com/bitmark-inc/basketd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func tlsConfiguration(t *testing.T) (*tls.Config, [32]byte) {
	cer, key := fixtures.CertificatePair()
	tlsCertificate, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}
	return tlsCertificate, fin
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register with error: %s", err)
	}

	tlsCertificate, fin := tlsConfiguration(t)

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		tlsCertificate,
		fin,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	c, err := tls.Dial("tcp", listen, &tlsConfig)
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerConnectionLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	_ = s.Register(Add{})

	tlsCertificate, fin := tlsConfiguration(t)
	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsCertificate, fin)
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, l.Serve(), "wrong Serve")
	defer l.Stop()

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	first, err := tls.Dial("tcp", listen, &tlsConfig)
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	client := jsonrpc.NewClient(first)
	defer client.Close()

	var reply int
	assert.Nil(t, client.Call("Add.Add", &AddArg{1, 1}, &reply), "first connection")

	second, err := tls.Dial("tcp", listen, &tlsConfig)
	if nil == err {
		_ = second.SetDeadline(time.Now().Add(5 * time.Second))
		rejected := jsonrpc.NewClient(second)
		err = rejected.Call("Add.Add", &AddArg{1, 1}, &reply)
		_ = rejected.Close()
	}
	assert.NotNil(t, err, "second connection served")
}

func TestRpcListenerServeWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerServeWhenEmptyListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{},
	}

	count := counter.Counter(0)

	_, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		rpc.NewServer(),
		&tls.Config{},
		[32]byte{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestRpcListenerInvalidAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)

	for _, listen := range []string{"localhost:2130", "[zz::1]:2130", "1.2.3:2130"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 1,
			Listen:             []string{listen},
		}
		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
		assert.Equal(t, fault.InvalidIpAddress, err, "address: %s", listen)
	}
}
