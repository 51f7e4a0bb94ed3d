// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/basket"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/gateway"
	"github.com/bitmark-inc/basketd/rpc/request"
	"github.com/bitmark-inc/basketd/rpc/tokens"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/token"
	"github.com/bitmark-inc/basketd/vault"
	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// a token ledger node whose replies can be lost or held back
type lossyNode struct {
	sync.Mutex
	store    *storage.Store
	tokens   *token.Tokens
	listener net.Listener
	drops    map[string]int // replies still to lose, per method
	hang     chan struct{}  // if set, lost replies wait for it first
}

// loses the reply of selected methods after the call has run
type lossyCodec struct {
	rpc.ServerCodec
	conn net.Conn
	node *lossyNode
}

func (c *lossyCodec) WriteResponse(r *rpc.Response, body interface{}) error {
	if c.node.lose(r.ServiceMethod) {
		if nil != c.node.hang {
			<-c.node.hang
		}
		c.conn.Close()
		return io.ErrUnexpectedEOF
	}
	return c.ServerCodec.WriteResponse(r, body)
}

func (n *lossyNode) lose(method string) bool {
	n.Lock()
	defer n.Unlock()
	if n.drops[method] > 0 {
		n.drops[method] -= 1
		return true
	}
	return false
}

// a remote ledger where alice holds 100 A
func startLossyNode(t *testing.T, drops map[string]int, hang chan struct{}) *lossyNode {
	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open store error: %s", err)
	}
	ledger := token.New(store)
	if err := ledger.Establish(store, assetA, "Remote A", "RMA", alice, 100); nil != err {
		t.Fatalf("establish error: %s", err)
	}

	server := rpc.NewServer()
	if err := server.Register(tokens.New(logger.New("remote"), store, ledger, request.NewGuard(request.DefaultWindow))); nil != err {
		t.Fatalf("register error: %s", err)
	}

	cert, key, err := certgen.NewTLSCertPair("test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	keyPair, err := tls.X509KeyPair(cert, key)
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	listener, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{keyPair},
	})
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}

	n := &lossyNode{
		store:    store,
		tokens:   ledger,
		listener: listener,
		drops:    drops,
		hang:     hang,
	}
	go func() {
		for {
			conn, err := listener.Accept()
			if nil != err {
				return
			}
			go server.ServeCodec(&lossyCodec{
				ServerCodec: jsonrpc.NewServerCodec(conn),
				conn:        conn,
				node:        n,
			})
		}
	}()
	return n
}

func (n *lossyNode) stop() {
	n.listener.Close()
	n.store.Close()
}

func (n *lossyNode) balanceOf(a account.Account) uint64 {
	return n.tokens.BalanceOf(n.store, assetA, a)
}

func setupRemoteEngine(t *testing.T, n *lossyNode, timeout string) (*storage.Store, vault.Engine) {
	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open store error: %s", err)
	}
	g, err := gateway.NewRemote(logger.New("gateway"), &gateway.RemoteConfiguration{
		Connect: n.listener.Addr().String(),
		Timeout: timeout,
	})
	if nil != err {
		t.Fatalf("remote error: %s", err)
	}
	b, err := basket.New([]account.Account{assetA}, []uint64{50})
	if nil != err {
		t.Fatalf("basket error: %s", err)
	}
	e, err := vault.New(logger.New("vault"), store, b, g, &vault.Configuration{Self: self}, nil)
	if nil != err {
		t.Fatalf("engine error: %s", err)
	}
	return store, e
}

func TestRemoteLostReplyIsReconciled(t *testing.T) {
	setupTestLogger()
	defer removeFiles()

	n := startLossyNode(t, map[string]int{"Token.TransferFrom": 1}, nil)
	defer n.stop()
	store, e := setupRemoteEngine(t, n, "")
	defer store.Close()

	id, err := e.OpenVault(alice, 0)
	assert.Nil(t, err, "applied transfer not recognised")
	assert.Equal(t, uint64(50), n.balanceOf(alice), "remote holder balance")
	assert.Equal(t, uint64(50), n.balanceOf(self), "remote escrow balance")
	assert.Equal(t, uint64(50), e.EscrowOf(assetA), "escrow not credited")
	assert.Equal(t, vault.Shares, e.BalanceOf(alice), "shares not minted")

	owner, err := e.VaultOwner(id)
	assert.Nil(t, err, "vault not registered")
	assert.Equal(t, alice, owner, "wrong owner")
}

func TestRemoteLostReplyUnresolved(t *testing.T) {
	setupTestLogger()
	defer removeFiles()

	n := startLossyNode(t, map[string]int{"Token.TransferFrom": 1, "Token.Applied": 1}, nil)
	defer n.stop()
	store, e := setupRemoteEngine(t, n, "")
	defer store.Close()

	_, err := e.OpenVault(alice, 0)
	assert.Equal(t, fault.TransferInDoubt, err, "unknown outcome reported as a clean failure")
	assert.Equal(t, uint64(50), n.balanceOf(self), "remote moved the asset")
	assert.Equal(t, uint64(0), e.EscrowOf(assetA), "escrow credited")
	assert.Equal(t, uint64(0), e.BalanceOf(alice), "shares minted")
	assert.Equal(t, uint64(0), e.TotalVaultCount(), "vault counted")
}

func TestRemoteSilentPeerTimesOut(t *testing.T) {
	setupTestLogger()
	defer removeFiles()

	hang := make(chan struct{})
	n := startLossyNode(t, map[string]int{"Token.TransferFrom": 1, "Token.Applied": 1}, hang)
	defer n.stop()
	defer close(hang)
	store, e := setupRemoteEngine(t, n, "200ms")
	defer store.Close()

	done := make(chan error, 1)
	go func() {
		_, err := e.OpenVault(alice, 0)
		done <- err
	}()

	select {
	case err := <-done:
		assert.Equal(t, fault.TransferInDoubt, err, "silent peer not reported")
	case <-time.After(5 * time.Second):
		t.Fatal("open still blocked on a silent peer")
	}

	// the writer lock was released
	_, err := e.Transfer(alice, bob, 1)
	assert.Equal(t, fault.InsufficientBalance, err, "store still locked")
}
