// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/pborman/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/storage"
	"github.com/bitmark-inc/basketd/token"
	"github.com/bitmark-inc/logger"
)

const (
	dialTimeout        = 10 * time.Second
	defaultCallTimeout = 30 * time.Second
)

// TransferFromArguments - Token.TransferFrom request
//
// a non-empty reference (a UUID) makes the transfer idempotent and
// lets Token.Applied report whether it happened
type TransferFromArguments struct {
	Token     account.Account `json:"token"`
	From      account.Account `json:"from"`
	To        account.Account `json:"to"`
	Value     uint64          `json:"value"`
	Reference string          `json:"reference,omitempty"`
}

// AppliedArguments - Token.Applied request
type AppliedArguments struct {
	Token     account.Account `json:"token"`
	Reference string          `json:"reference"`
}

// AppliedReply - whether a referenced transfer was applied
type AppliedReply struct {
	Applied bool `json:"applied"`
}

// BalanceReply - a balance after a transfer
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// InfoArguments - Token.Info request
type InfoArguments struct {
	Token account.Account `json:"token"`
}

// RemoteConfiguration - a token ledger served by another node
type RemoteConfiguration struct {
	Connect     string `gluamapper:"connect" json:"connect"`
	Fingerprint string `gluamapper:"fingerprint" json:"fingerprint"`
	Timeout     string `gluamapper:"timeout" json:"timeout"`
}

type remote struct {
	sync.Mutex
	log         *logger.L
	connect     string
	fingerprint []byte
	timeout     time.Duration
	conn        *tls.Conn
	client      *rpc.Client
}

// NewRemote - gateway to a token ledger reached over JSON-RPC
//
// an empty fingerprint accepts any server certificate, otherwise the
// SHA3-256 of the server certificate must match
func NewRemote(log *logger.L, configuration *RemoteConfiguration) (Gateway, error) {
	if "" == configuration.Connect {
		return nil, fault.MissingParameters
	}
	r := &remote{
		log:     log,
		connect: configuration.Connect,
		timeout: defaultCallTimeout,
	}
	if "" != configuration.Timeout {
		timeout, err := time.ParseDuration(configuration.Timeout)
		if nil != err || timeout <= 0 {
			return nil, fault.InvalidItem
		}
		r.timeout = timeout
	}
	if "" != configuration.Fingerprint {
		fp, err := hex.DecodeString(configuration.Fingerprint)
		if nil != err || 32 != len(fp) {
			return nil, fault.InvalidItem
		}
		r.fingerprint = fp
	}
	return r, nil
}

func (r *remote) Supports(asset account.Account) error {
	args := InfoArguments{
		Token: asset,
	}
	var reply token.Info
	if err := r.call("Token.Info", &args, &reply); nil != err {
		r.log.Errorf("%s: token: %s  info error: %s", r.connect, asset, err)
		return fault.UnsupportedToken
	}
	return hasTransferFrom(reply.Selectors)
}

func (r *remote) Transactional(asset account.Account) bool {
	return false
}

// TransferFrom - one referenced transfer on the remote ledger
//
// a reply lost after the request was sent leaves the outcome open, so
// the reference is looked up on a fresh connection; if that also fails
// the transfer is reported as fault.TransferInDoubt
func (r *remote) TransferFrom(trx storage.Transaction, asset account.Account, from account.Account, to account.Account, amount uint64) (uint64, error) {
	reference := uuid.NewRandom().String()
	args := TransferFromArguments{
		Token:     asset,
		From:      from,
		To:        to,
		Value:     amount,
		Reference: reference,
	}
	var reply BalanceReply
	err := r.call("Token.TransferFrom", &args, &reply)
	if nil == err {
		return reply.Balance, nil
	}
	if _, ok := err.(rpc.ServerError); ok {
		return 0, remoteError(err)
	}
	if fault.RemoteNotConnected == err {
		return 0, fault.TransferFailed
	}

	r.log.Warnf("%s: token: %s  reference: %s  reply lost: %s", r.connect, asset, reference, err)

	applied, err := r.applied(asset, reference)
	if nil != err {
		r.log.Criticalf("%s: token: %s  reference: %s  amount: %d  from: %s  to: %s  outcome unknown: %s", r.connect, asset, reference, amount, from, to, err)
		return 0, fault.TransferInDoubt
	}
	if !applied {
		r.log.Infof("%s: token: %s  reference: %s  was not applied", r.connect, asset, reference)
		return 0, fault.TransferFailed
	}
	r.log.Infof("%s: token: %s  reference: %s  was applied", r.connect, asset, reference)
	return 0, nil
}

func (r *remote) applied(asset account.Account, reference string) (bool, error) {
	args := AppliedArguments{
		Token:     asset,
		Reference: reference,
	}
	var reply AppliedReply
	if err := r.call("Token.Applied", &args, &reply); nil != err {
		return false, err
	}
	return reply.Applied, nil
}

// call - one request with a deadline, reconnecting if the previous
// connection failed
//
// a failed dial returns fault.RemoteNotConnected: nothing was sent
func (r *remote) call(method string, args interface{}, reply interface{}) error {
	r.Lock()
	defer r.Unlock()

	if nil == r.client {
		if err := r.dial(); nil != err {
			r.log.Errorf("%s: dial error: %s", r.connect, err)
			return fault.RemoteNotConnected
		}
	}

	if err := r.conn.SetDeadline(time.Now().Add(r.timeout)); nil != err {
		r.disconnect()
		return fault.RemoteNotConnected
	}

	err := r.client.Call(method, args, reply)
	if nil != err {
		if _, ok := err.(rpc.ServerError); !ok {
			r.disconnect()
			return err
		}
	}
	r.conn.SetDeadline(time.Time{})
	return err
}

func (r *remote) disconnect() {
	r.client.Close()
	r.client = nil
	r.conn = nil
}

func (r *remote) dial() error {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}
	if nil != r.fingerprint {
		tlsConfig.VerifyPeerCertificate = r.verify
	}

	dialer := &net.Dialer{
		Timeout: dialTimeout,
	}
	conn, err := tls.DialWithDialer(dialer, "tcp", r.connect, tlsConfig)
	if nil != err {
		return err
	}
	r.log.Infof("connected to: %s", r.connect)
	r.conn = conn
	r.client = jsonrpc.NewClient(conn)
	return nil
}

func (r *remote) verify(rawCerts [][]byte, _ [][]*x509.Certificate) error {
	if 0 == len(rawCerts) {
		return fault.InvalidSignature
	}
	fp := sha3.Sum256(rawCerts[0])
	if !bytes.Equal(fp[:], r.fingerprint) {
		r.log.Warnf("%s: certificate fingerprint mismatch: %x", r.connect, fp)
		return fault.InvalidSignature
	}
	return nil
}

// server errors arrive as text; restore known faults so callers can
// still classify them
func remoteError(err error) error {
	if serverError, ok := err.(rpc.ServerError); ok {
		switch string(serverError) {
		case fault.InsufficientBalance.Error():
			return fault.InsufficientBalance
		case fault.TokenNotFound.Error():
			return fault.TokenNotFound
		case fault.Overflow.Error():
			return fault.Overflow
		}
	}
	return err
}
