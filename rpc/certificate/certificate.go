// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS server configuration for RPC listeners
package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - verify that a certificate and key form a pair and return
// the TLS configuration with the certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// this is the value a remote token gateway pins
//   openssl x509 -outform DER -in basketd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
