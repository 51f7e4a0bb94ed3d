// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
)

const (
	saltSize      = 32
	nonceSize     = 24
	minPassword   = 8
	keyFileFormat = "basket-key-v1"
)

// keyFile - on disk form of a private key, the key is sealed with a
// password derived secret
type keyFile struct {
	Format  string `json:"format"`
	Account string `json:"account"`
	Salt    string `json:"salt"`
	Data    string `json:"data"`
}

func writeKey(fileName string, password string, key *account.PrivateKey) error {
	if len(password) < minPassword {
		return fault.InvalidPasswordLength
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); nil != err {
		return err
	}

	secret, err := generateKey(password, salt)
	if nil != err {
		return err
	}

	data, err := encryptData(key.String(), secret)
	if nil != err {
		return err
	}

	k := keyFile{
		Format:  keyFileFormat,
		Account: key.Account().String(),
		Salt:    hex.EncodeToString(salt),
		Data:    data,
	}
	b, err := json.MarshalIndent(k, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, append(b, '\n'), 0600)
}

func readKey(fileName string, password string) (*account.PrivateKey, error) {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var k keyFile
	if err := json.Unmarshal(b, &k); nil != err || keyFileFormat != k.Format || "" == k.Data {
		return nil, fault.NotPrivateKey
	}
	salt, err := hex.DecodeString(k.Salt)
	if nil != err || saltSize != len(salt) {
		return nil, fault.NotPrivateKey
	}

	secret, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	seed, err := decryptData(k.Data, secret)
	if nil != err {
		return nil, fault.WrongPassword
	}

	key, err := account.PrivateKeyFromHex(seed)
	if nil != err {
		return nil, err
	}
	if key.Account().String() != k.Account {
		return nil, fault.NotPrivateKey
	}
	return key, nil
}

func generateKey(password string, salt []byte) (*[32]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt)
	if nil != err {
		return nil, err
	}

	secret := new([32]byte)
	copy(secret[:], hash)
	return secret, nil
}

func encryptData(data string, secret *[32]byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", err
	}

	sealed := secretbox.Seal(nonce[:], []byte(data), &nonce, secret)
	return hex.EncodeToString(sealed), nil
}

func decryptData(data string, secret *[32]byte) (string, error) {
	sealed, err := hex.DecodeString(data)
	if nil != err || len(sealed) <= nonceSize {
		return "", fault.CryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	opened, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, secret)
	if !ok {
		return "", fault.CryptoFailed
	}
	return string(opened), nil
}
