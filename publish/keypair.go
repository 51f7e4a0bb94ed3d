// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	keyLength     = 32
)

// MakeKeyPair - create a CURVE keypair and write the halves to
// separate files
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	// keys are returned in Z85 (ZeroMQ Base-85 Encoding)
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicKey = taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateKey = taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err = ioutil.WriteFile(publicKeyFileName, []byte(publicKey), 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, []byte(privateKey), 0600); nil != err {
		_ = os.Remove(publicKeyFileName)
		return err
	}

	return nil
}

// ReadKeyFile - read a tagged key file, returning the raw key and
// whether it is private
func ReadKeyFile(fileName string) ([]byte, bool, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, false, err
	}
	return parseKey(string(data))
}

func parseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	tag := ""
	private := false
	if strings.HasPrefix(s, taggedPrivate) {
		tag = taggedPrivate
		private = true
	} else if strings.HasPrefix(s, taggedPublic) {
		tag = taggedPublic
	} else {
		return nil, false, fault.InvalidPublicKeyFile
	}

	h, err := hex.DecodeString(s[len(tag):])
	if nil != err || keyLength != len(h) {
		if private {
			return nil, false, fault.InvalidPrivateKeyFile
		}
		return nil, false, fault.InvalidPublicKeyFile
	}
	return h, private, nil
}
