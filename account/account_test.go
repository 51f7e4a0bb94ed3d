// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
)

// fixed seed so the encoded text form is stable within a run
const testSeed = "5d4e3f2a1b0c9d8e7f6a5b4c3d2e1f000112233445566778899aabbccddeeff0"

func TestRoundTripText(t *testing.T) {
	key, err := account.PrivateKeyFromHex(testSeed)
	assert.Nil(t, err, "private key decode")

	a := key.Account()
	assert.False(t, a.IsZero(), "derived account is zero")

	s := a.String()
	decoded, err := account.FromBase58(s)
	assert.Nil(t, err, "base58 decode")
	assert.Equal(t, a, decoded, "round trip mismatch")

	buffer, err := json.Marshal(a)
	assert.Nil(t, err, "json marshal")
	assert.Equal(t, `"`+s+`"`, string(buffer), "json form")

	var fromJSON account.Account
	err = json.Unmarshal(buffer, &fromJSON)
	assert.Nil(t, err, "json unmarshal")
	assert.Equal(t, a, fromJSON, "json round trip")
}

func TestInvalidText(t *testing.T) {
	key, _ := account.PrivateKeyFromHex(testSeed)
	s := key.Account().String()

	// alter a character in the middle so the checksum fails
	altered := []byte(s)
	if '2' == altered[10] {
		altered[10] = '3'
	} else {
		altered[10] = '2'
	}

	invalid := []struct {
		text string
		err  error
	}{
		{"", fault.CannotDecodeAccount},
		{"0OIl", fault.CannotDecodeAccount},
		{"3yZe7d", fault.InvalidKeyLength},
		{string(altered), fault.ChecksumMismatch},
	}

	for i, item := range invalid {
		_, err := account.FromBase58(item.text)
		if item.err != err {
			t.Errorf("%d: %q  error: %v  expected: %v", i, item.text, err, item.err)
		}
	}
}

func TestFromBytes(t *testing.T) {
	_, err := account.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidKeyLength, err, "short key accepted")

	buffer := make([]byte, account.AccountLength)
	buffer[0] = 7
	a, err := account.FromBytes(buffer)
	assert.Nil(t, err, "valid key rejected")
	assert.Equal(t, byte(7), a[0], "wrong first byte")
}

func TestSignature(t *testing.T) {
	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "generate key")

	message := []byte("Vault.Open")
	signature := key.Sign(message)

	a := key.Account()
	assert.Nil(t, a.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.InvalidSignature, a.CheckSignature([]byte("Vault.Close"), signature), "wrong message accepted")
	assert.Equal(t, fault.InvalidSignature, a.CheckSignature(message, signature[:10]), "short signature accepted")

	other, _ := account.NewPrivateKey()
	assert.Equal(t, fault.InvalidSignature, other.Account().CheckSignature(message, signature), "wrong key accepted")
}

func TestPrivateKeyHex(t *testing.T) {
	key, err := account.PrivateKeyFromHex(testSeed)
	assert.Nil(t, err, "seed decode")
	assert.Equal(t, testSeed, key.String(), "seed text form")

	again, err := account.PrivateKeyFromHex(" " + key.String() + "\n")
	assert.Nil(t, err, "padded seed decode")
	assert.Equal(t, key.Account(), again.Account(), "different account")

	_, err = account.PrivateKeyFromHex("abcd")
	assert.Equal(t, fault.InvalidKeyLength, err, "short seed accepted")
}
