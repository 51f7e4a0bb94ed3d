// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/counter"
	"github.com/bitmark-inc/basketd/rpc/fixtures"
	"github.com/bitmark-inc/basketd/rpc/node"
	"github.com/bitmark-inc/basketd/vault/mocks"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)

	ctr := counter.Counter(3)
	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now().Add(-time.Minute),
		"1.2",
		&ctr,
		e,
	)

	e.EXPECT().Name().Return("X-ETF-INDEX-0").Times(1)
	e.EXPECT().Symbol().Return("XTF").Times(1)
	e.EXPECT().TotalVaultCount().Return(uint64(6)).Times(1)
	e.EXPECT().TotalSupply().Return(uint64(400)).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "1.2", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "XTF", reply.Symbol, "wrong symbol")
	assert.Equal(t, uint64(6), reply.TotalVaults, "wrong vault count")
	assert.Equal(t, uint64(400), reply.TotalSupply, "wrong supply")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}
