// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/basketd/event"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/rpc/events"
	"github.com/bitmark-inc/basketd/rpc/fixtures"
	"github.com/bitmark-inc/basketd/vault/mocks"
	"github.com/bitmark-inc/logger"
)

func TestEventsList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	h := events.New(logger.New(fixtures.LogCategory), e)

	vault := registry.VaultId(3)
	list := []*event.Event{
		{Sequence: 4, Kind: event.VaultOpened, Vault: vault, Owner: fixtures.Alice},
		{Sequence: 9, Kind: event.VaultClosed, Vault: vault, Owner: fixtures.Alice},
	}
	e.EXPECT().Events(event.Filter{Vault: &vault}, uint64(2), 10).Return(list, nil).Times(1)

	var reply events.ListReply
	err := h.List(&events.ListArguments{Vault: &vault, Start: 2, Count: 10}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 2, len(reply.Events), "wrong count")
	assert.Equal(t, uint64(10), reply.NextStart, "wrong next start")
	assert.Equal(t, list[0].Id(), reply.Events[0].Id, "wrong id")
	assert.Equal(t, event.VaultClosed, reply.Events[1].Kind, "wrong kind")
	assert.Equal(t, fixtures.Alice, reply.Events[1].Owner, "wrong owner")
}

func TestEventsListEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	h := events.New(logger.New(fixtures.LogCategory), e)

	e.EXPECT().Events(event.Filter{}, uint64(7), 5).Return([]*event.Event{}, nil).Times(1)

	var reply events.ListReply
	err := h.List(&events.ListArguments{Start: 7, Count: 5}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 0, len(reply.Events), "wrong count")
	assert.Equal(t, uint64(7), reply.NextStart, "next start moved")
}

func TestEventsListInvalidCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	h := events.New(logger.New(fixtures.LogCategory), e)

	var reply events.ListReply
	for _, count := range []int{0, -1, event.MaximumCount + 1} {
		err := h.List(&events.ListArguments{Count: count}, &reply)
		assert.Equal(t, fault.InvalidCount, err, "count: %d", count)
	}
}
