// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/event"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/rpc/ratelimit"
	"github.com/bitmark-inc/basketd/vault"
)

// Events
// ------

const (
	rateLimitEvents = 200
	rateBurstEvents = 1000
)

// Events - type for RPC
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  vault.Engine
}

// New - event log handler
func New(log *logger.L, engine vault.Engine) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		Engine:  engine,
	}
}

// ListArguments - at most one of vault or owner selects a topic
type ListArguments struct {
	Vault *registry.VaultId `json:"vault,omitempty"`
	Owner *account.Account  `json:"owner,omitempty"`
	Start uint64            `json:"start,string"`
	Count int               `json:"count"`
}

// Entry - one event with its identifier
type Entry struct {
	Id       event.Id         `json:"id"`
	Sequence uint64           `json:"sequence"`
	Kind     event.Kind       `json:"kind"`
	Vault    registry.VaultId `json:"vault"`
	Owner    account.Account  `json:"owner"`
}

// ListReply - events and the start of the next page
type ListReply struct {
	Events    []Entry `json:"events"`
	NextStart uint64  `json:"nextStart,string"`
}

// List - page through committed events
func (e *Events) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.InvalidItem
	}

	if err := ratelimit.LimitN(e.Limiter, arguments.Count, event.MaximumCount); nil != err {
		return err
	}

	e.Log.Infof("Events.List: start: %d  count: %d", arguments.Start, arguments.Count)

	filter := event.Filter{
		Vault: arguments.Vault,
		Owner: arguments.Owner,
	}
	list, err := e.Engine.Events(filter, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = make([]Entry, len(list))
	reply.NextStart = arguments.Start
	for i, item := range list {
		reply.Events[i] = Entry{
			Id:       item.Id(),
			Sequence: item.Sequence,
			Kind:     item.Kind,
			Vault:    item.Vault,
			Owner:    item.Owner,
		}
		reply.NextStart = item.Sequence + 1
	}
	return nil
}
