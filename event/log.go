// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"

	"github.com/bitmark-inc/basketd/account"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/registry"
	"github.com/bitmark-inc/basketd/storage"
)

// topic prefixes in the index pool
const (
	vaultTopic = 'v'
	ownerTopic = 'o'
)

// maximum events returned by one List
const MaximumCount = 100

// key of the event counter in the counters pool
var sequenceKey = []byte("events")

// Log - persisted events with a topic index
type Log struct {
	events   *storage.PoolHandle
	topics   *storage.PoolHandle
	counters *storage.PoolHandle
}

// Filter - select events by topic, zero value selects all
type Filter struct {
	Vault *registry.VaultId
	Owner *account.Account
}

// NewLog - event log on the standard pools of a store
func NewLog(store *storage.Store) *Log {
	return &Log{
		events:   store.Pool.Events,
		topics:   store.Pool.EventTopics,
		counters: store.Pool.Counters,
	}
}

func sequenceBytes(sequence uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, sequence)
	return buffer
}

func vaultTopicKey(vault registry.VaultId) []byte {
	return append([]byte{vaultTopic}, vault.Bytes()...)
}

func ownerTopicKey(owner account.Account) []byte {
	return append([]byte{ownerTopic}, owner.Bytes()...)
}

// Append - record an event in the transaction, setting its sequence
func (l *Log) Append(trx storage.Transaction, e *Event) {
	sequence, _ := trx.GetN(l.counters, sequenceKey)
	e.Sequence = sequence

	seq := sequenceBytes(sequence)
	trx.Put(l.events, seq, e.Pack())
	trx.Put(l.topics, append(vaultTopicKey(e.Vault), seq...), seq)
	trx.Put(l.topics, append(ownerTopicKey(e.Owner), seq...), seq)
	trx.PutN(l.counters, sequenceKey, sequence+1)
}

// Count - number of events ever recorded
func (l *Log) Count(rd storage.Reader) uint64 {
	n, _ := rd.GetN(l.counters, sequenceKey)
	return n
}

// List - up to count committed events with sequence >= start
func (l *Log) List(filter Filter, start uint64, count int) ([]*Event, error) {
	if count <= 0 || count > MaximumCount {
		return nil, fault.InvalidCount
	}
	if nil != filter.Vault && nil != filter.Owner {
		return nil, fault.InvalidItem
	}

	if nil == filter.Vault && nil == filter.Owner {
		elements, err := l.events.NewFetchCursor().Seek(sequenceBytes(start)).Fetch(count)
		if nil != err {
			return nil, err
		}
		events := make([]*Event, 0, len(elements))
		for _, element := range elements {
			e, err := Unpack(binary.BigEndian.Uint64(element.Key), element.Value)
			if nil != err {
				return nil, err
			}
			events = append(events, e)
		}
		return events, nil
	}

	var topic []byte
	if nil != filter.Vault {
		topic = vaultTopicKey(*filter.Vault)
	} else {
		topic = ownerTopicKey(*filter.Owner)
	}

	cursor := l.topics.NewPrefixCursor(topic).Seek(append(topic, sequenceBytes(start)...))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	events := make([]*Event, 0, len(elements))
	for _, element := range elements {
		packed := l.events.Get(element.Value)
		if nil == packed {
			return nil, fault.InvalidItem
		}
		e, err := Unpack(binary.BigEndian.Uint64(element.Value), packed)
		if nil != err {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
