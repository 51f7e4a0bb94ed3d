// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - an item and the name of its sender
type Message struct {
	From string
	Item interface{}
}

// Broadcast - deliver each message to every current listener
type Broadcast struct {
	sync.RWMutex
	listeners map[chan Message]struct{}
	dropped   uint64
}

// New - an empty broadcaster
func New() *Broadcast {
	return &Broadcast{
		listeners: make(map[chan Message]struct{}),
	}
}

// Send - queue to all listeners without blocking
func (b *Broadcast) Send(from string, item interface{}) {
	m := Message{
		From: from,
		Item: item,
	}

	b.RLock()
	dropped := uint64(0)
	for queue := range b.listeners {
		select {
		case queue <- m:
		default:
			dropped += 1
		}
	}
	b.RUnlock()

	if dropped > 0 {
		b.Lock()
		b.dropped += dropped
		b.Unlock()
	}
}

// Listen - a new listener, size <= 0 selects the default queue size
func (b *Broadcast) Listen(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	queue := make(chan Message, size)

	b.Lock()
	b.listeners[queue] = struct{}{}
	b.Unlock()

	return queue
}

// Release - remove a listener and close its channel
func (b *Broadcast) Release(queue <-chan Message) {
	b.Lock()
	defer b.Unlock()
	for q := range b.listeners {
		if (<-chan Message)(q) == queue {
			delete(b.listeners, q)
			close(q)
			return
		}
	}
}

// Dropped - messages lost by slow listeners
func (b *Broadcast) Dropped() uint64 {
	b.RLock()
	defer b.RUnlock()
	return b.dropped
}
