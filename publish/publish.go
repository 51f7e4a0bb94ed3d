// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed vault events on a ZeroMQ PUB socket
//
// each event is sent as three frames: "basket", the event kind and
// the JSON encoded event
package publish

import (
	"encoding/json"
	"strings"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/basketd/background"
	"github.com/bitmark-inc/basketd/event"
	"github.com/bitmark-inc/basketd/fault"
	"github.com/bitmark-inc/basketd/messagebus"
	"github.com/bitmark-inc/logger"
)

const (
	// first frame of every message
	Topic = "basket"

	zapDomain   = "basketd-publish"
	queueSize   = 1000
	sendTimeout = 5 * time.Second
)

// Configuration - the publishing block of the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// Publisher - the running broadcaster
type Publisher struct {
	log        *logger.L
	socket     *zmq.Socket
	bus        *messagebus.Broadcast
	queue      <-chan messagebus.Message
	curve      bool
	background *background.T
}

// New - bind the PUB socket and start publishing events from bus
func New(log *logger.L, configuration *Configuration, bus *messagebus.Broadcast) (*Publisher, error) {
	if 0 == len(configuration.Broadcast) {
		return nil, fault.MissingParameters
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	p := &Publisher{
		log:    log,
		socket: socket,
		bus:    bus,
	}

	ok := false
	defer func() {
		if !ok {
			p.close()
		}
	}()

	if err := socket.SetLinger(0); nil != err {
		return nil, err
	}
	if err := socket.SetSndtimeo(sendTimeout); nil != err {
		return nil, err
	}

	if "" != configuration.PrivateKey {
		if err := p.setCurve(configuration); nil != err {
			return nil, err
		}
	}

	for i, address := range configuration.Broadcast {
		bindTo := canonical(address)
		if err := socket.Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return nil, err
		}
		log.Infof("bind[%d]: %q", i, bindTo)
	}

	p.queue = bus.Listen(queueSize)
	p.background = background.Start(background.Processes{p}, nil)

	ok = true
	return p, nil
}

// CURVE server: only clients knowing the public key can decrypt
func (p *Publisher) setCurve(configuration *Configuration) error {
	privateKey, private, err := ReadKeyFile(configuration.PrivateKey)
	if nil != err {
		p.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	if !private {
		return fault.InvalidPrivateKeyFile
	}

	if err := zmq.AuthStart(); nil != err {
		return err
	}
	p.curve = true
	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	if err := p.socket.SetCurveServer(1); nil != err {
		return err
	}
	if err := p.socket.SetCurveSecretkey(string(privateKey)); nil != err {
		return err
	}
	return p.socket.SetZapDomain(zapDomain)
}

// addresses without a transport are TCP; "*:port" binds all interfaces
func canonical(address string) string {
	if strings.Contains(address, "://") {
		return address
	}
	return "tcp://" + address
}

// Run - background loop sending queued events
func (p *Publisher) Run(args interface{}, shutdown <-chan struct{}) {
	p.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-p.queue:
			if !ok {
				break loop
			}
			p.send(item)
		}
	}

	p.log.Info("stopped")
}

func (p *Publisher) send(item messagebus.Message) {
	e, ok := item.Item.(event.Event)
	if !ok {
		p.log.Warnf("ignoring item from: %s  type: %T", item.From, item.Item)
		return
	}

	data, err := json.Marshal(e)
	if nil != err {
		p.log.Errorf("encode event: %d  error: %s", e.Sequence, err)
		return
	}

	_, err = p.socket.SendMessage(Topic, e.Kind.String(), data)
	if nil != err {
		p.log.Errorf("send event: %d  error: %s", e.Sequence, err)
		return
	}
	p.log.Debugf("sent: %s  vault: %d  owner: %s", e.Kind, e.Vault, e.Owner)
}

// Stop - end the background loop and close the socket
func (p *Publisher) Stop() {
	p.background.Stop()
	p.bus.Release(p.queue)
	p.close()
}

func (p *Publisher) close() {
	if nil != p.socket {
		_ = p.socket.Close()
		p.socket = nil
	}
	if p.curve {
		zmq.AuthStop()
		p.curve = false
	}
}
