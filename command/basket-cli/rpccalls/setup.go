// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the basketd JSON-RPC calls
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a basketd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the basketd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// call - one request, with the request and reply shown when verbose
func (client *Client) call(method string, args interface{}, reply interface{}) error {
	client.printJson(method+" Request", args)
	if err := client.client.Call(method, args, reply); nil != err {
		return err
	}
	client.printJson(method+" Reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) error {

	if !client.verbose {
		return nil
	}

	prefix := ""
	indent := "  "
	b, err := json.MarshalIndent(message, prefix, indent)
	if nil != err {
		return err
	}

	if "" == title {
		fmt.Fprintf(client.handle, "%s\n", b)
	} else {
		fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
	}
	return nil
}
