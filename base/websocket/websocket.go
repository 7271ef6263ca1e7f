// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package websocket provides a simple WebSocket client for the /ws
// frame endpoint of the roomview server. A client sends JSON
// ClientMessage values and receives the Hello, FrameState and
// ErrorReply replies of the server package. The server tests
// use it, as can any Go program driving a viewer session.
package websocket

import (
	"sync"

	"cogentcore.org/roomview/base/errors"
	"cogentcore.org/roomview/base/iox/jsonx"
	"github.com/gorilla/websocket"
)

// MessageTypes are the types of WebSocket data messages.
type MessageTypes int32

const (
	// TextMessage is a UTF-8 text data message.
	TextMessage MessageTypes = websocket.TextMessage

	// BinaryMessage is a binary data message.
	BinaryMessage MessageTypes = websocket.BinaryMessage
)

// Client represents a WebSocket client connection.
// You can use [Connect] to create a new Client.
type Client struct {

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// done is a channel that is closed when the connection is closed.
	done chan struct{}

	// writeMu serializes writes, which the connection does not allow
	// to be concurrent.
	writeMu sync.Mutex
}

// Connect connects to a WebSocket server and returns a [Client].
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// OnMessage sets a callback function to be called when a message is received.
// This function can only be called once.
func (c *Client) OnMessage(f func(typ MessageTypes, msg []byte)) {
	go func() {
		defer c.conn.Close()
		for {
			typ, msg, err := c.conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					errors.Log(err)
				}
				close(c.done)
				return
			}
			f(MessageTypes(typ), msg)
		}
	}()
}

// Send sends a message to the WebSocket server with the given type and message.
func (c *Client) Send(typ MessageTypes, msg []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(int(typ), msg)
}

// SendJSON sends the given value as a JSON text message.
func (c *Client) SendJSON(v any) error {
	b, err := jsonx.WriteBytes(v)
	if err != nil {
		return err
	}
	return c.Send(TextMessage, b)
}

// Close cleanly closes the WebSocket connection.
// It does not directly trigger [Client.OnClose], but once the connection
// is closed, [Client.OnMessage] will trigger it.
func (c *Client) Close() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// OnClose sets a callback function to be called when the connection is closed.
// This function can only be called once.
func (c *Client) OnClose(f func()) {
	go func() {
		<-c.done
		f()
	}()
}
