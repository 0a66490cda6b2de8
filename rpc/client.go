// Copyright (c) 2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package rpc

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/thriftgen/framing"
	"go.uber.org/thriftgen/wire"
)

// MethodArgs is implemented by every generated *_Args struct.
type MethodArgs interface {
	ToWire() (wire.Value, error)
}

// MethodReturn is implemented by every generated *_Result struct.
type MethodReturn interface {
	FromWire(wire.Value) error
}

// Client is the generic outbound half of the RPC runtime: it writes one
// framed Call envelope per Call and reads back exactly one framed reply,
// grounded on encoding/thrift/outbound.go's thriftClient.Call. A Client
// serializes concurrent Call invocations onto one logical request/reply
// exchange at a time, since the underlying framed transport is strictly
// FIFO per connection (spec.md §4.D).
type Client struct {
	conn Conn

	mu  sync.Mutex
	seq int16
	buf framing.ReassemblyBuffer
}

// NewClient wraps conn for outbound calls.
func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

// Call writes method's args over c's connection and decodes exactly one
// reply into result.
func (c *Client) Call(ctx context.Context, method string, args MethodArgs, result MethodReturn) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	argsVal, err := args.ToWire()
	if err != nil {
		return fmt.Errorf("rpc: encoding args for %q: %w", method, err)
	}

	c.seq++
	req := framing.Message{
		Envelope: wire.ThriftMessage{Name: method, Type: wire.Call, Seq: c.seq},
		Body:     argsVal,
	}
	raw, err := framing.Encode(req)
	if err != nil {
		return fmt.Errorf("rpc: framing request for %q: %w", method, err)
	}
	if _, err := c.conn.Write(raw); err != nil {
		return fmt.Errorf("rpc: writing request for %q: %w", method, err)
	}

	return c.readReply(ctx, method, result)
}

// CallOneway writes method's args as a fire-and-forget request: no reply
// frame is read, matching the server's choice (spec.md's Open Question on
// the oneway reply path) to never write one back.
func (c *Client) CallOneway(ctx context.Context, method string, args MethodArgs) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	argsVal, err := args.ToWire()
	if err != nil {
		return fmt.Errorf("rpc: encoding args for %q: %w", method, err)
	}

	c.seq++
	req := framing.Message{
		Envelope: wire.ThriftMessage{Name: method, Type: wire.Oneway, Seq: c.seq},
		Body:     argsVal,
	}
	raw, err := framing.Encode(req)
	if err != nil {
		return fmt.Errorf("rpc: framing request for %q: %w", method, err)
	}
	_, err = c.conn.Write(raw)
	return err
}

func (c *Client) readReply(ctx context.Context, method string, result MethodReturn) error {
	chunk := make([]byte, 4096)
	for {
		msg, ready, err := c.buf.Next()
		if err != nil {
			return fmt.Errorf("rpc: decoding reply for %q: %w", method, err)
		}
		if ready {
			return c.unwrapReply(method, msg, result)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := c.conn.Read(chunk)
		if n > 0 {
			c.buf.Append(chunk[:n])
		}
		if err != nil {
			return fmt.Errorf("rpc: reading reply for %q: %w", method, err)
		}
	}
}

func (c *Client) unwrapReply(method string, msg framing.Message, result MethodReturn) error {
	switch msg.Envelope.Type {
	case wire.Reply:
		return result.FromWire(msg.Body)
	case wire.Exception:
		return fmt.Errorf("rpc: %s: %s", method, exceptionMessage(msg.Body))
	default:
		return &ErrVariantMismatch{Method: method, Got: int(msg.Envelope.Type)}
	}
}

// exceptionMessage pulls the message string back out of the one-field
// struct the server's writeReply encodes for a wire.Exception reply.
func exceptionMessage(v wire.Value) string {
	for _, f := range v.GetStruct().Fields {
		if f.ID == 1 {
			return f.Value.GetString()
		}
	}
	return "unknown error"
}
