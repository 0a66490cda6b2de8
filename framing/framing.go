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

// Package framing pulls complete Thrift messages out of a reassembly
// buffer and writes them back, tolerating fragmentation the way a
// non-blocking network reader delivers it. It is the bridge between
// component C (the wire codec, which only knows how to decode a
// complete message) and an asynchronous byte stream that may hand back
// partial reads.
//
// Grounded on the original thrust-tokio FramedTransport's TTransport.parse:
// attempt a decode against a cursor view of the buffer; on a short read,
// report "not ready" and leave the buffer untouched; on success, drain
// exactly the bytes the decode consumed.
package framing

import (
	"bytes"
	"errors"

	"go.uber.org/thriftgen/wire"
	"go.uber.org/thriftgen/wire/binary"
)

// ErrEmptyMessage is returned by Encode if asked to serialize a message
// with no name; it is not a wire-format error, just a defensive guard
// against writing an unaddressable envelope.
var ErrEmptyMessage = errors.New("framing: message name must not be empty")

// Message is a decoded Thrift message: the envelope plus its body value.
type Message struct {
	Envelope wire.ThriftMessage
	Body     wire.Value
}

// Decode attempts to deserialize exactly one framed message from the
// front of buf.
//
// If buf does not yet contain a complete message, ready is false,
// consumed is 0, and buf is returned completely untouched -- the caller
// (typically a per-connection read loop) should wait for more bytes and
// call Decode again with the grown buffer. This is suspension point (a)
// of spec.md §5.
//
// If buf contains a complete message, ready is true, consumed is the
// number of leading bytes that message occupied, and the caller should
// drop buf[:consumed] before the next call.
//
// Any error other than wire.ErrIncomplete is fatal to the connection per
// spec.md §7; Incomplete is the only error this layer recovers from.
func Decode(buf []byte) (msg Message, consumed int, ready bool, err error) {
	r := binary.NewReader(buf)

	envelope, err := r.ReadMessageBegin()
	if err != nil {
		if errors.Is(err, wire.ErrIncomplete) {
			return Message{}, 0, false, nil
		}
		return Message{}, 0, false, err
	}

	body, err := r.ReadValue(wire.TStruct)
	if err != nil {
		if errors.Is(err, wire.ErrIncomplete) {
			return Message{}, 0, false, nil
		}
		return Message{}, 0, false, err
	}

	if err := r.ReadMessageEnd(); err != nil {
		return Message{}, 0, false, err
	}

	return Message{Envelope: envelope, Body: body}, r.Pos(), true, nil
}

// Encode serializes msg into a fresh byte slice, for the network layer to
// transmit as a single whole. Per spec.md §4.D, encoding never needs
// partial-write tracking: a single in-memory buffer is built and handed
// to the transport atomically.
func Encode(msg Message) ([]byte, error) {
	if msg.Envelope.Name == "" {
		return nil, ErrEmptyMessage
	}

	var buf bytes.Buffer
	w := binary.NewWriter(&buf)

	if err := w.WriteMessageBegin(msg.Envelope); err != nil {
		return nil, err
	}
	if err := w.WriteValue(msg.Body); err != nil {
		return nil, err
	}
	if err := w.WriteMessageEnd(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
