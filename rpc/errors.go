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
	"errors"
	"fmt"
)

// ErrServerClosed is returned by Serve once Close has been called.
var ErrServerClosed = errors.New("rpc: server closed")

// ErrUnknownMethod is returned by the server-side dispatch loop (and so by
// Serve) when no handler matches the request envelope's method name.
// Client.Call does not return it: an Exception reply surfaces there as an
// ordinary error carrying the server's message.
type ErrUnknownMethod struct {
	Method string
}

func (e *ErrUnknownMethod) Error() string {
	return fmt.Sprintf("rpc: unknown method %q", e.Method)
}

// ErrVariantMismatch is returned by Client.Call when the reply envelope's
// message type is neither wire.Reply nor wire.Exception.
type ErrVariantMismatch struct {
	Method string
	Got    int
}

func (e *ErrVariantMismatch) Error() string {
	return fmt.Sprintf("rpc: unexpected reply message type %d for method %q", e.Got, e.Method)
}
