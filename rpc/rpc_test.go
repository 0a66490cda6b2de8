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

package rpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftgen/rpc"
	"go.uber.org/thriftgen/wire"
)

type pingArgs struct {
	Name string
}

func (a *pingArgs) ToWire() (wire.Value, error) {
	return wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
		{ID: 1, Value: wire.NewValueString(a.Name)},
	}}), nil
}

type pingResult struct {
	Success *string
}

func (r *pingResult) FromWire(v wire.Value) error {
	for _, f := range v.GetStruct().Fields {
		if f.ID == 0 {
			s := f.Value.GetString()
			r.Success = &s
		}
	}
	return nil
}

func (r *pingResult) ToWire() (wire.Value, error) {
	var fields []wire.Field
	if r.Success != nil {
		fields = append(fields, wire.Field{ID: 0, Value: wire.NewValueString(*r.Success)})
	}
	return wire.NewValueStruct(wire.Struct{Fields: fields}), nil
}

func pingHandlers(fail bool) map[string]rpc.HandlerFunc {
	return map[string]rpc.HandlerFunc{
		"Ping": func(ctx context.Context, req wire.Value) *rpc.Future[wire.Value] {
			fut := rpc.NewFuture[wire.Value]()
			var name string
			for _, f := range req.GetStruct().Fields {
				if f.ID == 1 {
					name = f.Value.GetString()
				}
			}
			if fail {
				fut.Resolve(wire.Value{}, assert.AnError)
				return fut
			}
			greeting := "Hello, " + name
			result := &pingResult{Success: &greeting}
			val, err := result.ToWire()
			fut.Resolve(val, err)
			return fut
		},
		"Notify": func(ctx context.Context, req wire.Value) *rpc.Future[wire.Value] {
			fut := rpc.NewFuture[wire.Value]()
			fut.Resolve(wire.Value{}, nil)
			return fut
		},
	}
}

func TestClientServerRoundTrip(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	srv := rpc.NewServer(pingHandlers(false), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx, serverConn)

	client := rpc.NewClient(clientConn)
	var result pingResult
	err := client.Call(ctx, "Ping", &pingArgs{Name: "keen"}, &result)
	require.NoError(t, err)
	require.NotNil(t, result.Success)
	assert.Equal(t, "Hello, keen", *result.Success)
}

func TestClientSurfacesHandlerError(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	srv := rpc.NewServer(pingHandlers(true), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx, serverConn)

	client := rpc.NewClient(clientConn)
	var result pingResult
	err := client.Call(ctx, "Ping", &pingArgs{Name: "keen"}, &result)
	assert.Error(t, err)
}

// TestClientUnknownMethod exercises spec.md §7/§8 scenario 6: an unknown
// method is a protocol error that closes the connection rather than
// getting written back as a reply, so Serve returns and the underlying
// connection is closed -- unblocking the client's pending read with an
// error instead of hanging forever.
func TestClientUnknownMethod(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	srv := rpc.NewServer(pingHandlers(false), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		srv.Serve(ctx, serverConn)
		serverConn.Close()
	}()

	client := rpc.NewClient(clientConn)
	var result pingResult
	err := client.Call(ctx, "Missing", &pingArgs{Name: "keen"}, &result)
	assert.Error(t, err)
}

func TestClientOnewayDoesNotWaitForReply(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	srv := rpc.NewServer(pingHandlers(false), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx, serverConn)

	client := rpc.NewClient(clientConn)
	done := make(chan error, 1)
	go func() {
		done <- client.CallOneway(ctx, "Notify", &pingArgs{Name: "keen"})
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("CallOneway blocked waiting for a reply that should never arrive")
	}
}

func TestFutureGetRespectsContextCancellation(t *testing.T) {
	fut := rpc.NewFuture[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fut.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
