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

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"go.uber.org/thriftgen/framing"
	"go.uber.org/thriftgen/wire"
)

// HandlerFunc dispatches one decoded request body and returns a Future
// for its encoded reply body. Generated Register<Service> funcs build one
// of these per method, closing over the user's service implementation.
type HandlerFunc func(ctx context.Context, req wire.Value) *Future[wire.Value]

// Server is the generic inbound half of the RPC runtime: it owns a
// dispatch table (one HandlerFunc per bare Thrift method name, built by a
// generated Register<Service> call) and loops a single connection through
// decode/dispatch/encode, grounded on encoding/thrift/inbound.go's
// thriftHandler.Handle and register.go's handler-map pattern. A single
// Server serves one service's method namespace, the same way a reference
// Thrift peer dispatches without TMultiplexedProtocol.
type Server struct {
	handlers map[string]HandlerFunc
	log      *zap.Logger
	closed   atomic.Bool
}

// NewServer builds a Server dispatching over handlers. A nil log installs
// a no-op logger.
func NewServer(handlers map[string]HandlerFunc, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{handlers: handlers, log: log}
}

// Close marks the server as no longer accepting new Serve calls. It does
// not interrupt a Serve already in flight.
func (s *Server) Close() error {
	s.closed.Store(true)
	return nil
}

// Serve reads and dispatches requests off conn until ctx is done, conn
// returns an error (including io.EOF on orderly close), or a decode
// failure makes the connection unrecoverable. Requests are handled one at
// a time, in arrival order -- spec.md §4.D's FIFO contract -- so a slow
// handler blocks the next request's reply but never reorders replies.
func (s *Server) Serve(ctx context.Context, conn Conn) error {
	if s.closed.Load() {
		return ErrServerClosed
	}
	s.log.Info("serving connection")
	defer s.log.Debug("connection closed")

	var buf framing.ReassemblyBuffer
	chunk := make([]byte, 4096)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, ready, err := buf.Next()
		if err != nil {
			s.log.Error("failed to decode request", zap.Error(err))
			return err
		}
		if !ready {
			n, rerr := conn.Read(chunk)
			if n > 0 {
				buf.Append(chunk[:n])
			}
			if rerr != nil {
				return rerr
			}
			continue
		}

		if err := s.dispatch(ctx, conn, msg); err != nil {
			return err
		}
	}
}

// dispatch runs one decoded request to completion. An unknown method is a
// protocol error -- spec.md §7 puts UnknownMethod in the class of errors
// that close the connection rather than get reported as a reply -- so it
// is returned to Serve instead of written back to the peer.
func (s *Server) dispatch(ctx context.Context, conn Conn, msg framing.Message) error {
	h, ok := s.handlers[msg.Envelope.Name]
	if !ok {
		s.log.Warn("unknown method", zap.String("method", msg.Envelope.Name))
		return &ErrUnknownMethod{Method: msg.Envelope.Name}
	}

	fut := h(ctx, msg.Body)
	result, err := fut.Get(ctx)

	// oneway methods never get a reply frame; the handler still runs to
	// completion above.
	if msg.Envelope.Type == wire.Oneway {
		return nil
	}
	if err != nil {
		s.log.Debug("handler returned an error", zap.String("method", msg.Envelope.Name), zap.Error(err))
	}
	s.writeReply(conn, msg.Envelope, result, err)
	return nil
}

func (s *Server) writeReply(conn Conn, reqEnvelope wire.ThriftMessage, body wire.Value, handlerErr error) {
	env := wire.ThriftMessage{Name: reqEnvelope.Name, Type: wire.Reply, Seq: reqEnvelope.Seq}
	if handlerErr != nil {
		env.Type = wire.Exception
		// Encoded as a one-field struct (STOP-terminated), not a bare
		// string: framing.Decode always reads a message body as TStruct,
		// and a raw TBinary-shaped string would be misread as an empty
		// struct by a peer expecting the struct wire shape.
		body = wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
			{ID: 1, Value: wire.NewValueString(handlerErr.Error())},
		}})
	}
	raw, err := framing.Encode(framing.Message{Envelope: env, Body: body})
	if err != nil {
		s.log.Error("failed to encode reply", zap.Error(err))
		return
	}
	if _, err := conn.Write(raw); err != nil {
		s.log.Error("failed to write reply", zap.Error(err))
	}
}
