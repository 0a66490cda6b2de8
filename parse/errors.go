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

package parse

import (
	"fmt"

	"go.uber.org/multierr"
)

// Error is a single diagnostic produced by the lexer or parser, tied to a
// source position.
type Error struct {
	Pos Pos
	Msg string

	// Incomplete marks an error caused by the input ending mid-token or
	// mid-production (e.g. an unterminated string, or EOF where a field
	// was expected). Callers that stream source incrementally can use
	// this to distinguish "wait for more input" from a genuine syntax
	// error, mirroring wire.ErrIncomplete's role in the binary codec.
	Incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func errExpected(tok Token, want string) *Error {
	return &Error{
		Pos:        tok.Pos,
		Msg:        fmt.Sprintf("expected %s, found %q", want, tok.Text),
		Incomplete: tok.Kind == EOF,
	}
}

func errUnexpectedEOF(pos Pos, want string) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf("unexpected end of input, expected %s", want), Incomplete: true}
}

// ErrorList aggregates multiple parse errors encountered while recovering
// from a bad production, using multierr the way the rest of this module
// aggregates independent failures.
type ErrorList struct {
	err error
}

func (l *ErrorList) add(err error) {
	l.err = multierr.Append(l.err, err)
}

func (l *ErrorList) combined() error {
	return l.err
}
