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

package wire

import "errors"

// ErrIncomplete is returned by any Reader method that ran out of buffer
// before it could finish decoding a value. It is the "Incomplete"/"EOF"
// signal of spec.md §4.C and §7: callers above the framing layer may
// retry once more bytes arrive. When a Reader method returns
// ErrIncomplete, the cursor is left exactly where it was before the call.
var ErrIncomplete = errors.New("wire: incomplete value, need more bytes")

// ErrProtocolVersionMissing is returned when the first four bytes of a
// message envelope are not a negative, version-tagged word.
var ErrProtocolVersionMissing = errors.New("wire: no protocol version header")

// ErrBadVersion is returned when the first four bytes of a message
// envelope carry a version other than VERSION_1.
var ErrBadVersion = errors.New("wire: unsupported protocol version")

// ErrNegativeLength is returned when a length-prefixed string, binary
// blob, list, set or map advertises a negative length.
var ErrNegativeLength = errors.New("wire: negative length prefix")

// ErrInvalidBool is returned when a bool byte is neither 0x00 nor 0x01.
var ErrInvalidBool = errors.New("wire: invalid bool byte")

// ErrInvalidStop describes a malformed struct stop marker. The binary
// Reader does not return it: ReadStructEnd is a no-op, and struct decoding
// ends at the first field header whose type is TStop.
var ErrInvalidStop = errors.New("wire: invalid struct stop marker")

// VERSION_1 is the magic high-16-bits word that must appear in every
// message header's first four bytes, per spec.md §3 invariant 1. It is
// computed from the unsigned bit pattern 0x80010000 at init time rather
// than written as a typed constant because that bit pattern overflows a
// signed int32 constant expression.
var VERSION_1 = func() int32 {
	bits := uint32(0x80010000)
	return int32(bits)
}()

// VersionMask isolates the high 16 bits of a message header word, the
// half that carries VERSION_1; the low 16 bits carry the MessageType.
const VersionMask int32 = ^0xffff
