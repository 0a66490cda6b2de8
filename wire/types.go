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

// Package wire defines the wire-level data model shared by every Thrift
// protocol implementation in this module: the one-byte Type tags, message
// envelopes, field headers, and the Value tree that generated code
// serializes to and deserializes from. It intentionally has no knowledge of
// byte encoding -- that lives in wire/binary.
package wire

// Type is the one-byte wire type tag, distinct from ast.Type: this is what
// actually appears on the wire, not the IDL's static type system.
type Type int8

// The Type values, exactly as specified by the Thrift Binary Protocol.
const (
	TStop   Type = 0
	TVoid   Type = 1
	TBool   Type = 2
	TByte   Type = 3
	TDouble Type = 4
	TI16    Type = 6
	TI32    Type = 8
	TU64    Type = 9
	TI64    Type = 10
	TBinary Type = 11 // also used for strings
	TStruct Type = 12
	TMap    Type = 13
	TSet    Type = 14
	TList   Type = 15
)

func (t Type) String() string {
	switch t {
	case TStop:
		return "stop"
	case TVoid:
		return "void"
	case TBool:
		return "bool"
	case TByte:
		return "byte"
	case TDouble:
		return "double"
	case TI16:
		return "i16"
	case TI32:
		return "i32"
	case TU64:
		return "u64"
	case TI64:
		return "i64"
	case TBinary:
		return "binary"
	case TStruct:
		return "struct"
	case TMap:
		return "map"
	case TSet:
		return "set"
	case TList:
		return "list"
	default:
		return "unknown"
	}
}

// MessageType identifies the kind of RPC message a ThriftMessage envelope
// carries.
type MessageType int8

// The MessageType values, exactly as specified by the Thrift Binary
// Protocol.
const (
	Call      MessageType = 1
	Reply     MessageType = 2
	Exception MessageType = 3
	Oneway    MessageType = 4
)

func (t MessageType) String() string {
	switch t {
	case Call:
		return "call"
	case Reply:
		return "reply"
	case Exception:
		return "exception"
	case Oneway:
		return "oneway"
	default:
		return "unknown"
	}
}

// ThriftMessage is the envelope that precedes every request or response
// body on the wire.
type ThriftMessage struct {
	Name string
	Type MessageType
	Seq  int16
}

// ThriftField is the header that precedes every struct field's value on
// the wire. Name is never present on the wire (the binary protocol encodes
// only the numeric ID) but is carried here for diagnostics and for
// protocols that may want it; it is always empty coming out of the binary
// reader.
type ThriftField struct {
	Name *string
	Type Type
	Seq  int16
}

// IsStop reports whether this field header is the struct-terminating
// sentinel (Type == TStop).
func (f ThriftField) IsStop() bool { return f.Type == TStop }
