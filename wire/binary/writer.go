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

// Package binary implements the Thrift Binary Protocol (version 1)
// encoding rules of spec.md §4.C: a bit-exact, big-endian, length-prefixed
// wire format with a STOP-terminated struct encoding and a
// version-tagged message header.
package binary

import (
	"bytes"
	"encoding/binary"
	"math"

	"go.uber.org/thriftgen/wire"
)

// Writer serializes wire.Value trees, message envelopes, and field
// headers into a byte sink using the Thrift Binary Protocol encoding.
// write_struct_begin/end and write_message_end are no-ops on the wire (the
// binary protocol has no matching bytes) but are kept as methods for
// symmetry with future protocols, per spec.md §4.C.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter returns a Writer that appends encoded bytes to buf.
func NewWriter(buf *bytes.Buffer) *Writer {
	return &Writer{buf: buf}
}

// WriteBool writes a one-byte bool (0x00 or 0x01).
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteByte(1)
	}
	return w.WriteByte(0)
}

// WriteByte writes a one-byte two's-complement i8/byte value.
func (w *Writer) WriteByte(v int8) error {
	return w.buf.WriteByte(byte(v))
}

// WriteI16 writes a two-byte big-endian i16.
func (w *Writer) WriteI16(v int16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	_, err := w.buf.Write(b[:])
	return err
}

// WriteI32 writes a four-byte big-endian i32.
func (w *Writer) WriteI32(v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.buf.Write(b[:])
	return err
}

// WriteI64 writes an eight-byte big-endian i64.
func (w *Writer) WriteI64(v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := w.buf.Write(b[:])
	return err
}

// WriteDouble writes an eight-byte big-endian IEEE-754 double.
func (w *Writer) WriteDouble(v float64) error {
	return w.WriteI64(int64(math.Float64bits(v)))
}

// WriteBinary writes an i32 length prefix followed by the raw bytes.
func (w *Writer) WriteBinary(v []byte) error {
	if err := w.WriteI32(int32(len(v))); err != nil {
		return err
	}
	_, err := w.buf.Write(v)
	return err
}

// WriteString writes a string using the same length-prefixed encoding as
// WriteBinary.
func (w *Writer) WriteString(v string) error {
	return w.WriteBinary([]byte(v))
}

// WriteMessageBegin writes a message header: the VERSION_1-tagged i32,
// the method name, and the sequence id.
func (w *Writer) WriteMessageBegin(msg wire.ThriftMessage) error {
	if err := w.WriteI32(wire.VERSION_1 | int32(msg.Type)); err != nil {
		return err
	}
	if err := w.WriteString(msg.Name); err != nil {
		return err
	}
	return w.WriteI16(msg.Seq)
}

// WriteMessageEnd is a no-op; the binary protocol has no message trailer.
func (w *Writer) WriteMessageEnd() error { return nil }

// WriteStructBegin is a no-op; the binary protocol has no struct header.
func (w *Writer) WriteStructBegin() error { return nil }

// WriteStructEnd is a no-op; callers must still call WriteFieldStop to
// emit the terminating STOP byte.
func (w *Writer) WriteStructEnd() error { return nil }

// WriteFieldBegin writes a field header: the one-byte wire type and,
// unless the type is TStop, the two-byte field id.
func (w *Writer) WriteFieldBegin(f wire.ThriftField) error {
	if err := w.WriteByte(int8(f.Type)); err != nil {
		return err
	}
	if f.Type == wire.TStop {
		return nil
	}
	return w.WriteI16(f.Seq)
}

// WriteFieldEnd is a no-op; the binary protocol has no field trailer.
func (w *Writer) WriteFieldEnd() error { return nil }

// WriteFieldStop writes the single STOP byte that terminates a struct.
func (w *Writer) WriteFieldStop() error {
	return w.WriteByte(int8(wire.TStop))
}

// WriteListBegin writes a list/set header: one-byte element type, i32 size.
func (w *Writer) WriteListBegin(elemType wire.Type, size int) error {
	if err := w.WriteByte(int8(elemType)); err != nil {
		return err
	}
	return w.WriteI32(int32(size))
}

// WriteListEnd is a no-op.
func (w *Writer) WriteListEnd() error { return nil }

// WriteMapBegin writes a map header: one-byte key type, one-byte value
// type, i32 size.
func (w *Writer) WriteMapBegin(keyType, valueType wire.Type, size int) error {
	if err := w.WriteByte(int8(keyType)); err != nil {
		return err
	}
	if err := w.WriteByte(int8(valueType)); err != nil {
		return err
	}
	return w.WriteI32(int32(size))
}

// WriteMapEnd is a no-op.
func (w *Writer) WriteMapEnd() error { return nil }

// WriteValue serializes an arbitrary wire.Value according to its Typ tag,
// recursing into struct fields and container elements as needed.
func (w *Writer) WriteValue(v wire.Value) error {
	switch v.Typ {
	case wire.TBool:
		return w.WriteBool(v.Bool)
	case wire.TByte:
		return w.WriteByte(v.I8)
	case wire.TI16:
		return w.WriteI16(v.I16)
	case wire.TI32:
		return w.WriteI32(v.I32)
	case wire.TU64, wire.TI64:
		return w.WriteI64(v.I64)
	case wire.TDouble:
		return w.WriteDouble(v.Double)
	case wire.TBinary:
		return w.WriteBinary(v.Binary)
	case wire.TStruct:
		return w.writeStruct(v.Struct)
	case wire.TMap:
		return w.writeMap(v.Map)
	case wire.TSet:
		return w.writeList(v.Set)
	case wire.TList:
		return w.writeList(v.List)
	default:
		return &UnexpectedTypeError{Type: v.Typ}
	}
}

func (w *Writer) writeStruct(s wire.Struct) error {
	if err := w.WriteStructBegin(); err != nil {
		return err
	}
	for _, f := range s.Fields {
		if err := w.WriteFieldBegin(wire.ThriftField{Type: f.Value.Typ, Seq: f.ID}); err != nil {
			return err
		}
		if err := w.WriteValue(f.Value); err != nil {
			return err
		}
		if err := w.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if err := w.WriteFieldStop(); err != nil {
		return err
	}
	return w.WriteStructEnd()
}

func (w *Writer) writeList(l wire.List) error {
	if err := w.WriteListBegin(l.ValueType, len(l.Items)); err != nil {
		return err
	}
	for _, item := range l.Items {
		if err := w.WriteValue(item); err != nil {
			return err
		}
	}
	return w.WriteListEnd()
}

func (w *Writer) writeMap(m wire.Map) error {
	if err := w.WriteMapBegin(m.KeyType, m.ValueType, len(m.Items)); err != nil {
		return err
	}
	for _, item := range m.Items {
		if err := w.WriteValue(item.Key); err != nil {
			return err
		}
		if err := w.WriteValue(item.Value); err != nil {
			return err
		}
	}
	return w.WriteMapEnd()
}
