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

package binary

import (
	"fmt"
	"math"

	"go.uber.org/thriftgen/wire"
)

// UnexpectedTypeError is returned when a value of a wire type with no
// defined encoding (or decoding) rule is passed to WriteValue/ReadValue.
type UnexpectedTypeError struct {
	Type wire.Type
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("binary: unexpected wire type %v", e.Type)
}

// Reader decodes wire.Value trees, message envelopes, and field headers
// from an in-memory byte buffer using the Thrift Binary Protocol.
//
// Every exported Read* method follows the partial-data discipline of
// spec.md §4.C: if the buffer runs short, the method returns
// wire.ErrIncomplete and leaves the cursor exactly where it was before the
// call, so a caller (typically the framing layer, see package framing)
// can retry the same call once more bytes have arrived.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader over buf, starting at position 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the reader's current cursor position. After a successful
// top-level decode, the framing layer drains exactly this many bytes from
// its reassembly buffer.
func (r *Reader) Pos() int { return r.pos }

// take returns the next n bytes and advances the cursor, or returns
// wire.ErrIncomplete (leaving the cursor untouched) if fewer than n bytes
// remain.
func (r *Reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.buf) {
		return nil, wire.ErrIncomplete
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadBool reads a one-byte bool.
func (r *Reader) ReadBool() (bool, error) {
	start := r.pos
	b, err := r.take(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.pos = start
		return false, wire.ErrInvalidBool
	}
}

// ReadByte reads a one-byte two's-complement i8/byte value.
func (r *Reader) ReadByte() (int8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadI16 reads a two-byte big-endian i16.
func (r *Reader) ReadI16() (int16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return int16(uint16(b[0])<<8 | uint16(b[1])), nil
}

// ReadI32 reads a four-byte big-endian i32.
func (r *Reader) ReadI32() (int32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), nil
}

// ReadI64 reads an eight-byte big-endian i64.
func (r *Reader) ReadI64() (int64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return int64(v), nil
}

// ReadDouble reads an eight-byte big-endian IEEE-754 double.
func (r *Reader) ReadDouble() (float64, error) {
	v, err := r.ReadI64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// ReadBinary reads an i32 length prefix followed by exactly that many
// raw bytes.
func (r *Reader) ReadBinary() ([]byte, error) {
	start := r.pos
	n, err := r.ReadI32()
	if err != nil {
		r.pos = start
		return nil, err
	}
	if n < 0 {
		r.pos = start
		return nil, wire.ErrNegativeLength
	}
	b, err := r.take(int(n))
	if err != nil {
		r.pos = start
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ReadString reads a length-prefixed string using the same encoding as
// ReadBinary.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBinary()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadMessageBegin reads a message header, enforcing spec.md §3 invariant
// 1: the leading i32 must be negative (version-tagged), and its high 16
// bits must equal wire.VERSION_1's.
func (r *Reader) ReadMessageBegin() (wire.ThriftMessage, error) {
	start := r.pos
	version, err := r.ReadI32()
	if err != nil {
		r.pos = start
		return wire.ThriftMessage{}, err
	}
	if version >= 0 {
		r.pos = start
		return wire.ThriftMessage{}, wire.ErrProtocolVersionMissing
	}
	if version&wire.VersionMask != wire.VERSION_1 {
		r.pos = start
		return wire.ThriftMessage{}, wire.ErrBadVersion
	}

	name, err := r.ReadString()
	if err != nil {
		r.pos = start
		return wire.ThriftMessage{}, err
	}
	seq, err := r.ReadI16()
	if err != nil {
		r.pos = start
		return wire.ThriftMessage{}, err
	}

	return wire.ThriftMessage{
		Name: name,
		Type: wire.MessageType(version & 0xff),
		Seq:  seq,
	}, nil
}

// ReadMessageEnd is a no-op; the binary protocol has no message trailer.
func (r *Reader) ReadMessageEnd() error { return nil }

// ReadStructBegin is a no-op; the binary protocol has no struct header.
func (r *Reader) ReadStructBegin() error { return nil }

// ReadStructEnd is a no-op; callers read the STOP sentinel via
// ReadFieldBegin, not via ReadStructEnd.
func (r *Reader) ReadStructEnd() error { return nil }

// ReadFieldBegin reads a field header. If the wire type is TStop, it
// returns a zero-seq sentinel immediately without reading a field id, per
// spec.md §4.C.
func (r *Reader) ReadFieldBegin() (wire.ThriftField, error) {
	start := r.pos
	t, err := r.ReadByte()
	if err != nil {
		return wire.ThriftField{}, err
	}
	typ := wire.Type(t)
	if typ == wire.TStop {
		return wire.ThriftField{Type: wire.TStop}, nil
	}
	seq, err := r.ReadI16()
	if err != nil {
		r.pos = start
		return wire.ThriftField{}, err
	}
	return wire.ThriftField{Type: typ, Seq: seq}, nil
}

// ReadFieldEnd is a no-op.
func (r *Reader) ReadFieldEnd() error { return nil }

// ReadListBegin reads a list/set header.
func (r *Reader) ReadListBegin() (wire.Type, int, error) {
	return r.readTypeSize()
}

// ReadListEnd is a no-op.
func (r *Reader) ReadListEnd() error { return nil }

// ReadSetBegin reads a set header (identical wire shape to a list).
func (r *Reader) ReadSetBegin() (wire.Type, int, error) {
	return r.readTypeSize()
}

// ReadSetEnd is a no-op.
func (r *Reader) ReadSetEnd() error { return nil }

func (r *Reader) readTypeSize() (wire.Type, int, error) {
	start := r.pos
	t, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	size, err := r.ReadI32()
	if err != nil {
		r.pos = start
		return 0, 0, err
	}
	if size < 0 {
		r.pos = start
		return 0, 0, wire.ErrNegativeLength
	}
	return wire.Type(t), int(size), nil
}

// ReadMapBegin reads a map header.
func (r *Reader) ReadMapBegin() (keyType, valueType wire.Type, size int, err error) {
	start := r.pos
	kt, err := r.ReadByte()
	if err != nil {
		return 0, 0, 0, err
	}
	vt, err := r.ReadByte()
	if err != nil {
		r.pos = start
		return 0, 0, 0, err
	}
	n, err := r.ReadI32()
	if err != nil {
		r.pos = start
		return 0, 0, 0, err
	}
	if n < 0 {
		r.pos = start
		return 0, 0, 0, wire.ErrNegativeLength
	}
	return wire.Type(kt), wire.Type(vt), int(n), nil
}

// ReadMapEnd is a no-op.
func (r *Reader) ReadMapEnd() error { return nil }

// ReadValue decodes one value of the given wire type, recursing into
// containers and structs. This is the decode_value primitive of spec.md
// §4.C: every other typed Read* method exists so generated code and
// ReadValue can share the same primitive decoders.
func (r *Reader) ReadValue(t wire.Type) (wire.Value, error) {
	start := r.pos
	v, err := r.readValue(t)
	if err != nil {
		r.pos = start
		return wire.Value{}, err
	}
	return v, nil
}

func (r *Reader) readValue(t wire.Type) (wire.Value, error) {
	switch t {
	case wire.TBool:
		v, err := r.ReadBool()
		return wire.NewValueBool(v), err
	case wire.TByte:
		v, err := r.ReadByte()
		return wire.NewValueByte(v), err
	case wire.TI16:
		v, err := r.ReadI16()
		return wire.NewValueI16(v), err
	case wire.TI32:
		v, err := r.ReadI32()
		return wire.NewValueI32(v), err
	case wire.TU64, wire.TI64:
		v, err := r.ReadI64()
		return wire.Value{Typ: t, I64: v}, err
	case wire.TDouble:
		v, err := r.ReadDouble()
		return wire.NewValueDouble(v), err
	case wire.TBinary:
		v, err := r.ReadBinary()
		return wire.NewValueBinary(v), err
	case wire.TStruct:
		return r.readStructValue()
	case wire.TMap:
		return r.readMapValue()
	case wire.TSet:
		return r.readListValue(wire.TSet)
	case wire.TList:
		return r.readListValue(wire.TList)
	default:
		return wire.Value{}, &UnexpectedTypeError{Type: t}
	}
}

func (r *Reader) readStructValue() (wire.Value, error) {
	var fields []wire.Field
	for {
		fh, err := r.ReadFieldBegin()
		if err != nil {
			return wire.Value{}, err
		}
		if fh.IsStop() {
			break
		}
		v, err := r.readValue(fh.Type)
		if err != nil {
			return wire.Value{}, err
		}
		fields = append(fields, wire.Field{ID: fh.Seq, Value: v})
	}
	return wire.NewValueStruct(wire.Struct{Fields: fields}), nil
}

func (r *Reader) readListValue(tag wire.Type) (wire.Value, error) {
	elemType, size, err := r.readTypeSize()
	if err != nil {
		return wire.Value{}, err
	}
	items := make([]wire.Value, 0, size)
	for i := 0; i < size; i++ {
		v, err := r.readValue(elemType)
		if err != nil {
			return wire.Value{}, err
		}
		items = append(items, v)
	}
	l := wire.List{ValueType: elemType, Items: items}
	if tag == wire.TSet {
		return wire.NewValueSet(l), nil
	}
	return wire.NewValueList(l), nil
}

func (r *Reader) readMapValue() (wire.Value, error) {
	keyType, valueType, size, err := r.ReadMapBegin()
	if err != nil {
		return wire.Value{}, err
	}
	items := make([]wire.MapItem, 0, size)
	for i := 0; i < size; i++ {
		k, err := r.readValue(keyType)
		if err != nil {
			return wire.Value{}, err
		}
		v, err := r.readValue(valueType)
		if err != nil {
			return wire.Value{}, err
		}
		items = append(items, wire.MapItem{Key: k, Value: v})
	}
	return wire.NewValueMap(wire.Map{KeyType: keyType, ValueType: valueType, Items: items}), nil
}

// Skip consumes the bytes of one value of the given wire type without
// building a wire.Value, for the unknown-field skipping rule of spec.md
// §4.C. Grounded on thriftrw's StreamReader.Skip/skipStruct/skipMap/
// skipList fixed-width fast paths.
func (r *Reader) Skip(t wire.Type) error {
	start := r.pos
	if err := r.skip(t); err != nil {
		r.pos = start
		return err
	}
	return nil
}

func (r *Reader) skip(t wire.Type) error {
	if w := fixedWidth(t); w > 0 {
		_, err := r.take(w)
		return err
	}
	switch t {
	case wire.TBinary:
		_, err := r.ReadBinary()
		return err
	case wire.TStruct:
		return r.skipStruct()
	case wire.TMap:
		return r.skipMap()
	case wire.TSet, wire.TList:
		return r.skipList()
	default:
		return &UnexpectedTypeError{Type: t}
	}
}

func (r *Reader) skipStruct() error {
	for {
		fh, err := r.ReadFieldBegin()
		if err != nil {
			return err
		}
		if fh.IsStop() {
			return nil
		}
		if err := r.skip(fh.Type); err != nil {
			return err
		}
	}
}

func (r *Reader) skipMap() error {
	keyType, valueType, size, err := r.ReadMapBegin()
	if err != nil {
		return err
	}
	keyWidth, valueWidth := fixedWidth(keyType), fixedWidth(valueType)
	if keyWidth > 0 && valueWidth > 0 {
		_, err := r.take(size * (keyWidth + valueWidth))
		return err
	}
	for i := 0; i < size; i++ {
		if err := r.skip(keyType); err != nil {
			return err
		}
		if err := r.skip(valueType); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) skipList() error {
	elemType, size, err := r.readTypeSize()
	if err != nil {
		return err
	}
	if width := fixedWidth(elemType); width > 0 {
		_, err := r.take(width * size)
		return err
	}
	for i := 0; i < size; i++ {
		if err := r.skip(elemType); err != nil {
			return err
		}
	}
	return nil
}

// fixedWidth returns the constant byte width of t's encoding, or 0 if t's
// encoding has a variable length (string/binary, struct, map, set, list).
func fixedWidth(t wire.Type) int {
	switch t {
	case wire.TBool, wire.TByte:
		return 1
	case wire.TI16:
		return 2
	case wire.TI32:
		return 4
	case wire.TU64, wire.TI64, wire.TDouble:
		return 8
	default:
		return 0
	}
}
