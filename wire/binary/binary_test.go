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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftgen/wire"
)

func roundTrip(t *testing.T, v wire.Value) wire.Value {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteValue(v))

	r := NewReader(buf.Bytes())
	got, err := r.ReadValue(v.Typ)
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), r.Pos())
	return got
}

// Property 1 of spec.md §8: decode(encode(v)) == v, for primitives.
func TestPrimitiveRoundTrip(t *testing.T) {
	assert.Equal(t, wire.NewValueBool(true), roundTrip(t, wire.NewValueBool(true)))
	assert.Equal(t, wire.NewValueBool(false), roundTrip(t, wire.NewValueBool(false)))
	assert.Equal(t, wire.NewValueByte(-42), roundTrip(t, wire.NewValueByte(-42)))
	assert.Equal(t, wire.NewValueI16(-1234), roundTrip(t, wire.NewValueI16(-1234)))
	assert.Equal(t, wire.NewValueI32(-3_000_000), roundTrip(t, wire.NewValueI32(-3_000_000)))
	assert.Equal(t, wire.Value{Typ: wire.TI64, I64: 1 << 40}, roundTrip(t, wire.Value{Typ: wire.TI64, I64: 1 << 40}))
	assert.Equal(t, wire.NewValueDouble(3.14159), roundTrip(t, wire.NewValueDouble(3.14159)))
	assert.Equal(t, wire.NewValueString("hello"), roundTrip(t, wire.NewValueString("hello")))
	assert.Equal(t, wire.NewValueBinary([]byte{1, 2, 3}), roundTrip(t, wire.NewValueBinary([]byte{1, 2, 3})))
}

// Scenario 4 of spec.md §8: wire roundtrip i32.
func TestI32BitExactEncoding(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteI32(-3_000_000))
	assert.Equal(t, []byte{0xff, 0xd2, 0x39, 0x40}, buf.Bytes())

	r := NewReader(buf.Bytes())
	v, err := r.ReadI32()
	require.NoError(t, err)
	assert.EqualValues(t, -3_000_000, v)
}

func TestStructRoundTripPreservesFields(t *testing.T) {
	s := wire.NewValueStruct(wire.Struct{Fields: []wire.Field{
		{ID: 1, Value: wire.NewValueString("alice")},
		{ID: 2, Value: wire.NewValueI32(30)},
	}})
	got := roundTrip(t, s)
	assert.Equal(t, s, got)
}

func TestEmptyStructDecodesImmediateStop(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteFieldStop())

	r := NewReader(buf.Bytes())
	v, err := r.ReadValue(wire.TStruct)
	require.NoError(t, err)
	assert.Empty(t, v.Struct.Fields)
}

// Scenario 4/Property 4: message header round-trips.
func TestMessageHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	msg := wire.ThriftMessage{Name: "hello_name", Type: wire.Call, Seq: 7}
	require.NoError(t, w.WriteMessageBegin(msg))

	r := NewReader(buf.Bytes())
	got, err := r.ReadMessageBegin()
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

// Boundary behavior: a first i32 of 0 is ProtocolVersionMissing.
func TestMessageBeginRejectsZeroVersion(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteI32(0))

	r := NewReader(buf.Bytes())
	_, err := r.ReadMessageBegin()
	assert.True(t, errors.Is(err, wire.ErrProtocolVersionMissing))
}

// Boundary behavior: high 16 bits not 0x8001 is BadVersion.
func TestMessageBeginRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	badVersion := uint32(0x80020000)
	require.NoError(t, w.WriteI32(int32(badVersion)|int32(wire.Call)))

	r := NewReader(buf.Bytes())
	_, err := r.ReadMessageBegin()
	assert.True(t, errors.Is(err, wire.ErrBadVersion))
}

// Boundary behavior: a string length prefix of -1 must be rejected.
func TestStringLengthNegativeOneRejected(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteI32(-1))

	r := NewReader(buf.Bytes())
	_, err := r.ReadString()
	assert.True(t, errors.Is(err, wire.ErrNegativeLength))
}

func TestShortReadReportsIncompleteAndLeavesCursor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteI32(42))

	full := buf.Bytes()
	r := NewReader(full[:2]) // only half the i32 available
	_, err := r.ReadI32()
	assert.True(t, errors.Is(err, wire.ErrIncomplete))
	assert.Equal(t, 0, r.Pos())
}

func TestListAndMapRoundTrip(t *testing.T) {
	l := wire.NewValueList(wire.List{
		ValueType: wire.TI32,
		Items:     []wire.Value{wire.NewValueI32(1), wire.NewValueI32(2), wire.NewValueI32(3)},
	})
	assert.Equal(t, l, roundTrip(t, l))

	m := wire.NewValueMap(wire.Map{
		KeyType:   wire.TBinary,
		ValueType: wire.TI32,
		Items: []wire.MapItem{
			{Key: wire.NewValueString("a"), Value: wire.NewValueI32(1)},
			{Key: wire.NewValueString("b"), Value: wire.NewValueI32(2)},
		},
	})
	assert.Equal(t, m, roundTrip(t, m))
}

func TestSkipUnknownField(t *testing.T) {
	// Encode a struct with two fields, then skip past field 1 without
	// decoding it, verifying the cursor lands exactly where field 2
	// begins.
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteFieldBegin(wire.ThriftField{Type: wire.TBinary, Seq: 1}))
	require.NoError(t, w.WriteString("unknown"))
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldBegin(wire.ThriftField{Type: wire.TI32, Seq: 2}))
	require.NoError(t, w.WriteI32(99))
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldStop())

	r := NewReader(buf.Bytes())
	fh, err := r.ReadFieldBegin()
	require.NoError(t, err)
	require.EqualValues(t, 1, fh.Seq)
	require.NoError(t, r.Skip(fh.Type))

	fh, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.EqualValues(t, 2, fh.Seq)
	v, err := r.ReadValue(fh.Type)
	require.NoError(t, err)
	assert.EqualValues(t, 99, v.I32)
}
