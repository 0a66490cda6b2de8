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

import "fmt"

// Value is the protocol-agnostic intermediate representation that
// generated ToWire/FromWire methods produce and consume. It mirrors the
// shape of thriftrw's wire.Value: exactly one of the typed fields below is
// meaningful, selected by Typ.
type Value struct {
	Typ Type

	Bool   bool
	I8     int8
	I16    int16
	I32    int32
	I64    int64
	Double float64
	Binary []byte // also backs String values
	Struct Struct
	Map    Map
	Set    List
	List   List
}

// Type returns the wire type tag of this value.
func (v Value) Type() Type { return v.Typ }

// Field pairs a struct field ID with its value.
type Field struct {
	ID    int16
	Value Value
}

// Struct is an ordered list of fields, in declaration order.
type Struct struct {
	Fields []Field
}

// List is a homogeneously typed sequence of values (used for both `list`
// and `set`).
type List struct {
	ValueType Type
	Items     []Value
}

// MapItem is one key/value pair of a Map value.
type MapItem struct {
	Key   Value
	Value Value
}

// Map is a homogeneously typed association of values.
type Map struct {
	KeyType   Type
	ValueType Type
	Items     []MapItem
}

// NewValueBool builds a bool Value.
func NewValueBool(v bool) Value { return Value{Typ: TBool, Bool: v} }

// NewValueByte builds a byte Value.
func NewValueByte(v int8) Value { return Value{Typ: TByte, I8: v} }

// NewValueI16 builds an i16 Value.
func NewValueI16(v int16) Value { return Value{Typ: TI16, I16: v} }

// NewValueI32 builds an i32 Value.
func NewValueI32(v int32) Value { return Value{Typ: TI32, I32: v} }

// NewValueI64 builds an i64 Value.
func NewValueI64(v int64) Value { return Value{Typ: TI64, I64: v} }

// NewValueDouble builds a double Value.
func NewValueDouble(v float64) Value { return Value{Typ: TDouble, Double: v} }

// NewValueString builds a string Value (wire type TBinary; strings and
// binary blobs share an encoding).
func NewValueString(v string) Value { return Value{Typ: TBinary, Binary: []byte(v)} }

// NewValueBinary builds a binary Value.
func NewValueBinary(v []byte) Value { return Value{Typ: TBinary, Binary: v} }

// NewValueStruct builds a struct Value.
func NewValueStruct(s Struct) Value { return Value{Typ: TStruct, Struct: s} }

// NewValueMap builds a map Value.
func NewValueMap(m Map) Value { return Value{Typ: TMap, Map: m} }

// NewValueSet builds a set Value.
func NewValueSet(l List) Value { return Value{Typ: TSet, Set: l} }

// NewValueList builds a list Value.
func NewValueList(l List) Value { return Value{Typ: TList, List: l} }

// GetBool returns the bool payload. Panics if Typ != TBool, the same
// contract thriftrw's wire.Value.GetBool uses: generated code only calls
// the accessor matching the field's declared type.
func (v Value) GetBool() bool { v.mustBe(TBool); return v.Bool }

// GetByte returns the byte payload.
func (v Value) GetByte() int8 { v.mustBe(TByte); return v.I8 }

// GetI16 returns the i16 payload.
func (v Value) GetI16() int16 { v.mustBe(TI16); return v.I16 }

// GetI32 returns the i32 payload.
func (v Value) GetI32() int32 { v.mustBe(TI32); return v.I32 }

// GetI64 returns the i64 payload.
func (v Value) GetI64() int64 { v.mustBe(TI64); return v.I64 }

// GetDouble returns the double payload.
func (v Value) GetDouble() float64 { v.mustBe(TDouble); return v.Double }

// GetString returns the binary payload decoded as a string.
func (v Value) GetString() string { v.mustBe(TBinary); return string(v.Binary) }

// GetBinary returns the raw binary payload.
func (v Value) GetBinary() []byte { v.mustBe(TBinary); return v.Binary }

// GetStruct returns the struct payload.
func (v Value) GetStruct() Struct { v.mustBe(TStruct); return v.Struct }

// GetMap returns the map payload.
func (v Value) GetMap() Map { v.mustBe(TMap); return v.Map }

// GetSet returns the set payload.
func (v Value) GetSet() List { v.mustBe(TSet); return v.Set }

// GetList returns the list payload.
func (v Value) GetList() List { v.mustBe(TList); return v.List }

func (v Value) mustBe(t Type) {
	if v.Typ != t {
		panic(fmt.Sprintf("wire: value has type %v, not %v", v.Typ, t))
	}
}
