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

package ast

// ConstValueKind tags the ConstValue sum.
type ConstValueKind int

// The ConstValueKind values, one per case of spec.md §3's ConstValue sum.
const (
	ConstKindInvalid ConstValueKind = iota
	ConstKindInt
	ConstKindDouble
	ConstKindString
	ConstKindList
	ConstKindMap
)

// ConstMapEntry is one key/value pair of a map constant, kept in source
// order rather than folded into a native Go map so re-serialization can
// round-trip byte-for-byte (spec.md §8 property 2).
type ConstMapEntry struct {
	Key   ConstValue
	Value ConstValue
}

// ConstValue is the tagged sum of literal forms a Thrift constant may take.
type ConstValue struct {
	Kind ConstValueKind

	Int    int64
	Double float64
	Str    string
	List   []ConstValue
	Map    []ConstMapEntry
}

// ConstInt builds an integer literal constant.
func ConstInt(v int64) ConstValue { return ConstValue{Kind: ConstKindInt, Int: v} }

// ConstDouble builds a floating-point literal constant.
func ConstDouble(v float64) ConstValue { return ConstValue{Kind: ConstKindDouble, Double: v} }

// ConstString builds a string literal constant.
func ConstString(v string) ConstValue { return ConstValue{Kind: ConstKindString, Str: v} }

// ConstList builds a list literal constant.
func ConstList(vs []ConstValue) ConstValue { return ConstValue{Kind: ConstKindList, List: vs} }

// ConstMap builds a map literal constant.
func ConstMap(entries []ConstMapEntry) ConstValue {
	return ConstValue{Kind: ConstKindMap, Map: entries}
}

// IsSet reports whether this ConstValue was actually produced by the parser,
// as opposed to being the zero value used to mean "no default".
func (c ConstValue) IsSet() bool { return c.Kind != ConstKindInvalid }
