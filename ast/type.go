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

import "fmt"

// TypeKind tags the recursive Type sum.
type TypeKind int

// The TypeKind values, one per case of spec.md §3's Type sum.
const (
	KindBool TypeKind = iota + 1
	KindByte
	KindI8
	KindI16
	KindI32
	KindI64
	KindDouble
	KindBinary
	KindString
	KindVoid
	KindList
	KindSet
	KindMap
	KindIdent
)

// Type is the recursive sum of Thrift field types. Only the fields relevant
// to Kind are populated; the rest are zero. Construct instances with the
// TBool, TList, TIdent, etc. helpers below rather than struct literals.
type Type struct {
	Kind TypeKind

	// Elem is the element type for List/Set, and the referenced Ident's
	// name is carried in Ident instead of a payload struct.
	Elem *Type

	// Key/Value are populated only when Kind == KindMap.
	Key   *Type
	Value *Type

	// Ident is populated only when Kind == KindIdent: the user-defined
	// type name, carried verbatim and left unresolved by the parser.
	Ident string
}

// Base type singletons. Thrift's non-container, non-identifier types carry
// no payload, so these can be shared.
var (
	TBool   = Type{Kind: KindBool}
	TByte   = Type{Kind: KindByte}
	TI8     = Type{Kind: KindI8}
	TI16    = Type{Kind: KindI16}
	TI32    = Type{Kind: KindI32}
	TI64    = Type{Kind: KindI64}
	TDouble = Type{Kind: KindDouble}
	TBinary = Type{Kind: KindBinary}
	TString = Type{Kind: KindString}
	TVoid   = Type{Kind: KindVoid}
)

// TList builds a `list<elem>` type.
func TList(elem Type) Type { return Type{Kind: KindList, Elem: &elem} }

// TSet builds a `set<elem>` type.
func TSet(elem Type) Type { return Type{Kind: KindSet, Elem: &elem} }

// TMap builds a `map<key, value>` type.
func TMap(key, value Type) Type { return Type{Kind: KindMap, Key: &key, Value: &value} }

// TIdent builds a reference to a user-defined type by name.
func TIdent(name string) Type { return Type{Kind: KindIdent, Ident: name} }

// String renders a Type the way it would appear in Thrift IDL source,
// useful for error messages and generator diagnostics.
func (t Type) String() string {
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindByte:
		return "byte"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindDouble:
		return "double"
	case KindBinary:
		return "binary"
	case KindString:
		return "string"
	case KindVoid:
		return "void"
	case KindList:
		return fmt.Sprintf("list<%s>", t.Elem.String())
	case KindSet:
		return fmt.Sprintf("set<%s>", t.Elem.String())
	case KindMap:
		return fmt.Sprintf("map<%s, %s>", t.Key.String(), t.Value.String())
	case KindIdent:
		return t.Ident
	default:
		return "<invalid type>"
	}
}

// IsBase reports whether t is one of the non-container, non-identifier
// base types (bool, byte, i8..i64, double, string, binary).
func (t Type) IsBase() bool {
	switch t.Kind {
	case KindBool, KindByte, KindI8, KindI16, KindI32, KindI64, KindDouble, KindBinary, KindString:
		return true
	default:
		return false
	}
}
