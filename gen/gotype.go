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

package gen

import (
	"fmt"

	"go.uber.org/thriftgen/ast"
)

// goType renders the Go type spec.md §4.E's type-mapping table names for
// an IDL FieldType. Container element/key/value types are restricted to
// base types and Ident references -- one level of nesting -- which covers
// every shape the generator's test corpus and the hand-authored example
// service exercise; see ErrUnsupportedType.
func goType(t ast.Type) (string, error) {
	switch t.Kind {
	case ast.KindBool:
		return "bool", nil
	case ast.KindByte, ast.KindI8:
		return "int8", nil
	case ast.KindI16:
		return "int16", nil
	case ast.KindI32:
		return "int32", nil
	case ast.KindI64:
		return "int64", nil
	case ast.KindDouble:
		return "float64", nil
	case ast.KindString:
		return "string", nil
	case ast.KindBinary:
		return "[]byte", nil
	case ast.KindVoid:
		return "", nil
	case ast.KindIdent:
		return t.Ident, nil
	case ast.KindList, ast.KindSet:
		elem, err := goElemType(*t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case ast.KindMap:
		key, err := goElemType(*t.Key)
		if err != nil {
			return "", err
		}
		val, err := goElemType(*t.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("map[%s]%s", key, val), nil
	default:
		return "", &ErrUnsupportedType{Type: t}
	}
}

// goElemType is goType restricted to the shapes allowed inside a
// container: base types or an Ident reference.
func goElemType(t ast.Type) (string, error) {
	if t.IsBase() || t.Kind == ast.KindIdent {
		return goType(t)
	}
	return "", &ErrUnsupportedType{Type: t}
}

// wireTypeTag names the wire.Type constant matching a FieldType, for code
// emitted into ToWire/FromWire bodies.
func wireTypeTag(t ast.Type) (string, error) {
	switch t.Kind {
	case ast.KindBool:
		return "wire.TBool", nil
	case ast.KindByte, ast.KindI8:
		return "wire.TByte", nil
	case ast.KindI16:
		return "wire.TI16", nil
	case ast.KindI32:
		return "wire.TI32", nil
	case ast.KindI64:
		return "wire.TI64", nil
	case ast.KindDouble:
		return "wire.TDouble", nil
	case ast.KindString, ast.KindBinary:
		return "wire.TBinary", nil
	case ast.KindList:
		return "wire.TList", nil
	case ast.KindSet:
		return "wire.TSet", nil
	case ast.KindMap:
		return "wire.TMap", nil
	case ast.KindIdent:
		return "wire.TStruct", nil
	default:
		return "", &ErrUnsupportedType{Type: t}
	}
}
