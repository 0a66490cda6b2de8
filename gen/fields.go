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

// field is the generator's per-field intermediate representation, built
// from an ast.StructField once its Go-side name and type string have been
// resolved.
type field struct {
	ID       int16
	GoName   string
	GoType   string
	Optional bool
	Type     ast.Type
}

func newField(f ast.StructField) (field, error) {
	if f.Seq == nil {
		return field{}, fmt.Errorf("gen: field %q has no declared sequence id", f.Name)
	}
	goType, err := goType(f.Type)
	if err != nil {
		return field{}, err
	}
	return field{
		ID:       *f.Seq,
		GoName:   exportName(f.Name),
		GoType:   goType,
		Optional: f.Optional,
		Type:     f.Type,
	}, nil
}

// DeclType renders the Go field declaration type: required fields are
// emitted as bare values, optional base-typed fields as pointers (matching
// thriftrw's treatment of "omitempty" fields). Optional container fields
// keep their nil-able slice or map type, and optional Ident fields are bare
// values of the named type, so an unset optional Ident field cannot be told
// apart from its zero value and is always written by ToWire.
func (f field) DeclType() string {
	if f.Optional && f.Type.IsBase() {
		return "*" + f.GoType
	}
	return f.GoType
}

// encodeExpr returns a Go expression of type wire.Value that encodes the
// value held in goExpr (a variable or selector of the field's declared Go
// type, already dereferenced if the field is optional).
func encodeExpr(t ast.Type, goExpr string) (string, error) {
	switch t.Kind {
	case ast.KindBool:
		return fmt.Sprintf("wire.NewValueBool(%s)", goExpr), nil
	case ast.KindByte, ast.KindI8:
		return fmt.Sprintf("wire.NewValueByte(%s)", goExpr), nil
	case ast.KindI16:
		return fmt.Sprintf("wire.NewValueI16(%s)", goExpr), nil
	case ast.KindI32:
		return fmt.Sprintf("wire.NewValueI32(%s)", goExpr), nil
	case ast.KindI64:
		return fmt.Sprintf("wire.NewValueI64(%s)", goExpr), nil
	case ast.KindDouble:
		return fmt.Sprintf("wire.NewValueDouble(%s)", goExpr), nil
	case ast.KindString:
		return fmt.Sprintf("wire.NewValueString(%s)", goExpr), nil
	case ast.KindBinary:
		return fmt.Sprintf("wire.NewValueBinary(%s)", goExpr), nil
	case ast.KindIdent:
		return fmt.Sprintf(
			`func() wire.Value {
			v, _ := (&%s).ToWire()
			return v
		}()`, goExpr), nil
	case ast.KindList, ast.KindSet:
		elemTag, err := wireTypeTag(*t.Elem)
		if err != nil {
			return "", err
		}
		elemExpr, err := encodeExpr(*t.Elem, "elem")
		if err != nil {
			return "", err
		}
		ctor := "wire.NewValueList"
		if t.Kind == ast.KindSet {
			ctor = "wire.NewValueSet"
		}
		return fmt.Sprintf(
			`func() wire.Value {
			items := make([]wire.Value, 0, len(%s))
			for _, elem := range %s {
				items = append(items, %s)
			}
			return %s(wire.List{ValueType: %s, Items: items})
		}()`, goExpr, goExpr, elemExpr, ctor, elemTag), nil
	case ast.KindMap:
		keyTag, err := wireTypeTag(*t.Key)
		if err != nil {
			return "", err
		}
		valTag, err := wireTypeTag(*t.Value)
		if err != nil {
			return "", err
		}
		keyExpr, err := encodeExpr(*t.Key, "k")
		if err != nil {
			return "", err
		}
		valExpr, err := encodeExpr(*t.Value, "v")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			`func() wire.Value {
			items := make([]wire.MapItem, 0, len(%s))
			for k, v := range %s {
				items = append(items, wire.MapItem{Key: %s, Value: %s})
			}
			return wire.NewValueMap(wire.Map{KeyType: %s, ValueType: %s, Items: items})
		}()`, goExpr, goExpr, keyExpr, valExpr, keyTag, valTag), nil
	default:
		return "", &ErrUnsupportedType{Type: t}
	}
}

// decodeExpr returns a Go expression of the field's Go element type that
// decodes wireExpr (a wire.Value variable).
func decodeExpr(t ast.Type, wireExpr string) (string, error) {
	switch t.Kind {
	case ast.KindBool:
		return fmt.Sprintf("%s.GetBool()", wireExpr), nil
	case ast.KindByte, ast.KindI8:
		return fmt.Sprintf("%s.GetByte()", wireExpr), nil
	case ast.KindI16:
		return fmt.Sprintf("%s.GetI16()", wireExpr), nil
	case ast.KindI32:
		return fmt.Sprintf("%s.GetI32()", wireExpr), nil
	case ast.KindI64:
		return fmt.Sprintf("%s.GetI64()", wireExpr), nil
	case ast.KindDouble:
		return fmt.Sprintf("%s.GetDouble()", wireExpr), nil
	case ast.KindString:
		return fmt.Sprintf("%s.GetString()", wireExpr), nil
	case ast.KindBinary:
		return fmt.Sprintf("%s.GetBinary()", wireExpr), nil
	case ast.KindIdent:
		goType, err := goType(t)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			`func() %s {
			var x %s
			_ = x.FromWire(%s)
			return x
		}()`, goType, goType, wireExpr), nil
	case ast.KindList, ast.KindSet:
		elemType, err := goElemType(*t.Elem)
		if err != nil {
			return "", err
		}
		accessor := "GetList"
		if t.Kind == ast.KindSet {
			accessor = "GetSet"
		}
		elemExpr, err := decodeExpr(*t.Elem, "item")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			`func() []%s {
			src := %s.%s()
			out := make([]%s, 0, len(src.Items))
			for _, item := range src.Items {
				out = append(out, %s)
			}
			return out
		}()`, elemType, wireExpr, accessor, elemType, elemExpr), nil
	case ast.KindMap:
		keyType, err := goElemType(*t.Key)
		if err != nil {
			return "", err
		}
		valType, err := goElemType(*t.Value)
		if err != nil {
			return "", err
		}
		keyExpr, err := decodeExpr(*t.Key, "item.Key")
		if err != nil {
			return "", err
		}
		valExpr, err := decodeExpr(*t.Value, "item.Value")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			`func() map[%s]%s {
			src := %s.GetMap()
			out := make(map[%s]%s, len(src.Items))
			for _, item := range src.Items {
				out[%s] = %s
			}
			return out
		}()`, keyType, valType, wireExpr, keyType, valType, keyExpr, valExpr), nil
	default:
		return "", &ErrUnsupportedType{Type: t}
	}
}

// tmplEncodeField is the text/template-facing wrapper around encodeExpr:
// it knows to dereference optional base-typed fields (stored as pointers)
// before handing the value to the generic encoder.
func tmplEncodeField(f field) (string, error) {
	expr := "v." + f.GoName
	if f.Optional && f.Type.IsBase() {
		expr = "*v." + f.GoName
	}
	return encodeExpr(f.Type, expr)
}

// tmplDecodeField is the text/template-facing wrapper around decodeExpr
// for a struct field being populated from a wire.Field named f in the
// generated FromWire loop.
func tmplDecodeField(f field) (string, error) {
	return decodeExpr(f.Type, "f.Value")
}

// exportName capitalizes a Thrift identifier's first letter so it becomes
// an exported Go identifier, the way every generator in the corpus names
// struct fields.
func exportName(name string) string {
	if name == "" {
		return name
	}
	b := []byte(name)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
