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
	"strconv"

	"go.uber.org/thriftgen/ast"
)

// fileModel is the generator's intermediate representation of one Thrift
// document, fully resolved to Go names and types, ready for template
// execution.
type fileModel struct {
	Package      string
	Enums        []enumModel
	Typedefs     []typedefModel
	Structs      []structModel
	Consts       []constModel
	Services     []serviceModel
	NeedsReflect bool
	NeedsErrors  bool
}

type enumModel struct {
	Name  string
	Items []enumItemModel
}

type enumItemModel struct {
	Name  string
	Value int64
}

type typedefModel struct {
	Name   string
	GoType string
}

type structModel struct {
	Name   string
	Fields []field
}

type constModel struct {
	Name    string
	GoType  string
	ValueGo string
}

type serviceModel struct {
	Name    string
	Extends string
	Methods []methodModel
}

type methodModel struct {
	ThriftName         string
	GoName             string
	Oneway             bool
	ReturnGoType       string // "" for void
	ReturnType         ast.Type
	ReturnIsBase       bool // true: Success field is a pointer, needs deref on unwrap
	ReturnNilCheckable bool // true: Success field is a bare nil-able container
	Args               []field
	ArgsTypeName       string
	ResultTypeName     string
	HelperName         string
}

// buildModel resolves a parsed Document into a fileModel, or returns
// ErrNotSupported the first time it finds a union or exception
// definition, per spec.md §4.E's Non-goals.
func buildModel(doc *ast.Document, pkgName string) (*fileModel, error) {
	m := &fileModel{Package: pkgName}

	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.Enum:
			m.Enums = append(m.Enums, buildEnum(d))
		case *ast.Typedef:
			goType, err := goType(d.Type)
			if err != nil {
				return nil, err
			}
			m.Typedefs = append(m.Typedefs, typedefModel{Name: d.Name, GoType: goType})
		case *ast.Struct:
			sm, err := buildStruct(d.Name, d.Fields)
			if err != nil {
				return nil, err
			}
			m.Structs = append(m.Structs, sm)
		case *ast.Union:
			return nil, &ErrNotSupported{Kind: "union", Name: d.Name}
		case *ast.Exception:
			return nil, &ErrNotSupported{Kind: "exception", Name: d.Name}
		case *ast.Const:
			cm, err := buildConst(d)
			if err != nil {
				return nil, err
			}
			m.Consts = append(m.Consts, cm)
		case *ast.Service:
			sm, extraStructs, err := buildService(d)
			if err != nil {
				return nil, err
			}
			m.Services = append(m.Services, sm)
			m.Structs = append(m.Structs, extraStructs...)
		}
	}

	m.NeedsErrors = len(m.Services) > 0

	for _, s := range m.Structs {
		if fieldsNeedReflect(s.Fields) {
			m.NeedsReflect = true
			break
		}
	}
	if !m.NeedsReflect {
		for _, svc := range m.Services {
			for _, meth := range svc.Methods {
				if fieldsNeedReflect(meth.Args) {
					m.NeedsReflect = true
					break
				}
			}
		}
	}

	return m, nil
}

// fieldsNeedReflect reports whether any field's declared type falls
// outside reflect-free Equals comparison (everything but base types).
func fieldsNeedReflect(fields []field) bool {
	for _, f := range fields {
		if !f.Type.IsBase() {
			return true
		}
	}
	return false
}

func buildEnum(e *ast.Enum) enumModel {
	em := enumModel{Name: e.Name}
	var next int64
	for _, item := range e.Items {
		v := next
		if item.Value != nil {
			v = *item.Value
		}
		em.Items = append(em.Items, enumItemModel{Name: item.Name, Value: v})
		next = v + 1
	}
	return em
}

func buildStruct(name string, fields []ast.StructField) (structModel, error) {
	sm := structModel{Name: name}
	for _, f := range fields {
		gf, err := newField(f)
		if err != nil {
			return structModel{}, err
		}
		sm.Fields = append(sm.Fields, gf)
	}
	return sm, nil
}

func buildConst(c *ast.Const) (constModel, error) {
	if c.Value.Kind == ast.ConstKindList || c.Value.Kind == ast.ConstKindMap {
		return constModel{}, &ErrConstContainerNotSupported{Name: c.Name}
	}
	goType, err := goType(c.Type)
	if err != nil {
		return constModel{}, err
	}
	rhs, err := renderConstScalar(c.Value)
	if err != nil {
		return constModel{}, err
	}
	return constModel{Name: exportName(c.Name), GoType: goType, ValueGo: rhs}, nil
}

// renderConstScalar renders an Int/Double/String constant as a bare Go
// literal. List/map consts are rejected earlier, in buildConst, per
// SPEC_FULL.md's Non-goals.
func renderConstScalar(v ast.ConstValue) (string, error) {
	switch v.Kind {
	case ast.ConstKindInt:
		return strconv.FormatInt(v.Int, 10), nil
	case ast.ConstKindDouble:
		return strconv.FormatFloat(v.Double, 'g', -1, 64), nil
	case ast.ConstKindString:
		return strconv.Quote(v.Str), nil
	default:
		return "", fmt.Errorf("gen: const value has no literal form (kind %d)", v.Kind)
	}
}

// buildService resolves one service definition, returning both the
// service's method metadata and the synthesized Args/Result struct
// bodies its methods need -- the latter are folded into fileModel.Structs
// by buildModel so they render through the same struct template as every
// hand-declared value type, exactly mirroring the shape
// thriftrw-plugin-yarpc emits for a method's request/response envelope.
func buildService(s *ast.Service) (serviceModel, []structModel, error) {
	sm := serviceModel{Name: s.Name, Extends: s.Extends}
	var extra []structModel
	for _, method := range s.Methods {
		mm, argsStruct, resultStruct, err := buildMethod(s.Name, method)
		if err != nil {
			return serviceModel{}, nil, err
		}
		sm.Methods = append(sm.Methods, mm)
		extra = append(extra, argsStruct, resultStruct)
	}
	return sm, extra, nil
}

func buildMethod(serviceName string, method ast.ServiceMethod) (methodModel, structModel, structModel, error) {
	var retGoType string
	if method.Return.Kind != ast.KindVoid {
		var err error
		retGoType, err = goType(method.Return)
		if err != nil {
			return methodModel{}, structModel{}, structModel{}, err
		}
	}

	args, err := buildArgFields(method.Args)
	if err != nil {
		return methodModel{}, structModel{}, structModel{}, err
	}

	prefix := fmt.Sprintf("%s_%s", serviceName, exportName(method.Name))
	mm := methodModel{
		ThriftName:         method.Name,
		GoName:             exportName(method.Name),
		Oneway:             method.Oneway,
		ReturnGoType:       retGoType,
		ReturnType:         method.Return,
		ReturnIsBase:       method.Return.IsBase(),
		ReturnNilCheckable: method.Return.Kind == ast.KindList || method.Return.Kind == ast.KindSet || method.Return.Kind == ast.KindMap,
		Args:               args,
		ArgsTypeName:       prefix + "_Args",
		ResultTypeName:     prefix + "_Result",
		HelperName:         prefix + "_Helper",
	}

	argsStruct := structModel{Name: mm.ArgsTypeName, Fields: args}

	var resultFields []field
	if method.Return.Kind != ast.KindVoid {
		resultFields = []field{{
			ID:       0,
			GoName:   "Success",
			GoType:   retGoType,
			Optional: true,
			Type:     method.Return,
		}}
	}
	resultStruct := structModel{Name: mm.ResultTypeName, Fields: resultFields}

	return mm, argsStruct, resultStruct, nil
}

// buildArgFields assigns Go field metadata to a method's argument list,
// reusing the same per-field machinery as struct fields: an argument list
// is, on the wire, exactly a struct body.
func buildArgFields(args []ast.StructField) ([]field, error) {
	var fields []field
	for _, a := range args {
		gf, err := newField(a)
		if err != nil {
			return nil, err
		}
		fields = append(fields, gf)
	}
	return fields, nil
}
