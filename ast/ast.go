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

// Package ast defines the abstract syntax tree produced by parsing a Thrift
// IDL file. Every node here is built once by the parser and never mutated
// afterwards.
package ast

// Document is the root of a parsed Thrift file: an ordered run of headers
// followed by an ordered run of definitions.
type Document struct {
	Headers     []Header
	Definitions []Definition
}

// Namespace looks up the module name declared for the given target
// language tag (e.g. "go"). ok is false if no such namespace header exists.
func (d *Document) Namespace(lang string) (module string, ok bool) {
	for _, h := range d.Headers {
		if ns, isNS := h.(*Namespace); isNS && ns.Lang == lang {
			return ns.Module, true
		}
	}
	return "", false
}

// Header is one of Include or Namespace.
type Header interface {
	header()
}

// Include is a `include "path"` header.
type Include struct {
	Path string
}

func (*Include) header() {}

// Namespace is a `namespace lang module` header.
type Namespace struct {
	Lang   string
	Module string
}

func (*Namespace) header() {}

// Definition is one of Const, Typedef, Enum, Struct, Union, Exception or
// Service.
type Definition interface {
	definition()
	DefinitionName() string
}

// Const is a `const type name = value` definition.
type Const struct {
	Name  string
	Type  Type
	Value ConstValue
}

func (*Const) definition()            {}
func (c *Const) DefinitionName() string { return c.Name }

// Typedef is a `typedef type name` definition.
type Typedef struct {
	Name string
	Type Type
}

func (*Typedef) definition()            {}
func (t *Typedef) DefinitionName() string { return t.Name }

// EnumItem is one `Ident ["=" IntLit]` variant inside an enum body.
type EnumItem struct {
	Name  string
	Value *int64 // nil when the source omitted an explicit value
}

// Enum is an `enum name { ... }` definition.
type Enum struct {
	Name  string
	Items []EnumItem
}

func (*Enum) definition()            {}
func (e *Enum) DefinitionName() string { return e.Name }

// Struct is a `struct name { ... }` definition.
type Struct struct {
	Name   string
	Fields []StructField
}

func (*Struct) definition()            {}
func (s *Struct) DefinitionName() string { return s.Name }

// Union is a `union name { ... }` definition. The parser builds this node
// faithfully; the generator (component E) rejects it at generation time
// per the Non-goals in spec.md §1.
type Union struct {
	Name   string
	Fields []StructField
}

func (*Union) definition()            {}
func (u *Union) DefinitionName() string { return u.Name }

// Exception is an `exception name { ... }` definition. Like Union, the
// parser builds it but the generator refuses to emit code for it.
type Exception struct {
	Name   string
	Fields []StructField
}

func (*Exception) definition()            {}
func (e *Exception) DefinitionName() string { return e.Name }

// Service is a `service name [extends other] { ... }` definition.
type Service struct {
	Name    string
	Extends string // empty when there is no "extends" clause
	Methods []ServiceMethod
}

func (*Service) definition()            {}
func (s *Service) DefinitionName() string { return s.Name }

// StructField is one field declaration inside a struct, union, exception,
// or a method's argument/throws list.
//
// Invariants (enforced by the parser, see parse.checkFields):
//   - within one struct the non-empty Seq values are unique
//   - Seq values, when present, are >= 0
//   - Optional == false means the field is required for deserialization
type StructField struct {
	Seq      *int16 // nil when the source omitted "N:"
	Optional bool
	Type     Type
	Name     string
	Default  ConstValue // zero value (Kind == ConstKindInvalid, IsSet() false) when absent
}

// ServiceMethod is one method declaration inside a service body.
type ServiceMethod struct {
	Oneway  bool
	Name    string
	Return  Type // TypeVoid when the method returns void
	Args    []StructField
	Throws  []StructField // nil when there is no throws clause
}
