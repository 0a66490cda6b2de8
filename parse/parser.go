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

package parse

import (
	"fmt"

	"go.uber.org/thriftgen/ast"
)

// Parse turns Thrift IDL source into an ast.Document. The returned error,
// if non-nil, aggregates every production-level failure encountered via
// go.uber.org/multierr; callers that only care whether parsing succeeded
// can treat it as an ordinary error.
func Parse(src string) (*ast.Document, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseDocument()
}

type parser struct {
	lex *lexer
	tok Token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) atEOF() bool { return p.tok.Kind == EOF }

func (p *parser) atPunct(text string) bool { return p.tok.is(Punct, text) }

func (p *parser) atKeyword(word string) bool { return p.tok.is(Ident, word) }

// expectPunct consumes the current token if it matches text, else returns
// an error without advancing.
func (p *parser) expectPunct(text string) error {
	if !p.atPunct(text) {
		return errExpected(p.tok, fmt.Sprintf("%q", text))
	}
	return p.advance()
}

// expectIdent consumes an Ident token (keyword or plain identifier) and
// returns its text.
func (p *parser) expectIdent() (string, error) {
	if p.tok.Kind != Ident {
		return "", errExpected(p.tok, "identifier")
	}
	text := p.tok.Text
	if err := p.advance(); err != nil {
		return "", err
	}
	return text, nil
}

// skipOptionalSeparator consumes a trailing "," or ";" if present, per
// spec.md §4.B's tolerance for either or neither between list elements.
func (p *parser) skipOptionalSeparator() error {
	if p.atPunct(",") || p.atPunct(";") {
		return p.advance()
	}
	return nil
}

func (p *parser) parseDocument() (*ast.Document, error) {
	doc := &ast.Document{}
	var errs ErrorList

	for !p.atEOF() {
		if p.tok.Kind != Ident {
			errs.add(errExpected(p.tok, "header or definition"))
			if err := p.advance(); err != nil {
				errs.add(err)
				break
			}
			continue
		}

		var err error
		switch p.tok.Text {
		case "include":
			var inc *ast.Include
			inc, err = p.parseInclude()
			if err == nil {
				doc.Headers = append(doc.Headers, inc)
			}
		case "namespace":
			var ns *ast.Namespace
			ns, err = p.parseNamespace()
			if err == nil {
				doc.Headers = append(doc.Headers, ns)
			}
		case "const":
			var c *ast.Const
			c, err = p.parseConst()
			if err == nil {
				doc.Definitions = append(doc.Definitions, c)
			}
		case "typedef":
			var t *ast.Typedef
			t, err = p.parseTypedef()
			if err == nil {
				doc.Definitions = append(doc.Definitions, t)
			}
		case "enum":
			var e *ast.Enum
			e, err = p.parseEnum()
			if err == nil {
				doc.Definitions = append(doc.Definitions, e)
			}
		case "struct":
			var s *ast.Struct
			s, err = p.parseStruct()
			if err == nil {
				doc.Definitions = append(doc.Definitions, s)
			}
		case "union":
			var u *ast.Union
			u, err = p.parseUnion()
			if err == nil {
				doc.Definitions = append(doc.Definitions, u)
			}
		case "exception":
			var e *ast.Exception
			e, err = p.parseException()
			if err == nil {
				doc.Definitions = append(doc.Definitions, e)
			}
		case "service":
			var s *ast.Service
			s, err = p.parseService()
			if err == nil {
				doc.Definitions = append(doc.Definitions, s)
			}
		default:
			err = &Error{Pos: p.tok.Pos, Msg: fmt.Sprintf("unknown top-level keyword %q", p.tok.Text)}
			if adv := p.advance(); adv != nil {
				err = adv
			}
		}

		if err != nil {
			errs.add(err)
			if err2, ok := err.(*Error); ok && err2.Incomplete {
				break
			}
		}
	}

	if err := errs.combined(); err != nil {
		return doc, err
	}
	return doc, nil
}

func (p *parser) parseInclude() (*ast.Include, error) {
	if err := p.advance(); err != nil { // consume "include"
		return nil, err
	}
	if p.tok.Kind != String {
		return nil, errExpected(p.tok, "string literal")
	}
	path := p.tok.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Include{Path: path}, nil
}

func (p *parser) parseNamespace() (*ast.Namespace, error) {
	if err := p.advance(); err != nil { // consume "namespace"
		return nil, err
	}
	lang, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	module, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return &ast.Namespace{Lang: lang, Module: module}, nil
}

func (p *parser) parseConst() (*ast.Const, error) {
	if err := p.advance(); err != nil { // consume "const"
		return nil, err
	}
	typ, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}
	val, err := p.parseConstValue()
	if err != nil {
		return nil, err
	}
	if err := p.skipOptionalSeparator(); err != nil {
		return nil, err
	}
	return &ast.Const{Name: name, Type: typ, Value: val}, nil
}

func (p *parser) parseTypedef() (*ast.Typedef, error) {
	if err := p.advance(); err != nil { // consume "typedef"
		return nil, err
	}
	typ, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return &ast.Typedef{Name: name, Type: typ}, nil
}

func (p *parser) parseEnum() (*ast.Enum, error) {
	if err := p.advance(); err != nil { // consume "enum"
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	var items []ast.EnumItem
	for !p.atPunct("}") {
		if p.atEOF() {
			return nil, errUnexpectedEOF(p.tok.Pos, `"}"`)
		}
		itemName, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		item := ast.EnumItem{Name: itemName}
		if p.atPunct("=") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.Kind != Int {
				return nil, errExpected(p.tok, "integer literal")
			}
			v := p.tok.IntVal
			item.Value = &v
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
		if err := p.skipOptionalSeparator(); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}
	return &ast.Enum{Name: name, Items: items}, nil
}

func (p *parser) parseStruct() (*ast.Struct, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Struct{Name: name, Fields: fields}, nil
}

func (p *parser) parseUnion() (*ast.Union, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Union{Name: name, Fields: fields}, nil
}

func (p *parser) parseException() (*ast.Exception, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Exception{Name: name, Fields: fields}, nil
}

// parseFieldBlock parses a "{ field* }" body shared by struct, union,
// exception and the argument/throws lists of a service method.
func (p *parser) parseFieldBlock() ([]ast.StructField, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var fields []ast.StructField
	for !p.atPunct("}") {
		if p.atEOF() {
			return nil, errUnexpectedEOF(p.tok.Pos, `"}"`)
		}
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		if err := p.skipOptionalSeparator(); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}
	if err := checkFields(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// parseField parses one `[seq:] [required|optional] type name [= default]`
// field declaration.
func (p *parser) parseField() (ast.StructField, error) {
	var field ast.StructField

	if p.tok.Kind == Int {
		seq := int16(p.tok.IntVal)
		field.Seq = &seq
		if err := p.advance(); err != nil {
			return field, err
		}
		if err := p.expectPunct(":"); err != nil {
			return field, err
		}
	}

	field.Optional = false
	if p.atKeyword("required") {
		field.Optional = false
		if err := p.advance(); err != nil {
			return field, err
		}
	} else if p.atKeyword("optional") {
		field.Optional = true
		if err := p.advance(); err != nil {
			return field, err
		}
	}

	typ, err := p.parseFieldType()
	if err != nil {
		return field, err
	}
	field.Type = typ

	name, err := p.expectIdent()
	if err != nil {
		return field, err
	}
	field.Name = name

	if p.atPunct("=") {
		if err := p.advance(); err != nil {
			return field, err
		}
		val, err := p.parseConstValue()
		if err != nil {
			return field, err
		}
		field.Default = val
	}

	return field, nil
}

// checkFields enforces the uniqueness/non-negativity invariants documented
// on ast.StructField.
func checkFields(fields []ast.StructField) error {
	seen := make(map[int16]bool)
	for _, f := range fields {
		if f.Seq == nil {
			continue
		}
		if *f.Seq < 0 {
			return &Error{Msg: fmt.Sprintf("field %q has negative sequence id %d", f.Name, *f.Seq)}
		}
		if seen[*f.Seq] {
			return &Error{Msg: fmt.Sprintf("duplicate field sequence id %d (field %q)", *f.Seq, f.Name)}
		}
		seen[*f.Seq] = true
	}
	return nil
}

func (p *parser) parseService() (*ast.Service, error) {
	if err := p.advance(); err != nil { // consume "service"
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	extends := ""
	if p.atKeyword("extends") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		extends, err = p.expectIdent()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var methods []ast.ServiceMethod
	for !p.atPunct("}") {
		if p.atEOF() {
			return nil, errUnexpectedEOF(p.tok.Pos, `"}"`)
		}
		m, err := p.parseServiceMethod()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
		if err := p.skipOptionalSeparator(); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // consume "}"
		return nil, err
	}

	return &ast.Service{Name: name, Extends: extends, Methods: methods}, nil
}

func (p *parser) parseServiceMethod() (ast.ServiceMethod, error) {
	var m ast.ServiceMethod

	if p.atKeyword("oneway") {
		m.Oneway = true
		if err := p.advance(); err != nil {
			return m, err
		}
	}

	ret, err := p.parseFuncType()
	if err != nil {
		return m, err
	}
	m.Return = ret

	name, err := p.expectIdent()
	if err != nil {
		return m, err
	}
	m.Name = name

	args, err := p.parseParenFieldList()
	if err != nil {
		return m, err
	}
	m.Args = args

	if p.atKeyword("throws") {
		if err := p.advance(); err != nil {
			return m, err
		}
		throws, err := p.parseParenFieldList()
		if err != nil {
			return m, err
		}
		m.Throws = throws
	}

	return m, nil
}

// parseParenFieldList parses a "(" Field* ")" list, the form used by a
// method's argument list and its throws clause.
func (p *parser) parseParenFieldList() ([]ast.StructField, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var fields []ast.StructField
	for !p.atPunct(")") {
		if p.atEOF() {
			return nil, errUnexpectedEOF(p.tok.Pos, `")"`)
		}
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		if err := p.skipOptionalSeparator(); err != nil {
			return nil, err
		}
	}
	if err := p.advance(); err != nil { // consume ")"
		return nil, err
	}
	if err := checkFields(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// parseFuncType parses a method's return type: "void" or a FieldType.
func (p *parser) parseFuncType() (ast.Type, error) {
	if p.atKeyword("void") {
		if err := p.advance(); err != nil {
			return ast.Type{}, err
		}
		return ast.TVoid, nil
	}
	return p.parseFieldType()
}

// parseFieldType parses a base type, container type, or identifier
// reference. Per spec.md §4.B's ordering rule, base-type keywords are
// tried before falling back to a bare identifier.
func (p *parser) parseFieldType() (ast.Type, error) {
	if p.tok.Kind != Ident {
		return ast.Type{}, errExpected(p.tok, "type")
	}

	if baseTypes[p.tok.Text] {
		typ := baseTypeOf(p.tok.Text)
		return typ, p.advance()
	}

	switch p.tok.Text {
	case "list":
		return p.parseListType()
	case "set":
		return p.parseSetType()
	case "map":
		return p.parseMapType()
	default:
		name := p.tok.Text
		if err := p.advance(); err != nil {
			return ast.Type{}, err
		}
		return ast.TIdent(name), nil
	}
}

func baseTypeOf(word string) ast.Type {
	switch word {
	case "bool":
		return ast.TBool
	case "byte":
		return ast.TByte
	case "i8":
		return ast.TI8
	case "i16":
		return ast.TI16
	case "i32":
		return ast.TI32
	case "i64":
		return ast.TI64
	case "double":
		return ast.TDouble
	case "string":
		return ast.TString
	case "binary":
		return ast.TBinary
	default:
		panic("parse: baseTypeOf called with non-base-type word " + word)
	}
}

func (p *parser) parseListType() (ast.Type, error) {
	if err := p.advance(); err != nil { // consume "list"
		return ast.Type{}, err
	}
	if err := p.expectPunct("<"); err != nil {
		return ast.Type{}, err
	}
	elem, err := p.parseFieldType()
	if err != nil {
		return ast.Type{}, err
	}
	if err := p.expectPunct(">"); err != nil {
		return ast.Type{}, err
	}
	return ast.TList(elem), nil
}

func (p *parser) parseSetType() (ast.Type, error) {
	if err := p.advance(); err != nil { // consume "set"
		return ast.Type{}, err
	}
	if err := p.expectPunct("<"); err != nil {
		return ast.Type{}, err
	}
	elem, err := p.parseFieldType()
	if err != nil {
		return ast.Type{}, err
	}
	if err := p.expectPunct(">"); err != nil {
		return ast.Type{}, err
	}
	return ast.TSet(elem), nil
}

func (p *parser) parseMapType() (ast.Type, error) {
	if err := p.advance(); err != nil { // consume "map"
		return ast.Type{}, err
	}
	if err := p.expectPunct("<"); err != nil {
		return ast.Type{}, err
	}
	key, err := p.parseFieldType()
	if err != nil {
		return ast.Type{}, err
	}
	if err := p.expectPunct(","); err != nil {
		return ast.Type{}, err
	}
	value, err := p.parseFieldType()
	if err != nil {
		return ast.Type{}, err
	}
	if err := p.expectPunct(">"); err != nil {
		return ast.Type{}, err
	}
	return ast.TMap(key, value), nil
}

// parseConstValue parses an IntLit, DoubleLit, StringLit, or a list/map
// literal per spec.md §4.B's ConstValue production.
//
// Thrift's const grammar uses "{" for both list and map literals; this
// parser disambiguates the same way the reference grammar does: after the
// first element, a following ":" marks it as a map.
func (p *parser) parseConstValue() (ast.ConstValue, error) {
	switch p.tok.Kind {
	case Int:
		v := p.tok.IntVal
		return ast.ConstInt(v), p.advance()
	case Double:
		v := p.tok.DoubleVal
		return ast.ConstDouble(v), p.advance()
	case String:
		v := p.tok.Text
		return ast.ConstString(v), p.advance()
	case Punct:
		if p.tok.Text == "{" {
			return p.parseConstListOrMap()
		}
	}
	return ast.ConstValue{}, errExpected(p.tok, "constant value")
}

func (p *parser) parseConstListOrMap() (ast.ConstValue, error) {
	if err := p.advance(); err != nil { // consume "{"
		return ast.ConstValue{}, err
	}

	if p.atPunct("}") {
		if err := p.advance(); err != nil {
			return ast.ConstValue{}, err
		}
		return ast.ConstList(nil), nil
	}

	first, err := p.parseConstValue()
	if err != nil {
		return ast.ConstValue{}, err
	}

	if p.atPunct(":") {
		// Map literal: "{" key ":" value ("," key ":" value)* "}"
		if err := p.advance(); err != nil {
			return ast.ConstValue{}, err
		}
		firstVal, err := p.parseConstValue()
		if err != nil {
			return ast.ConstValue{}, err
		}
		entries := []ast.ConstMapEntry{{Key: first, Value: firstVal}}
		if err := p.skipOptionalSeparator(); err != nil {
			return ast.ConstValue{}, err
		}
		for !p.atPunct("}") {
			if p.atEOF() {
				return ast.ConstValue{}, errUnexpectedEOF(p.tok.Pos, `"}"`)
			}
			k, err := p.parseConstValue()
			if err != nil {
				return ast.ConstValue{}, err
			}
			if err := p.expectPunct(":"); err != nil {
				return ast.ConstValue{}, err
			}
			v, err := p.parseConstValue()
			if err != nil {
				return ast.ConstValue{}, err
			}
			entries = append(entries, ast.ConstMapEntry{Key: k, Value: v})
			if err := p.skipOptionalSeparator(); err != nil {
				return ast.ConstValue{}, err
			}
		}
		if err := p.advance(); err != nil { // consume "}"
			return ast.ConstValue{}, err
		}
		return ast.ConstMap(entries), nil
	}

	// List literal: "{" value ("," value)* "}"
	items := []ast.ConstValue{first}
	if err := p.skipOptionalSeparator(); err != nil {
		return ast.ConstValue{}, err
	}
	for !p.atPunct("}") {
		if p.atEOF() {
			return ast.ConstValue{}, errUnexpectedEOF(p.tok.Pos, `"}"`)
		}
		v, err := p.parseConstValue()
		if err != nil {
			return ast.ConstValue{}, err
		}
		items = append(items, v)
		if err := p.skipOptionalSeparator(); err != nil {
			return ast.ConstValue{}, err
		}
	}
	if err := p.advance(); err != nil { // consume "}"
		return ast.ConstValue{}, err
	}
	return ast.ConstList(items), nil
}
