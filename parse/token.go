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

// Package parse implements the Thrift IDL grammar of spec.md §4.B: a
// hand-written lexer and recursive-descent parser that turns UTF-8 Thrift
// source into an ast.Document.
package parse

import "fmt"

// Kind tags a lexical token.
type Kind int

// The token kinds produced by the lexer.
const (
	EOF Kind = iota
	Ident
	Int
	Double
	String
	Punct
)

// Pos locates a token in the original source.
type Pos struct {
	Line   int
	Col    int
	Offset int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Token is one lexical unit of Thrift source.
type Token struct {
	Kind Kind
	Pos  Pos

	// Text is the raw identifier/keyword/punctuation text, or the raw
	// (unescaped) contents of a string literal.
	Text string

	IntVal    int64
	DoubleVal float64
}

// keywords is the full reserved-word set of spec.md §4.A. Keywords lex as
// ordinary Ident tokens; the parser decides, production by production,
// whether an identifier must match one of these.
var keywords = map[string]bool{
	"include": true, "namespace": true, "const": true, "typedef": true,
	"enum": true, "struct": true, "union": true, "exception": true,
	"service": true, "extends": true, "required": true, "optional": true,
	"oneway": true, "throws": true, "void": true, "bool": true, "byte": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "double": true,
	"string": true, "binary": true, "map": true, "set": true, "list": true,
}

// baseTypes is the subset of keywords that can appear in FieldType
// position, tried before a bare Ident per spec.md §4.B's ordering rule.
var baseTypes = map[string]bool{
	"bool": true, "byte": true, "i8": true, "i16": true, "i32": true,
	"i64": true, "double": true, "string": true, "binary": true,
}

func (t Token) is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}
