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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftgen/ast"
)

// Scenario 1 of spec.md §8: namespace discovery.
func TestParseNamespaceDiscovery(t *testing.T) {
	doc, err := Parse("namespace rust foo\nnamespace cpp bar\n")
	require.NoError(t, err)
	require.Len(t, doc.Headers, 2)

	mod, ok := doc.Namespace("rust")
	require.True(t, ok)
	assert.Equal(t, "foo", mod)

	mod, ok = doc.Namespace("cpp")
	require.True(t, ok)
	assert.Equal(t, "bar", mod)

	_, ok = doc.Namespace("go")
	assert.False(t, ok)
}

// Scenario 2 of spec.md §8: enum variant with index.
func TestParseEnumVariantWithIndex(t *testing.T) {
	doc, err := Parse("enum E { A = 1, B, C = 4; }")
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	e, ok := doc.Definitions[0].(*ast.Enum)
	require.True(t, ok)
	assert.Equal(t, "E", e.Name)
	require.Len(t, e.Items, 3)

	assert.Equal(t, "A", e.Items[0].Name)
	require.NotNil(t, e.Items[0].Value)
	assert.EqualValues(t, 1, *e.Items[0].Value)

	assert.Equal(t, "B", e.Items[1].Name)
	assert.Nil(t, e.Items[1].Value)

	assert.Equal(t, "C", e.Items[2].Name)
	require.NotNil(t, e.Items[2].Value)
	assert.EqualValues(t, 4, *e.Items[2].Value)
}

// Scenario 3 of spec.md §8: a service with one method (parse side only;
// the client/server round trip is exercised in package rpc's tests).
func TestParseServiceWithMethods(t *testing.T) {
	doc, err := Parse(`service Greeter { string hello_name(1: string name); string hello(); }`)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	svc, ok := doc.Definitions[0].(*ast.Service)
	require.True(t, ok)
	assert.Equal(t, "Greeter", svc.Name)
	assert.Equal(t, "", svc.Extends)
	require.Len(t, svc.Methods, 2)

	m0 := svc.Methods[0]
	assert.Equal(t, "hello_name", m0.Name)
	assert.Equal(t, ast.TString, m0.Return)
	require.Len(t, m0.Args, 1)
	require.NotNil(t, m0.Args[0].Seq)
	assert.EqualValues(t, 1, *m0.Args[0].Seq)
	assert.Equal(t, "name", m0.Args[0].Name)
	assert.Equal(t, ast.TString, m0.Args[0].Type)

	m1 := svc.Methods[1]
	assert.Equal(t, "hello", m1.Name)
	assert.Empty(t, m1.Args)
}

func TestParseServiceExtends(t *testing.T) {
	doc, err := Parse(`service Derived extends Base { void noop() }`)
	require.NoError(t, err)
	svc := doc.Definitions[0].(*ast.Service)
	assert.Equal(t, "Base", svc.Extends)
	require.Len(t, svc.Methods, 1)
	assert.Equal(t, ast.TVoid, svc.Methods[0].Return)
}

func TestParseStructFieldModifiers(t *testing.T) {
	doc, err := Parse(`struct S {
		1: required string a,
		2: optional i32 b = 5,
		3: double c
	}`)
	require.NoError(t, err)
	s := doc.Definitions[0].(*ast.Struct)
	require.Len(t, s.Fields, 3)

	assert.False(t, s.Fields[0].Optional)
	assert.True(t, s.Fields[1].Optional)
	require.True(t, s.Fields[1].Default.IsSet())
	assert.EqualValues(t, 5, s.Fields[1].Default.Int)
	assert.False(t, s.Fields[2].Optional) // defaults to required
}

func TestParseContainerTypes(t *testing.T) {
	doc, err := Parse(`struct S {
		1: list<string> a,
		2: set<i32> b,
		3: map<string, i64> c,
		4: Foo d
	}`)
	require.NoError(t, err)
	s := doc.Definitions[0].(*ast.Struct)
	require.Len(t, s.Fields, 4)

	assert.Equal(t, "list<string>", s.Fields[0].Type.String())
	assert.Equal(t, "set<i32>", s.Fields[1].Type.String())
	assert.Equal(t, "map<string, i64>", s.Fields[2].Type.String())
	assert.Equal(t, ast.KindIdent, s.Fields[3].Type.Kind)
	assert.Equal(t, "Foo", s.Fields[3].Type.Ident)
}

func TestParseConstListAndMap(t *testing.T) {
	doc, err := Parse(`const list<i32> NUMS = {1, 2, 3}
const map<string, i32> AGES = {"a": 1, "b": 2}`)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 2)

	nums := doc.Definitions[0].(*ast.Const)
	require.Len(t, nums.Value.List, 3)
	assert.EqualValues(t, 2, nums.Value.List[1].Int)

	ages := doc.Definitions[1].(*ast.Const)
	require.Len(t, ages.Value.Map, 2)
	assert.Equal(t, "a", ages.Value.Map[0].Key.Str)
	assert.EqualValues(t, 1, ages.Value.Map[0].Value.Int)
}

func TestParseThrowsClause(t *testing.T) {
	doc, err := Parse(`service S { void m() throws (1: string err) }`)
	require.NoError(t, err)
	svc := doc.Definitions[0].(*ast.Service)
	require.Len(t, svc.Methods[0].Throws, 1)
	assert.Equal(t, "err", svc.Methods[0].Throws[0].Name)
}

func TestParseOneway(t *testing.T) {
	doc, err := Parse(`service S { oneway void fireAndForget(1: string msg) }`)
	require.NoError(t, err)
	svc := doc.Definitions[0].(*ast.Service)
	assert.True(t, svc.Methods[0].Oneway)
}

func TestParseTrailingSeparatorsTolerated(t *testing.T) {
	_, err := Parse(`struct S { 1: string a; 2: string b, }`)
	require.NoError(t, err)
}

func TestParseDuplicateSeqRejected(t *testing.T) {
	_, err := Parse(`struct S { 1: string a, 1: string b }`)
	require.Error(t, err)
}

func TestParseUnexpectedTokenReportsPosition(t *testing.T) {
	_, err := Parse(`struct S { 1 string a }`)
	require.Error(t, err)
	// "string" at line 1, column 14 is where the ":" after the field id was expected.
	assert.Contains(t, err.Error(), "1:14")
}

func TestParseUnionAndException(t *testing.T) {
	doc, err := Parse(`union U { 1: string a, 2: i32 b }
exception E { 1: string message }`)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 2)
	_, ok := doc.Definitions[0].(*ast.Union)
	assert.True(t, ok)
	_, ok = doc.Definitions[1].(*ast.Exception)
	assert.True(t, ok)
}

func TestParseTypedefAndInclude(t *testing.T) {
	doc, err := Parse(`include "common.thrift"
typedef i64 Timestamp`)
	require.NoError(t, err)
	inc, ok := doc.Headers[0].(*ast.Include)
	require.True(t, ok)
	assert.Equal(t, "common.thrift", inc.Path)

	td, ok := doc.Definitions[0].(*ast.Typedef)
	require.True(t, ok)
	assert.Equal(t, "Timestamp", td.Name)
	assert.Equal(t, ast.TI64, td.Type)
}
