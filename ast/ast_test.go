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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentNamespaceLookup(t *testing.T) {
	doc := &Document{
		Headers: []Header{
			&Include{Path: "shared.thrift"},
			&Namespace{Lang: "go", Module: "widgets"},
			&Namespace{Lang: "py", Module: "widgets_py"},
		},
	}

	module, ok := doc.Namespace("go")
	assert.True(t, ok)
	assert.Equal(t, "widgets", module)

	module, ok = doc.Namespace("py")
	assert.True(t, ok)
	assert.Equal(t, "widgets_py", module)

	_, ok = doc.Namespace("java")
	assert.False(t, ok)
}

func TestDefinitionNames(t *testing.T) {
	var defs = []Definition{
		&Const{Name: "MaxSize"},
		&Typedef{Name: "ID"},
		&Enum{Name: "Color"},
		&Struct{Name: "Point"},
		&Union{Name: "Shape"},
		&Exception{Name: "NotFound"},
		&Service{Name: "Widgets"},
	}
	want := []string{"MaxSize", "ID", "Color", "Point", "Shape", "NotFound", "Widgets"}
	for i, d := range defs {
		assert.Equal(t, want[i], d.DefinitionName())
	}
}

func TestTypeStringBaseTypes(t *testing.T) {
	cases := []struct {
		t    Type
		want string
	}{
		{TBool, "bool"},
		{TByte, "byte"},
		{TI8, "i8"},
		{TI16, "i16"},
		{TI32, "i32"},
		{TI64, "i64"},
		{TDouble, "double"},
		{TBinary, "binary"},
		{TString, "string"},
		{TVoid, "void"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.t.String())
	}
}

func TestTypeStringContainers(t *testing.T) {
	assert.Equal(t, "list<string>", TList(TString).String())
	assert.Equal(t, "set<i32>", TSet(TI32).String())
	assert.Equal(t, "map<string, i32>", TMap(TString, TI32).String())
	assert.Equal(t, "list<list<i32>>", TList(TList(TI32)).String())
	assert.Equal(t, "Widget", TIdent("Widget").String())
}

func TestTypeIsBase(t *testing.T) {
	assert.True(t, TBool.IsBase())
	assert.True(t, TString.IsBase())
	assert.True(t, TI64.IsBase())
	assert.False(t, TList(TString).IsBase())
	assert.False(t, TSet(TString).IsBase())
	assert.False(t, TMap(TString, TString).IsBase())
	assert.False(t, TIdent("Widget").IsBase())
	assert.False(t, TVoid.IsBase())
}

func TestConstValueConstructorsAndIsSet(t *testing.T) {
	var zero ConstValue
	assert.False(t, zero.IsSet())

	assert.True(t, ConstInt(3).IsSet())
	assert.Equal(t, int64(3), ConstInt(3).Int)

	assert.True(t, ConstDouble(1.5).IsSet())
	assert.Equal(t, 1.5, ConstDouble(1.5).Double)

	assert.True(t, ConstString("hi").IsSet())
	assert.Equal(t, "hi", ConstString("hi").Str)

	list := ConstList([]ConstValue{ConstInt(1), ConstInt(2)})
	assert.True(t, list.IsSet())
	assert.Len(t, list.List, 2)

	m := ConstMap([]ConstMapEntry{{Key: ConstString("a"), Value: ConstInt(1)}})
	assert.True(t, m.IsSet())
	assert.Len(t, m.Map, 1)
	assert.Equal(t, "a", m.Map[0].Key.Str)
	assert.Equal(t, int64(1), m.Map[0].Value.Int)
}

func TestStructFieldSeqNilMeansOmitted(t *testing.T) {
	f := StructField{Name: "x", Type: TString, Optional: true}
	assert.Nil(t, f.Seq)
	assert.False(t, f.Default.IsSet())

	seq := int16(2)
	f2 := StructField{Seq: &seq, Name: "y", Type: TI32}
	assert.NotNil(t, f2.Seq)
	assert.Equal(t, int16(2), *f2.Seq)
}
