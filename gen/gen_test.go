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
	"go/format"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/thriftgen/parse"
)

func generateSrc(t *testing.T, thrift string) string {
	t.Helper()
	doc, err := parse.Parse(thrift)
	require.NoError(t, err)
	out, err := Generate(doc, "gentest")
	require.NoError(t, err)
	return string(out)
}

// The generator's output must be syntactically valid Go: this is the
// cheapest possible check that the template renders a well-formed file
// without pulling in a full build.
func TestGenerateProducesParseableGo(t *testing.T) {
	src := generateSrc(t, `
struct Point {
	1: required i32 x,
	2: required i32 y,
	3: optional string label
}

service Locator {
	Point find(1: string name)
	void ping()
}
`)
	_, err := format.Source([]byte(src))
	require.NoError(t, err, "generated source:\n%s", src)
}

func TestGeneratePackageName(t *testing.T) {
	src := generateSrc(t, `struct Empty {}`)
	assert.Contains(t, src, "package gentest")
}

func TestGenerateEnumRendersStringMethod(t *testing.T) {
	src := generateSrc(t, `enum Color { Red, Green, Blue = 5 }`)
	assert.Contains(t, src, "type Color int32")
	assert.Contains(t, src, "ColorRed Color = 0")
	assert.Contains(t, src, "ColorBlue Color = 5")
	assert.Contains(t, src, "func (v Color) String() string")
}

func TestGenerateStructFieldOptionality(t *testing.T) {
	src := generateSrc(t, `struct S {
		1: required string a,
		2: optional i32 b
	}`)
	// required base fields are bare values; optional base fields are pointers.
	assert.Contains(t, src, "A string")
	assert.Contains(t, src, "B *int32")
}

func TestGenerateServiceEmitsClientAndRegister(t *testing.T) {
	src := generateSrc(t, `service Greeter {
		string hello()
		string hello_name(1: string name)
	}`)
	assert.Contains(t, src, "type Greeter interface")
	assert.Contains(t, src, "func NewGreeterClient(c *rpc.Client) Greeter")
	assert.Contains(t, src, "func RegisterGreeter(handlers map[string]rpc.HandlerFunc, impl Greeter)")
	assert.Contains(t, src, `p.c.Call(ctx, "hello_name", args, &result)`)
	assert.Contains(t, src, `handlers["hello_name"]`)
	assert.Contains(t, src, `const dispatchKey = "Greeter::hello_name"`)
}

func TestGenerateOnewayMethodCallsCallOneway(t *testing.T) {
	src := generateSrc(t, `service Notifier {
		oneway void notify(1: string msg)
	}`)
	assert.Contains(t, src, "p.c.CallOneway(ctx,")
}

func TestGenerateRejectsUnion(t *testing.T) {
	doc, err := parse.Parse(`union U { 1: string a, 2: i32 b }`)
	require.NoError(t, err)
	_, err = Generate(doc, "x")
	require.Error(t, err)
	var notSupported *ErrNotSupported
	require.ErrorAs(t, err, &notSupported)
	assert.Equal(t, "union", notSupported.Kind)
}

func TestGenerateRejectsException(t *testing.T) {
	doc, err := parse.Parse(`exception E { 1: string message }`)
	require.NoError(t, err)
	_, err = Generate(doc, "x")
	require.Error(t, err)
	var notSupported *ErrNotSupported
	require.ErrorAs(t, err, &notSupported)
	assert.Equal(t, "exception", notSupported.Kind)
}

func TestGenerateRejectsListConst(t *testing.T) {
	doc, err := parse.Parse(`const list<i32> NUMS = {1, 2, 3}`)
	require.NoError(t, err)
	_, err = Generate(doc, "x")
	require.Error(t, err)
	var notSupported *ErrConstContainerNotSupported
	require.ErrorAs(t, err, &notSupported)
}

func TestGenerateScalarConst(t *testing.T) {
	src := generateSrc(t, `const i32 MaxRetries = 3
const string Greeting = "hi"`)
	assert.Contains(t, src, "var MaxRetries int32 = 3")
	assert.Contains(t, src, `var Greeting string = "hi"`)
}

func TestGenerateTypedef(t *testing.T) {
	src := generateSrc(t, `typedef i64 Timestamp`)
	assert.Contains(t, src, "type Timestamp = int64")
}

func TestGenerateContainerFields(t *testing.T) {
	src := generateSrc(t, `struct S {
		1: required list<string> names,
		2: required map<string, i32> counts
	}`)
	assert.Contains(t, src, "Names []string")
	assert.Contains(t, src, "Counts map[string]int32")
	assert.True(t, strings.Contains(src, "reflect"), "container fields require reflect for Equals")
}
