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

// Package gen renders a parsed Thrift document into Go source implementing
// the value types and service shapes spec.md §4.E describes: structs with
// wire.Value marshaling, enums, typedefs, consts, and per-method
// Args/Result/Helper triples plus a client proxy and server adapter for
// each service. It does not shell out to gofmt; callers that need
// formatted output should run the result through format.Source themselves.
package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"go.uber.org/thriftgen/ast"
)

// Generate renders doc as a single Go source file in package pkgName. It
// returns *ErrNotSupported the first time it encounters a union or
// exception definition, per spec.md §4.E's Non-goals; the parser still
// builds AST nodes for both, so callers can report the offending
// definition's name and kind without a second parse pass.
func Generate(doc *ast.Document, pkgName string) ([]byte, error) {
	model, err := buildModel(doc, pkgName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	return buf.Bytes(), nil
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"tmplEncodeField": tmplEncodeField,
	"tmplDecodeField": tmplDecodeField,
}).Parse(fileTemplateSrc))

const fileTemplateSrc = `// Code generated by thriftgen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
{{- if .Services}}
	"context"
{{- end}}
{{- if .NeedsErrors}}
	"errors"
{{- end}}
{{- if .NeedsReflect}}
	"reflect"
{{- end}}

	"go.uber.org/thriftgen/wire"
{{- if .Services}}
	"go.uber.org/thriftgen/rpc"
{{- end}}
)
{{range .Typedefs}}
// {{.Name}} is a typedef over {{.GoType}}.
type {{.Name}} = {{.GoType}}
{{end}}
{{range $enum := .Enums}}
// {{.Name}} is a generated enum type.
type {{.Name}} int32

const (
{{- range .Items}}
	{{$enum.Name}}{{.Name}} {{$enum.Name}} = {{.Value}}
{{- end}}
)

// String renders the symbolic name of a {{.Name}} value, or
// "{{.Name}}(N)" if it does not match a known variant.
func (v {{.Name}}) String() string {
	switch v {
{{- range .Items}}
	case {{$enum.Name}}{{.Name}}:
		return "{{.Name}}"
{{- end}}
	default:
		return fmt.Sprintf("{{.Name}}(%d)", int32(v))
	}
}
{{end}}
{{range .Consts}}
// {{.Name}} is a generated constant.
var {{.Name}} {{.GoType}} = {{.ValueGo}}
{{end}}
{{range .Structs}}
{{template "struct" .}}
{{end}}
{{range .Services}}
{{template "service" .}}
{{end}}
`

func init() {
	template.Must(fileTemplate.New("struct").Parse(structTemplateSrc))
	template.Must(fileTemplate.New("service").Parse(serviceTemplateSrc))
}
