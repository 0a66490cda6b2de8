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

// serviceTemplateSrc renders one service's Interface, per-method Helper
// (Args/WrapResponse/UnwrapResponse funcs populated in init(), grounded on
// Store_Increment_Helper), a client proxy satisfying the Interface over
// rpc.Client, and a handler registration func bridging to rpc.Server's
// dispatch table. The Args/Result struct bodies themselves are folded
// into fileModel.Structs by buildService and render through the struct
// template, the same as any hand-declared value type.
const serviceTemplateSrc = `
// {{.Name}} is a generated service interface.
type {{.Name}} interface {
{{- range .Methods}}
	{{.GoName}}(ctx context.Context{{range .Args}}, {{.GoName}} {{.GoType}}{{end}}) ({{if .ReturnGoType}}{{.ReturnGoType}}, {{end}}error)
{{- end}}
}
{{$svc := .}}
{{range .Methods}}
// {{.HelperName}} holds the marshaling functions generated for
// {{$svc.Name}}.{{.GoName}}.
var {{.HelperName}} struct {
	Args           func({{range $i, $a := .Args}}{{if $i}}, {{end}}{{$a.GoName}} {{$a.GoType}}{{end}}) *{{.ArgsTypeName}}
	WrapResponse   func({{if .ReturnGoType}}success {{.ReturnGoType}}, {{end}}err error) (*{{.ResultTypeName}}, error)
	UnwrapResponse func(result *{{.ResultTypeName}}) ({{if .ReturnGoType}}{{.ReturnGoType}}, {{end}}error)
}

func init() {
	{{.HelperName}}.Args = func({{range $i, $a := .Args}}{{if $i}}, {{end}}{{$a.GoName}} {{$a.GoType}}{{end}}) *{{.ArgsTypeName}} {
		return &{{.ArgsTypeName}}{
{{- range .Args}}
			{{.GoName}}: {{.GoName}},
{{- end}}
		}
	}
	{{.HelperName}}.WrapResponse = func({{if .ReturnGoType}}success {{.ReturnGoType}}, {{end}}err error) (*{{.ResultTypeName}}, error) {
		if err != nil {
			return nil, err
		}
		return &{{.ResultTypeName}}{
{{- if .ReturnGoType}}
{{- if .ReturnIsBase}}
			Success: &success,
{{- else}}
			Success: success,
{{- end}}
{{- end}}
		}, nil
	}
	{{.HelperName}}.UnwrapResponse = func(result *{{.ResultTypeName}}) ({{if .ReturnGoType}}{{.ReturnGoType}}, {{end}}error) {
{{- if .ReturnGoType}}
{{- if or .ReturnIsBase .ReturnNilCheckable}}
		if result.Success != nil {
{{- if .ReturnIsBase}}
			return *result.Success, nil
{{- else}}
			return result.Success, nil
{{- end}}
		}
		var zero {{.ReturnGoType}}
		return zero, errors.New("{{$svc.Name}}.{{.GoName}}: missing result")
{{- else}}
		return result.Success, nil
{{- end}}
{{- else}}
		return nil
{{- end}}
	}
}
{{end}}
// New{{.Name}}Client builds a {{.Name}} that dispatches every call over c.
func New{{.Name}}Client(c *rpc.Client) {{.Name}} {
	return &_{{.Name}}Client{c: c}
}

type _{{.Name}}Client struct {
	c *rpc.Client
}
{{range .Methods}}
func (p *_{{$svc.Name}}Client) {{.GoName}}(ctx context.Context{{range .Args}}, {{.GoName}} {{.GoType}}{{end}}) ({{if .ReturnGoType}}{{.ReturnGoType}}, {{end}}error) {
	args := {{.HelperName}}.Args({{range $i, $a := .Args}}{{if $i}}, {{end}}{{$a.GoName}}{{end}})
{{- if .Oneway}}
	return p.c.CallOneway(ctx, "{{.ThriftName}}", args)
{{- else}}
	var result {{.ResultTypeName}}
	err := p.c.Call(ctx, "{{.ThriftName}}", args, &result)
	if err != nil {
{{- if .ReturnGoType}}
		var zero {{.ReturnGoType}}
		return zero, err
{{- else}}
		return err
{{- end}}
	}
	return {{.HelperName}}.UnwrapResponse(&result)
{{- end}}
}
{{end}}
// Register{{.Name}} adds every {{.Name}} method to handlers, keyed by the
// bare Thrift method name carried on the wire (spec.md §4.E.3's
// message_begin(method_name, ...) is unqualified, matching a reference
// Thrift peer's unmultiplexed dispatch) -- "{{.Name}}::Method" is used only
// as this func's own internal identifier for error context below, never
// sent over the wire and never a handlers map key.
func Register{{.Name}}(handlers map[string]rpc.HandlerFunc, impl {{.Name}}) {
{{- range .Methods}}
	handlers["{{.ThriftName}}"] = func(ctx context.Context, req wire.Value) *rpc.Future[wire.Value] {
		const dispatchKey = "{{$svc.Name}}::{{.ThriftName}}"
		fut := rpc.NewFuture[wire.Value]()
		var args {{.ArgsTypeName}}
		if err := args.FromWire(req); err != nil {
			fut.Resolve(wire.Value{}, fmt.Errorf("%s: %w", dispatchKey, err))
			return fut
		}
		{{if .ReturnGoType}}ret, err := impl.{{.GoName}}(ctx{{range .Args}}, args.Get{{.GoName}}(){{end}}){{else}}err := impl.{{.GoName}}(ctx{{range .Args}}, args.Get{{.GoName}}(){{end}}){{end}}
		result, wrapErr := {{.HelperName}}.WrapResponse({{if .ReturnGoType}}ret, {{end}}err)
		if wrapErr != nil {
			fut.Resolve(wire.Value{}, wrapErr)
			return fut
		}
		resultVal, toWireErr := result.ToWire()
		fut.Resolve(resultVal, toWireErr)
		return fut
	}
{{- end}}
}
`
