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

// structTemplateSrc renders one value type's struct declaration plus its
// ToWire/FromWire/String/Equals/Get<Field> methods, grounded on the shape
// thriftrw-plugin-yarpc emits for internal/tests/atomic's Store_Increment
// request and response types.
const structTemplateSrc = `
// {{.Name}} is a generated struct.
type {{.Name}} struct {
{{- range .Fields}}
	{{.GoName}} {{.DeclType}}
{{- end}}
}
{{$s := .}}
{{range .Fields}}
// Get{{.GoName}} returns the value of {{.GoName}}{{if and .Optional .Type.IsBase}}, or the zero value if unset{{end}}.
func (v *{{$s.Name}}) Get{{.GoName}}() {{.GoType}} {
{{- if and .Optional .Type.IsBase}}
	if v.{{.GoName}} == nil {
		var z {{.GoType}}
		return z
	}
	return *v.{{.GoName}}
{{- else}}
	return v.{{.GoName}}
{{- end}}
}
{{end}}
// ToWire converts {{.Name}} into its wire representation.
func (v *{{.Name}}) ToWire() (wire.Value, error) {
	var fields []wire.Field
{{- range .Fields}}
{{- if and .Optional .Type.IsBase}}
	if v.{{.GoName}} != nil {
		fields = append(fields, wire.Field{ID: {{.ID}}, Value: {{tmplEncodeField .}}})
	}
{{- else}}
	fields = append(fields, wire.Field{ID: {{.ID}}, Value: {{tmplEncodeField .}}})
{{- end}}
{{- end}}
	return wire.NewValueStruct(wire.Struct{Fields: fields}), nil
}

// FromWire replaces {{.Name}}'s contents by decoding val. It reports an
// error if a required field's ID never appears among val's fields.
func (v *{{.Name}}) FromWire(val wire.Value) error {
{{- range .Fields}}
{{- if not .Optional}}
	var _present{{.ID}} bool
{{- end}}
{{- end}}
	for _, f := range val.GetStruct().Fields {
		switch f.ID {
{{- range .Fields}}
		case {{.ID}}:
{{- if and .Optional .Type.IsBase}}
			x := {{tmplDecodeField .}}
			v.{{.GoName}} = &x
{{- else}}
			v.{{.GoName}} = {{tmplDecodeField .}}
{{- end}}
{{- if not .Optional}}
			_present{{.ID}} = true
{{- end}}
{{- end}}
		}
	}
{{- range .Fields}}
{{- if not .Optional}}
	if !_present{{.ID}} {
		return fmt.Errorf("field %d (%s) of {{$s.Name}} is required", {{.ID}}, "{{.GoName}}")
	}
{{- end}}
{{- end}}
	return nil
}

// String renders {{.Name}} for debugging and test failure output.
func (v *{{.Name}}) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{{.Name}}{ {{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.GoName}}: %v{{end}} }"{{range .Fields}}, v.{{.GoName}}{{end}})
}

// Equals reports whether v and rhs hold the same field values.
func (v *{{.Name}}) Equals(rhs *{{.Name}}) bool {
	if v == nil || rhs == nil {
		return v == rhs
	}
{{- range .Fields}}
{{- if and .Optional .Type.IsBase}}
	if (v.{{.GoName}} == nil) != (rhs.{{.GoName}} == nil) {
		return false
	}
	if v.{{.GoName}} != nil && *v.{{.GoName}} != *rhs.{{.GoName}} {
		return false
	}
{{- else if .Type.IsBase}}
	if v.{{.GoName}} != rhs.{{.GoName}} {
		return false
	}
{{- else}}
	if !reflect.DeepEqual(v.{{.GoName}}, rhs.{{.GoName}}) {
		return false
	}
{{- end}}
{{- end}}
	return true
}
`
