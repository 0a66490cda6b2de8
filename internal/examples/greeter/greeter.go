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

// Package greeter is a hand-maintained stand-in for gen.Generate's output
// on the service
//
//	service Greeter {
//	    string hello()
//	    string hello_name(1: string name)
//	}
//
// It follows the shape gen.Generate renders for this service (see
// gen/struct_template.go and gen/service_template.go), the same way yarpc
// keeps internal/examples/thrift/hello as a hand-verified pin of what its
// own plugin emits. It is written by hand, not produced by running the
// generator, so nothing checks it against the templates' current output.
package greeter

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/thriftgen/rpc"
	"go.uber.org/thriftgen/wire"
)

// Greeter is the generated service interface.
type Greeter interface {
	Hello(ctx context.Context) (string, error)
	HelloName(ctx context.Context, name string) (string, error)
}

// Greeter_Hello_Args is a generated struct.
type Greeter_Hello_Args struct{}

// ToWire converts Greeter_Hello_Args into its wire representation.
func (v *Greeter_Hello_Args) ToWire() (wire.Value, error) {
	return wire.NewValueStruct(wire.Struct{Fields: nil}), nil
}

// FromWire replaces Greeter_Hello_Args's contents by decoding val.
func (v *Greeter_Hello_Args) FromWire(val wire.Value) error {
	return nil
}

// String renders Greeter_Hello_Args for debugging and test failure output.
func (v *Greeter_Hello_Args) String() string {
	if v == nil {
		return "<nil>"
	}
	return "Greeter_Hello_Args{}"
}

// Equals reports whether v and rhs hold the same field values.
func (v *Greeter_Hello_Args) Equals(rhs *Greeter_Hello_Args) bool {
	if v == nil || rhs == nil {
		return v == rhs
	}
	return true
}

// Greeter_Hello_Result is a generated struct.
type Greeter_Hello_Result struct {
	Success *string
}

// GetSuccess returns the value of Success, or the zero value if unset.
func (v *Greeter_Hello_Result) GetSuccess() string {
	if v.Success == nil {
		var z string
		return z
	}
	return *v.Success
}

// ToWire converts Greeter_Hello_Result into its wire representation.
func (v *Greeter_Hello_Result) ToWire() (wire.Value, error) {
	var fields []wire.Field
	if v.Success != nil {
		fields = append(fields, wire.Field{ID: 0, Value: wire.NewValueString(*v.Success)})
	}
	return wire.NewValueStruct(wire.Struct{Fields: fields}), nil
}

// FromWire replaces Greeter_Hello_Result's contents by decoding val.
func (v *Greeter_Hello_Result) FromWire(val wire.Value) error {
	for _, f := range val.GetStruct().Fields {
		switch f.ID {
		case 0:
			x := f.Value.GetString()
			v.Success = &x
		}
	}
	return nil
}

// String renders Greeter_Hello_Result for debugging and test failure output.
func (v *Greeter_Hello_Result) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Greeter_Hello_Result{ Success: %v }", v.Success)
}

// Equals reports whether v and rhs hold the same field values.
func (v *Greeter_Hello_Result) Equals(rhs *Greeter_Hello_Result) bool {
	if v == nil || rhs == nil {
		return v == rhs
	}
	if (v.Success == nil) != (rhs.Success == nil) {
		return false
	}
	if v.Success != nil && *v.Success != *rhs.Success {
		return false
	}
	return true
}

// Greeter_HelloName_Args is a generated struct.
type Greeter_HelloName_Args struct {
	Name string
}

// GetName returns the value of Name.
func (v *Greeter_HelloName_Args) GetName() string {
	return v.Name
}

// ToWire converts Greeter_HelloName_Args into its wire representation.
func (v *Greeter_HelloName_Args) ToWire() (wire.Value, error) {
	var fields []wire.Field
	fields = append(fields, wire.Field{ID: 1, Value: wire.NewValueString(v.Name)})
	return wire.NewValueStruct(wire.Struct{Fields: fields}), nil
}

// FromWire replaces Greeter_HelloName_Args's contents by decoding val. It
// reports an error if a required field's ID never appears among val's
// fields.
func (v *Greeter_HelloName_Args) FromWire(val wire.Value) error {
	var present1 bool
	for _, f := range val.GetStruct().Fields {
		switch f.ID {
		case 1:
			v.Name = f.Value.GetString()
			present1 = true
		}
	}
	if !present1 {
		return fmt.Errorf("field %d (%s) of Greeter_HelloName_Args is required", 1, "Name")
	}
	return nil
}

// String renders Greeter_HelloName_Args for debugging and test failure output.
func (v *Greeter_HelloName_Args) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Greeter_HelloName_Args{ Name: %v }", v.Name)
}

// Equals reports whether v and rhs hold the same field values.
func (v *Greeter_HelloName_Args) Equals(rhs *Greeter_HelloName_Args) bool {
	if v == nil || rhs == nil {
		return v == rhs
	}
	if v.Name != rhs.Name {
		return false
	}
	return true
}

// Greeter_HelloName_Result is a generated struct.
type Greeter_HelloName_Result struct {
	Success *string
}

// GetSuccess returns the value of Success, or the zero value if unset.
func (v *Greeter_HelloName_Result) GetSuccess() string {
	if v.Success == nil {
		var z string
		return z
	}
	return *v.Success
}

// ToWire converts Greeter_HelloName_Result into its wire representation.
func (v *Greeter_HelloName_Result) ToWire() (wire.Value, error) {
	var fields []wire.Field
	if v.Success != nil {
		fields = append(fields, wire.Field{ID: 0, Value: wire.NewValueString(*v.Success)})
	}
	return wire.NewValueStruct(wire.Struct{Fields: fields}), nil
}

// FromWire replaces Greeter_HelloName_Result's contents by decoding val.
func (v *Greeter_HelloName_Result) FromWire(val wire.Value) error {
	for _, f := range val.GetStruct().Fields {
		switch f.ID {
		case 0:
			x := f.Value.GetString()
			v.Success = &x
		}
	}
	return nil
}

// String renders Greeter_HelloName_Result for debugging and test failure output.
func (v *Greeter_HelloName_Result) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Greeter_HelloName_Result{ Success: %v }", v.Success)
}

// Equals reports whether v and rhs hold the same field values.
func (v *Greeter_HelloName_Result) Equals(rhs *Greeter_HelloName_Result) bool {
	if v == nil || rhs == nil {
		return v == rhs
	}
	if (v.Success == nil) != (rhs.Success == nil) {
		return false
	}
	if v.Success != nil && *v.Success != *rhs.Success {
		return false
	}
	return true
}

// Greeter_Hello_Helper holds the marshaling functions generated for
// Greeter.Hello.
var Greeter_Hello_Helper struct {
	Args           func() *Greeter_Hello_Args
	WrapResponse   func(success string, err error) (*Greeter_Hello_Result, error)
	UnwrapResponse func(result *Greeter_Hello_Result) (string, error)
}

// Greeter_HelloName_Helper holds the marshaling functions generated for
// Greeter.HelloName.
var Greeter_HelloName_Helper struct {
	Args           func(name string) *Greeter_HelloName_Args
	WrapResponse   func(success string, err error) (*Greeter_HelloName_Result, error)
	UnwrapResponse func(result *Greeter_HelloName_Result) (string, error)
}

func init() {
	Greeter_Hello_Helper.Args = func() *Greeter_Hello_Args {
		return &Greeter_Hello_Args{}
	}
	Greeter_Hello_Helper.WrapResponse = func(success string, err error) (*Greeter_Hello_Result, error) {
		if err != nil {
			return nil, err
		}
		return &Greeter_Hello_Result{Success: &success}, nil
	}
	Greeter_Hello_Helper.UnwrapResponse = func(result *Greeter_Hello_Result) (string, error) {
		if result.Success != nil {
			return *result.Success, nil
		}
		var zero string
		return zero, errors.New("Greeter.Hello: missing result")
	}

	Greeter_HelloName_Helper.Args = func(name string) *Greeter_HelloName_Args {
		return &Greeter_HelloName_Args{Name: name}
	}
	Greeter_HelloName_Helper.WrapResponse = func(success string, err error) (*Greeter_HelloName_Result, error) {
		if err != nil {
			return nil, err
		}
		return &Greeter_HelloName_Result{Success: &success}, nil
	}
	Greeter_HelloName_Helper.UnwrapResponse = func(result *Greeter_HelloName_Result) (string, error) {
		if result.Success != nil {
			return *result.Success, nil
		}
		var zero string
		return zero, errors.New("Greeter.HelloName: missing result")
	}
}

// NewGreeterClient builds a Greeter that dispatches every call over c.
func NewGreeterClient(c *rpc.Client) Greeter {
	return &_GreeterClient{c: c}
}

type _GreeterClient struct {
	c *rpc.Client
}

func (p *_GreeterClient) Hello(ctx context.Context) (string, error) {
	args := Greeter_Hello_Helper.Args()
	var result Greeter_Hello_Result
	if err := p.c.Call(ctx, "hello", args, &result); err != nil {
		var zero string
		return zero, err
	}
	return Greeter_Hello_Helper.UnwrapResponse(&result)
}

func (p *_GreeterClient) HelloName(ctx context.Context, name string) (string, error) {
	args := Greeter_HelloName_Helper.Args(name)
	var result Greeter_HelloName_Result
	if err := p.c.Call(ctx, "hello_name", args, &result); err != nil {
		var zero string
		return zero, err
	}
	return Greeter_HelloName_Helper.UnwrapResponse(&result)
}

// RegisterGreeter adds every Greeter method to handlers, keyed by the bare
// Thrift method name carried on the wire (spec.md §4.E.3's
// message_begin(method_name, ...) is unqualified, matching a reference
// Thrift peer's unmultiplexed dispatch) -- "Greeter::method" is used only as
// this func's own internal identifier for error context below, never sent
// over the wire and never a handlers map key.
func RegisterGreeter(handlers map[string]rpc.HandlerFunc, impl Greeter) {
	handlers["hello"] = func(ctx context.Context, req wire.Value) *rpc.Future[wire.Value] {
		const dispatchKey = "Greeter::hello"
		fut := rpc.NewFuture[wire.Value]()
		var args Greeter_Hello_Args
		if err := args.FromWire(req); err != nil {
			fut.Resolve(wire.Value{}, fmt.Errorf("%s: %w", dispatchKey, err))
			return fut
		}
		ret, err := impl.Hello(ctx)
		result, wrapErr := Greeter_Hello_Helper.WrapResponse(ret, err)
		if wrapErr != nil {
			fut.Resolve(wire.Value{}, wrapErr)
			return fut
		}
		resultVal, toWireErr := result.ToWire()
		fut.Resolve(resultVal, toWireErr)
		return fut
	}

	handlers["hello_name"] = func(ctx context.Context, req wire.Value) *rpc.Future[wire.Value] {
		const dispatchKey = "Greeter::hello_name"
		fut := rpc.NewFuture[wire.Value]()
		var args Greeter_HelloName_Args
		if err := args.FromWire(req); err != nil {
			fut.Resolve(wire.Value{}, fmt.Errorf("%s: %w", dispatchKey, err))
			return fut
		}
		ret, err := impl.HelloName(ctx, args.GetName())
		result, wrapErr := Greeter_HelloName_Helper.WrapResponse(ret, err)
		if wrapErr != nil {
			fut.Resolve(wire.Value{}, wrapErr)
			return fut
		}
		resultVal, toWireErr := result.ToWire()
		fut.Resolve(resultVal, toWireErr)
		return fut
	}
}
