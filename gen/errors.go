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

import "fmt"

// ErrNotSupported is returned when the input document contains a
// definition the generator deliberately refuses to emit code for.
type ErrNotSupported struct {
	Kind string // "union" or "exception"
	Name string
}

func (e *ErrNotSupported) Error() string {
	return fmt.Sprintf("gen: %s %q is not supported by the generator", e.Kind, e.Name)
}

// ErrUnsupportedType is returned when a field's type tree uses a shape the
// generator's recursive-container support does not reach (see gotype.go:
// base types, Ident, and one level of list/set/map nesting over those).
type ErrUnsupportedType struct {
	Type fmt.Stringer
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("gen: unsupported field type %v", e.Type)
}

// ErrConstContainerNotSupported is returned for a `const` definition whose
// value is a list or map literal. The parser accepts and stores these
// (ast.ConstKindList/ConstKindMap); only code generation refuses them.
type ErrConstContainerNotSupported struct {
	Name string
}

func (e *ErrConstContainerNotSupported) Error() string {
	return fmt.Sprintf("gen: const %q has a list/map value, which is not supported by the generator", e.Name)
}
