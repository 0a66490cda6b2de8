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

// Command thriftc is the thin CLI collaborator spec.md §1 puts out of
// scope for the core: it reads a .thrift file, runs it through package
// parse and package gen, and writes one Go source file to an output
// directory. All argument parsing and file I/O live here, never in the
// core packages, so parse.Parse and gen.Generate stay usable as a library
// by anything that wants to host them differently (an editor plugin, a
// build-system rule, a test harness).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/thriftgen/gen"
	"go.uber.org/thriftgen/parse"
)

// targetLangTag is the Namespace.Lang this CLI looks for when choosing an
// output package name, per spec.md §6.
const targetLangTag = "go"

// defaultPackageName is used when the input document declares no
// `namespace go ...` header.
const defaultPackageName = "self"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "thriftc:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("thriftc", flag.ContinueOnError)
	outDir := fs.String("out", ".", "directory to write the generated Go file into")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: thriftc [-out dir] input.thrift")
	}
	inputPath := fs.Arg(0)

	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	doc, err := parse.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	pkgName := defaultPackageName
	if mod, ok := doc.Namespace(targetLangTag); ok {
		pkgName = mod
	}

	out, err := gen.Generate(doc, pkgName)
	if err != nil {
		return fmt.Errorf("generating code for %s: %w", inputPath, err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", *outDir, err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(*outDir, base+".go")
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	return nil
}
