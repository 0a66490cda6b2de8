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
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	l := newLexer(src)
	var toks []Token
	for {
		tok, err := l.next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestLexerIdentifiers(t *testing.T) {
	toks := lexAll(t, "foo Bar_1 a.b.c")
	require.Len(t, toks, 4) // 3 idents + EOF
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Text)
	assert.Equal(t, "Bar_1", toks[1].Text)
	assert.Equal(t, "a.b.c", toks[2].Text)
}

func TestLexerIntAndDouble(t *testing.T) {
	toks := lexAll(t, "42 -7 3.14 2e10 -1.5e-3")
	require.Len(t, toks, 6)
	assert.Equal(t, Int, toks[0].Kind)
	assert.EqualValues(t, 42, toks[0].IntVal)
	assert.Equal(t, Int, toks[1].Kind)
	assert.EqualValues(t, -7, toks[1].IntVal)
	assert.Equal(t, Double, toks[2].Kind)
	assert.InDelta(t, 3.14, toks[2].DoubleVal, 1e-9)
	assert.Equal(t, Double, toks[3].Kind)
	assert.InDelta(t, 2e10, toks[3].DoubleVal, 1)
	assert.Equal(t, Double, toks[4].Kind)
	assert.InDelta(t, -1.5e-3, toks[4].DoubleVal, 1e-9)
}

func TestLexerStrings(t *testing.T) {
	toks := lexAll(t, `"hello" 'world'`)
	require.Len(t, toks, 3)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Text)
	assert.Equal(t, String, toks[1].Kind)
	assert.Equal(t, "world", toks[1].Text)
}

func TestLexerComments(t *testing.T) {
	toks := lexAll(t, "foo // a comment\nbar # another\nbaz /* block\ncomment */ qux")
	require.Len(t, toks, 5)
	assert.Equal(t, "foo", toks[0].Text)
	assert.Equal(t, "bar", toks[1].Text)
	assert.Equal(t, "baz", toks[2].Text)
	assert.Equal(t, "qux", toks[3].Text)
}

func TestLexerPunctuation(t *testing.T) {
	toks := lexAll(t, "{ } ( ) < > : , ; = .")
	require.Len(t, toks, 12)
	for _, tok := range toks[:11] {
		assert.Equal(t, Punct, tok.Kind)
	}
}

func TestLexerUnterminatedStringIsIncomplete(t *testing.T) {
	l := newLexer(`"unterminated`)
	_, err := l.next()
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.True(t, perr.Incomplete)
}
