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
	"strconv"
	"strings"
)

// lexer scans Thrift source into tokens. Whitespace, block comments
// (/* ... */), and line comments (// ... and # ...) are insignificant and
// never produce tokens, per spec.md §4.A.
type lexer struct {
	src    string
	offset int
	line   int
	col    int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) pos() Pos {
	return Pos{Line: l.line, Col: l.col, Offset: l.offset}
}

func (l *lexer) peekByte() (byte, bool) {
	if l.offset >= len(l.src) {
		return 0, false
	}
	return l.src[l.offset], true
}

func (l *lexer) at(off int) (byte, bool) {
	i := l.offset + off
	if i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *lexer) advance() byte {
	b := l.src[l.offset]
	l.offset++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9') || b == '.'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// skipTrivia consumes whitespace and comments.
func (l *lexer) skipTrivia() {
	for {
		b, ok := l.peekByte()
		if !ok {
			return
		}
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.advance()
		case b == '#':
			for {
				b, ok := l.peekByte()
				if !ok || b == '\n' {
					break
				}
				l.advance()
			}
		case b == '/' && l.peekSlashSlash():
			for {
				b, ok := l.peekByte()
				if !ok || b == '\n' {
					break
				}
				l.advance()
			}
		case b == '/' && l.peekSlashStar():
			l.advance() // '/'
			l.advance() // '*'
			for {
				c, ok := l.peekByte()
				if !ok {
					return // unterminated: let EOF handling above deal with Incomplete
				}
				if c == '*' {
					if n, ok := l.at(1); ok && n == '/' {
						l.advance()
						l.advance()
						break
					}
				}
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) peekSlashSlash() bool {
	b, ok := l.at(1)
	return ok && b == '/'
}

func (l *lexer) peekSlashStar() bool {
	b, ok := l.at(1)
	return ok && b == '*'
}

// next returns the next token, or an EOF token when the source is
// exhausted.
func (l *lexer) next() (Token, error) {
	l.skipTrivia()

	start := l.pos()
	b, ok := l.peekByte()
	if !ok {
		return Token{Kind: EOF, Pos: start}, nil
	}

	switch {
	case isIdentStart(b):
		return l.lexIdent(start), nil
	case isDigit(b) || (b == '-' && l.startsNumber()) || (b == '+' && l.startsNumber()):
		return l.lexNumber(start)
	case b == '"' || b == '\'':
		return l.lexString(start)
	default:
		return l.lexPunct(start)
	}
}

func (l *lexer) startsNumber() bool {
	n, ok := l.at(1)
	return ok && (isDigit(n) || n == '.')
}

func (l *lexer) lexIdent(start Pos) Token {
	begin := l.offset
	for {
		b, ok := l.peekByte()
		if !ok || !isIdentPart(b) {
			break
		}
		l.advance()
	}
	text := l.src[begin:l.offset]
	return Token{Kind: Ident, Pos: start, Text: text}
}

func (l *lexer) lexNumber(start Pos) (Token, error) {
	begin := l.offset
	isDouble := false

	if b, ok := l.peekByte(); ok && (b == '-' || b == '+') {
		l.advance()
	}
	for {
		b, ok := l.peekByte()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	if b, ok := l.peekByte(); ok && b == '.' {
		// Tie-break: DoubleLit is preferred over IntLit when a '.' or
		// exponent marker is present, per spec.md §4.B.
		if n, ok := l.at(1); ok && isDigit(n) {
			isDouble = true
			l.advance() // '.'
			for {
				b, ok := l.peekByte()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		}
	}
	if b, ok := l.peekByte(); ok && (b == 'e' || b == 'E') {
		if n, ok := l.at(1); ok && (isDigit(n) || n == '+' || n == '-') {
			isDouble = true
			l.advance()
			if s, ok := l.peekByte(); ok && (s == '+' || s == '-') {
				l.advance()
			}
			for {
				b, ok := l.peekByte()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		}
	}

	text := l.src[begin:l.offset]
	if isDouble {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, &Error{Pos: start, Msg: "invalid double literal " + strconv.Quote(text)}
		}
		return Token{Kind: Double, Pos: start, Text: text, DoubleVal: v}, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &Error{Pos: start, Msg: "invalid integer literal " + strconv.Quote(text)}
	}
	return Token{Kind: Int, Pos: start, Text: text, IntVal: v}, nil
}

// lexString reads a single- or double-quoted string literal. No escape
// processing is performed: the raw bytes between matching quotes are the
// literal's value, per spec.md §4.A.
func (l *lexer) lexString(start Pos) (Token, error) {
	quote := l.advance()
	begin := l.offset
	for {
		b, ok := l.peekByte()
		if !ok {
			return Token{}, &Error{Pos: start, Msg: "unterminated string literal", Incomplete: true}
		}
		if b == quote {
			text := l.src[begin:l.offset]
			l.advance()
			return Token{Kind: String, Pos: start, Text: text}, nil
		}
		l.advance()
	}
}

// punctuation tokens recognized by the grammar: braces, parens, angle
// brackets, colon, comma, semicolon, equals, dot (outside identifiers).
const punctChars = "{}()<>:,;=."

func (l *lexer) lexPunct(start Pos) (Token, error) {
	b := l.advance()
	if !strings.ContainsRune(punctChars, rune(b)) {
		return Token{}, &Error{Pos: start, Msg: "unexpected character " + strconv.QuoteRune(rune(b))}
	}
	return Token{Kind: Punct, Pos: start, Text: string(b)}, nil
}
