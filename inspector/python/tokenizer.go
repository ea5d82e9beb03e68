package python

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/viant/pylinter/inspector/syntax"
)

const tabSize = 8

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Tokenize breaks Python source into a flat token stream, following the tokenize module token classes
func Tokenize(src []byte) ([]syntax.Token, error) {
	t := newTokenizer(src)
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.tokens, nil
}

type tokenizer struct {
	cursor
	tokens      []syntax.Token
	indents     []int
	brackets    []byte
	atLineStart bool
	lineHasCode bool
	continued   bool
}

func newTokenizer(src []byte) *tokenizer {
	var offset int
	if bytes.HasPrefix(src, utf8BOM) {
		offset = len(utf8BOM)
	}
	return &tokenizer{
		cursor:      cursor{src: src, off: offset, lineStart: offset, line: 1},
		indents:     []int{0},
		atLineStart: true,
	}
}

func (t *tokenizer) run() error {
	for {
		if t.atLineStart && len(t.brackets) == 0 {
			if err := t.indentation(); err != nil {
				return err
			}
		}
		if t.eof() {
			break
		}
		ch := t.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\f':
			t.off++
		case ch == '#':
			t.scanComment()
		case ch == '\n' || ch == '\r':
			t.scanNewline()
		case ch == '\\':
			if err := t.scanContinuation(); err != nil {
				return err
			}
		case isIdentStart(t.peekRune()):
			if err := t.scanNameOrString(); err != nil {
				return err
			}
		case isDigit(ch) || (ch == '.' && isDigit(t.peekAt(1))):
			t.scanNumber()
		case ch == '"' || ch == '\'':
			if err := t.scanString(t.off, t.location()); err != nil {
				return err
			}
		default:
			if err := t.scanOperator(); err != nil {
				return err
			}
		}
	}
	return t.finish()
}

// indentation measures leading whitespace of a logical line and emits INDENT/DEDENT tokens
func (t *tokenizer) indentation() error {
	t.atLineStart = false
	start := t.off
	column := 0
loop:
	for !t.eof() {
		switch t.peek() {
		case ' ':
			column++
		case '\t':
			column = (column/tabSize + 1) * tabSize
		case '\f':
			column = 0
		default:
			break loop
		}
		t.off++
	}
	if t.eof() || t.peek() == '#' || t.peek() == '\n' || t.peek() == '\r' {
		return nil // blank or comment-only line does not change indentation
	}
	location := syntax.NewLocation(t.line, 1)
	if top := t.indents[len(t.indents)-1]; column > top {
		t.indents = append(t.indents, column)
		t.emit(syntax.Indent, string(t.src[start:t.off]), location)
		return nil
	}
	for column < t.indents[len(t.indents)-1] {
		t.indents = t.indents[:len(t.indents)-1]
		t.emit(syntax.Dedent, "", t.location())
	}
	if column != t.indents[len(t.indents)-1] {
		return t.newError(t.location(), "unindent does not match any outer indentation level")
	}
	return nil
}

func (t *tokenizer) scanComment() {
	location := t.location()
	start := t.off
	for !t.eof() && t.peek() != '\n' && t.peek() != '\r' {
		t.off++
	}
	t.emit(syntax.Comment, string(t.src[start:t.off]), location)
}

func (t *tokenizer) scanNewline() {
	location := t.location()
	start := t.off
	if t.peek() == '\r' && t.peekAt(1) == '\n' {
		t.off++
	}
	t.off++
	kind := syntax.NL
	if len(t.brackets) == 0 && t.lineHasCode {
		kind = syntax.Newline
		t.lineHasCode = false
	}
	t.emit(kind, string(t.src[start:t.off]), location)
	t.nextLine()
	if len(t.brackets) == 0 {
		t.atLineStart = true
	}
}

func (t *tokenizer) scanContinuation() error {
	location := t.location()
	t.off++
	switch {
	case t.peek() == '\r' && t.peekAt(1) == '\n':
		t.off += 2
	case t.peek() == '\n' || t.peek() == '\r':
		t.off++
	case t.eof():
		return t.newError(location, "unexpected EOF after line continuation character")
	default:
		return t.newError(location, "unexpected character after line continuation character")
	}
	t.nextLine()
	t.continued = true
	return nil
}

func (t *tokenizer) scanNameOrString() error {
	location := t.location()
	start := t.off
	for !t.eof() {
		r, size := t.peekRuneSize()
		if !isIdentContinue(r) {
			break
		}
		t.off += size
	}
	text := string(t.src[start:t.off])
	if isStringPrefix(text) && (t.peek() == '"' || t.peek() == '\'') {
		return t.scanString(start, location)
	}
	t.emit(syntax.Name, text, location)
	return nil
}

func (t *tokenizer) scanNumber() {
	location := t.location()
	start := t.off
	if t.peek() == '0' && strings.ContainsRune("xXoObB", rune(t.peekAt(1))) {
		t.off += 2
		for !t.eof() && (isHexDigit(t.peek()) || t.peek() == '_') {
			t.off++
		}
	} else {
		t.digits()
		if t.peek() == '.' {
			t.off++
			t.digits()
		}
		if (t.peek() == 'e' || t.peek() == 'E') && (isDigit(t.peekAt(1)) ||
			((t.peekAt(1) == '+' || t.peekAt(1) == '-') && isDigit(t.peekAt(2)))) {
			t.off += 2
			t.digits()
		}
	}
	if t.peek() == 'j' || t.peek() == 'J' || t.peek() == 'l' || t.peek() == 'L' {
		t.off++
	}
	t.emit(syntax.Number, string(t.src[start:t.off]), location)
}

func (t *tokenizer) digits() {
	for !t.eof() && (isDigit(t.peek()) || t.peek() == '_') {
		t.off++
	}
}

// scanString scans a string literal whose prefix (if any) starts at start, t.off is at the opening quote
func (t *tokenizer) scanString(start int, location syntax.Location) error {
	quote := t.peek()
	triple := t.peekAt(1) == quote && t.peekAt(2) == quote
	if triple {
		t.off += 3
	} else {
		t.off++
	}
	for {
		if t.eof() {
			if triple {
				return t.newError(location, "unterminated triple-quoted string literal")
			}
			return t.newError(location, "unterminated string literal")
		}
		ch := t.peek()
		switch {
		case ch == '\\':
			t.off++
			if t.eof() {
				continue
			}
			if t.peek() == '\r' && t.peekAt(1) == '\n' {
				t.off++
			}
			if t.peek() == '\n' || t.peek() == '\r' {
				t.off++
				t.nextLine()
				continue
			}
			t.off++
		case ch == '\n' || ch == '\r':
			if !triple {
				return t.newError(location, "unterminated string literal")
			}
			if ch == '\r' && t.peekAt(1) == '\n' {
				t.off++
			}
			t.off++
			t.nextLine()
		case ch == quote:
			if !triple {
				t.off++
				t.emit(syntax.String, string(t.src[start:t.off]), location)
				return nil
			}
			if t.peekAt(1) == quote && t.peekAt(2) == quote {
				t.off += 3
				t.emit(syntax.String, string(t.src[start:t.off]), location)
				return nil
			}
			t.off++
		default:
			t.off++
		}
	}
}

func (t *tokenizer) scanOperator() error {
	location := t.location()
	for _, op := range operators {
		if !t.hasPrefix(op) {
			continue
		}
		switch op {
		case "(", "[", "{":
			t.brackets = append(t.brackets, op[0])
		case ")", "]", "}":
			if len(t.brackets) == 0 {
				return t.newError(location, fmt.Sprintf("unmatched '%s'", op))
			}
			open := t.brackets[len(t.brackets)-1]
			if closing[open] != op[0] {
				return t.newError(location, fmt.Sprintf("closing parenthesis '%s' does not match opening parenthesis '%c'", op, open))
			}
			t.brackets = t.brackets[:len(t.brackets)-1]
		}
		t.off += len(op)
		t.emit(syntax.Operator, op, location)
		return nil
	}
	r := t.peekRune()
	return t.newError(location, fmt.Sprintf("invalid character '%c' (U+%04X)", r, r))
}

func (t *tokenizer) finish() error {
	if len(t.brackets) > 0 || t.continued {
		return t.newError(t.location(), "EOF in multi-line statement")
	}
	if t.lineHasCode {
		t.emit(syntax.Newline, "", t.location())
		t.lineHasCode = false
	}
	for len(t.indents) > 1 {
		t.indents = t.indents[:len(t.indents)-1]
		t.emit(syntax.Dedent, "", t.location())
	}
	t.emit(syntax.EndMarker, "", t.location())
	return nil
}

func (t *tokenizer) emit(kind syntax.TokenKind, text string, location syntax.Location) {
	token := syntax.Token{Kind: kind, Text: text, Location: location}
	if token.IsSignificant() {
		t.lineHasCode = true
		t.continued = false
	}
	t.tokens = append(t.tokens, token)
}

func (t *tokenizer) newError(location syntax.Location, reason string) error {
	return &syntax.TokenizeError{Location: location, Reason: reason}
}

var closing = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// operators ordered longest first
var operators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "->", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=", ":=",
	"+", "-", "*", "/", "%", "@", "&", "|", "^", "~", "<", ">", "(", ")", "[", "]", "{", "}", ",", ":", ";", ".", "=",
}

func isStringPrefix(text string) bool {
	switch strings.ToLower(text) {
	case "r", "u", "b", "f", "br", "rb", "fr", "rf":
		return true
	}
	return false
}
