package python

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/viant/pylinter/inspector/syntax"
)

// cursor represents a position in the source being tokenized
type cursor struct {
	src       []byte
	off       int
	line      int
	lineStart int
}

func (c *cursor) eof() bool {
	return c.off >= len(c.src)
}

// peek returns current byte or 0 at EOF
func (c *cursor) peek() byte {
	return c.peekAt(0)
}

func (c *cursor) peekAt(delta int) byte {
	if c.off+delta >= len(c.src) {
		return 0
	}
	return c.src[c.off+delta]
}

func (c *cursor) peekRune() rune {
	r, _ := c.peekRuneSize()
	return r
}

func (c *cursor) peekRuneSize() (rune, int) {
	if c.eof() {
		return utf8.RuneError, 0
	}
	if ch := c.src[c.off]; ch < utf8.RuneSelf {
		return rune(ch), 1
	}
	return utf8.DecodeRune(c.src[c.off:])
}

func (c *cursor) hasPrefix(text string) bool {
	return bytes.HasPrefix(c.src[c.off:], []byte(text))
}

// nextLine must be called once the cursor moved past a line break
func (c *cursor) nextLine() {
	c.line++
	c.lineStart = c.off
}

// location returns current line and 1-based column counted in runes
func (c *cursor) location() syntax.Location {
	return syntax.NewLocation(c.line, utf8.RuneCount(c.src[c.lineStart:c.off])+1)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return r != utf8.RuneError && unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}

func isIdentContinue(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStart(r) || (r >= '0' && r <= '9')
	}
	return isIdentStart(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}
