package lexer

import (
	"unicode/utf8"

	"github.com/takoeight0821/shade/token"
)

// Cursor walks a source string rune by rune and keeps its location.
// It never moves backwards.
type Cursor struct {
	source string
	loc    token.Location
}

func NewCursor(source string) *Cursor {
	return &Cursor{
		source: source,
		loc:    token.Location{Offset: 0, Line: 1, Column: 1},
	}
}

func (c *Cursor) AtEnd() bool {
	return c.loc.Offset >= len(c.source)
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.loc.Offset:])

	return r, true
}

// Advance consumes the next rune.
func (c *Cursor) Advance() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, width := utf8.DecodeRuneInString(c.source[c.loc.Offset:])
	c.loc.Offset += width
	if r == '\n' {
		c.loc.Line++
		c.loc.Column = 1
	} else {
		c.loc.Column++
	}

	return r, true
}

// AdvanceIf consumes the next rune only if pred holds for it.
func (c *Cursor) AdvanceIf(pred func(rune) bool) (rune, bool) {
	r, ok := c.Peek()
	if !ok || !pred(r) {
		return 0, false
	}

	return c.Advance()
}

func (c *Cursor) SkipWhile(pred func(rune) bool) {
	for {
		if _, ok := c.AdvanceIf(pred); !ok {
			return
		}
	}
}

func (c *Cursor) Location() token.Location {
	return c.loc
}

// SpanFrom returns the span between start and the current location.
func (c *Cursor) SpanFrom(start token.Location) token.Span {
	return token.Span{Start: start, End: c.loc}
}
