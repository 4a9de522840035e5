package lexer

import "unicode/utf8"

// eof is the sentinel held in cursor.ch once the source is exhausted.
const eof rune = -1

// cursor walks the source one rune at a time and keeps line/column in step.
// ch is always the rune at pos, or eof when pos == len(src).
type cursor struct {
	src   string
	pos   int
	line  int
	col   int
	ch    rune
	width int
}

func (c *cursor) reset(src string) {
	c.src = src
	c.pos = 0
	c.line = 1
	c.col = 1
	c.load()
}

func (c *cursor) load() {
	if c.pos >= len(c.src) {
		c.ch, c.width = eof, 0
		return
	}
	c.ch, c.width = utf8.DecodeRuneInString(c.src[c.pos:])
}

// advance consumes the current rune. It is a no-op at end of input.
func (c *cursor) advance() {
	if c.ch == eof {
		return
	}
	if c.ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	c.pos += c.width
	c.load()
}

// peek returns the rune offset positions ahead of the current one without
// consuming anything. Out-of-range offsets yield eof.
func (c *cursor) peek(offset int) rune {
	if offset < 0 {
		return eof
	}
	r, p := c.ch, c.pos+c.width
	for ; offset > 0; offset-- {
		if p >= len(c.src) {
			return eof
		}
		var w int
		r, w = utf8.DecodeRuneInString(c.src[p:])
		p += w
	}
	return r
}

func (c *cursor) mark() Position {
	return Position{Offset: c.pos, Line: c.line, Column: c.col}
}
