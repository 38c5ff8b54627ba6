package lexer

import (
	"unicode/utf8"

	"github.com/HF-Foundation/HF-CLI/internal/source"
)

// Cursor walks file content rune by rune, tracking the zero-based line
// and column of the next character. Columns count runes, not bytes.
type Cursor struct {
	content []byte
	off     int
	loc     source.Location
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	return Cursor{content: f.Content}
}

// EOF reports whether the cursor has consumed all content.
func (c *Cursor) EOF() bool {
	return c.off >= len(c.content)
}

// Peek decodes the current rune without consuming it. At EOF it
// returns 0.
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	r, _ := utf8.DecodeRune(c.content[c.off:])
	return r
}

// Bump consumes and returns the current rune, advancing the location.
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r, size := utf8.DecodeRune(c.content[c.off:])
	c.off += size
	if r == '\n' {
		c.loc.Line++
		c.loc.Col = 0
	} else {
		c.loc.Col++
	}
	return r
}

// Loc returns the location of the next character. At EOF it is the
// position one past the last character.
func (c *Cursor) Loc() source.Location {
	return c.loc
}
