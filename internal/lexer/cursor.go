package lexer

import (
	"fortio.org/safecast"

	"github.com/LetsZero/zero-compiler/internal/source"
)

// cursor tracks a byte position within a single source.File.
type cursor struct {
	file  *source.File
	off   uint32
	limit uint32
}

func newCursor(f *source.File) cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		// A file this large cannot be indexed by uint32 offsets; treat it
		// as empty rather than panicking on attacker-controlled input.
		limit = 0
	}
	return cursor{file: f, off: 0, limit: limit}
}

func (c *cursor) atEnd() bool { return c.off >= c.limit }

// peek returns the current byte, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.file.Content[c.off]
}

// peekAt returns the byte n positions ahead of the current one, or 0.
func (c *cursor) peekAt(n uint32) byte {
	if c.off+n >= c.limit {
		return 0
	}
	return c.file.Content[c.off+n]
}

// bump consumes and returns the current byte, or 0 at end of input.
func (c *cursor) bump() byte {
	if c.atEnd() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	return b
}

// mark is a saved cursor position, used to compute the span of a token.
type mark uint32

func (c *cursor) mark() mark { return mark(c.off) }

func (c *cursor) spanFrom(m mark) source.Span {
	return source.Span{File: c.file.ID, Start: uint32(m), End: c.off}
}
