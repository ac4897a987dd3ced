package parsing

import (
	"bytes"

	"github.com/owl-domain/markdown"
	"github.com/owl-domain/markdown/internal/grapheme"
	"github.com/owl-domain/markdown/internal/pool"
)

// Scanner is the cursor contract shared by ByteScanner and StringScanner.
// Both implementations behave identically for the same input.
//
// Probing past either end of the input is never an error: peeks report false
// or return the empty element and advancing clamps to the end.
type Scanner interface {
	// Current is the element at relative offset 0.
	Current() TextElement
	// Next is the element at relative offset 1.
	Next() TextElement
	Position() markdown.Position
	IsAtEnd() bool
	HasRemaining() bool
	// Len is the total number of elements in the input.
	Len() int
	// Remaining is the number of elements at and after the cursor.
	Remaining() int

	// Advance moves forward one element.
	Advance()
	// AdvanceBy moves forward min(amount, Remaining()) elements.
	// amount below 1 is an error even at the end of input.
	AdvanceBy(amount int) error

	// TryPeek returns the element at offset relative to the cursor.
	// Negative offsets look back.
	TryPeek(offset int) (TextElement, bool)
	Peek(offset int) TextElement

	// Match advances one element if the current element equals e.
	Match(e TextElement) bool
	MatchRune(r rune) bool
	// MatchString advances past s if every cluster of s equals the elements
	// starting at the cursor. On mismatch the cursor does not move.
	MatchString(s string) bool
	MatchBytes(b []byte) bool

	// MarkNewLine must follow consuming a line terminator. It bumps the line,
	// resets the column and leaves the offset alone.
	MarkNewLine()

	// Close releases pooled memory. Closing twice is a no-op.
	Close() error
}

// cursor holds the lookup-table walk that both backends share.
type cursor struct {
	text   []byte
	lookup []int
	index  int
	origin markdown.Position
	pos    markdown.Position
	rental *pool.Rental
	closed bool
}

// newCursor builds the lookup table into table, which must have
// len(table) >= len(text). rental, if any, owns table.
func newCursor(text []byte, table []int, rental *pool.Rental, origin markdown.Position) cursor {
	return cursor{
		text:   text,
		lookup: grapheme.Boundaries(text, table),
		origin: origin,
		pos:    origin,
		rental: rental,
	}
}

func (c *cursor) Current() TextElement { return c.Peek(0) }

func (c *cursor) Next() TextElement { return c.Peek(1) }

func (c *cursor) Position() markdown.Position { return c.pos }

func (c *cursor) IsAtEnd() bool { return c.index >= len(c.lookup) }

func (c *cursor) HasRemaining() bool { return c.index < len(c.lookup) }

func (c *cursor) Len() int { return len(c.lookup) }

func (c *cursor) Remaining() int { return len(c.lookup) - c.index }

func (c *cursor) Advance() { c.advance(1) }

func (c *cursor) AdvanceBy(amount int) error {
	if amount < 1 {
		return markdown.OutOfRange("amount", amount, "must be at least 1")
	}
	c.advance(amount)
	return nil
}

func (c *cursor) TryPeek(offset int) (TextElement, bool) {
	if !c.inRange(offset) {
		return TextElement{}, false
	}
	return TextElement{b: c.element(c.index + offset)}, true
}

func (c *cursor) Peek(offset int) TextElement {
	e, _ := c.TryPeek(offset)
	return e
}

// Match never matches the empty element, so it always moves on success.
func (c *cursor) Match(e TextElement) bool {
	if e.IsEmpty() || !c.Current().Equal(e) {
		return false
	}
	c.advance(1)
	return true
}

func (c *cursor) MatchRune(r rune) bool {
	if !c.Current().EqualRune(r) {
		return false
	}
	c.advance(1)
	return true
}

func (c *cursor) MatchString(s string) bool {
	n := 0
	for cluster := range grapheme.ClustersString(s) {
		if !c.inRange(n) || string(c.element(c.index+n)) != cluster {
			return false
		}
		n++
	}
	c.advance(n)
	return true
}

func (c *cursor) MatchBytes(b []byte) bool {
	n := 0
	for cluster := range grapheme.Clusters(b) {
		if !c.inRange(n) || !bytes.Equal(c.element(c.index+n), cluster) {
			return false
		}
		n++
	}
	c.advance(n)
	return true
}

// advance moves by min(amount, remaining) and returns the distance moved.
func (c *cursor) advance(amount int) int {
	n := min(amount, c.Remaining())
	if n <= 0 {
		return 0
	}
	c.index += n
	c.pos = c.pos.Advanced(n)
	return n
}

func (c *cursor) MarkNewLine() {
	c.pos = c.pos.NextLine()
}

// inRange reports whether index+offset addresses an element without
// overflowing on extreme offsets.
func (c *cursor) inRange(offset int) bool {
	return offset >= -c.index && offset < len(c.lookup)-c.index
}

func (c *cursor) element(i int) []byte {
	end := c.end(i)
	return c.text[c.lookup[i]:end:end]
}

// end is the exclusive byte end of element i.
func (c *cursor) end(i int) int {
	if i+1 < len(c.lookup) {
		return c.lookup[i+1]
	}
	return len(c.text)
}

func (c *cursor) rewind() {
	c.index = 0
	c.pos = c.origin
}

// release drops the table and input, leaving an empty, at-end cursor.
func (c *cursor) release() {
	if c.closed {
		return
	}
	c.closed = true
	c.rental.Release()
	c.rental = nil
	c.lookup = nil
	c.text = nil
	c.index = 0
}
