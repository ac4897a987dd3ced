package markdown

import (
	"cmp"
	"fmt"
)

// Position is a cursor location measured in text elements.
//
// Offset is 0-based; Line and Column are 1-based. Line and column are stored
// 0-based so that the zero value is the valid start position (0, 1, 1).
//
// Ordering uses Offset only. The built-in == operator compares all three
// fields.
type Position struct {
	offset int
	line   int
	column int
}

// NewPosition validates each argument independently.
func NewPosition(offset, line, column int) (Position, error) {
	if offset < 0 {
		return Position{}, OutOfRange("offset", offset, "must not be negative")
	}
	if line < 1 {
		return Position{}, OutOfRange("line", line, "must be at least 1")
	}
	if column < 1 {
		return Position{}, OutOfRange("column", column, "must be at least 1")
	}
	return Position{offset: offset, line: line - 1, column: column - 1}, nil
}

// MustPosition is like NewPosition but panics on invalid arguments.
func MustPosition(offset, line, column int) Position {
	p, err := NewPosition(offset, line, column)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Position) Offset() int { return p.offset }
func (p Position) Line() int   { return p.line + 1 }
func (p Position) Column() int { return p.column + 1 }

// String returns "(offset, line, column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.Offset(), p.Line(), p.Column())
}

// Compare returns -1, 0 or 1 comparing offsets only.
func (p Position) Compare(other Position) int {
	return cmp.Compare(p.offset, other.offset)
}

func (p Position) Before(other Position) bool    { return p.offset < other.offset }
func (p Position) After(other Position) bool     { return p.offset > other.offset }
func (p Position) NotBefore(other Position) bool { return p.offset >= other.offset }
func (p Position) NotAfter(other Position) bool  { return p.offset <= other.offset }

// Advanced returns p moved n elements forward on the same line.
// Non-positive n returns p unchanged.
func (p Position) Advanced(n int) Position {
	if n <= 0 {
		return p
	}
	p.offset += n
	p.column += n
	return p
}

// NextLine returns p at column 1 of the following line. The offset is kept:
// line terminators occupy offset slots of their own.
func (p Position) NextLine() Position {
	p.line++
	p.column = 0
	return p
}
