package parsing

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Comparison selects how element content is compared.
type Comparison uint8

const (
	// Ordinal compares bytes exactly. It is what the TextElement methods use.
	Ordinal Comparison = iota
	// OrdinalIgnoreCase compares after Unicode case folding. Folding is
	// locale independent.
	OrdinalIgnoreCase
)

func (c Comparison) String() string {
	switch c {
	case Ordinal:
		return "ordinal"
	case OrdinalIgnoreCase:
		return "ordinal-ignore-case"
	default:
		return "unknown"
	}
}

// Equal compares two elements. Unknown modes never report equality.
func (c Comparison) Equal(a, b TextElement) bool {
	return c.equalBytes(a.b, b.b)
}

// EqualBytes compares an element with a raw view.
func (c Comparison) EqualBytes(a TextElement, b []byte) bool {
	return c.equalBytes(a.b, b)
}

// EqualString compares an element with s.
func (c Comparison) EqualString(a TextElement, s string) bool {
	return c.equalBytes(a.b, []byte(s))
}

// EqualRune compares an element with the encoding of r.
func (c Comparison) EqualRune(a TextElement, r rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return c.equalBytes(a.b, buf[:n])
}

// Compare orders two elements under c. Unknown modes fall back to Ordinal.
func (c Comparison) Compare(a, b TextElement) int {
	if c == OrdinalIgnoreCase {
		return bytes.Compare(fold(a.b), fold(b.b))
	}
	return bytes.Compare(a.b, b.b)
}

func (c Comparison) equalBytes(a, b []byte) bool {
	switch c {
	case Ordinal:
		return bytes.Equal(a, b)
	case OrdinalIgnoreCase:
		if bytes.Equal(a, b) {
			return true
		}
		return bytes.Equal(fold(a), fold(b))
	default:
		return false
	}
}

// cases.Caser is stateful; one per call.
func fold(b []byte) []byte {
	return cases.Fold().Bytes(b)
}
