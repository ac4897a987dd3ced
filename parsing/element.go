package parsing

import (
	"bytes"
	"unicode/utf8"

	"github.com/owl-domain/markdown"
	"github.com/owl-domain/markdown/internal/grapheme"
)

// TextElement is a read-only view over exactly one extended grapheme cluster.
//
// An element borrows the buffer it was sliced from and is valid only while
// that buffer is. The type holds a slice and is therefore not comparable:
// == and map keys do not compile, and comparing two boxed elements panics.
// Use Equal and the other content comparisons instead.
//
// The zero value is the empty element returned for out-of-range peeks.
type TextElement struct {
	b []byte
}

// NewTextElement wraps b without copying. b must be exactly one cluster.
func NewTextElement(b []byte) (TextElement, error) {
	if !grapheme.IsSingle(b) {
		return TextElement{}, markdown.InvalidArgument("text", string(b),
			"must contain exactly one text element (extended grapheme cluster)")
	}
	return TextElement{b: b[:len(b):len(b)]}, nil
}

// NewTextElementString copies s into a new element.
func NewTextElementString(s string) (TextElement, error) {
	return NewTextElement([]byte(s))
}

// MustTextElement is like NewTextElementString but panics on invalid input.
func MustTextElement(s string) TextElement {
	e, err := NewTextElementString(s)
	if err != nil {
		panic(err)
	}
	return e
}

// NextElement splits the first element off b. ok is false when b is empty.
func NextElement(b []byte) (e TextElement, rest []byte, ok bool) {
	n := grapheme.Len(b)
	if n == 0 {
		return TextElement{}, b, false
	}
	return TextElement{b: b[:n:n]}, b[n:], true
}

// NextElementString is NextElement for strings; the element holds a copy.
func NextElementString(s string) (e TextElement, rest string, ok bool) {
	n := grapheme.LenString(s)
	if n == 0 {
		return TextElement{}, s, false
	}
	return TextElement{b: []byte(s[:n])}, s[n:], true
}

// Bytes returns the underlying view. Callers must not modify it.
func (e TextElement) Bytes() []byte { return e.b }

// String returns a copy of the exact source text.
func (e TextElement) String() string { return string(e.b) }

// Len is the length in bytes.
func (e TextElement) Len() int { return len(e.b) }

func (e TextElement) IsEmpty() bool { return len(e.b) == 0 }

// Rune returns the element's rune when it consists of a single rune.
func (e TextElement) Rune() (rune, bool) {
	r, size := utf8.DecodeRune(e.b)
	if size == 0 || size != len(e.b) || (r == utf8.RuneError && size == 1) {
		return utf8.RuneError, false
	}
	return r, true
}

// Equal reports ordinal equality with other.
func (e TextElement) Equal(other TextElement) bool { return bytes.Equal(e.b, other.b) }

// EqualBytes reports ordinal equality with a raw view.
func (e TextElement) EqualBytes(b []byte) bool { return bytes.Equal(e.b, b) }

// EqualString reports ordinal equality with s.
func (e TextElement) EqualString(s string) bool { return string(e.b) == s }

// EqualRune reports whether the element is exactly the encoding of r.
func (e TextElement) EqualRune(r rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return bytes.Equal(e.b, buf[:n])
}

// Compare orders elements ordinally by their bytes.
func (e TextElement) Compare(other TextElement) int { return bytes.Compare(e.b, other.b) }
