package grapheme

import (
	"iter"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Len returns the byte length of the first grapheme cluster in b.
func Len(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(b, -1)
	return len(cluster)
}

// LenString returns the byte length of the first grapheme cluster in s.
func LenString(s string) int {
	if s == "" {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return len(cluster)
}

// IsSingle reports whether b is exactly one grapheme cluster.
func IsSingle(b []byte) bool {
	n := Len(b)
	return n > 0 && n == len(b)
}

// IsSingleString reports whether s is exactly one grapheme cluster.
func IsSingleString(s string) bool {
	n := LenString(s)
	return n > 0 && n == len(s)
}

// Boundaries records the byte start offset of every grapheme cluster of text
// into table and returns the filled prefix. It is a single forward pass.
//
// len(table) must be at least len(text): a cluster is never shorter than one
// byte, so that is the worst case.
func Boundaries(text []byte, table []int) []int {
	n, off, state := 0, 0, -1
	for len(text) > 0 {
		var cluster []byte
		cluster, text, _, state = uniseg.FirstGraphemeCluster(text, state)
		table[n] = off
		n++
		off += len(cluster)
	}
	return table[:n]
}

// Clusters yields the grapheme clusters of b as subslices of b.
func Clusters(b []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		state := -1
		for len(b) > 0 {
			var cluster []byte
			cluster, b, _, state = uniseg.FirstGraphemeCluster(b, state)
			if !yield(cluster) {
				return
			}
		}
	}
}

// ClustersString yields the grapheme clusters of s.
func ClustersString(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		for s != "" {
			var cluster string
			cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
			if !yield(cluster) {
				return
			}
		}
	}
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	for c := range ClustersString(text) {
		out = append(out, c)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// IsLineBreak reports whether cluster is a line terminator sequence.
// "\r\n" is a single cluster.
func IsLineBreak(cluster string) bool {
	switch cluster {
	case "\n", "\r\n", "\r":
		return true
	}
	return false
}

// Width returns the terminal-cell width of cluster drawn at visualCol.
// Tabs advance to the next tab stop; line breaks are zero width.
func Width(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}
	if IsLineBreak(cluster) {
		return 0
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	if visualCol < 0 {
		visualCol = 0
	}
	return tabWidth - visualCol%tabWidth
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
