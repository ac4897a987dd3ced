// Package markdown holds the position types shared by the text scanner in
// package parsing and the node types in package ast.
//
// Positions count text elements (extended grapheme clusters), not bytes or
// runes. Offsets are 0-based; lines and columns are 1-based. The zero
// Position is the valid start position (0, 1, 1).
package markdown
