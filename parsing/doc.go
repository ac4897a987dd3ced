// Package parsing turns text into a sequence of text elements (extended
// grapheme clusters) and tracks a cursor over them.
//
// Two backends implement Scanner with identical behavior:
//
//   - ByteScanner borrows a caller-owned []byte and never copies it. Its
//     lookup table goes into caller scratch memory or a pooled buffer.
//   - StringScanner owns a copy of its input and always pools its table.
//
// Both build a table from element index to byte offset in one forward pass
// at construction, so peeking in either direction never rescans.
//
// Basic usage:
//
//	err := parsing.Scan(src, func(s *parsing.ByteScanner) error {
//	    for s.HasRemaining() {
//	        if s.MatchString("\n") {
//	            s.MarkNewLine()
//	            continue
//	        }
//	        s.Advance()
//	    }
//	    return nil
//	})
//
// A scanner is not safe for concurrent use. Close returns pooled memory and
// may be called more than once.
package parsing
