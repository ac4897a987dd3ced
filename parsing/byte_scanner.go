package parsing

import (
	"fmt"

	"github.com/owl-domain/markdown"
)

// ByteScanner scans a caller-owned byte buffer without copying it.
//
// The buffer must outlive the scanner and must not change while the scanner
// is in use; elements returned by the scanner alias it. Prefer Scan, which
// bounds the scanner's lifetime to a callback.
type ByteScanner struct {
	cursor
}

var _ Scanner = (*ByteScanner)(nil)

// NewByteScanner rents the lookup table from the pool. Call Close to return it.
func NewByteScanner(buf []byte, opts ...Option) *ByteScanner {
	cfg := newConfig(opts)
	rental := cfg.pool.Rent(len(buf))
	return &ByteScanner{cursor: newCursor(buf, rental.Ints(), rental, cfg.origin)}
}

// NewByteScannerScratch builds the lookup table into scratch and allocates
// nothing. scratch needs one entry per byte of buf, the worst case.
func NewByteScannerScratch(buf []byte, scratch []int, opts ...Option) (*ByteScanner, error) {
	if len(scratch) < len(buf) {
		return nil, markdown.InvalidArgument("scratch", len(scratch),
			fmt.Sprintf("needs at least %d entries to index %d bytes", len(buf), len(buf)))
	}
	cfg := newConfig(opts)
	return &ByteScanner{cursor: newCursor(buf, scratch, nil, cfg.origin)}, nil
}

// Close returns any rented table to the pool. The scanner then reads as
// empty input. Closing again does nothing.
func (s *ByteScanner) Close() error {
	s.release()
	return nil
}
