package parsing

// StringScanner scans its own copy of the input. It suits scanners that are
// kept around or handed between functions.
type StringScanner struct {
	cursor
	text string
}

var _ Scanner = (*StringScanner)(nil)

// NewStringScanner copies text and rents the lookup table from the pool.
// Call Close to return it.
func NewStringScanner(text string, opts ...Option) *StringScanner {
	cfg := newConfig(opts)
	owned := []byte(text)
	rental := cfg.pool.Rent(len(owned))
	return &StringScanner{
		cursor: newCursor(owned, rental.Ints(), rental, cfg.origin),
		text:   text,
	}
}

// Text returns the scanned input. It stays available after Close.
func (s *StringScanner) Text() string { return s.text }

// Rewind moves the cursor back to the first element and the starting
// position, discarding line bookkeeping. It does nothing after Close.
func (s *StringScanner) Rewind() {
	if s.closed {
		return
	}
	s.rewind()
}

// Close returns the lookup table to the pool. Closing again does nothing.
func (s *StringScanner) Close() error {
	s.release()
	return nil
}
