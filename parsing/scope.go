package parsing

// Scan runs fn with a ByteScanner over buf and closes it when fn returns,
// including when fn panics. The scanner must not escape fn.
func Scan(buf []byte, fn func(s *ByteScanner) error, opts ...Option) error {
	s := NewByteScanner(buf, opts...)
	defer s.Close()
	return fn(s)
}

// ScanScratch is Scan with the lookup table built into scratch.
func ScanScratch(buf []byte, scratch []int, fn func(s *ByteScanner) error, opts ...Option) error {
	s, err := NewByteScannerScratch(buf, scratch, opts...)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// ScanString runs fn with a StringScanner over text and closes it afterwards.
func ScanString(text string, fn func(s *StringScanner) error, opts ...Option) error {
	s := NewStringScanner(text, opts...)
	defer s.Close()
	return fn(s)
}
