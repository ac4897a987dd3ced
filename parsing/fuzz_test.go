package parsing

import (
	"bytes"
	"testing"
)

func FuzzScannerParity(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"# heading\n",
		family + thumbsUp,
		eAcute + "\r\n" + troll,
		"\U0001F1E9\U0001F1EA\U0001F1EB",
		"\xff\xc3(",
	}
	for _, s := range seeds {
		f.Add(s, 3)
	}

	f.Fuzz(func(t *testing.T, text string, stride int) {
		if stride < 1 {
			stride = 1
		}
		stride = stride%8 + 1

		b := NewByteScanner([]byte(text))
		defer b.Close()
		s := NewStringScanner(text)
		defer s.Close()

		if b.Len() != s.Len() {
			t.Fatalf("element count: bytes=%d string=%d", b.Len(), s.Len())
		}

		var joined bytes.Buffer
		for i := 0; i < b.Len(); i++ {
			e := b.Peek(i)
			if e.IsEmpty() {
				t.Fatalf("element %d is empty", i)
			}
			joined.Write(e.Bytes())
		}
		if joined.String() != text {
			t.Fatalf("elements do not cover the input: got %q, want %q", joined.String(), text)
		}

		for b.HasRemaining() {
			if b.Position() != s.Position() || !b.Current().Equal(s.Current()) {
				t.Fatalf("divergence at %v/%v: %q vs %q", b.Position(), s.Position(), b.Current(), s.Current())
			}
			if err := b.AdvanceBy(stride); err != nil {
				t.Fatalf("bytes advance: %v", err)
			}
			if err := s.AdvanceBy(stride); err != nil {
				t.Fatalf("string advance: %v", err)
			}
		}
		if !s.IsAtEnd() || b.Position() != s.Position() {
			t.Fatalf("end state differs: %v vs %v", b.Position(), s.Position())
		}
	})
}
