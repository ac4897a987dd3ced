package markdown

import (
	"errors"
	"testing"
)

func TestNewPosition_RejectsInvalidArguments(t *testing.T) {
	cases := []struct {
		name      string
		offset    int
		line      int
		column    int
		wantParam string
		wantValue int
	}{
		{name: "negative offset", offset: -1, line: 1, column: 1, wantParam: "offset", wantValue: -1},
		{name: "line zero", offset: 0, line: 0, column: 1, wantParam: "line", wantValue: 0},
		{name: "negative line", offset: 0, line: -1, column: 1, wantParam: "line", wantValue: -1},
		{name: "column zero", offset: 0, line: 1, column: 0, wantParam: "column", wantValue: 0},
		{name: "negative column", offset: 0, line: 1, column: -1, wantParam: "column", wantValue: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPosition(tc.offset, tc.line, tc.column)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("error: got %v, want ErrOutOfRange", err)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("error type: got %T, want *ArgumentError", err)
			}
			if argErr.Param != tc.wantParam {
				t.Fatalf("param: got %q, want %q", argErr.Param, tc.wantParam)
			}
			if argErr.Value != tc.wantValue {
				t.Fatalf("value: got %v, want %v", argErr.Value, tc.wantValue)
			}
		})
	}
}

func TestNewPosition_ValidValues(t *testing.T) {
	p, err := NewPosition(1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Offset() != 1 || p.Line() != 2 || p.Column() != 3 {
		t.Fatalf("position: got %v, want (1, 2, 3)", p)
	}
}

func TestPosition_ZeroValueIsStart(t *testing.T) {
	var p Position
	if want := MustPosition(0, 1, 1); p != want {
		t.Fatalf("zero value: got %v, want %v", p, want)
	}
	if got, want := p.String(), "(0, 1, 1)"; got != want {
		t.Fatalf("string: got %q, want %q", got, want)
	}
}

func TestMustPosition_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for negative offset")
		}
	}()
	_ = MustPosition(-1, 1, 1)
}

func TestPosition_OrderingUsesOffsetOnly(t *testing.T) {
	a := MustPosition(3, 9, 9)
	b := MustPosition(4, 1, 1)
	sameOffset := MustPosition(3, 1, 2)

	if !a.Before(b) || a.After(b) {
		t.Fatalf("%v should be before %v", a, b)
	}
	if !b.After(a) || !b.NotBefore(a) || b.NotAfter(a) {
		t.Fatalf("%v should be after %v", b, a)
	}
	if got := a.Compare(sameOffset); got != 0 {
		t.Fatalf("compare same offset: got %d, want 0", got)
	}
	if !a.NotBefore(sameOffset) || !a.NotAfter(sameOffset) {
		t.Fatalf("same offset positions should be mutually not-before and not-after")
	}
	if a == sameOffset {
		t.Fatalf("structural equality must include line and column")
	}
	if got := b.Compare(a); got != 1 {
		t.Fatalf("compare: got %d, want 1", got)
	}
}

func TestPosition_AdvancedAndNextLine(t *testing.T) {
	p := Position{}.Advanced(3)
	if want := MustPosition(3, 1, 4); p != want {
		t.Fatalf("advanced: got %v, want %v", p, want)
	}
	if got := p.Advanced(0); got != p {
		t.Fatalf("advanced by zero: got %v, want %v", got, p)
	}
	if got := p.Advanced(-2); got != p {
		t.Fatalf("advanced by negative: got %v, want %v", got, p)
	}

	nl := p.NextLine()
	if want := MustPosition(3, 2, 1); nl != want {
		t.Fatalf("next line: got %v, want %v", nl, want)
	}
}
