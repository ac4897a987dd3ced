package grapheme

import "testing"

const (
	family    = "\U0001F469\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"
	thumbsUp  = "\U0001F44D\U0001F3FD"
	eAcute    = "e\u0301"
	flagPairs = "\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7"
)

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + eAcute + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != eAcute {
		t.Fatalf("split[1]=%q, want %q", got[1], eAcute)
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Split("") != nil {
		t.Fatalf("split of empty text should be nil")
	}
}

func TestLen_FirstCluster(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "ascii", text: "ab", want: 1},
		{name: "combining", text: eAcute + "x", want: 3},
		{name: "zwj", text: family + "x", want: 25},
		{name: "modifier", text: thumbsUp, want: 8},
		{name: "crlf", text: "\r\nx", want: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Len([]byte(tc.text)); got != tc.want {
				t.Fatalf("Len: got %d, want %d", got, tc.want)
			}
			if got := LenString(tc.text); got != tc.want {
				t.Fatalf("LenString: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestIsSingle(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{text: "", want: false},
		{text: "a", want: true},
		{text: "aa", want: false},
		{text: family, want: true},
		{text: thumbsUp, want: true},
		{text: family + thumbsUp, want: false},
		{text: "\r\n", want: true},
	}

	for _, tc := range cases {
		if got := IsSingle([]byte(tc.text)); got != tc.want {
			t.Fatalf("IsSingle(%q): got %v, want %v", tc.text, got, tc.want)
		}
		if got := IsSingleString(tc.text); got != tc.want {
			t.Fatalf("IsSingleString(%q): got %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestBoundaries_RecordsClusterStarts(t *testing.T) {
	text := []byte("a" + family + thumbsUp + flagPairs + "\r\n")
	table := make([]int, len(text))

	got := Boundaries(text, table)
	want := []int{0, 1, 26, 34, 42, 50}
	if len(got) != len(want) {
		t.Fatalf("boundary count: got %d (%v), want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("boundary %d: got %d, want %d", i, got[i], want[i])
		}
	}
	if &got[0] != &table[0] {
		t.Fatalf("boundaries must be written into the supplied table")
	}
}

func TestBoundaries_Empty(t *testing.T) {
	if got := Boundaries(nil, nil); len(got) != 0 {
		t.Fatalf("empty input: got %v, want no boundaries", got)
	}
}

func TestClusters_MatchSplit(t *testing.T) {
	text := eAcute + "x" + family + flagPairs
	want := Split(text)

	var fromBytes, fromString []string
	for c := range Clusters([]byte(text)) {
		fromBytes = append(fromBytes, string(c))
	}
	for c := range ClustersString(text) {
		fromString = append(fromString, c)
	}
	if len(fromBytes) != len(want) || len(fromString) != len(want) {
		t.Fatalf("cluster counts: bytes=%d string=%d, want %d", len(fromBytes), len(fromString), len(want))
	}
	for i := range want {
		if fromBytes[i] != want[i] || fromString[i] != want[i] {
			t.Fatalf("cluster %d: bytes=%q string=%q, want %q", i, fromBytes[i], fromString[i], want[i])
		}
	}
}

func TestClusters_StopsEarly(t *testing.T) {
	n := 0
	for range ClustersString("abc") {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("iterations: got %d, want 1", n)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		name      string
		cluster   string
		visualCol int
		want      int
	}{
		{name: "ascii", cluster: "a", want: 1},
		{name: "combining", cluster: eAcute, want: 1},
		{name: "emoji", cluster: "\U0001F642", want: 2},
		{name: "cjk", cluster: "界", want: 2},
		{name: "zwj", cluster: family, want: 2},
		{name: "tab at start", cluster: "\t", want: 4},
		{name: "tab after one cell", cluster: "\t", visualCol: 1, want: 3},
		{name: "newline", cluster: "\n", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Width(tc.cluster, tc.visualCol, 4); got != tc.want {
				t.Fatalf("width of %q: got %d, want %d", tc.cluster, got, tc.want)
			}
		})
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
	if !IsLineBreak("\r\n") || IsLineBreak(" ") {
		t.Fatalf("line break classification")
	}
}
