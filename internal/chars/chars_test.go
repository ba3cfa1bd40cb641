package chars

import "testing"

func TestCount_RunesNotBytes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "hello", want: 5},
		{in: "héllo", want: 5},
		{in: "π テ", want: 3},
	}
	for _, tc := range cases {
		if got := Count(tc.in); got != tc.want {
			t.Fatalf("Count(%q): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSlice_StaysOnRuneBoundaries(t *testing.T) {
	cases := []struct {
		in      string
		from, n int
		want    string
	}{
		{in: "hello", from: 1, n: 3, want: "ell"},
		{in: "hello", from: 4, n: 9, want: "o"},
		{in: "hello", from: 5, n: 1, want: ""},
		{in: "hello", from: 9, n: 1, want: ""},
		{in: "héllo", from: 1, n: 1, want: "é"},
		{in: "héllo", from: 2, n: 10, want: "llo"},
		{in: "日本語", from: 1, n: 1, want: "本"},
		{in: "日本語", from: 0, n: 0, want: ""},
	}
	for _, tc := range cases {
		if got := Slice(tc.in, tc.from, tc.n); got != tc.want {
			t.Fatalf("Slice(%q,%d,%d): got %q, want %q", tc.in, tc.from, tc.n, got, tc.want)
		}
	}
}

func TestByteOffset(t *testing.T) {
	if got := ByteOffset("héllo", 2); got != 3 {
		t.Fatalf("ByteOffset: got %d, want %d", got, 3)
	}
	if got := ByteOffset("héllo", 99); got != len("héllo") {
		t.Fatalf("ByteOffset clamp: got %d, want %d", got, len("héllo"))
	}
	if got := ByteOffset("abc", -1); got != 0 {
		t.Fatalf("ByteOffset negative: got %d, want 0", got)
	}
}

func TestCellWidth_WideRunes(t *testing.T) {
	if got := CellWidth("ab"); got != 2 {
		t.Fatalf("CellWidth ascii: got %d, want 2", got)
	}
	if got := CellWidth("日本"); got != 4 {
		t.Fatalf("CellWidth cjk: got %d, want 4", got)
	}
}

func TestFitCells_TruncatesAndPads(t *testing.T) {
	if got := FitCells("abc", 5); got != "abc  " {
		t.Fatalf("FitCells pad: got %q", got)
	}
	if got := FitCells("abcdef", 3); got != "abc" {
		t.Fatalf("FitCells truncate: got %q", got)
	}
	if got := FitCells("日本語", 5); got != "日本 " {
		t.Fatalf("FitCells wide: got %q", got)
	}
	if got := FitCells("abc", 0); got != "" {
		t.Fatalf("FitCells zero: got %q", got)
	}
}

func TestOneCell_ReplacesWideAndZeroWidthRunes(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{in: "plain text", want: "plain text"},
		{in: "héllo", want: "héllo"},
		{in: "一二三", want: "???"},
		{in: "a\tb", want: "a?b"},
		{in: "e\u0301", want: "e?"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		got := OneCell(tc.in)
		if got != tc.want {
			t.Fatalf("OneCell(%q): got %q, want %q", tc.in, got, tc.want)
		}
		if Count(got) != Count(tc.in) {
			t.Fatalf("OneCell(%q): rune count changed to %d", tc.in, Count(got))
		}
		if w := CellWidth(got); w != Count(got) {
			t.Fatalf("OneCell(%q): %d cells for %d runes", tc.in, w, Count(got))
		}
	}
}
