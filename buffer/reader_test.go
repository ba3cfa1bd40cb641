package buffer

import (
	"errors"
	"testing"

	"github.com/iw2rmb/vegetor/geom"
)

func readerAt(t *testing.T, text string, loc geom.Location) *Reader {
	t.Helper()
	b := New()
	b.Load(text)
	b.SeekUnchecked(loc)
	r, err := b.Reader()
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	return r
}

func TestReader_NextSynthesizesNewlines(t *testing.T) {
	r := readerAt(t, "ab\n\nc", geom.Location{})

	var got []rune
	for {
		ch, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, ch)
	}
	if string(got) != "ab\n\nc" {
		t.Fatalf("forward walk: got %q, want %q", string(got), "ab\n\nc")
	}
	if got, want := r.Caret(), (geom.Location{X: 1, Y: 2}); got != want {
		t.Fatalf("caret at end: got %v, want %v", got, want)
	}
}

func TestReader_PrevIsSymmetric(t *testing.T) {
	r := readerAt(t, "ab\nhé", geom.Location{X: 2, Y: 1})

	var got []rune
	for {
		ch, ok := r.Prev()
		if !ok {
			break
		}
		got = append(got, ch)
	}
	if string(got) != "éh\nba" {
		t.Fatalf("backward walk: got %q, want %q", string(got), "éh\nba")
	}
	if got := r.Caret(); got != (geom.Location{}) {
		t.Fatalf("caret at start: got %v, want (0,0)", got)
	}
}

func TestReader_PeekDoesNotConsume(t *testing.T) {
	r := readerAt(t, "a\nb", geom.Location{X: 1, Y: 0})

	ch, ok := r.Peek()
	if !ok || ch != '\n' {
		t.Fatalf("peek: got (%q,%v), want ('\\n',true)", ch, ok)
	}
	if got := r.Caret(); got != (geom.Location{X: 1, Y: 0}) {
		t.Fatalf("caret after peek: got %v", got)
	}

	r.Next()
	r.Next()
	if _, ok := r.Peek(); ok {
		t.Fatalf("peek at end: expected false")
	}
}

func TestReader_DoesNotMutateBuffer(t *testing.T) {
	b := New()
	b.Load("abc")
	b.SeekUnchecked(geom.Location{})
	v := b.Version()

	r, err := b.Reader()
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	r.Next()
	_ = r.SkipUntilBlank()

	if b.Caret() != (geom.Location{}) || b.Version() != v {
		t.Fatalf("buffer changed by reader: caret=%v version=%d", b.Caret(), b.Version())
	}
}

func TestReader_SkipUntilLeavesReaderOnMatch(t *testing.T) {
	r := readerAt(t, "foo bar", geom.Location{})

	if err := r.SkipUntilBlank(); err != nil {
		t.Fatalf("SkipUntilBlank: %v", err)
	}
	if got, want := r.Caret(), (geom.Location{X: 3, Y: 0}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
	if ch, _ := r.Next(); ch != ' ' {
		t.Fatalf("next after skip: got %q, want ' '", ch)
	}
}

func TestReader_SkipUntilRestoresOnEndOfFile(t *testing.T) {
	r := readerAt(t, "foo\nbar", geom.Location{X: 1, Y: 0})

	err := r.SkipUntil(func(ch rune) bool { return ch == 'z' })
	if !errors.Is(err, ErrEndOfFile) {
		t.Fatalf("SkipUntil: got %v, want ErrEndOfFile", err)
	}
	if got, want := r.Caret(), (geom.Location{X: 1, Y: 0}); got != want {
		t.Fatalf("caret restored: got %v, want %v", got, want)
	}
}

func TestReader_BackUntilLeavesReaderOnMatch(t *testing.T) {
	r := readerAt(t, "foo bar", geom.Location{X: 6, Y: 0})

	if err := r.BackUntilBlank(); err != nil {
		t.Fatalf("BackUntilBlank: %v", err)
	}
	if got, want := r.Caret(), (geom.Location{X: 3, Y: 0}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
	if ch, _ := r.Next(); ch != ' ' {
		t.Fatalf("next after back: got %q, want ' '", ch)
	}

	err := r.BackUntilBlank()
	if err != nil {
		t.Fatalf("BackUntilBlank from after blank: %v", err)
	}
	if got, want := r.Caret(), (geom.Location{X: 3, Y: 0}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}

	if err := r.BackUntilBlank(); !errors.Is(err, ErrEndOfFile) {
		t.Fatalf("BackUntilBlank at first word: got %v, want ErrEndOfFile", err)
	}
	if got, want := r.Caret(), (geom.Location{X: 3, Y: 0}); got != want {
		t.Fatalf("caret restored: got %v, want %v", got, want)
	}
}

func TestReader_ScansCrossLines(t *testing.T) {
	r := readerAt(t, "foo\n  bar", geom.Location{X: 1, Y: 0})

	if err := r.SkipUntilBlank(); err != nil {
		t.Fatalf("SkipUntilBlank: %v", err)
	}
	if err := r.SkipUntilNotBlank(); err != nil {
		t.Fatalf("SkipUntilNotBlank: %v", err)
	}
	if got, want := r.Caret(), (geom.Location{X: 2, Y: 1}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}

	if err := r.BackUntilNotBlank(); err != nil {
		t.Fatalf("BackUntilNotBlank: %v", err)
	}
	if got, want := r.Caret(), (geom.Location{X: 2, Y: 0}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
}

func TestBuffer_ReaderFailsOnInvalidCaret(t *testing.T) {
	b := New()
	b.SeekUnchecked(geom.Location{X: 1, Y: 0})
	if _, err := b.Reader(); !errors.Is(err, ErrCaretOutOfLen) {
		t.Fatalf("Reader: got %v, want ErrCaretOutOfLen", err)
	}
}
