package buffer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/iw2rmb/vegetor/geom"
)

func TestBuffer_WriteString_InsertsAtCaret(t *testing.T) {
	b := New()
	b.Load("ad")
	b.SeekUnchecked(geom.Location{X: 1, Y: 0})
	v := b.Version()

	if err := b.WriteString("bc"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := b.String(), "abcd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Caret(), (geom.Location{X: 3, Y: 0}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version: got %d, want %d", got, v+1)
	}
}

func TestBuffer_WriteString_NewlineSplitsLine(t *testing.T) {
	b := New()
	b.Load("hello world")
	b.SeekUnchecked(geom.Location{X: 5, Y: 0})

	if err := b.WriteString("\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := b.String(), "hello\n world"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Caret(), (geom.Location{X: 0, Y: 1}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}

	if err := b.WriteString("X\nY"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := b.String(), "hello\nX\nY world"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Caret(), (geom.Location{X: 1, Y: 2}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
}

func TestBuffer_WriteString_DropsControlRunes(t *testing.T) {
	b := New()
	if err := b.WriteString("a\r\tb\x1b\r\nc"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := b.String(), "ab\nc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestBuffer_WriteString_FailsOnInvalidCaret(t *testing.T) {
	b := New()
	b.Load("ab")
	b.SeekUnchecked(geom.Location{X: 0, Y: 4})
	v := b.Version()

	err := b.WriteString("x")
	if !errors.Is(err, ErrCaretOutOfHeight) {
		t.Fatalf("write error: got %v", err)
	}
	if got := b.String(); got != "ab" {
		t.Fatalf("text after failed write: got %q", got)
	}
	if b.Version() != v {
		t.Fatalf("version changed on failed write")
	}

	b.SeekUnchecked(geom.Location{X: 3, Y: 0})
	if err := b.WriteString("x"); !errors.Is(err, ErrCaretOutOfLen) {
		t.Fatalf("write error: got %v", err)
	}
}

func TestBuffer_Write_IsAnIOWriter(t *testing.T) {
	b := New()
	n, err := fmt.Fprintf(b, "%d-%s", 42, "π")
	if err != nil {
		t.Fatalf("Fprintf: %v", err)
	}
	if n != len("42-π") {
		t.Fatalf("written: got %d, want %d", n, len("42-π"))
	}
	if got, want := b.Caret(), (geom.Location{X: 4, Y: 0}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
}

func TestBuffer_WriteString_MultiByteCaret(t *testing.T) {
	b := New()
	if err := b.WriteString("héllo"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := b.Caret(), (geom.Location{X: 5, Y: 0}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}

	b.SeekUnchecked(geom.Location{X: 2, Y: 0})
	if err := b.WriteString("€"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := b.String(), "hé€llo"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestBuffer_DeleteBackward(t *testing.T) {
	b := New()
	b.Load("ab\ncd")
	b.SeekUnchecked(geom.Location{X: 1, Y: 1})

	if !b.DeleteBackward() {
		t.Fatalf("expected change")
	}
	if got, want := b.String(), "ab\nd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	if !b.DeleteBackward() {
		t.Fatalf("expected join")
	}
	if got, want := b.String(), "abd"; got != want {
		t.Fatalf("text after join: got %q, want %q", got, want)
	}
	if got, want := b.Caret(), (geom.Location{X: 2, Y: 0}); got != want {
		t.Fatalf("caret after join: got %v, want %v", got, want)
	}

	b.SeekUnchecked(geom.Location{})
	if b.DeleteBackward() {
		t.Fatalf("expected no-op at document start")
	}
}

func TestBuffer_DeleteForward(t *testing.T) {
	b := New()
	b.Load("ab\ncd")
	b.SeekUnchecked(geom.Location{X: 1, Y: 0})

	if !b.DeleteForward() {
		t.Fatalf("expected change")
	}
	if got, want := b.String(), "a\ncd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	if !b.DeleteForward() {
		t.Fatalf("expected join")
	}
	if got, want := b.String(), "acd"; got != want {
		t.Fatalf("text after join: got %q, want %q", got, want)
	}
	if got, want := b.Caret(), (geom.Location{X: 1, Y: 0}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}

	b.SeekUnchecked(geom.Location{X: 3, Y: 0})
	if b.DeleteForward() {
		t.Fatalf("expected no-op at document end")
	}
}
