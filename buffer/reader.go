package buffer

import (
	"github.com/iw2rmb/vegetor/geom"
	"github.com/iw2rmb/vegetor/internal/chars"
)

// Reader is a read-only cursor over a Buffer's content.
//
// Crossing a line boundary yields a synthesized '\n'. The reader owns its own
// caret; the Buffer is never modified through it. A Reader must not be used
// after the Buffer's content changes.
type Reader struct {
	buf   *Buffer
	caret geom.Location
}

// Reader returns a Reader positioned at the buffer's caret.
// It fails when the current caret is invalid.
func (b *Buffer) Reader() (*Reader, error) {
	if err := b.CheckCaret(b.caret); err != nil {
		return nil, err
	}
	return &Reader{buf: b, caret: b.caret}, nil
}

// Caret returns the reader's position: the next call to Next yields the rune
// at this location.
func (r *Reader) Caret() geom.Location { return r.caret }

// Next consumes and returns the rune at the reader's position.
// ok is false at the true end of the buffer.
func (r *Reader) Next() (ch rune, ok bool) {
	lines := r.buf.lines
	line := lines[r.caret.Y]
	if r.caret.X < len(line) {
		ch = line[r.caret.X]
		r.caret.X++
		return ch, true
	}
	if r.caret.Y+1 < len(lines) {
		r.caret = geom.Location{X: 0, Y: r.caret.Y + 1}
		return '\n', true
	}
	return 0, false
}

// Prev steps back over the previous rune and returns it.
// ok is false at the very start of the buffer.
func (r *Reader) Prev() (ch rune, ok bool) {
	if r.caret.X > 0 {
		r.caret.X--
		return r.buf.lines[r.caret.Y][r.caret.X], true
	}
	if r.caret.Y > 0 {
		r.caret.Y--
		r.caret.X = len(r.buf.lines[r.caret.Y])
		return '\n', true
	}
	return 0, false
}

// Peek returns what Next would return without consuming it.
func (r *Reader) Peek() (rune, bool) {
	saved := r.caret
	ch, ok := r.Next()
	r.caret = saved
	return ch, ok
}

// SkipUntil advances until the rune at the reader's position satisfies pred,
// leaving the reader on it (Next yields it). If no such rune exists the
// original position is restored and ErrEndOfFile returned.
func (r *Reader) SkipUntil(pred func(rune) bool) error {
	start := r.caret
	for {
		ch, ok := r.Peek()
		if !ok {
			r.caret = start
			return ErrEndOfFile
		}
		if pred(ch) {
			return nil
		}
		r.Next()
	}
}

// BackUntil retreats until it steps over a rune that satisfies pred, leaving
// the reader on it (Next yields it). If no such rune exists the original
// position is restored and ErrEndOfFile returned.
func (r *Reader) BackUntil(pred func(rune) bool) error {
	start := r.caret
	for {
		ch, ok := r.Prev()
		if !ok {
			r.caret = start
			return ErrEndOfFile
		}
		if pred(ch) {
			return nil
		}
	}
}

func (r *Reader) SkipUntilBlank() error    { return r.SkipUntil(chars.IsBlank) }
func (r *Reader) SkipUntilNotBlank() error { return r.SkipUntil(notBlank) }
func (r *Reader) BackUntilBlank() error    { return r.BackUntil(chars.IsBlank) }
func (r *Reader) BackUntilNotBlank() error { return r.BackUntil(notBlank) }

func notBlank(ch rune) bool { return !chars.IsBlank(ch) }
