package editor

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/vegetor/buffer"
	"github.com/iw2rmb/vegetor/geom"
	"github.com/iw2rmb/vegetor/internal/chars"
)

// MoveCaret applies one navigation command and returns the new screen cursor
// location.
//
// Page and trace moves are recognized but not implemented: they return
// ErrUnsupportedMove and leave every piece of state untouched.
func (e *EditArea) MoveCaret(m CaretMove) (geom.Location, error) {
	if !m.Supported() {
		return e.ScreenCursor(), fmt.Errorf("%w: %v", ErrUnsupportedMove, m)
	}
	return e.MoveCaretTo(e.caretTarget(m))
}

// MoveCaretTo validates loc, moves the caret there, reconciles the scroll
// offset and returns the new screen cursor location.
func (e *EditArea) MoveCaretTo(loc geom.Location) (geom.Location, error) {
	if err := e.buf.CheckCaret(loc); err != nil {
		e.log.Debug().Err(err).Stringer("target", loc).Msg("caret move rejected")
		return e.ScreenCursor(), err
	}

	moved := e.buf.Caret() != loc
	e.buf.SeekUnchecked(loc)
	scrolled := e.UpdateDisplayOffset()
	if moved || scrolled {
		e.SetNeedPrinting()
	}
	return e.ScreenCursor(), nil
}

func (e *EditArea) caretTarget(m CaretMove) geom.Location {
	switch m {
	case CaretLeft:
		return e.leftOf(e.buf.Caret())
	case CaretRight:
		return e.rightOf(e.buf.Caret())
	case CaretUp:
		return e.above(e.buf.Caret())
	case CaretDown:
		return e.below(e.buf.Caret())
	case CaretNextWord:
		return e.nextWord()
	case CaretPrevWord:
		return e.prevWord()
	case CaretLineStart:
		return geom.Location{X: 0, Y: e.buf.Caret().Y}
	case CaretLineEnd:
		y := e.buf.Caret().Y
		return geom.Location{X: e.buf.LineLen(y), Y: y}
	case CaretGlobalStart:
		return geom.Location{}
	case CaretGlobalEnd:
		return e.globalEnd()
	default:
		return e.buf.Caret()
	}
}

func (e *EditArea) leftOf(c geom.Location) geom.Location {
	if c.X > 0 {
		return geom.Location{X: c.X - 1, Y: c.Y}
	}
	if c.Y > 0 {
		return geom.Location{X: e.buf.LineLen(c.Y - 1), Y: c.Y - 1}
	}
	return c
}

func (e *EditArea) rightOf(c geom.Location) geom.Location {
	if c.X < e.buf.LineLen(c.Y) {
		return geom.Location{X: c.X + 1, Y: c.Y}
	}
	if c.Y+1 < e.buf.LineCount() {
		return geom.Location{X: 0, Y: c.Y + 1}
	}
	return c
}

func (e *EditArea) above(c geom.Location) geom.Location {
	if c.Y == 0 {
		return c
	}
	y := c.Y - 1
	return geom.Location{X: min(c.X, e.buf.LineLen(y)), Y: y}
}

func (e *EditArea) below(c geom.Location) geom.Location {
	if c.Y+1 >= e.buf.LineCount() {
		return c
	}
	y := c.Y + 1
	return geom.Location{X: min(c.X, e.buf.LineLen(y)), Y: y}
}

func (e *EditArea) globalEnd() geom.Location {
	last := e.buf.LineCount() - 1
	if last < 0 {
		return geom.Location{}
	}
	return geom.Location{X: e.buf.LineLen(last), Y: last}
}

// nextWord skips to the first blank, then to the first non-blank after it.
// Without a next word the caret goes to the document end.
func (e *EditArea) nextWord() geom.Location {
	r, err := e.buf.Reader()
	if err != nil {
		return e.buf.Caret()
	}
	if err := r.SkipUntilBlank(); err != nil {
		return e.wordFallback(err, e.globalEnd())
	}
	if err := r.SkipUntilNotBlank(); err != nil {
		return e.wordFallback(err, e.globalEnd())
	}
	return r.Caret()
}

// prevWord moves to the start of the previous word. From inside a word it
// first steps back over the rest of that word, then over blanks, then over
// the previous word itself. Without a previous word the caret goes to the
// document start.
func (e *EditArea) prevWord() geom.Location {
	r, err := e.buf.Reader()
	if err != nil {
		return e.buf.Caret()
	}
	if ch, ok := r.Peek(); ok && !chars.IsBlank(ch) {
		if err := r.BackUntilBlank(); err != nil {
			return e.wordFallback(err, geom.Location{})
		}
	}
	if err := r.BackUntilNotBlank(); err != nil {
		return e.wordFallback(err, geom.Location{})
	}
	if err := r.BackUntilBlank(); err != nil {
		return e.wordFallback(err, geom.Location{})
	}
	// The reader sits on the blank before the word.
	r.Next()
	return r.Caret()
}

func (e *EditArea) wordFallback(err error, to geom.Location) geom.Location {
	if !errors.Is(err, buffer.ErrEndOfFile) {
		e.log.Debug().Err(err).Msg("word scan failed")
		return e.buf.Caret()
	}
	return to
}
