package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrCaretOutOfHeight reports a caret row at or past the line count.
	ErrCaretOutOfHeight = errors.New("caret out of buffer height")
	// ErrCaretOutOfLen reports a caret column past the end of its line.
	ErrCaretOutOfLen = errors.New("caret out of line length")
	// ErrEndOfFile reports a reader scan that ran off either end of the buffer.
	ErrEndOfFile = errors.New("end of file")
)

// CaretError describes an invalid caret request.
// Kind is ErrCaretOutOfHeight or ErrCaretOutOfLen.
type CaretError struct {
	Kind  error
	Caret int // offending coordinate (row for height, column for length)
	Limit int // line count, or rune count of the row
}

func (e *CaretError) Error() string {
	if errors.Is(e.Kind, ErrCaretOutOfHeight) {
		return fmt.Sprintf("%v: caret y %d, buffer height %d", e.Kind, e.Caret, e.Limit)
	}
	return fmt.Sprintf("%v: caret x %d, line length %d", e.Kind, e.Caret, e.Limit)
}

func (e *CaretError) Unwrap() error { return e.Kind }
