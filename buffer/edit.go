package buffer

import (
	"github.com/iw2rmb/vegetor/geom"
	"github.com/iw2rmb/vegetor/internal/chars"
)

// WriteString inserts s at the caret.
//
// Printable runes are inserted and advance the caret by one column. '\n'
// splits the line at the caret and moves the caret to the start of the new
// line. CR and every other control rune are dropped.
//
// The caret is validated once, before anything is written.
func (b *Buffer) WriteString(s string) error {
	if err := b.CheckCaret(b.caret); err != nil {
		return err
	}

	changed := false
	for _, r := range s {
		switch {
		case r == '\n':
			b.splitAtCaret()
			changed = true
		case r == '\r' || chars.IsControl(r):
			continue
		default:
			b.insertAtCaret(r)
			changed = true
		}
	}
	if changed {
		b.version++
	}
	return nil
}

// Write implements io.Writer on top of WriteString.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.WriteString(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// DeleteBackward applies backspace semantics. At column 0 the current line is
// joined onto the previous one. It reports whether anything changed.
func (b *Buffer) DeleteBackward() bool {
	if b.CheckCaret(b.caret) != nil {
		return false
	}
	row, col := b.caret.Y, b.caret.X
	if row == 0 && col == 0 {
		return false
	}

	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1:col-1], line[col:]...)
		b.caret = geom.Location{X: col - 1, Y: row}
		b.version++
		return true
	}

	prev := b.lines[row-1]
	joined := make([]rune, 0, len(prev)+len(b.lines[row]))
	joined = append(joined, prev...)
	joined = append(joined, b.lines[row]...)
	b.lines[row-1] = joined
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.caret = geom.Location{X: len(prev), Y: row - 1}
	b.version++
	return true
}

// DeleteForward applies delete-key semantics. At the end of a line the next
// line is joined onto the current one. It reports whether anything changed.
func (b *Buffer) DeleteForward() bool {
	if b.CheckCaret(b.caret) != nil {
		return false
	}
	row, col := b.caret.Y, b.caret.X
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return false
	}

	line := b.lines[row]
	if col < len(line) {
		b.lines[row] = append(line[:col:col], line[col+1:]...)
		b.version++
		return true
	}

	joined := make([]rune, 0, len(line)+len(b.lines[row+1]))
	joined = append(joined, line...)
	joined = append(joined, b.lines[row+1]...)
	b.lines[row] = joined
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	b.version++
	return true
}

func (b *Buffer) insertAtCaret(r rune) {
	b.ensureCaretLine()
	line := b.lines[b.caret.Y]
	col := b.caret.X
	if col > len(line) {
		col = len(line)
	}
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	b.lines[b.caret.Y] = next
	b.caret.X = col + 1
}

func (b *Buffer) splitAtCaret() {
	b.ensureCaretLine()
	row := b.caret.Y
	line := b.lines[row]
	col := b.caret.X
	if col > len(line) {
		col = len(line)
	}

	after := make([]rune, len(line)-col)
	copy(after, line[col:])
	b.lines[row] = line[:col:col]

	out := make([][]rune, 0, len(b.lines)+1)
	out = append(out, b.lines[:row+1]...)
	out = append(out, after)
	out = append(out, b.lines[row+1:]...)
	b.lines = out
	b.caret = geom.Location{X: 0, Y: row + 1}
}
