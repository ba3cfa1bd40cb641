package buffer

import (
	"fmt"
	"io"
	"strings"

	"github.com/iw2rmb/vegetor/geom"
)

// Buffer is the text store: lines, caret, and a change counter.
//
// The caret is the insertion point inside the text, not the terminal cursor.
type Buffer struct {
	lines   [][]rune
	caret   geom.Location
	version uint64
}

// New returns an empty buffer: one empty line, caret at (0,0).
func New() *Buffer {
	return &Buffer{lines: [][]rune{nil}}
}

// Load replaces every line with text and moves the caret to the end of the
// content. CR, LF and CRLF are all accepted as line breaks.
func (b *Buffer) Load(text string) {
	b.lines = splitLines(text)
	last := len(b.lines) - 1
	b.caret = geom.Location{X: len(b.lines[last]), Y: last}
	b.version++
}

// LoadFrom reads all of r and loads it.
func (b *Buffer) LoadFrom(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("load buffer: %w", err)
	}
	b.Load(string(data))
	return nil
}

// Save serializes the lines joined by LineSeparator.
func (b *Buffer) Save() string {
	return b.join(LineSeparator)
}

// SaveTo writes Save() to w.
func (b *Buffer) SaveTo(w io.Writer) error {
	if _, err := io.WriteString(w, b.Save()); err != nil {
		return fmt.Errorf("save buffer: %w", err)
	}
	return nil
}

// String joins the lines with "\n" regardless of platform.
func (b *Buffer) String() string { return b.join("\n") }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Caret() geom.Location { return b.caret }

// LineCount returns the number of lines (always >= 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row.
func (b *Buffer) Line(row int) (string, bool) {
	if row < 0 || row >= len(b.lines) {
		return "", false
	}
	return string(b.lines[row]), true
}

// LineLen returns the rune count of row, or 0 when row does not exist.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// LineRunes returns at most n runes of row starting at column from.
// The result is empty when from is at or past the end of the line.
func (b *Buffer) LineRunes(row, from, n int) string {
	if row < 0 || row >= len(b.lines) || from < 0 || n <= 0 {
		return ""
	}
	line := b.lines[row]
	if from >= len(line) {
		return ""
	}
	end := from + n
	if end > len(line) {
		end = len(line)
	}
	return string(line[from:end])
}

// MaxWidth returns the rune count of the longest line.
func (b *Buffer) MaxWidth() int {
	w := 0
	for _, line := range b.lines {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}

// Size returns (MaxWidth, LineCount).
func (b *Buffer) Size() geom.Size {
	return geom.Size{Width: b.MaxWidth(), Height: b.LineCount()}
}

// CheckCaret validates loc against the current content.
//
// It fails with a *CaretError wrapping ErrCaretOutOfHeight when loc.Y is not
// an existing row, and ErrCaretOutOfLen when loc.X is past the row's end.
func (b *Buffer) CheckCaret(loc geom.Location) error {
	if loc.Y < 0 || loc.Y >= len(b.lines) {
		return &CaretError{Kind: ErrCaretOutOfHeight, Caret: loc.Y, Limit: len(b.lines)}
	}
	if n := len(b.lines[loc.Y]); loc.X < 0 || loc.X > n {
		return &CaretError{Kind: ErrCaretOutOfLen, Caret: loc.X, Limit: n}
	}
	return nil
}

// SeekUnchecked moves the caret without validation. Callers that care about
// correctness must run CheckCaret first.
func (b *Buffer) SeekUnchecked(loc geom.Location) {
	if loc == b.caret {
		return
	}
	b.caret = loc
	b.version++
}

// ensureCaretLine appends empty lines until the caret row exists.
func (b *Buffer) ensureCaretLine() {
	for len(b.lines) <= b.caret.Y {
		b.lines = append(b.lines, nil)
	}
}

func (b *Buffer) join(sep string) string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func splitLines(text string) [][]rune {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
