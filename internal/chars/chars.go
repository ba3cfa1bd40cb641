// Package chars provides rune-accurate string helpers.
//
// Caret arithmetic everywhere in vegetor counts Unicode scalar values.
// Byte offsets only appear inside this package, and every byte slice it takes
// lands on a rune boundary.
package chars

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of runes in s.
func Count(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return utf8.RuneCountInString(s)
}

// ByteOffset returns the byte offset of rune column col in s.
// col is clamped into [0, Count(s)].
func ByteOffset(s string, col int) int {
	if col <= 0 {
		return 0
	}
	if isASCII(s) {
		if col > len(s) {
			return len(s)
		}
		return col
	}
	n := 0
	for i := range s {
		if n == col {
			return i
		}
		n++
	}
	return len(s)
}

// Slice returns at most n runes of s starting at rune column from.
// An out-of-range from yields "".
func Slice(s string, from, n int) string {
	if from < 0 {
		from = 0
	}
	if n <= 0 {
		return ""
	}
	if isASCII(s) {
		if from >= len(s) {
			return ""
		}
		end := from + n
		if end > len(s) {
			end = len(s)
		}
		return s[from:end]
	}
	start := ByteOffset(s, from)
	if start >= len(s) {
		return ""
	}
	rest := s[start:]
	end := ByteOffset(rest, n)
	return rest[:end]
}

// IsBlank reports whether r is Unicode whitespace.
func IsBlank(r rune) bool { return unicode.IsSpace(r) }

// IsControl reports whether r is a control character.
func IsControl(r rune) bool { return unicode.IsControl(r) }

// CellWidth returns the terminal cell width of s.
func CellWidth(s string) int {
	w := runewidth.StringWidth(s)
	if w < 0 {
		w = 0
	}
	if w == 0 && s != "" {
		if fallback := uniseg.StringWidth(s); fallback > w {
			w = fallback
		}
	}
	return w
}

// FitCells truncates s to at most width terminal cells and pads the result
// with spaces up to exactly width cells.
func FitCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	if w := CellWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// Placeholder stands in for runes that do not occupy exactly one cell.
const Placeholder = '?'

// OneCell returns s with every rune that is not exactly one terminal cell wide
// replaced by Placeholder, so that rune columns and screen columns agree.
func OneCell(s string) string {
	if isPrintableASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if runewidth.RuneWidth(r) != 1 {
			r = Placeholder
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
