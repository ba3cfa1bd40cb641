package editor

import "fmt"

// CaretMove is a navigation command understood by EditArea.MoveCaret.
type CaretMove uint8

const (
	CaretLeft CaretMove = iota
	CaretRight
	CaretUp
	CaretDown
	// CaretNextWord moves to the start of the next word.
	CaretNextWord
	// CaretPrevWord moves to the start of the previous word.
	CaretPrevWord
	CaretLineStart
	CaretLineEnd
	CaretPageUp
	CaretPageDown
	CaretGlobalStart
	CaretGlobalEnd
	// CaretPrevTrace returns to the position before the last jump.
	// Jumps do not include in-line moves.
	CaretPrevTrace
	// CaretNextTrace replays the jump undone by CaretPrevTrace.
	CaretNextTrace
)

var caretMoveNames = [...]string{
	CaretLeft:        "left",
	CaretRight:       "right",
	CaretUp:          "up",
	CaretDown:        "down",
	CaretNextWord:    "next-word",
	CaretPrevWord:    "prev-word",
	CaretLineStart:   "line-start",
	CaretLineEnd:     "line-end",
	CaretPageUp:      "page-up",
	CaretPageDown:    "page-down",
	CaretGlobalStart: "global-start",
	CaretGlobalEnd:   "global-end",
	CaretPrevTrace:   "prev-trace",
	CaretNextTrace:   "next-trace",
}

func (m CaretMove) String() string {
	if int(m) < len(caretMoveNames) {
		return caretMoveNames[m]
	}
	return fmt.Sprintf("CaretMove(%d)", uint8(m))
}

// Supported reports whether MoveCaret implements m.
func (m CaretMove) Supported() bool {
	switch m {
	case CaretPageUp, CaretPageDown, CaretPrevTrace, CaretNextTrace:
		return false
	default:
		return int(m) < len(caretMoveNames)
	}
}
