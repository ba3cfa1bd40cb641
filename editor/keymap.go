package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the caret navigation bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down  key.Binding
	NextWord, PrevWord     key.Binding
	LineStart, LineEnd     key.Binding
	PageUp, PageDown       key.Binding
	GlobalStart, GlobalEnd key.Binding
	PrevTrace, NextTrace   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		NextWord: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "next word")),
		PrevWord: key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "previous word")),

		LineStart: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		LineEnd:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),

		GlobalStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		GlobalEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		PrevTrace: key.NewBinding(key.WithKeys("alt+,"), key.WithHelp("alt+,", "previous jump")),
		NextTrace: key.NewBinding(key.WithKeys("alt+."), key.WithHelp("alt+.", "next jump")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 &&
		len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0
}

// CaretMove classifies msg as a caret move. ok is false for input that is not
// a navigation key.
func (km KeyMap) CaretMove(msg tea.KeyMsg) (m CaretMove, ok bool) {
	switch {
	case key.Matches(msg, km.Left):
		return CaretLeft, true
	case key.Matches(msg, km.Right):
		return CaretRight, true
	case key.Matches(msg, km.Up):
		return CaretUp, true
	case key.Matches(msg, km.Down):
		return CaretDown, true
	case key.Matches(msg, km.NextWord):
		return CaretNextWord, true
	case key.Matches(msg, km.PrevWord):
		return CaretPrevWord, true
	case key.Matches(msg, km.LineStart):
		return CaretLineStart, true
	case key.Matches(msg, km.LineEnd):
		return CaretLineEnd, true
	case key.Matches(msg, km.PageUp):
		return CaretPageUp, true
	case key.Matches(msg, km.PageDown):
		return CaretPageDown, true
	case key.Matches(msg, km.GlobalStart):
		return CaretGlobalStart, true
	case key.Matches(msg, km.GlobalEnd):
		return CaretGlobalEnd, true
	case key.Matches(msg, km.PrevTrace):
		return CaretPrevTrace, true
	case key.Matches(msg, km.NextTrace):
		return CaretNextTrace, true
	default:
		return 0, false
	}
}
