package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vegetor/editor"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.refreshStatus()
	m.repaint()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+q" {
		m.rememberCaret()
		m.state = stateExiting
		m.log.Debug().Msg("exit requested")
		return tea.Quit
	}

	if m.state == stateWelcoming {
		// The key only dismisses the welcome screen.
		m.state = stateEditing
		m.edit.SetNeedPrinting()
		m.status.SetNeedPrinting()
		return nil
	}

	m.notice = ""

	if mv, ok := m.edit.KeyMap().CaretMove(msg); ok {
		if _, err := m.edit.MoveCaret(mv); err != nil {
			if errors.Is(err, editor.ErrUnsupportedMove) {
				m.notice = mv.String() + " is not supported"
			}
			m.log.Debug().Err(err).Stringer("move", mv).Msg("caret move failed")
		}
		return nil
	}

	switch msg.Type {
	case tea.KeyCtrlS:
		m.save()
	case tea.KeyEnter:
		m.insert("\n")
	case tea.KeyBackspace:
		m.edit.DeleteBackward()
	case tea.KeyDelete:
		m.edit.DeleteForward()
	case tea.KeySpace:
		m.insert(" ")
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		m.insert(string(msg.Runes))
	}
	return nil
}

func (m *Model) insert(text string) {
	if err := m.edit.Insert(text); err != nil {
		m.log.Error().Err(err).Msg("insert failed")
	}
}
