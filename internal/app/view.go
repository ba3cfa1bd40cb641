package app

import (
	"errors"
	"strings"

	"github.com/iw2rmb/vegetor/editor"
	"github.com/iw2rmb/vegetor/internal/chars"
)

// View returns the last painted frame.
func (m Model) View() string {
	if m.state == stateExiting {
		return ""
	}
	return m.frame
}

// repaint redraws the frame when the edit area or the status bar owes a
// repaint, then clears their dirty flags.
func (m *Model) repaint() {
	if m.state == stateExiting {
		return
	}
	if !m.edit.NeedPrinting() && !m.status.NeedPrinting() {
		return
	}
	if m.width <= 0 || m.height <= 0 {
		m.frame = ""
		return
	}

	var rows []string
	if m.state == stateWelcoming {
		rows = m.welcomeRows()
	} else {
		rows = m.editRows()
	}
	rows = append(rows, m.style.Status.Render(m.status.Render().Line()))

	m.frame = strings.Join(rows, "\n")
	m.edit.UnsetNeedPrinting()
	m.status.UnsetNeedPrinting()
}

func (m *Model) blankRows() []string {
	area := m.edit.Area()
	rows := make([]string, area.Height(), area.Height()+1)
	blank := chars.FitCells("", area.Width())
	for i := range rows {
		rows[i] = blank
	}
	return rows
}

func (m *Model) welcomeRows() []string {
	rows := m.blankRows()

	frame, err := m.edit.WelcomeFrame()
	if err != nil {
		if !errors.Is(err, editor.ErrBufferSizeExceeds) {
			m.log.Error().Err(err).Msg("welcome layout failed")
		} else {
			m.log.Debug().Err(err).Msg("welcome screen skipped")
		}
		return rows
	}

	area := m.edit.Area()
	for _, r := range frame.Rows {
		y := r.At.Y - area.Y()
		if y < 0 || y >= len(rows) {
			continue
		}
		lead := strings.Repeat(" ", max(r.At.X-area.X(), 0))
		rows[y] = m.style.Welcome.Render(chars.FitCells(lead+chars.OneCell(r.Text), area.Width()))
	}
	return rows
}

func (m *Model) editRows() []string {
	area := m.edit.Area()
	lines := m.edit.VisibleLines()
	rows := make([]string, len(lines), len(lines)+1)

	cur := m.edit.ScreenCursor()
	cx, cy := cur.X-area.X(), cur.Y-area.Y()

	for i, line := range lines {
		// One rune per cell keeps the row width and the cursor column in
		// step with ScreenCursor.
		plain := chars.FitCells(chars.OneCell(line), area.Width())
		if i != cy || cx >= area.Width() {
			rows[i] = m.style.Text.Render(plain)
			continue
		}
		rows[i] = m.renderCursorRow(plain, cx)
	}
	return rows
}

// renderCursorRow styles the character at column cx of a fitted row as the
// cursor.
func (m *Model) renderCursorRow(plain string, cx int) string {
	pre := chars.Slice(plain, 0, cx)
	under := chars.Slice(plain, cx, 1)
	post := chars.Slice(plain, cx+1, chars.Count(plain))
	if under == "" {
		under = " "
	}

	var b strings.Builder
	if pre != "" {
		b.WriteString(m.style.Text.Render(pre))
	}
	b.WriteString(m.style.Cursor.Render(under))
	if post != "" {
		b.WriteString(m.style.Text.Render(post))
	}
	return b.String()
}
