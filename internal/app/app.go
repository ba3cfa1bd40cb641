// Package app wires the edit area and the status bar into a Bubble Tea
// program.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/vegetor/editor"
	"github.com/iw2rmb/vegetor/geom"
	"github.com/iw2rmb/vegetor/internal/config"
	"github.com/iw2rmb/vegetor/internal/store"
	"github.com/iw2rmb/vegetor/statusbar"
)

type state uint8

const (
	stateWelcoming state = iota
	stateEditing
	stateExiting
)

func (s state) String() string {
	switch s {
	case stateWelcoming:
		return "welcoming"
	case stateEditing:
		return "editing"
	default:
		return "exiting"
	}
}

// Options configures a Model.
type Options struct {
	// Path is the file being edited. Empty starts an unnamed buffer that
	// cannot be saved.
	Path string
	// Welcome is the welcome screen text; empty selects DefaultWelcome.
	Welcome string

	// Config defaults to config.Default().
	Config *config.Config
	// Sessions may be nil.
	Sessions *store.Sessions
	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger
	// Style defaults to DefaultStyle().
	Style *Style
}

// Model is the editor program: a welcome screen, then an edit area above a
// one-row status bar.
type Model struct {
	cfg      *config.Config
	sessions *store.Sessions
	log      zerolog.Logger
	style    Style

	path    string
	absPath string

	edit   *editor.EditArea
	status *statusbar.StatusBar
	state  state

	width, height int

	notice string
	// Last painted frame; View returns it until something owes a repaint.
	frame string
}

// New builds a Model and loads opts.Path when it exists. A missing file
// starts an empty buffer that is created on first save.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	style := DefaultStyle()
	if opts.Style != nil {
		style = *opts.Style
	}

	packing, err := cfg.Status.StatusPacking()
	if err != nil {
		return Model{}, fmt.Errorf("status packing: %w", err)
	}

	m := Model{
		cfg:      cfg,
		sessions: opts.Sessions,
		log:      logger.With().Str("component", "app").Logger(),
		style:    style,
		path:     opts.Path,
		edit:     editor.New(cfg.Editor.EditArea(&logger)),
		status:   statusbar.New(),
		state:    stateWelcoming,
	}
	m.status.SetPacking(packing)

	welcome := opts.Welcome
	if welcome == "" {
		welcome = DefaultWelcome()
	}
	m.edit.LoadWelcome(welcome)

	if m.path != "" {
		if err := m.open(); err != nil {
			return Model{}, err
		}
	}
	m.refreshStatus()
	return m, nil
}

func (m *Model) open() error {
	abs, err := filepath.Abs(m.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", m.path, err)
	}
	m.absPath = abs

	f, err := os.Open(abs)
	switch {
	case errors.Is(err, os.ErrNotExist):
		m.notice = "new file"
		m.log.Info().Str("path", abs).Msg("editing new file")
		return nil
	case err != nil:
		return fmt.Errorf("open %s: %w", m.path, err)
	}
	defer f.Close()

	if err := m.edit.LoadBufferFrom(f); err != nil {
		return fmt.Errorf("read %s: %w", m.path, err)
	}
	m.log.Info().Str("path", abs).Int("lines", m.edit.Buffer().LineCount()).Msg("file loaded")

	m.restoreCaret()
	return nil
}

func (m *Model) restoreCaret() {
	if !m.cfg.Session.RememberCaret {
		return
	}
	loc, ok := m.sessions.Caret(m.absPath)
	if !ok {
		return
	}
	// The file may have changed since the caret was stored.
	if _, err := m.edit.MoveCaretTo(loc); err != nil {
		m.log.Warn().Err(err).Stringer("caret", loc).Msg("remembered caret no longer valid")
		m.sessions.Forget(m.absPath)
	}
}

func (m *Model) rememberCaret() {
	if m.absPath == "" || !m.cfg.Session.RememberCaret {
		return
	}
	m.sessions.RememberCaret(m.absPath, m.edit.Buffer().Caret())
}

func (m *Model) save() {
	if m.absPath == "" {
		m.notice = "no file name"
		return
	}
	if err := m.writeFile(); err != nil {
		m.notice = "save failed"
		m.log.Error().Err(err).Str("path", m.absPath).Msg("save failed")
		return
	}
	m.notice = "saved"
	m.log.Info().Str("path", m.absPath).Msg("file saved")
	m.rememberCaret()
}

func (m *Model) writeFile() error {
	f, err := os.Create(m.absPath)
	if err != nil {
		return err
	}
	if err := m.edit.SaveTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	editHeight := max(height-1, 0)
	m.edit.ConfigureArea(geom.NewArea(0, 0, width, editHeight))
	m.status.ConfigureArea(geom.NewArea(0, editHeight, width, 1))
	m.log.Debug().Int("width", width).Int("height", height).Msg("resized")
}

func (m *Model) refreshStatus() {
	name := "[no name]"
	if m.path != "" {
		name = filepath.Base(m.path)
	}
	c := m.edit.Buffer().Caret()
	content := fmt.Sprintf("%s  %d:%d", name, c.Y+1, c.X+1)
	if m.notice != "" {
		content += "  " + m.notice
	}
	m.status.SetContent(content)
}

// EditArea exposes the edit area for hosts that drive the model directly.
func (m Model) EditArea() *editor.EditArea { return m.edit }

// Exiting reports whether the user asked to quit.
func (m Model) Exiting() bool { return m.state == stateExiting }

func (m Model) Init() tea.Cmd { return nil }
