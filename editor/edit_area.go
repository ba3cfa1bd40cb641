package editor

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/vegetor/buffer"
	"github.com/iw2rmb/vegetor/geom"
)

// EditArea owns the editable buffer, the welcome buffer, the display area and
// the scroll offset of the editable buffer.
//
// need_printing starts false; caret moves, content changes and area changes
// set it; the host clears it with UnsetNeedPrinting after drawing.
type EditArea struct {
	cfg Config
	log zerolog.Logger

	buf     *buffer.Buffer
	welcome *buffer.Buffer

	// Content never leaves this region.
	area geom.Area
	// Valid only for buf; the welcome buffer is always re-centered.
	offset geom.Location

	needPrinting bool
}

func New(cfg Config) *EditArea {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return &EditArea{
		cfg:     cfg,
		log:     cfg.logger().With().Str("component", "editarea").Logger(),
		buf:     buffer.New(),
		welcome: buffer.New(),
	}
}

// Buffer returns the editable buffer. Mutating it directly bypasses scroll
// reconciliation; call UpdateDisplayOffset afterwards.
func (e *EditArea) Buffer() *buffer.Buffer { return e.buf }

func (e *EditArea) Welcome() *buffer.Buffer { return e.welcome }

func (e *EditArea) KeyMap() KeyMap { return e.cfg.KeyMap }

func (e *EditArea) Area() geom.Area { return e.area }

func (e *EditArea) DisplayOffset() geom.Location { return e.offset }

// ConfigureArea changes the display region. It must be called before the
// first paint and on every resize.
func (e *EditArea) ConfigureArea(a geom.Area) {
	e.area = a
	e.UpdateDisplayOffset()
	e.SetNeedPrinting()
	e.log.Debug().Stringer("area", a).Stringer("offset", e.offset).Msg("area configured")
}

func (e *EditArea) NeedPrinting() bool { return e.needPrinting }

// SetNeedPrinting marks the area as owing a repaint.
func (e *EditArea) SetNeedPrinting() { e.needPrinting = true }

// UnsetNeedPrinting records that the host finished drawing.
func (e *EditArea) UnsetNeedPrinting() { e.needPrinting = false }

// LoadBuffer replaces the editable content; the caret ends up at the end.
func (e *EditArea) LoadBuffer(text string) {
	e.buf.Load(text)
	e.UpdateDisplayOffset()
	e.SetNeedPrinting()
}

// LoadBufferFrom reads the editable content from r.
func (e *EditArea) LoadBufferFrom(r io.Reader) error {
	if err := e.buf.LoadFrom(r); err != nil {
		return err
	}
	e.UpdateDisplayOffset()
	e.SetNeedPrinting()
	return nil
}

func (e *EditArea) LoadWelcome(text string) {
	e.welcome.Load(text)
	e.SetNeedPrinting()
}

// Save serializes the editable buffer.
func (e *EditArea) Save() string { return e.buf.Save() }

func (e *EditArea) SaveTo(w io.Writer) error { return e.buf.SaveTo(w) }

// Insert writes text at the caret and keeps the caret visible.
func (e *EditArea) Insert(text string) error {
	if err := e.buf.WriteString(text); err != nil {
		return err
	}
	e.UpdateDisplayOffset()
	e.SetNeedPrinting()
	return nil
}

// DeleteBackward removes the rune before the caret, joining lines at column 0.
func (e *EditArea) DeleteBackward() bool {
	return e.afterEdit(e.buf.DeleteBackward())
}

// DeleteForward removes the rune under the caret, joining lines at line end.
func (e *EditArea) DeleteForward() bool {
	return e.afterEdit(e.buf.DeleteForward())
}

func (e *EditArea) afterEdit(changed bool) bool {
	if changed {
		e.UpdateDisplayOffset()
		e.SetNeedPrinting()
	}
	return changed
}
