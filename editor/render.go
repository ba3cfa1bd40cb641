package editor

import (
	"github.com/iw2rmb/vegetor/geom"
	"github.com/iw2rmb/vegetor/internal/chars"
)

// VisibleLines returns the slice of the editable buffer shown in the display
// area: exactly Area().Height() rows, each at most Area().Width() characters
// starting at the horizontal offset. Rows past the end of the buffer and lines
// shorter than the offset are "".
func (e *EditArea) VisibleLines() []string {
	h, w := e.area.Height(), e.area.Width()
	if h <= 0 {
		return nil
	}
	rows := make([]string, h)
	if w <= 0 {
		return rows
	}
	for r := range rows {
		rows[r] = e.buf.LineRunes(r+e.offset.Y, e.offset.X, w)
	}
	return rows
}

// ScreenCursor returns the absolute terminal location of the caret:
// caret minus offset, clamped into [0,width]×[0,height], plus the area origin.
func (e *EditArea) ScreenCursor() geom.Location {
	c := e.buf.Caret()
	rel := geom.Location{
		X: clampInt(c.X-e.offset.X, 0, e.area.Width()),
		Y: clampInt(c.Y-e.offset.Y, 0, e.area.Height()),
	}
	return e.area.Origin.Add(rel)
}

// WelcomeRow is one line of the welcome screen placed at an absolute location.
type WelcomeRow struct {
	At   geom.Location
	Text string
}

// WelcomeFrame is a fully laid out welcome screen.
type WelcomeFrame struct {
	Rows   []WelcomeRow
	Cursor geom.Location
}

// WelcomeFrame centers the welcome buffer inside the display area. Each row is
// centered on its own character count; the block is centered on its line
// count.
//
// The area must be strictly larger than the welcome content in both
// dimensions; otherwise a *SizeError wrapping ErrBufferSizeExceeds is returned
// and the caller should skip the paint.
func (e *EditArea) WelcomeFrame() (WelcomeFrame, error) {
	size := e.welcome.Size()
	if !e.area.Size.Greater(size) {
		return WelcomeFrame{}, &SizeError{BufferSize: size, AreaSize: e.area.Size}
	}

	center := e.area.Center()
	top := center.Y - size.Height/2

	frame := WelcomeFrame{
		Rows:   make([]WelcomeRow, 0, size.Height),
		Cursor: e.area.Origin,
	}
	for i := 0; i < size.Height; i++ {
		line, _ := e.welcome.Line(i)
		frame.Rows = append(frame.Rows, WelcomeRow{
			At:   geom.Location{X: center.X - chars.Count(line)/2, Y: top + i},
			Text: line,
		})
	}
	return frame, nil
}

// ViewportState is a host-facing snapshot of the scroll state.
type ViewportState struct {
	// TopRow is the buffer row rendered at area row 0.
	TopRow int
	// LeftCol is the character column rendered at area column 0.
	LeftCol int
	// VisibleRows and VisibleCols are the display area dimensions.
	VisibleRows int
	VisibleCols int
	// Caret is the buffer caret the snapshot was taken at.
	Caret geom.Location
}

func (e *EditArea) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      e.offset.Y,
		LeftCol:     e.offset.X,
		VisibleRows: e.area.Height(),
		VisibleCols: e.area.Width(),
		Caret:       e.buf.Caret(),
	}
}

// DocToScreen maps a buffer location to an absolute terminal location.
//
// ok is false when loc is scrolled out of the display area.
func (e *EditArea) DocToScreen(loc geom.Location) (geom.Location, bool) {
	rel := geom.Location{X: loc.X - e.offset.X, Y: loc.Y - e.offset.Y}
	if rel.X < 0 || rel.Y < 0 || rel.X >= e.area.Width() || rel.Y >= e.area.Height() {
		return geom.Location{}, false
	}
	return e.area.Origin.Add(rel), true
}
