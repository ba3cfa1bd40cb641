// Package statusbar implements a single-row status line with left, center or
// right packing.
package statusbar

import (
	"strings"

	"github.com/iw2rmb/vegetor/geom"
	"github.com/iw2rmb/vegetor/internal/chars"
)

// StatusBar holds the status row content. Only the area's origin and width
// are used; the height is always one row.
type StatusBar struct {
	area    geom.Area
	content string
	packing Packing

	needPrinting bool
}

func New() *StatusBar {
	return &StatusBar{packing: Center()}
}

// ConfigureArea moves the status row. It always marks the bar dirty.
func (s *StatusBar) ConfigureArea(a geom.Area) {
	s.area = a
	s.SetNeedPrinting()
}

func (s *StatusBar) Area() geom.Area { return s.area }

func (s *StatusBar) Content() string { return s.content }

// SetContent replaces the content, marking the bar dirty only when it differs.
func (s *StatusBar) SetContent(content string) {
	if s.content != content {
		s.SetNeedPrinting()
	}
	s.content = content
}

func (s *StatusBar) Packing() Packing { return s.packing }

func (s *StatusBar) SetPacking(p Packing) {
	if s.packing != p {
		s.SetNeedPrinting()
	}
	s.packing = p
}

func (s *StatusBar) NeedPrinting() bool { return s.needPrinting }
func (s *StatusBar) SetNeedPrinting()   { s.needPrinting = true }
func (s *StatusBar) UnsetNeedPrinting() { s.needPrinting = false }

// Segment is the resolved status row: Row spans the whole area and is to be
// cleared, Text is drawn at At.
type Segment struct {
	Row  geom.Area
	At   geom.Location
	Text string
}

// Render resolves the packing against the current area. Content is truncated
// on character boundaries.
func (s *StatusBar) Render() Segment {
	row := geom.NewArea(s.area.X(), s.area.Y(), max(s.area.Width(), 0), 1)
	start, shown := s.packing.resolve(row.Width(), chars.Count(s.content))
	return Segment{
		Row:  row,
		At:   geom.Location{X: row.X() + start, Y: row.Y()},
		Text: chars.Slice(s.content, 0, shown),
	}
}

// Line returns the segment as a full-width row of text, blank outside the
// content.
func (seg Segment) Line() string {
	lead := seg.At.X - seg.Row.X()
	if lead < 0 {
		lead = 0
	}
	return chars.FitCells(strings.Repeat(" ", lead)+seg.Text, seg.Row.Width())
}
