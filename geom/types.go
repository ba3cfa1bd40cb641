// Package geom holds the character-cell coordinate types shared by the
// buffer, the edit area and the status bar.
//
// All values are in character cells (runes), never bytes.
package geom

import "fmt"

// Location is a (column, row) character-cell coordinate.
// Validity is contextual: a Location has no bounds of its own.
type Location struct {
	X int
	Y int
}

func (l Location) String() string { return fmt.Sprintf("(%d,%d)", l.X, l.Y) }

func (l Location) Add(o Location) Location {
	return Location{X: l.X + o.X, Y: l.Y + o.Y}
}

// Sub subtracts o from l per axis, saturating at zero.
func (l Location) Sub(o Location) Location {
	return Location{X: subSat(l.X, o.X), Y: subSat(l.Y, o.Y)}
}

// Size is a (width, height) extent in character cells.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Ordering is the result of a successful Size comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare orders s against o under the partial order used for fit checks.
//
// s is Less (Greater) only when both dimensions are smaller (larger).
// ok is false when the sizes are incomparable, e.g. one dimension is larger
// and the other is smaller or equal.
func (s Size) Compare(o Size) (ord Ordering, ok bool) {
	switch {
	case s.Width == o.Width && s.Height == o.Height:
		return Equal, true
	case s.Width < o.Width && s.Height < o.Height:
		return Less, true
	case s.Width > o.Width && s.Height > o.Height:
		return Greater, true
	default:
		return 0, false
	}
}

// Greater reports whether s is strictly larger than o in both dimensions.
func (s Size) Greater(o Size) bool {
	ord, ok := s.Compare(o)
	return ok && ord == Greater
}

// Less reports whether s is strictly smaller than o in both dimensions.
func (s Size) Less(o Size) bool {
	ord, ok := s.Compare(o)
	return ok && ord == Less
}

// Area is a rectangular display region: a left-top origin plus a size.
type Area struct {
	Origin Location
	Size   Size
}

func NewArea(x, y, width, height int) Area {
	return Area{
		Origin: Location{X: x, Y: y},
		Size:   Size{Width: width, Height: height},
	}
}

func (a Area) X() int      { return a.Origin.X }
func (a Area) Y() int      { return a.Origin.Y }
func (a Area) Width() int  { return a.Size.Width }
func (a Area) Height() int { return a.Size.Height }

// Center returns origin + size/2 (integer division).
func (a Area) Center() Location {
	return Location{
		X: a.Origin.X + a.Size.Width/2,
		Y: a.Origin.Y + a.Size.Height/2,
	}
}

// Contains reports whether l lies inside the half-open area.
func (a Area) Contains(l Location) bool {
	return l.X >= a.Origin.X && l.X < a.Origin.X+a.Size.Width &&
		l.Y >= a.Origin.Y && l.Y < a.Origin.Y+a.Size.Height
}

func (a Area) String() string { return fmt.Sprintf("%v+%v", a.Origin, a.Size) }

func subSat(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}
