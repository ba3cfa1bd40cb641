package statusbar

import "fmt"

// HorizontalPadding is the blank margin conventionally kept on each side of
// left- or right-packed content.
const HorizontalPadding = 2

type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Align(%d)", uint8(a))
	}
}

// Packing places content inside the status row.
//
// Paddings apply to left and right alignment only and are ignored when they
// leave no room for content.
type Packing struct {
	Align        Align
	LeftPadding  int
	RightPadding int
}

func Center() Packing { return Packing{Align: AlignCenter} }

func Left(l, r int) Packing { return Packing{Align: AlignLeft, LeftPadding: l, RightPadding: r} }

func Right(l, r int) Packing { return Packing{Align: AlignRight, LeftPadding: l, RightPadding: r} }

// ParseAlign accepts the names produced by Align.String.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "center", "":
		return AlignCenter, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignCenter, fmt.Errorf("unknown packing %q", s)
	}
}

func (p Packing) String() string {
	if p.Align == AlignCenter {
		return "center"
	}
	return fmt.Sprintf("%v(%d,%d)", p.Align, p.LeftPadding, p.RightPadding)
}

// resolve returns the content start column relative to the row and the
// number of characters that may be shown, for a row of the given width and
// content of n characters.
func (p Packing) resolve(width, n int) (start, shown int) {
	if width <= 0 {
		return 0, 0
	}
	l, r := max(p.LeftPadding, 0), max(p.RightPadding, 0)
	padded := width > l+r

	switch p.Align {
	case AlignLeft:
		if padded {
			return l, min(n, width-l-r)
		}
		return 0, min(n, width)
	case AlignRight:
		if padded {
			shown = min(n, width-l-r)
			return width - r - shown, shown
		}
		shown = min(n, width)
		return width - shown, shown
	default:
		shown = min(n, width)
		return width/2 - shown/2, shown
	}
}
