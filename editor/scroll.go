package editor

// UpdateDisplayOffset reconciles the scroll offset with the caret and the
// display area. It reports whether the offset changed, which tells the host
// whether a full repaint is owed or only a cursor move.
func (e *EditArea) UpdateDisplayOffset() bool {
	prev := e.offset
	caret := e.buf.Caret()
	next := prev

	height := e.area.Height()
	if height > 0 {
		total := e.buf.LineCount()
		vp := paddingFor(e.cfg.verticalPadding(), height)

		yRel := caret.Y - next.Y
		if yRel >= height-vp {
			next.Y = max(min(caret.Y+vp, total)-height, 0)
		} else if yRel < vp {
			next.Y = max(caret.Y-vp, 0)
		}
		// Never let the caret fall off the bottom row.
		if lowest := caret.Y - height + 1; next.Y < lowest {
			next.Y = lowest
		}
		// Pin the last line to the bottom row instead of leaving a gap below it
		// (e.g. after the area grows).
		if maxTop := max(total-height, 0); next.Y > maxTop {
			next.Y = maxTop
		}
		if next.Y < 0 {
			next.Y = 0
		}
	}

	width := e.area.Width()
	if width > 0 {
		hp := paddingFor(e.cfg.horizontalPadding(), width)

		// Short lines may leave blank space on the right; no pin here.
		xRel := caret.X - next.X
		if xRel < hp {
			next.X = max(caret.X-hp, 0)
		} else if xRel > width-hp {
			next.X = max(caret.X+hp-width, 0)
		}
	}

	if next == prev {
		return false
	}
	e.offset = next
	e.log.Debug().Stringer("from", prev).Stringer("to", next).Msg("display offset changed")
	return true
}

// paddingFor disables padding on regions too small to hold it on both sides.
func paddingFor(padding, extent int) int {
	if extent < 2*padding {
		return 0
	}
	return padding
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
