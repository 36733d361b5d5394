package tui

// AdjustScroll returns a scroll offset that keeps cursor visible
func AdjustScroll(cursor, scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	if cursor < scroll {
		return cursor
	}
	if cursor >= scroll+visible {
		return cursor - visible + 1
	}
	return scroll
}

// ClampScroll bounds scroll to [0, total-visible]
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	max := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > max {
		return max
	}
	return scroll
}

// ClampCursor bounds cursor to [0, total-1]
func ClampCursor(cursor, total int) int {
	if total <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// ScrollPercent returns scroll position as a 0-100 percentage
func ScrollPercent(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	max := total - visible
	if max <= 0 {
		return 0
	}
	pct := scroll * 100 / max
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// ScrollBar draws a vertical scrollbar track with thumb at column x
func (r Region) ScrollBar(x, offset, visible, total int, st Style) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}

	trackH := r.H
	if total <= visible || trackH < 3 {
		for y := 0; y < trackH; y++ {
			r.Cell(x, y, '│', st.Dim())
		}
		return
	}

	thumbH := visible * trackH / total
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	maxScroll := total - visible
	thumbY := 0
	if maxScroll > 0 {
		thumbY = offset * (trackH - thumbH) / maxScroll
	}
	if thumbY < 0 {
		thumbY = 0
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	for y := 0; y < trackH; y++ {
		ch := '░'
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		}
		r.Cell(x, y, ch, st)
	}
}

// ScrollIndicator renders "Top", "Bot", or a percentage right-aligned
// on row y
func (r Region) ScrollIndicator(y, offset, visible, total int, st Style) {
	if y < 0 || y >= r.H {
		return
	}
	var text string
	switch {
	case total <= visible || offset <= 0:
		text = "Top"
	case offset+visible >= total:
		text = "Bot"
	default:
		pct := ScrollPercent(offset, visible, total)
		if pct >= 100 {
			pct = 99
		}
		text = string(rune('0'+pct/10)) + string(rune('0'+pct%10)) + "%"
	}
	r.TextRight(y, text, st.Dim())
}
