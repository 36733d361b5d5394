package tui

import "github.com/lixenwraith/leetterm/terminal"

// Region is a rectangular window into a cell buffer.
// All coordinates passed to its methods are relative to the region's
// origin; writes outside the region are silently clipped.
type Region struct {
	Cells  []terminal.Cell
	TotalW int // width of the underlying cell buffer
	X, Y   int // absolute position in the cell buffer
	W, H   int // region dimensions
}

// NewRegion creates a region over cells with the given bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{Cells: cells, TotalW: totalW, X: x, Y: y, W: w, H: h}
}

// Sub returns a nested region, clipped to the parent's bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns the region shrunk by n cells on every side
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell writes one cell; out-of-bounds writes are dropped
func (r Region) Cell(x, y int, ch rune, st Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y
	if uint(absX) >= uint(r.TotalW) {
		return
	}
	idx := absY*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: st.Fg, Bg: st.Bg, Attr: st.Attr}
	}
}

// Fill paints the whole region with spaces in the given style
func (r Region) Fill(st Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', st)
		}
	}
}

// Width returns the region width in cells
func (r Region) Width() int { return r.W }

// Height returns the region height in cells
func (r Region) Height() int { return r.H }
