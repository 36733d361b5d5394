package tui

// Center returns a w-by-h region centered within outer
func Center(outer Region, w, h int) Region {
	return outer.Sub((outer.W-w)/2, (outer.H-h)/2, w, h)
}

// SplitHFixed splits with a fixed left width, remainder to the right
func SplitHFixed(r Region, leftW int) (left, right Region) {
	if leftW > r.W {
		leftW = r.W
	}
	if leftW < 0 {
		leftW = 0
	}
	left = r.Sub(0, 0, leftW, r.H)
	right = r.Sub(leftW, 0, r.W-leftW, r.H)
	return
}

// SplitVFixed splits with a fixed top height, remainder to the bottom
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = r.Sub(0, 0, r.W, topH)
	bottom = r.Sub(0, topH, r.W, r.H-topH)
	return
}

// SplitH splits horizontally by ratios; ratios are normalized and the
// last region absorbs rounding remainder
func SplitH(r Region, ratios ...float64) []Region {
	if len(ratios) == 0 {
		return nil
	}
	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}

	regions := make([]Region, len(ratios))
	x := 0
	remaining := r.W
	for i, ratio := range ratios {
		var w int
		if i == len(ratios)-1 {
			w = remaining
		} else {
			w = int(float64(r.W)*ratio/sum + 0.5)
			if w > remaining {
				w = remaining
			}
		}
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w
		remaining -= w
	}
	return regions
}

// SplitV splits vertically by ratios
func SplitV(r Region, ratios ...float64) []Region {
	if len(ratios) == 0 {
		return nil
	}
	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}

	regions := make([]Region, len(ratios))
	y := 0
	remaining := r.H
	for i, ratio := range ratios {
		var h int
		if i == len(ratios)-1 {
			h = remaining
		} else {
			h = int(float64(r.H) * ratio / sum)
			if h > remaining {
				h = remaining
			}
		}
		regions[i] = r.Sub(0, y, r.W, h)
		y += h
		remaining -= h
	}
	return regions
}
