package tui

// LineType selects the box drawing character set
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0
	boxH  = 1
	boxTR = 2
	boxV  = 3
	boxBL = 4
	boxBR = 5
)

// Box draws a border around the region edge
func (r Region) Box(line LineType, st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.Cell(0, 0, chars[boxTL], st)
	r.Cell(r.W-1, 0, chars[boxTR], st)
	r.Cell(0, r.H-1, chars[boxBL], st)
	r.Cell(r.W-1, r.H-1, chars[boxBR], st)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], st)
		r.Cell(x, r.H-1, chars[boxH], st)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], st)
		r.Cell(r.W-1, y, chars[boxV], st)
	}
}

// Frame draws a titled border and returns the inner content region
func (r Region) Frame(title string, line LineType, st Style) Region {
	r.Box(line, st)
	if title != "" && r.W > 4 {
		t := " " + title + " "
		if RuneLen(t) > r.W-4 {
			t = Truncate(t, r.W-4)
		}
		r.Text(2, 0, t, st.Bold())
	}
	return r.Inset(1)
}

// HLine draws a horizontal line across the region at row y
func (r Region) HLine(y int, line LineType, st Style) {
	if y < 0 || y >= r.H {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, st)
	}
}

// VLine draws a vertical line down the region at column x
func (r Region) VLine(x int, line LineType, st Style) {
	if x < 0 || x >= r.W {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxV]
	for y := 0; y < r.H; y++ {
		r.Cell(x, y, ch, st)
	}
}
