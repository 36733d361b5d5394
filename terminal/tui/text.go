package tui

// Text renders s at (x,y), truncating at the region edge
func (r Region) Text(x, y int, s string, st Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := 0
	for _, ch := range s {
		if x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, st)
		}
		col++
	}
}

// TextCenter renders s centered on row y
func (r Region) TextCenter(y int, s string, st Style) {
	r.Text((r.W-RuneLen(s))/2, y, s, st)
}

// TextRight renders s right-aligned on row y
func (r Region) TextRight(y int, s string, st Style) {
	r.Text(r.W-RuneLen(s), y, s, st)
}

// TextBlock renders word-wrapped text from (x,y) downward and returns
// the number of lines rendered
func (r Region) TextBlock(x, y int, text string, st Style) int {
	if x >= r.W || y >= r.H || text == "" {
		return 0
	}
	availW := r.W - x
	if availW < 1 {
		return 0
	}
	rendered := 0
	for i, line := range WrapText(text, availW) {
		if y+i >= r.H {
			break
		}
		r.Text(x, y+i, line, st)
		rendered++
	}
	return rendered
}

// Truncate shortens s to maxLen runes with an ellipsis suffix
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// PadRight pads s with spaces to width runes
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	out := make([]rune, width)
	copy(out, runes)
	for i := len(runes); i < width; i++ {
		out[i] = ' '
	}
	return string(out)
}

// RuneLen returns the rune count of s
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// RepeatRune returns n copies of r as a string
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}

// WrapText wraps s at word boundaries into lines of at most width runes.
// Words longer than width are broken mid-word.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lastSpace := -1

	for i := 0; i <= len(runes); i++ {
		if i-lineStart >= width || i == len(runes) {
			if i == len(runes) {
				if lineStart < len(runes) {
					lines = append(lines, string(runes[lineStart:]))
				}
				break
			}

			wrapAt := i
			if lastSpace > lineStart {
				wrapAt = lastSpace
			}
			lines = append(lines, string(runes[lineStart:wrapAt]))

			if wrapAt < len(runes) && runes[wrapAt] == ' ' {
				lineStart = wrapAt + 1
			} else {
				lineStart = wrapAt
			}
			lastSpace = -1
		}

		if i < len(runes) && runes[i] == ' ' {
			lastSpace = i
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
