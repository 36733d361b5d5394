package editor

import (
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// Span styles a half-open rune range [Start, End) within one line
type Span struct {
	Start int
	End   int
	Style tui.Style
}

// LineStyler supplies syntax spans for a line; nil spans render the
// whole line in the base text style
type LineStyler func(lineIdx int) []Span

// RenderOpts configures editor rendering
type RenderOpts struct {
	LineNumbers bool
	Focused     bool
	Styler      LineStyler
	Style       RenderStyle
}

// RenderStyle defines editor colors
type RenderStyle struct {
	Text        tui.Style
	LineNum     tui.Style
	CurrentLine tui.Style
	Selection   tui.Style
}

// DefaultRenderStyle returns a dark-background scheme
func DefaultRenderStyle() RenderStyle {
	return RenderStyle{
		Text: tui.Style{
			Fg: terminal.RGB{R: 220, G: 220, B: 220},
			Bg: terminal.RGB{R: 25, G: 25, B: 35},
		},
		LineNum: tui.Style{
			Fg: terminal.RGB{R: 100, G: 100, B: 120},
			Bg: terminal.RGB{R: 30, G: 30, B: 40},
		},
		CurrentLine: tui.Style{
			Fg: terminal.RGB{R: 220, G: 220, B: 220},
			Bg: terminal.RGB{R: 35, G: 35, B: 50},
		},
		Selection: tui.Style{
			Fg: terminal.RGB{R: 0, G: 0, B: 0},
			Bg: terminal.RGB{R: 120, G: 140, B: 200},
		},
	}
}

// Render draws the buffer into r and returns the cursor's screen
// position relative to r, with visible=false when scrolled offscreen.
// It also records the viewport and follows the cursor.
func (e *Editor) Render(r tui.Region, opts RenderOpts) (cursorX, cursorY int, visible bool) {
	if r.W < 2 || r.H < 1 {
		return 0, 0, false
	}

	style := opts.Style
	if style == (RenderStyle{}) {
		style = DefaultRenderStyle()
	}

	gutterW := 0
	if opts.LineNumbers {
		digits := 1
		for n := len(e.lines); n >= 10; n /= 10 {
			digits++
		}
		gutterW = digits + 1
	}

	contentW := r.W - gutterW
	contentH := r.H
	if contentW < 1 {
		return 0, 0, false
	}

	e.FollowCursor(contentW, contentH)

	selStart, selEnd, hasSel := e.Selection()

	for y := 0; y < contentH; y++ {
		lineIdx := e.scrollY + y
		onCursorLine := lineIdx == e.cursor.Line

		base := style.Text
		if onCursorLine && opts.Focused && !hasSel {
			base = style.CurrentLine
		}

		if opts.LineNumbers {
			gutter := r.Sub(0, y, gutterW, 1)
			gutter.Fill(style.LineNum)
			if lineIdx < len(e.lines) {
				gutter.TextRight(0, formatLineNum(lineIdx+1, gutterW-1)+" ", style.LineNum)
			}
		}

		text := r.Sub(gutterW, y, contentW, 1)
		text.Fill(base)

		if lineIdx >= len(e.lines) {
			continue
		}
		line := []rune(e.lines[lineIdx])

		var spans []Span
		if opts.Styler != nil {
			spans = opts.Styler(lineIdx)
		}

		for x := 0; x < contentW; x++ {
			charIdx := e.scrollX + x
			if charIdx >= len(line) {
				break
			}
			st := base
			if sp := spanAt(spans, charIdx); sp != nil {
				st = sp.Style
				st.Bg = base.Bg
			}
			if hasSel && inSelection(Position{Line: lineIdx, Col: charIdx}, selStart, selEnd) {
				st = style.Selection
			}
			text.Cell(x, 0, line[charIdx], st)
		}

		// a selection crossing the newline shows as one highlighted
		// cell past the line end
		if hasSel && lineIdx >= selStart.Line && lineIdx < selEnd.Line {
			eolX := len(line) - e.scrollX
			if eolX >= 0 && eolX < contentW {
				text.Cell(eolX, 0, ' ', style.Selection)
			}
		}

		if e.scrollX > 0 && len(line) > 0 {
			text.Cell(0, 0, '◀', style.LineNum.Dim().WithBg(base.Bg))
		}
		if e.scrollX+contentW < len(line) {
			text.Cell(contentW-1, 0, '▶', style.LineNum.Dim().WithBg(base.Bg))
		}
	}

	if e.scrollY > 0 {
		r.Cell(r.W-1, 0, '▲', style.LineNum.Dim())
	}
	if e.scrollY+contentH < len(e.lines) {
		r.Cell(r.W-1, contentH-1, '▼', style.LineNum.Dim())
	}

	cx := gutterW + e.cursor.Col - e.scrollX
	cy := e.cursor.Line - e.scrollY
	if cy < 0 || cy >= contentH || cx < gutterW || cx >= r.W {
		return 0, 0, false
	}
	return cx, cy, opts.Focused
}

// spanAt returns the span containing rune index col, or nil
func spanAt(spans []Span, col int) *Span {
	for i := range spans {
		if col >= spans[i].Start && col < spans[i].End {
			return &spans[i]
		}
	}
	return nil
}

// inSelection reports whether p falls in [start, end)
func inSelection(p, start, end Position) bool {
	if p.Less(start) {
		return false
	}
	return p.Less(end)
}

// formatLineNum right-aligns num to width
func formatLineNum(num, width int) string {
	s := ""
	for num > 0 {
		s = string(rune('0'+num%10)) + s
		num /= 10
	}
	if s == "" {
		s = "0"
	}
	for len(s) < width {
		s = " " + s
	}
	return s
}
