package app

import (
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// ViewMode selects the problem-detail pane arrangement
type ViewMode uint8

const (
	ViewSplit ViewMode = iota
	ViewEditor
	ViewDescription
)

// Next cycles Split → Editor → Description → Split
func (m ViewMode) Next() ViewMode {
	if m >= ViewDescription {
		return ViewSplit
	}
	return m + 1
}

func (m ViewMode) String() string {
	switch m {
	case ViewEditor:
		return "editor"
	case ViewDescription:
		return "description"
	default:
		return "split"
	}
}

// Panes are the rectangles the detail screen draws into. Desc or
// Editor has zero width when the mode hides that pane. DividerX is the
// divider column relative to Body, -1 when there is none.
type Panes struct {
	Header   tui.Region
	Body     tui.Region
	Desc     tui.Region
	Editor   tui.Region
	Footer   tui.Region
	DividerX int
}

// Compose computes pane geometry for a mode within r. The header and
// footer each take one row; Split gives 40% of the remaining width to
// the description, one divider column, and the rest to the editor.
func Compose(r tui.Region, mode ViewMode) Panes {
	p := Panes{DividerX: -1}
	if r.H < 3 || r.W < 3 {
		p.Header = r
		return p
	}

	p.Header = r.Sub(0, 0, r.W, 1)
	p.Footer = r.Sub(0, r.H-1, r.W, 1)
	p.Body = r.Sub(0, 1, r.W, r.H-2)

	switch mode {
	case ViewEditor:
		p.Editor = p.Body
	case ViewDescription:
		p.Desc = p.Body
	default:
		descW := p.Body.W * 2 / 5
		p.Desc = p.Body.Sub(0, 0, descW, p.Body.H)
		p.Editor = p.Body.Sub(descW+1, 0, p.Body.W-descW-1, p.Body.H)
		p.DividerX = descW
	}
	return p
}
