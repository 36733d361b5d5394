package app

import (
	"github.com/lixenwraith/leetterm/editor"
	"github.com/lixenwraith/leetterm/leetcode"
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// Theme holds the application color scheme
type Theme struct {
	Base     tui.Style // screen background
	Text     tui.Style
	Dim      tui.Style
	Title    tui.Style
	Accent   tui.Style
	Selected tui.Style
	Border   tui.Style
	Status   tui.Style // footer/status bar
	Error    tui.Style
	Success  tui.Style
	Warning  tui.Style

	Easy   tui.Style
	Medium tui.Style
	Hard   tui.Style

	Editor editor.RenderStyle
}

// DefaultTheme is a dark scheme matching the editor palette
func DefaultTheme() Theme {
	bg := terminal.RGB{R: 20, G: 20, B: 28}
	text := terminal.RGB{R: 210, G: 210, B: 215}
	dim := terminal.RGB{R: 110, G: 110, B: 130}

	return Theme{
		Base:     tui.Style{Fg: text, Bg: bg},
		Text:     tui.Style{Fg: text, Bg: bg},
		Dim:      tui.Style{Fg: dim, Bg: bg},
		Title:    tui.Style{Fg: terminal.RGB{R: 255, G: 200, B: 80}, Bg: bg}.Bold(),
		Accent:   tui.Style{Fg: terminal.RGB{R: 120, G: 180, B: 255}, Bg: bg},
		Selected: tui.Style{Fg: terminal.RGB{R: 0, G: 0, B: 0}, Bg: terminal.RGB{R: 120, G: 140, B: 200}},
		Border:   tui.Style{Fg: terminal.RGB{R: 80, G: 80, B: 100}, Bg: bg},
		Status:   tui.Style{Fg: terminal.RGB{R: 180, G: 180, B: 190}, Bg: terminal.RGB{R: 40, G: 40, B: 55}},
		Error:    tui.Style{Fg: terminal.RGB{R: 255, G: 95, B: 95}, Bg: bg},
		Success:  tui.Style{Fg: terminal.RGB{R: 95, G: 220, B: 120}, Bg: bg},
		Warning:  tui.Style{Fg: terminal.RGB{R: 255, G: 200, B: 80}, Bg: bg},

		Easy:   tui.Style{Fg: terminal.RGB{R: 95, G: 220, B: 120}, Bg: bg},
		Medium: tui.Style{Fg: terminal.RGB{R: 255, G: 200, B: 80}, Bg: bg},
		Hard:   tui.Style{Fg: terminal.RGB{R: 255, G: 95, B: 95}, Bg: bg},

		Editor: editor.DefaultRenderStyle(),
	}
}

// DifficultyStyle returns the style for a difficulty label
func (t Theme) DifficultyStyle(d leetcode.Difficulty) tui.Style {
	switch d {
	case leetcode.DifficultyEasy:
		return t.Easy
	case leetcode.DifficultyMedium:
		return t.Medium
	case leetcode.DifficultyHard:
		return t.Hard
	default:
		return t.Text
	}
}

// VerdictStyle returns the style for a submission verdict
func (t Theme) VerdictStyle(v leetcode.Verdict) tui.Style {
	if v == leetcode.VerdictAccepted {
		return t.Success
	}
	return t.Error
}
