package tui

import "github.com/lixenwraith/leetterm/terminal"

// Style bundles foreground, background, and attributes
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// NewStyle returns a style over the terminal default background
func NewStyle(fg terminal.RGB) Style {
	return Style{Fg: fg, Bg: terminal.DefaultColor}
}

// Bold returns a copy with the bold attribute set
func (s Style) Bold() Style {
	s.Attr |= terminal.AttrBold
	return s
}

// Dim returns a copy with the dim attribute set
func (s Style) Dim() Style {
	s.Attr |= terminal.AttrDim
	return s
}

// Underline returns a copy with the underline attribute set
func (s Style) Underline() Style {
	s.Attr |= terminal.AttrUnderline
	return s
}

// Reverse returns a copy with the reverse attribute set
func (s Style) Reverse() Style {
	s.Attr |= terminal.AttrReverse
	return s
}

// WithBg returns a copy with the given background
func (s Style) WithBg(bg terminal.RGB) Style {
	s.Bg = bg
	return s
}

// WithFg returns a copy with the given foreground
func (s Style) WithFg(fg terminal.RGB) Style {
	s.Fg = fg
	return s
}
