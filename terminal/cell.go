package terminal

// Attr is a bitmask of text attributes
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrStrike
)

// Cell is one screen position: a rune plus its style
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Attr Attr
}

// blankCell is the cleared-cell value
var blankCell = Cell{Rune: ' ', Fg: DefaultColor, Bg: DefaultColor}
