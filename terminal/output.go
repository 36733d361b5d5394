// Double-buffered cell diffing and ANSI emission
package terminal

import (
	"io"
	"unicode/utf8"
)

const outputBufSize = 128 * 1024

// outputBuffer diffs candidate frames against the last flushed frame and
// emits only the changed runs. When a frame is identical to the previous
// one, Flush writes zero bytes.
type outputBuffer struct {
	out       io.Writer
	colorMode ColorMode

	w, h  int
	front []Cell // last frame known to be on screen

	buf []byte // pending escape bytes for the current flush

	// style state carried across emitted runs within a flush
	curFg, curBg RGB
	curAttr      Attr
	styleValid   bool

	// physical cursor position after the last emitted byte
	penX, penY int
	penValid   bool

	forceRedraw bool
	generation  uint64 // frames actually written
}

func newOutputBuffer(out io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		out:       out,
		colorMode: colorMode,
		buf:       make([]byte, 0, outputBufSize),
	}
}

// resize reallocates the front buffer and forces a full repaint
func (o *outputBuffer) resize(w, h int) {
	o.w, o.h = w, h
	o.front = make([]Cell, w*h)
	for i := range o.front {
		o.front[i] = blankCell
	}
	o.forceRedraw = true
}

// invalidate forces the next flush to repaint every cell
func (o *outputBuffer) invalidate() {
	o.forceRedraw = true
}

// flush diffs cells against the front buffer and writes the delta.
// len(cells) must equal w*h. Returns bytes written.
func (o *outputBuffer) flush(cells []Cell) (int, error) {
	if len(cells) != o.w*o.h {
		return 0, errFrameSize
	}

	o.buf = o.buf[:0]
	o.styleValid = false
	o.penValid = false

	for y := 0; y < o.h; y++ {
		o.flushRow(cells, y)
	}

	if len(o.buf) == 0 {
		o.forceRedraw = false
		return 0, nil
	}

	// leave the terminal in a known style for whatever runs after us
	o.buf = append(o.buf, seqResetStyle...)
	o.styleValid = false

	n, err := o.out.Write(o.buf)
	if err != nil {
		return n, err
	}
	copy(o.front, cells)
	o.forceRedraw = false
	o.generation++
	return n, nil
}

// flushRow emits the dirty runs of row y
func (o *outputBuffer) flushRow(cells []Cell, y int) {
	base := y * o.w
	x := 0
	for x < o.w {
		// skip clean cells
		if !o.forceRedraw {
			for x < o.w && cells[base+x] == o.front[base+x] {
				x++
			}
		}
		if x >= o.w {
			return
		}

		// maximal dirty run; clean cells are never re-emitted, so output
		// stays bounded by the visual delta
		end := x + 1
		for end < o.w && (o.forceRedraw || cells[base+end] != o.front[base+end]) {
			end++
		}

		o.moveTo(x, y)
		for i := x; i < end; i++ {
			o.writeCell(cells[base+i])
		}
		o.penX = end
		x = end
	}
}

// moveTo positions the pen, preferring cheap cursor-forward moves
func (o *outputBuffer) moveTo(x, y int) {
	if o.penValid && o.penY == y && x >= o.penX {
		if x == o.penX {
			return
		}
		o.buf = writeCursorForward(o.buf, x-o.penX)
	} else {
		o.buf = writeCursorPos(o.buf, x, y)
	}
	o.penX, o.penY = x, y
	o.penValid = true
}

// writeCell emits one cell, re-emitting style only when it changes
func (o *outputBuffer) writeCell(c Cell) {
	if !o.styleValid || c.Fg != o.curFg || c.Bg != o.curBg || c.Attr != o.curAttr {
		o.writeStyle(c)
	}
	r := c.Rune
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		o.buf = append(o.buf, byte(r))
	} else {
		o.buf = appendRune(o.buf, r)
	}
}

// writeStyle emits a full SGR sequence for the cell's style
func (o *outputBuffer) writeStyle(c Cell) {
	o.buf = append(o.buf, seqResetStyle...)
	if c.Attr&AttrBold != 0 {
		o.buf = append(o.buf, seqBold...)
	}
	if c.Attr&AttrDim != 0 {
		o.buf = append(o.buf, seqDim...)
	}
	if c.Attr&AttrItalic != 0 {
		o.buf = append(o.buf, seqItalic...)
	}
	if c.Attr&AttrUnderline != 0 {
		o.buf = append(o.buf, seqUnderline...)
	}
	if c.Attr&AttrReverse != 0 {
		o.buf = append(o.buf, seqReverse...)
	}
	if c.Attr&AttrStrike != 0 {
		o.buf = append(o.buf, seqStrikethrough...)
	}
	if !c.Fg.IsDefault() {
		o.buf = o.writeColor(o.buf, c.Fg, 38)
	}
	if !c.Bg.IsDefault() {
		o.buf = o.writeColor(o.buf, c.Bg, 48)
	}
	o.curFg, o.curBg, o.curAttr = c.Fg, c.Bg, c.Attr
	o.styleValid = true
}

// writeColor appends SGR 38/48 in the active color mode
func (o *outputBuffer) writeColor(buf []byte, c RGB, base int) []byte {
	buf = append(buf, charESC, charCSI)
	buf = writeInt(buf, base)
	if o.colorMode == ColorModeTrue {
		buf = append(buf, ';', '2', ';')
		buf = writeInt(buf, int(c.R))
		buf = append(buf, ';')
		buf = writeInt(buf, int(c.G))
		buf = append(buf, ';')
		buf = writeInt(buf, int(c.B))
	} else {
		buf = append(buf, ';', '5', ';')
		buf = writeInt(buf, int(c.To256()))
	}
	return append(buf, 'm')
}

// appendRune encodes r as UTF-8 without allocation
func appendRune(buf []byte, r rune) []byte {
	var tmp [4]byte
	n := utf8.EncodeRune(tmp[:], r)
	return append(buf, tmp[:n]...)
}
