// ANSI escape sequence constants and builders
package terminal

import "strconv"

// Control characters
const (
	charESC = 0x1B
	charCSI = '['
	charSS3 = 'O'
	charDEL = 0x7F
	charBEL = 0x07
)

// Escape sequences (direct emission, no terminfo)
const (
	seqClearScreen   = "\x1b[2J"
	seqClearLine     = "\x1b[2K"
	seqCursorHome    = "\x1b[H"
	seqCursorHide    = "\x1b[?25l"
	seqCursorShow    = "\x1b[?25h"
	seqAltScreenOn   = "\x1b[?1049h"
	seqAltScreenOff  = "\x1b[?1049l"
	seqAutoWrapOff   = "\x1b[?7l"
	seqAutoWrapOn    = "\x1b[?7h"
	seqPasteOn       = "\x1b[?2004h"
	seqPasteOff      = "\x1b[?2004l"
	seqResetStyle    = "\x1b[0m"
	seqBold          = "\x1b[1m"
	seqDim           = "\x1b[2m"
	seqItalic        = "\x1b[3m"
	seqUnderline     = "\x1b[4m"
	seqReverse       = "\x1b[7m"
	seqStrikethrough = "\x1b[9m"
)

// Bracketed paste delimiters as they arrive on stdin
const (
	pasteStartSeq = "200~"
	pasteEndSeq   = "\x1b[201~"
)

// writeInt appends a non-negative integer without allocation
func writeInt(buf []byte, n int) []byte {
	if n < 10 {
		return append(buf, byte('0'+n))
	}
	if n < 100 {
		return append(buf, byte('0'+n/10), byte('0'+n%10))
	}
	return strconv.AppendInt(buf, int64(n), 10)
}

// writeCursorPos appends CUP sequence for 0-based coordinates
func writeCursorPos(buf []byte, x, y int) []byte {
	buf = append(buf, charESC, charCSI)
	buf = writeInt(buf, y+1)
	buf = append(buf, ';')
	buf = writeInt(buf, x+1)
	return append(buf, 'H')
}

// writeCursorForward appends CUF sequence, cheaper than CUP for same-row skips
func writeCursorForward(buf []byte, n int) []byte {
	if n <= 0 {
		return buf
	}
	buf = append(buf, charESC, charCSI)
	if n > 1 {
		buf = writeInt(buf, n)
	}
	return append(buf, 'C')
}
