// Raw byte stream parsing into input events
package terminal

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// maxCSILen bounds the scan for a CSI terminator; real sequences from
// xterm-family terminals fit well within this
const maxCSILen = 24

// inputReader converts the raw stdin byte stream into Events.
// A persistent buffer carries partial escape sequences across reads;
// a timed-out read (n=0) flushes a pending lone ESC as KeyEscape.
type inputReader struct {
	backend Backend
	events  chan<- Event
	stop    <-chan struct{}
	buf     []byte
}

func newInputReader(backend Backend, events chan<- Event, stop <-chan struct{}) *inputReader {
	return &inputReader{
		backend: backend,
		events:  events,
		stop:    stop,
		buf:     make([]byte, 0, 4096),
	}
}

// readLoop runs until stop closes. Panics are swallowed so a parser bug
// degrades to lost input rather than a crashed process in raw mode.
func (r *inputReader) readLoop() {
	defer func() {
		_ = recover()
	}()

	chunk := make([]byte, 1024)
	for {
		select {
		case <-r.stop:
			return
		default:
		}

		n, err := r.backend.Read(chunk)
		if err != nil {
			return
		}
		if n == 0 {
			// poll timeout: a buffered lone ESC is a real Escape press,
			// not the start of a sequence
			if len(r.buf) == 1 && r.buf[0] == charESC {
				r.buf = r.buf[:0]
				r.emit(Event{Type: EventKey, Key: KeyEscape})
			}
			continue
		}

		r.buf = append(r.buf, chunk[:n]...)
		r.drain()
	}
}

// drain parses as many complete events as the buffer holds
func (r *inputReader) drain() {
	for len(r.buf) > 0 {
		ev, consumed := parseInput(r.buf)
		if consumed == 0 {
			return // incomplete sequence, wait for more bytes
		}
		r.buf = r.buf[consumed:]
		if ev.Type != EventNone {
			r.emit(ev)
		}
	}
	if len(r.buf) == 0 && cap(r.buf) > 4096 {
		r.buf = make([]byte, 0, 4096)
	}
}

func (r *inputReader) emit(ev Event) {
	select {
	case r.events <- ev:
	case <-r.stop:
	}
}

// parseInput decodes one event from the front of data.
// Returns consumed=0 when data holds an incomplete sequence.
func parseInput(data []byte) (Event, int) {
	b := data[0]

	switch {
	case b == charESC:
		return parseEscape(data)
	case b == '\r':
		return Event{Type: EventKey, Key: KeyEnter}, 1
	case b == '\t':
		return Event{Type: EventKey, Key: KeyTab}, 1
	case b == charDEL || b == 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}, 1
	case b < 0x20:
		if k, ok := ctrlKey(b); ok {
			return Event{Type: EventKey, Key: k, Mod: ModCtrl}, 1
		}
		return Event{}, 1 // unknown control char, drop
	case b < utf8.RuneSelf:
		return Event{Type: EventRune, Rune: rune(b)}, 1
	default:
		return parseRune(data)
	}
}

// parseRune assembles a multibyte UTF-8 sequence
func parseRune(data []byte) (Event, int) {
	n := utf8SeqLen(data[0])
	if n == 0 {
		return Event{}, 1 // invalid lead byte, drop
	}
	if len(data) < n {
		return Event{}, 0
	}
	ru, size := utf8.DecodeRune(data[:n])
	if ru == utf8.RuneError && size <= 1 {
		return Event{}, 1
	}
	return Event{Type: EventRune, Rune: ru}, size
}

func utf8SeqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// parseEscape handles sequences starting with ESC
func parseEscape(data []byte) (Event, int) {
	if len(data) == 1 {
		// could be a lone ESC or a sequence prefix; the read timeout
		// in readLoop resolves the ambiguity
		return Event{}, 0
	}

	switch data[1] {
	case charCSI:
		return parseCSI(data)
	case charSS3:
		if len(data) < 3 {
			return Event{}, 0
		}
		if k, ok := lookupSS3(data[2]); ok {
			return Event{Type: EventKey, Key: k}, 3
		}
		return Event{}, 3
	case charESC:
		// ESC ESC: emit one Escape, keep the second for the next pass
		return Event{Type: EventKey, Key: KeyEscape}, 1
	default:
		// Alt-prefixed key or rune
		ev, n := parseInput(data[1:])
		if n == 0 {
			return Event{}, 0
		}
		if ev.Type == EventRune || ev.Type == EventKey {
			ev.Mod |= ModAlt
		}
		return ev, n + 1
	}
}

// parseCSI handles ESC [ sequences, including bracketed paste framing
func parseCSI(data []byte) (Event, int) {
	// scan for the final byte (0x40-0x7E)
	end := -1
	limit := len(data)
	if limit > maxCSILen {
		limit = maxCSILen
	}
	for i := 2; i < limit; i++ {
		if data[i] >= 0x40 && data[i] <= 0x7E {
			end = i
			break
		}
	}
	if end == -1 {
		if len(data) >= maxCSILen {
			return Event{}, 2 // runaway sequence, drop the introducer
		}
		return Event{}, 0
	}

	body := string(data[2 : end+1])

	if body == pasteStartSeq {
		return parsePaste(data, end+1)
	}

	if k, mod, ok := lookupCSI(body); ok {
		return Event{Type: EventKey, Key: k, Mod: mod}, end + 1
	}
	return Event{}, end + 1 // recognized shape, unknown key: drop
}

// parsePaste collects bytes between ESC[200~ and ESC[201~ into a single
// EventPaste. CR normalizes to LF; other control bytes are stripped so a
// hostile paste cannot inject escape sequences.
func parsePaste(data []byte, start int) (Event, int) {
	idx := bytes.Index(data[start:], []byte(pasteEndSeq))
	if idx == -1 {
		return Event{}, 0 // terminator not arrived yet
	}

	raw := data[start : start+idx]
	var sb strings.Builder
	sb.Grow(len(raw))
	var prev byte
	for _, b := range raw {
		switch {
		case b == '\r':
			sb.WriteByte('\n')
		case b == '\n':
			if prev != '\r' { // CRLF already normalized
				sb.WriteByte('\n')
			}
		case b == '\t':
			sb.WriteByte('\t')
		case b < 0x20 || b == charDEL:
			// strip
		default:
			sb.WriteByte(b)
		}
		prev = b
	}

	consumed := start + idx + len(pasteEndSeq)
	return Event{Type: EventPaste, Text: sb.String()}, consumed
}
