package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func newTestOutput(w, h int) (*outputBuffer, *bytes.Buffer) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorModeTrue)
	o.resize(w, h)
	return o, &sink
}

func blankFrame(w, h int) []Cell {
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = blankCell
	}
	return cells
}

func TestFlushIdenticalFrameWritesNothing(t *testing.T) {
	o, sink := newTestOutput(10, 4)
	frame := blankFrame(10, 4)
	frame[5] = Cell{Rune: 'x', Fg: DefaultColor, Bg: DefaultColor}

	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}
	if sink.Len() == 0 {
		t.Fatal("first flush should paint")
	}

	sink.Reset()
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}
	if sink.Len() != 0 {
		t.Fatalf("second flush wrote %d bytes: %q", sink.Len(), sink.String())
	}
}

func TestFlushEmitsOnlyChangedRun(t *testing.T) {
	o, sink := newTestOutput(20, 5)
	frame := blankFrame(20, 5)
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	sink.Reset()
	frame[2*20+3] = Cell{Rune: 'A', Fg: DefaultColor, Bg: DefaultColor}
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	out := sink.String()
	if !strings.Contains(out, "\x1b[3;4H") {
		t.Errorf("missing cursor move to row 3 col 4: %q", out)
	}
	if !strings.Contains(out, "A") {
		t.Errorf("missing cell content: %q", out)
	}
	// other rows must not be addressed
	if strings.Contains(out, "\x1b[1;") || strings.Contains(out, "\x1b[5;") {
		t.Errorf("touched clean rows: %q", out)
	}
}

func TestFlushSkipsCleanGapBetweenRuns(t *testing.T) {
	o, sink := newTestOutput(20, 1)
	frame := blankFrame(20, 1)
	for x, r := range "aNNNb" {
		frame[x] = Cell{Rune: r, Fg: DefaultColor, Bg: DefaultColor}
	}
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	// two dirty cells with unchanged cells between them
	sink.Reset()
	frame[0].Rune = 'X'
	frame[4].Rune = 'Y'
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	out := sink.String()
	if !strings.Contains(out, "X") || !strings.Contains(out, "Y") {
		t.Fatalf("dirty cells not emitted: %q", out)
	}
	if strings.Contains(out, "N") {
		t.Errorf("unchanged cells re-emitted: %q", out)
	}
}

func TestFlushCoalescesStyleAcrossRun(t *testing.T) {
	o, sink := newTestOutput(20, 2)
	frame := blankFrame(20, 2)
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	sink.Reset()
	red := RGB{R: 255}
	for x := 0; x < 5; x++ {
		frame[x] = Cell{Rune: rune('a' + x), Fg: red, Bg: DefaultColor}
	}
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	out := sink.String()
	if n := strings.Count(out, "38;2;255;0;0"); n != 1 {
		t.Errorf("foreground SGR emitted %d times, want 1: %q", n, out)
	}
	if !strings.Contains(out, "abcde") {
		t.Errorf("run content not contiguous: %q", out)
	}
}

func TestFlushStyleChangeReEmitsSGR(t *testing.T) {
	o, sink := newTestOutput(10, 1)
	frame := blankFrame(10, 1)
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	sink.Reset()
	frame[0] = Cell{Rune: 'a', Fg: RGB{R: 255}, Bg: DefaultColor}
	frame[1] = Cell{Rune: 'b', Fg: RGB{G: 255}, Bg: DefaultColor}
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	out := sink.String()
	if !strings.Contains(out, "38;2;255;0;0") || !strings.Contains(out, "38;2;0;255;0") {
		t.Errorf("expected two distinct foreground SGRs: %q", out)
	}
}

func TestFlushAttrEmission(t *testing.T) {
	o, sink := newTestOutput(10, 1)
	frame := blankFrame(10, 1)
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	sink.Reset()
	frame[0] = Cell{Rune: 'x', Fg: DefaultColor, Bg: DefaultColor, Attr: AttrBold | AttrUnderline}
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	out := sink.String()
	if !strings.Contains(out, "\x1b[1m") || !strings.Contains(out, "\x1b[4m") {
		t.Errorf("missing attribute SGRs: %q", out)
	}
}

func TestResizeForcesFullRedraw(t *testing.T) {
	o, sink := newTestOutput(10, 2)
	frame := blankFrame(10, 2)
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	o.resize(10, 2)
	sink.Reset()
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}
	if sink.Len() == 0 {
		t.Fatal("flush after resize must repaint")
	}
}

func TestInvalidateForcesRepaint(t *testing.T) {
	o, sink := newTestOutput(8, 2)
	frame := blankFrame(8, 2)
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}

	o.invalidate()
	sink.Reset()
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}
	if sink.Len() == 0 {
		t.Fatal("flush after invalidate must repaint")
	}
}

func TestFlushRejectsWrongFrameSize(t *testing.T) {
	o, _ := newTestOutput(10, 2)
	if _, err := o.flush(make([]Cell, 5)); err == nil {
		t.Fatal("expected frame size error")
	}
}

func TestFlush256ColorFallback(t *testing.T) {
	var sink bytes.Buffer
	o := newOutputBuffer(&sink, ColorMode256)
	o.resize(5, 1)

	frame := blankFrame(5, 1)
	frame[0] = Cell{Rune: 'x', Fg: RGB{R: 255}, Bg: DefaultColor}
	if _, err := o.flush(frame); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sink.String(), "38;5;") {
		t.Errorf("expected palette SGR: %q", sink.String())
	}
}

func TestRGBTo256(t *testing.T) {
	cases := []struct {
		c    RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},
		{RGB{255, 255, 255}, 231},
		{RGB{255, 0, 0}, 196},
		{RGB{0, 255, 0}, 46},
		{RGB{0, 0, 255}, 21},
		{RGB{128, 128, 128}, 244}, // grayscale ramp beats the cube
	}
	for _, c := range cases {
		if got := c.c.To256(); got != c.want {
			t.Errorf("%+v: got %d want %d", c.c, got, c.want)
		}
	}
}
