// Input event types delivered by Terminal.PollEvent
package terminal

// EventType discriminates Event variants
type EventType uint8

const (
	EventNone EventType = iota
	EventKey            // special key (arrows, function keys, control chords)
	EventRune           // printable character input
	EventResize         // terminal size changed
	EventPaste          // bracketed paste payload
	EventInterrupt      // synthetic wakeup posted via PostEvent
)

// Event is a single decoded input occurrence.
//
// EventKey carries Key and Mod. EventRune carries Rune (Mod is set for
// Alt-prefixed runes). EventResize carries Width/Height. EventPaste
// carries the full paste payload in Text, delivered as one event.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Mod    Modifier
	Width  int
	Height int
	Text   string
}
