// Key identifiers and escape sequence tables
package terminal

// Key identifies a non-printable key
type Key uint16

const (
	KeyNone Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier is a bitmask of held modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// csiEntry maps a CSI sequence body (bytes after ESC [) to a key
type csiEntry struct {
	seq string
	key Key
	mod Modifier
}

// xterm encodes modifiers as 1+bitmask: 2=Shift 3=Alt 4=Shift+Alt
// 5=Ctrl 6=Shift+Ctrl 7=Alt+Ctrl 8=Shift+Alt+Ctrl
var csiSequences = []csiEntry{
	{"A", KeyUp, 0},
	{"B", KeyDown, 0},
	{"C", KeyRight, 0},
	{"D", KeyLeft, 0},
	{"H", KeyHome, 0},
	{"F", KeyEnd, 0},
	{"Z", KeyTab, ModShift},
	{"1~", KeyHome, 0},
	{"2~", KeyInsert, 0},
	{"3~", KeyDelete, 0},
	{"4~", KeyEnd, 0},
	{"5~", KeyPageUp, 0},
	{"6~", KeyPageDown, 0},
	{"7~", KeyHome, 0},
	{"8~", KeyEnd, 0},
	{"11~", KeyF1, 0},
	{"12~", KeyF2, 0},
	{"13~", KeyF3, 0},
	{"14~", KeyF4, 0},
	{"15~", KeyF5, 0},
	{"17~", KeyF6, 0},
	{"18~", KeyF7, 0},
	{"19~", KeyF8, 0},
	{"20~", KeyF9, 0},
	{"21~", KeyF10, 0},
	{"23~", KeyF11, 0},
	{"24~", KeyF12, 0},
}

// modifiedBase lists the keys that xterm emits with a ;mod parameter
var modifiedBase = []struct {
	prefix string
	final  byte
	key    Key
}{
	{"1", 'A', KeyUp},
	{"1", 'B', KeyDown},
	{"1", 'C', KeyRight},
	{"1", 'D', KeyLeft},
	{"1", 'H', KeyHome},
	{"1", 'F', KeyEnd},
	{"3", '~', KeyDelete},
	{"5", '~', KeyPageUp},
	{"6", '~', KeyPageDown},
}

var csiMap map[string]csiEntry

func init() {
	csiMap = make(map[string]csiEntry, len(csiSequences)+len(modifiedBase)*7)
	for _, e := range csiSequences {
		csiMap[e.seq] = e
	}
	// Expand modifier matrix: CSI <prefix> ; <1+mask> <final>
	for _, b := range modifiedBase {
		for mask := Modifier(1); mask <= 7; mask++ {
			seq := b.prefix + ";" + string(byte('1'+mask)) + string(b.final)
			csiMap[seq] = csiEntry{seq: seq, key: b.key, mod: mask}
		}
	}
}

// lookupCSI resolves a CSI body to a key; ok is false for unknown sequences
func lookupCSI(seq string) (Key, Modifier, bool) {
	e, ok := csiMap[seq]
	if !ok {
		return KeyNone, 0, false
	}
	return e.key, e.mod, true
}

// ss3Map covers application-mode cursor and function keys (ESC O x)
var ss3Map = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// lookupSS3 resolves an SS3 final byte to a key
func lookupSS3(b byte) (Key, bool) {
	k, ok := ss3Map[b]
	return k, ok
}

// ctrlKey maps control characters 0x01-0x1A to Ctrl-letter keys.
// 0x09 (Tab), 0x0D (Enter) and 0x1B (Escape) are handled separately.
func ctrlKey(b byte) (Key, bool) {
	switch b {
	case 0x01:
		return KeyCtrlA, true
	case 0x02:
		return KeyCtrlB, true
	case 0x03:
		return KeyCtrlC, true
	case 0x04:
		return KeyCtrlD, true
	case 0x05:
		return KeyCtrlE, true
	case 0x06:
		return KeyCtrlF, true
	case 0x07:
		return KeyCtrlG, true
	case 0x08:
		return KeyCtrlH, true
	case 0x0A:
		return KeyCtrlJ, true
	case 0x0B:
		return KeyCtrlK, true
	case 0x0C:
		return KeyCtrlL, true
	case 0x0E:
		return KeyCtrlN, true
	case 0x0F:
		return KeyCtrlO, true
	case 0x10:
		return KeyCtrlP, true
	case 0x11:
		return KeyCtrlQ, true
	case 0x12:
		return KeyCtrlR, true
	case 0x13:
		return KeyCtrlS, true
	case 0x14:
		return KeyCtrlT, true
	case 0x15:
		return KeyCtrlU, true
	case 0x16:
		return KeyCtrlV, true
	case 0x17:
		return KeyCtrlW, true
	case 0x18:
		return KeyCtrlX, true
	case 0x19:
		return KeyCtrlY, true
	case 0x1A:
		return KeyCtrlZ, true
	}
	return KeyNone, false
}
