package editor

import "github.com/lixenwraith/leetterm/terminal"

// HandleEvent maps an input event onto the buffer and reports whether
// state changed. Keys not owned by the editor (screen shortcuts) return
// false untouched.
func (e *Editor) HandleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventRune:
		if ev.Mod&terminal.ModAlt != 0 {
			return false
		}
		if ev.Rune >= 32 {
			e.InsertRune(ev.Rune)
			return true
		}
		return false
	case terminal.EventPaste:
		e.InsertText(ev.Text)
		return true
	case terminal.EventKey:
		return e.handleKey(ev.Key, ev.Mod)
	}
	return false
}

func (e *Editor) handleKey(key terminal.Key, mod terminal.Modifier) bool {
	extend := mod&terminal.ModShift != 0
	ctrl := mod&terminal.ModCtrl != 0

	switch key {
	case terminal.KeyUp:
		e.MoveUp(extend)
	case terminal.KeyDown:
		e.MoveDown(extend)
	case terminal.KeyLeft:
		if ctrl {
			e.MoveWordLeft(extend)
		} else {
			e.MoveLeft(extend)
		}
	case terminal.KeyRight:
		if ctrl {
			e.MoveWordRight(extend)
		} else {
			e.MoveRight(extend)
		}
	case terminal.KeyHome:
		if ctrl {
			e.MoveDocStart(extend)
		} else {
			e.MoveLineStart(extend)
		}
	case terminal.KeyEnd:
		if ctrl {
			e.MoveDocEnd(extend)
		} else {
			e.MoveLineEnd(extend)
		}
	case terminal.KeyPageUp:
		e.MovePageUp(extend)
	case terminal.KeyPageDown:
		e.MovePageDown(extend)
	case terminal.KeyEnter:
		e.InsertNewline()
	case terminal.KeyTab:
		e.InsertTab()
	case terminal.KeyBackspace:
		if ctrl {
			return e.DeleteWordBackward()
		}
		return e.Backspace()
	case terminal.KeyDelete:
		if ctrl {
			return e.DeleteWordForward()
		}
		return e.DeleteForward()
	case terminal.KeyCtrlA:
		e.SelectAll()
	case terminal.KeyCtrlE:
		e.MoveLineEnd(false)
	case terminal.KeyCtrlK:
		return e.DeleteToEndOfLine()
	case terminal.KeyCtrlU:
		return e.DeleteToStartOfLine()
	case terminal.KeyCtrlW:
		return e.DeleteWordBackward()
	case terminal.KeyCtrlZ:
		return e.Undo()
	case terminal.KeyCtrlY:
		return e.Redo()
	default:
		return false
	}
	return true
}
