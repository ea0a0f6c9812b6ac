package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qpad/internal/editor"
)

// translateKey maps a terminal key event onto an editor input. Chord
// keys the app consumes itself (save, quit, clipboard) never reach it.
func translateKey(ev *tcell.EventKey) (editor.Input, editor.Modifiers, bool) {
	mods := editor.Modifiers{
		Shift: ev.Modifiers()&tcell.ModShift != 0,
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
		Alt:   ev.Modifiers()&tcell.ModAlt != 0,
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		return editor.KeyInput(editor.KeyLeft), mods, true
	case tcell.KeyRight:
		return editor.KeyInput(editor.KeyRight), mods, true
	case tcell.KeyUp:
		return editor.KeyInput(editor.KeyUp), mods, true
	case tcell.KeyDown:
		return editor.KeyInput(editor.KeyDown), mods, true
	case tcell.KeyHome:
		return editor.KeyInput(editor.KeyHome), mods, true
	case tcell.KeyEnd:
		return editor.KeyInput(editor.KeyEnd), mods, true
	case tcell.KeyEnter:
		return editor.KeyInput(editor.KeyEnter), mods, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.KeyInput(editor.KeyBackspace), mods, true
	case tcell.KeyDelete:
		return editor.KeyInput(editor.KeyDel), mods, true
	case tcell.KeyTab:
		return editor.RuneInput('\t'), mods, true
	case tcell.KeyCtrlE:
		// ctrl+letter arrives as a control code, not a modified rune
		mods.Ctrl = true
		return editor.RuneInput('e'), mods, true
	case tcell.KeyRune:
		return editor.RuneInput(ev.Rune()), mods, true
	}
	return editor.Input{}, editor.Modifiers{}, false
}
