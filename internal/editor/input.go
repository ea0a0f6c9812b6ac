package editor

// Key identifies a keyboard event kind fed to the editor.
type Key int

const (
	KeyNone Key = iota
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDel
	KeyEnter
	KeyBackspace
	KeyChar
	KeyText
)

// Input is one keyboard event. Rune carries the character for KeyChar
// and Text the inserted string for KeyText; both are ignored otherwise.
type Input struct {
	Key  Key
	Rune rune
	Text string
}

func KeyInput(k Key) Input     { return Input{Key: k} }
func RuneInput(r rune) Input   { return Input{Key: KeyChar, Rune: r} }
func TextInput(s string) Input { return Input{Key: KeyText, Text: s} }

// Modifiers is the modifier state of a key event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

func ModNone() Modifiers      { return Modifiers{} }
func ModShift() Modifiers     { return Modifiers{Shift: true} }
func ModCtrl() Modifiers      { return Modifiers{Ctrl: true} }
func ModCtrlShift() Modifiers { return Modifiers{Ctrl: true, Shift: true} }

// HandleInput applies one key event to the buffer and selection. It
// returns the index of the first row whose content or selection state
// may have changed, so callers can redraw from there.
func (e *Editor) HandleInput(in Input, mods Modifiers) int {
	oldFirstRow := e.selection.First().Row
	curPos := e.selection.CursorPos()
	switch in.Key {
	case KeyHome:
		newPos := curPos.WithCol(0)
		if mods.Shift {
			e.selection = e.selection.Extend(newPos)
		} else {
			e.selection = Caret(newPos)
		}
		e.lastColumnIndex = e.selection.CursorPos().Col
	case KeyEnd:
		newPos := curPos.WithCol(e.buf.LineLen(curPos.Row))
		if mods.Shift {
			e.selection = e.selection.Extend(newPos)
		} else {
			e.selection = Caret(newPos)
		}
		e.lastColumnIndex = e.selection.CursorPos().Col
	case KeyRight:
		var newPos Pos
		if curPos.Col+1 > e.buf.LineLen(curPos.Row) {
			if curPos.Row+1 < e.buf.LineCount() {
				newPos = NewPos(curPos.Row+1, 0)
			} else {
				newPos = curPos
			}
		} else {
			col := curPos.Col + 1
			if mods.Ctrl {
				col = jumpWordForward(e.buf.Line(curPos.Row), curPos.Col, JumpIgnoreWhitespaces)
			}
			newPos = curPos.WithCol(col)
		}
		if mods.Shift {
			e.selection = e.selection.Extend(newPos)
		} else if e.selection.IsRange() {
			e.selection = Caret(e.selection.Second())
		} else {
			e.selection = Caret(newPos)
		}
		e.lastColumnIndex = e.selection.CursorPos().Col
	case KeyLeft:
		var newPos Pos
		if curPos.Col == 0 {
			if curPos.Row >= 1 {
				newPos = NewPos(curPos.Row-1, e.buf.LineLen(curPos.Row-1))
			} else {
				newPos = curPos
			}
		} else {
			col := curPos.Col - 1
			if mods.Ctrl {
				col = jumpWordBackward(e.buf.Line(curPos.Row), curPos.Col, JumpIgnoreWhitespaces)
			}
			newPos = curPos.WithCol(col)
		}
		if mods.Shift {
			e.selection = e.selection.Extend(newPos)
		} else if e.selection.IsRange() {
			e.selection = Caret(e.selection.First())
		} else {
			e.selection = Caret(newPos)
		}
		e.lastColumnIndex = e.selection.CursorPos().Col
	case KeyUp:
		var newPos Pos
		if curPos.Row == 0 {
			newPos = curPos.WithCol(0)
		} else {
			newPos = NewPos(curPos.Row-1, min(e.lastColumnIndex, e.buf.LineLen(curPos.Row-1)))
		}
		if mods.Shift {
			e.selection = e.selection.Extend(newPos)
		} else {
			e.selection = Caret(newPos)
		}
	case KeyDown:
		var newPos Pos
		if curPos.Row == e.buf.LineCount()-1 {
			newPos = curPos.WithCol(e.buf.LineLen(curPos.Row))
		} else {
			newPos = NewPos(curPos.Row+1, min(e.lastColumnIndex, e.buf.LineLen(curPos.Row+1)))
		}
		if mods.Shift {
			e.selection = e.selection.Extend(newPos)
		} else {
			e.selection = Caret(newPos)
		}
	case KeyDel:
		if e.selection.IsRange() {
			first := e.selection.First()
			e.buf.RemoveRange(first, e.selection.Second())
			e.selection = Caret(first)
		} else if curPos.Col == e.buf.LineLen(curPos.Row) {
			if curPos.Row < e.buf.LineCount()-1 {
				e.buf.MergeWithNextRow(curPos.Row, e.buf.LineLen(curPos.Row), 0)
			}
		} else if mods.Ctrl {
			col := jumpWordForward(e.buf.Line(curPos.Row), curPos.Col, JumpConsiderWhitespaces)
			e.buf.RemoveRange(curPos, curPos.WithCol(col))
		} else {
			e.buf.RemoveChar(curPos.Row, curPos.Col)
		}
	case KeyEnter:
		if e.selection.IsRange() {
			first := e.selection.First()
			e.buf.RemoveRange(first, e.selection.Second())
			e.buf.SplitRow(first.Row, first.Col)
			e.selection = CaretAt(first.Row+1, 0)
		} else {
			e.buf.SplitRow(curPos.Row, curPos.Col)
			e.selection = CaretAt(curPos.Row+1, 0)
		}
	case KeyBackspace:
		if e.selection.IsRange() {
			first := e.selection.First()
			e.buf.RemoveRange(first, e.selection.Second())
			e.selection = Caret(first)
		} else if curPos.Col == 0 {
			if curPos.Row > 0 {
				prevRow := curPos.Row - 1
				prevLen := e.buf.LineLen(prevRow)
				if e.buf.MergeWithNextRow(prevRow, prevLen, 0) {
					e.selection = CaretAt(prevRow, prevLen)
				}
			}
		} else if mods.Ctrl {
			col := jumpWordBackward(e.buf.Line(curPos.Row), curPos.Col, JumpIgnoreWhitespaces)
			newPos := curPos.WithCol(col)
			e.buf.RemoveRange(newPos, curPos)
			e.selection = Caret(newPos)
		} else if e.buf.RemoveChar(curPos.Row, curPos.Col-1) {
			e.selection = Caret(curPos.WithCol(curPos.Col - 1))
		}
	case KeyChar:
		switch {
		case in.Rune == 'e' && mods.Ctrl:
			mode := JumpBlockOnWhitespace
			if e.selection.IsRange() {
				mode = JumpIgnoreWhitespaces
			}
			first := e.selection.First()
			second := e.selection.Second()
			prev := jumpWordBackward(e.buf.Line(first.Row), first.Col, mode)
			next := jumpWordForward(e.buf.Line(second.Row), second.Col, mode)
			e.selection = NewSelection(curPos.WithCol(prev), curPos.WithCol(next))
		case e.selection.IsRange():
			first := e.selection.First()
			second := e.selection.Second()
			if first.Col < e.buf.LineLen(first.Row) {
				// Keep one cell of the selection alive and overwrite
				// it, so the insert cannot fail on a full row. A
				// refused boundary merge skips the overwrite as well.
				first.Col++
				if e.buf.RemoveRange(first, second) {
					e.buf.SetChar(first.Row, first.Col-1, in.Rune)
				}
			} else {
				// The first edge is at the row's end, so there is no
				// cell to keep: remove the range as-is and the char
				// goes in only if the merged row still has room.
				if e.buf.RemoveRange(first, second) && e.buf.InsertChar(first.Row, first.Col, in.Rune) {
					first.Col++
				}
			}
			e.selection = Caret(first)
		default:
			if e.buf.InsertChar(curPos.Row, curPos.Col, in.Rune) {
				e.selection = Caret(curPos.WithCol(curPos.Col + 1))
			}
		}
	case KeyText:
		e.selection = Caret(e.insertText(in.Text, curPos))
	}
	return min(oldFirstRow, e.selection.First().Row)
}

// insertText writes text at pos, pushing the remainder of the row
// behind the inserted block, and returns the position right past the
// block.
func (e *Editor) insertText(text string, pos Pos) Pos {
	tail := string(e.buf.Line(pos.Row)[pos.Col:])
	newPos := e.buf.insertAt(text, pos.Row, pos.Col)
	if len(tail) > 0 {
		e.buf.insertAt(tail, newPos.Row, newPos.Col)
	}
	return newPos
}
