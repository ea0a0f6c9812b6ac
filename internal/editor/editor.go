package editor

import "strings"

const blinkPeriodMillis = 500

// Editor couples a Buffer with a selection, the remembered column for
// vertical movement and the cursor blink state. It knows nothing about
// the screen; rows and columns here are logical rune indices.
type Editor struct {
	buf             *Buffer
	selection       Selection
	lastColumnIndex int
	nextBlinkAt     int64
	showCursor      bool
}

// New returns an editor over a single empty row whose rows hold at
// most maxLineLen runes.
func New(maxLineLen int) *Editor {
	return &Editor{
		buf:       newBuffer(maxLineLen),
		selection: CaretAt(0, 0),
	}
}

// Buffer exposes the underlying line store.
func (e *Editor) Buffer() *Buffer {
	return e.buf
}

func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

func (e *Editor) LineLen(row int) int {
	return e.buf.LineLen(row)
}

// Selection returns the current selection.
func (e *Editor) Selection() Selection {
	return e.selection
}

// CursorPos returns the position of the cursor, which is the floating
// end of a ranged selection.
func (e *Editor) CursorPos() Pos {
	return e.selection.CursorPos()
}

// ShowCursor reports whether the blink cycle currently shows the
// cursor.
func (e *Editor) ShowCursor() bool {
	return e.showCursor
}

// Tick advances the blink clock and reports whether the cursor
// visibility flipped. Callers feed it a monotonic-enough millisecond
// timestamp; at most one flip happens per blink period.
func (e *Editor) Tick(nowMillis int64) bool {
	if nowMillis >= e.nextBlinkAt {
		e.showCursor = !e.showCursor
		e.nextBlinkAt = nowMillis + blinkPeriodMillis
		return true
	}
	return false
}

// SetCursorPos collapses the selection to (row, col) and makes col the
// remembered column for vertical movement.
func (e *Editor) SetCursorPos(row, col int) {
	e.selection = CaretAt(row, col)
	e.lastColumnIndex = col
}

// SetSelection selects from start to end, collapsing when they are
// equal, and remembers the cursor column.
func (e *Editor) SetSelection(start, end Pos) {
	e.selection = NewSelection(start, end)
	e.lastColumnIndex = e.selection.CursorPos().Col
}

// HandleClick collapses the selection onto the clicked cell, clamped
// to the existing content.
func (e *Editor) HandleClick(x, y int) {
	e.selection = Caret(e.clampToContent(x, y))
}

// HandleDrag extends the selection to the dragged-over cell, clamped
// to the existing content.
func (e *Editor) HandleDrag(x, y int) {
	e.selection = e.selection.Extend(e.clampToContent(x, y))
}

func (e *Editor) clampToContent(x, y int) Pos {
	row := y
	if row >= e.buf.LineCount() {
		row = e.buf.LineCount() - 1
	}
	return NewPos(row, min(x, e.buf.LineLen(row)))
}

// SelectedText returns the selected text with rows joined by a
// newline, and false when the selection is collapsed.
func (e *Editor) SelectedText() (string, bool) {
	if !e.selection.IsRange() {
		return "", false
	}
	start := e.selection.First()
	end := e.selection.Second()
	if end.Row > start.Row {
		var sb strings.Builder
		sb.WriteString(string(e.buf.Line(start.Row)[start.Col:]))
		sb.WriteByte('\n')
		for row := start.Row + 1; row < end.Row; row++ {
			sb.WriteString(string(e.buf.Line(row)))
			sb.WriteByte('\n')
		}
		sb.WriteString(string(e.buf.Line(end.Row)[:end.Col]))
		return sb.String(), true
	}
	return string(e.buf.Line(start.Row)[start.Col:end.Col]), true
}

// Content returns the whole buffer with a newline after every row,
// the last one included.
func (e *Editor) Content() string {
	return e.buf.Content()
}

// SetContent replaces the buffer content and puts the cursor at the
// origin. One trailing newline is treated as the terminator Content
// appends, so feeding Content back leaves the row count unchanged.
func (e *Editor) SetContent(text string) {
	e.buf.Clear()
	e.SetCursorPos(0, 0)
	e.buf.insertAt(strings.TrimSuffix(text, "\n"), 0, 0)
}
