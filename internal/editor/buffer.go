package editor

import (
	"iter"
	"strings"
)

// Buffer is the line store: a single rune slice holding every row at a
// fixed stride of maxLineLen cells, plus the current length of each
// row. Cells past a row's length keep stale content and are never
// exposed. Row and column arguments must be in bounds; violating that
// is a caller bug and panics via slice indexing.
type Buffer struct {
	maxLineLen int
	canvas     []rune
	lens       []int
}

func newBuffer(maxLineLen int) *Buffer {
	b := &Buffer{
		maxLineLen: maxLineLen,
		canvas:     make([]rune, 0, maxLineLen*32),
		lens:       make([]int, 0, 32),
	}
	b.pushRow()
	return b
}

func (b *Buffer) pushRow() {
	b.canvas = append(b.canvas, make([]rune, b.maxLineLen)...)
	b.lens = append(b.lens, 0)
}

// MaxLineLen returns the fixed per-row capacity in runes.
func (b *Buffer) MaxLineLen() int {
	return b.maxLineLen
}

// LineCount returns the number of rows.
func (b *Buffer) LineCount() int {
	return len(b.lens)
}

// LineLen returns the current length of row.
func (b *Buffer) LineLen(row int) int {
	return b.lens[row]
}

func (b *Buffer) cell(row, col int) int {
	return row*b.maxLineLen + col
}

// Line returns the visible content of row as a view into the canvas.
// The view is only valid until the next mutation.
func (b *Buffer) Line(row int) []rune {
	from := row * b.maxLineLen
	return b.canvas[from : from+b.lens[row]]
}

// CharAt returns the rune stored at (row, col).
func (b *Buffer) CharAt(row, col int) rune {
	return b.canvas[b.cell(row, col)]
}

// SetChar overwrites the cell at (row, col) without touching the row
// length, appending empty rows first when row is past the last one.
func (b *Buffer) SetChar(row, col int, ch rune) {
	for r := b.LineCount(); r <= row; r++ {
		b.pushRow()
	}
	b.canvas[b.cell(row, col)] = ch
}

// InsertChar shifts the tail of the row right by one cell and writes ch
// at col. It reports false, mutating nothing, when the row is full.
func (b *Buffer) InsertChar(row, col int, ch rune) bool {
	if b.lens[row] == b.maxLineLen {
		return false
	}
	from := b.cell(row, col)
	to := b.cell(row, b.lens[row])
	copy(b.canvas[from+1:to+1], b.canvas[from:to])
	b.canvas[from] = ch
	b.lens[row]++
	return true
}

// RemoveChar shifts the tail of the row left over the cell at col.
func (b *Buffer) RemoveChar(row, col int) bool {
	from := b.cell(row, col)
	to := b.cell(row, b.lens[row])
	copy(b.canvas[from:to-1], b.canvas[from+1:to])
	b.lens[row]--
	return true
}

// InsertRowAt splices an empty row in at index, shifting the storage of
// every following row down by one stride.
func (b *Buffer) InsertRowAt(index int) {
	at := index * b.maxLineLen
	b.canvas = append(b.canvas, make([]rune, b.maxLineLen)...)
	copy(b.canvas[at+b.maxLineLen:], b.canvas[at:len(b.canvas)-b.maxLineLen])
	for i := at; i < at+b.maxLineLen; i++ {
		b.canvas[i] = 0
	}
	b.lens = append(b.lens, 0)
	copy(b.lens[index+1:], b.lens[index:len(b.lens)-1])
	b.lens[index] = 0
}

// RemoveRowAt deletes the row at index, shifting later rows up.
func (b *Buffer) RemoveRowAt(index int) {
	from := index * b.maxLineLen
	b.canvas = append(b.canvas[:from], b.canvas[from+b.maxLineLen:]...)
	b.lens = append(b.lens[:index], b.lens[index+1:]...)
}

// SplitRow moves the tail of row starting at col onto a fresh row
// inserted right below it.
func (b *Buffer) SplitRow(row, col int) {
	b.InsertRowAt(row + 1)
	from := b.cell(row, col)
	to := b.cell(row, b.lens[row])
	copy(b.canvas[b.cell(row+1, 0):], b.canvas[from:to])
	b.lens[row+1] = to - from
	b.lens[row] = col
}

// MergeWithNextRow appends the next row's content from secondCol onward
// to row at firstCol, then drops the next row. It reports false and
// mutates nothing when the two rows' full lengths together exceed the
// row capacity.
func (b *Buffer) MergeWithNextRow(row, firstCol, secondCol int) bool {
	if b.lens[row]+b.lens[row+1] > b.maxLineLen {
		return false
	}
	dst := b.cell(row, firstCol)
	from := b.cell(row+1, secondCol)
	to := b.cell(row+1, b.lens[row+1])
	copy(b.canvas[dst:], b.canvas[from:to])
	b.lens[row] = firstCol + (to - from)
	b.RemoveRowAt(row + 1)
	return true
}

// RemoveRange deletes everything between two positions given in
// document order and reports whether the deletion fully went through.
// Across rows it drops the fully covered interior rows and merges the
// two boundary rows; a failed merge (capacity) leaves those two as
// separate rows and reports false.
func (b *Buffer) RemoveRange(first, second Pos) bool {
	if second.Row > first.Row {
		for r := first.Row + 1; r < second.Row; r++ {
			b.RemoveRowAt(first.Row + 1)
		}
		return b.MergeWithNextRow(first.Row, first.Col, second.Col)
	}
	from := b.cell(first.Row, first.Col)
	copy(b.canvas[from:], b.canvas[b.cell(first.Row, second.Col):b.cell(first.Row, b.lens[first.Row])])
	b.lens[first.Row] -= second.Col - first.Col
	return true
}

// insertAt writes text into the canvas starting at (row, col),
// overwriting cells in place: carriage returns are dropped, a newline
// finishes the current row and starts a fresh one, and filling a row to
// capacity wraps the rest onto a fresh row as well. It returns the
// position just past the last written rune. Callers keep any row tail
// they still need before calling.
func (b *Buffer) insertAt(text string, row, col int) Pos {
	for _, ch := range text {
		if ch == '\r' {
			continue
		}
		if ch == '\n' {
			b.lens[row] = col
			row++
			b.InsertRowAt(row)
			col = 0
			continue
		}
		if col == b.maxLineLen {
			b.lens[row] = col
			row++
			b.InsertRowAt(row)
			col = 0
		}
		b.SetChar(row, col, ch)
		col++
	}
	b.lens[row] = col
	return Pos{Row: row, Col: col}
}

// Clear zeroes every row's length. Rows and their storage stay.
func (b *Buffer) Clear() {
	for i := range b.lens {
		b.lens[i] = 0
	}
}

// Lines yields each row's visible content in order. The yielded slices
// are views and only valid during the iteration step.
func (b *Buffer) Lines() iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		for row := 0; row < len(b.lens); row++ {
			if !yield(b.Line(row)) {
				return
			}
		}
	}
}

// Content joins every row with a newline, including one after the last
// row.
func (b *Buffer) Content() string {
	var sb strings.Builder
	sb.Grow(len(b.canvas) + b.LineCount())
	for line := range b.Lines() {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
