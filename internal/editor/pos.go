package editor

// Pos addresses a buffer cell by row and column. Col counts runes from
// the start of the row, not bytes.
type Pos struct {
	Row int
	Col int
}

func NewPos(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// WithCol returns the position moved to col on the same row.
func (p Pos) WithCol(col int) Pos {
	return Pos{Row: p.Row, Col: col}
}

// Compare orders two positions in document order: by row, then by
// column within the row. It returns -1, 0 or 1.
func (p Pos) Compare(o Pos) int {
	switch {
	case p.Row < o.Row:
		return -1
	case p.Row > o.Row:
		return 1
	case p.Col < o.Col:
		return -1
	case p.Col > o.Col:
		return 1
	}
	return 0
}

// Before reports whether p comes strictly earlier in the document than o.
func (p Pos) Before(o Pos) bool {
	return p.Compare(o) < 0
}

// Selection is a caret or a range over the buffer. The anchor stays
// pinned where the selection began; the end floats as the selection is
// extended and may precede the anchor in document order.
type Selection struct {
	anchor Pos
	end    Pos
	ranged bool
}

// Caret returns a collapsed selection at p.
func Caret(p Pos) Selection {
	return Selection{anchor: p}
}

// CaretAt returns a collapsed selection at (row, col).
func CaretAt(row, col int) Selection {
	return Selection{anchor: Pos{Row: row, Col: col}}
}

// NewSelection returns the range from anchor to end. Equal endpoints
// collapse to a caret.
func NewSelection(anchor, end Pos) Selection {
	if anchor == end {
		return Caret(end)
	}
	return Selection{anchor: anchor, end: end, ranged: true}
}

// IsRange reports whether the selection spans at least one cell.
func (s Selection) IsRange() bool {
	return s.ranged
}

// Anchor returns the fixed endpoint.
func (s Selection) Anchor() Pos {
	return s.anchor
}

// First returns whichever endpoint comes earlier in document order.
func (s Selection) First() Pos {
	if s.ranged && s.end.Before(s.anchor) {
		return s.end
	}
	return s.anchor
}

// Second returns whichever endpoint comes later in document order.
func (s Selection) Second() Pos {
	if s.ranged && s.anchor.Before(s.end) {
		return s.end
	}
	return s.anchor
}

// CursorPos returns the position the caret occupies: the floating end
// when ranged, the anchor otherwise.
func (s Selection) CursorPos() Pos {
	if s.ranged {
		return s.end
	}
	return s.anchor
}

// Extend keeps the anchor and floats the end to pos, collapsing back to
// a caret when pos lands on the anchor.
func (s Selection) Extend(pos Pos) Selection {
	if s.anchor == pos {
		return Caret(pos)
	}
	return NewSelection(s.anchor, pos)
}
