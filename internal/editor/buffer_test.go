package editor

import "testing"

func lineString(b *Buffer, row int) string {
	return string(b.Line(row))
}

func TestNewBufferSingleEmptyRow(t *testing.T) {
	b := newBuffer(10)
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count = %d, want 1", got)
	}
	if got := b.LineLen(0); got != 0 {
		t.Fatalf("line len = %d, want 0", got)
	}
	if got := b.MaxLineLen(); got != 10 {
		t.Fatalf("max line len = %d, want 10", got)
	}
	if got := b.Content(); got != "\n" {
		t.Fatalf("content = %q, want %q", got, "\n")
	}
}

func TestSetCharAppendsRows(t *testing.T) {
	b := newBuffer(10)
	b.SetChar(2, 1, 'x')
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count = %d, want 3", got)
	}
	if got := b.CharAt(2, 1); got != 'x' {
		t.Fatalf("char = %q, want 'x'", got)
	}
	if got := b.LineLen(2); got != 0 {
		t.Fatalf("line len = %d, want 0 after SetChar", got)
	}
}

func TestBufferInsertChar(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("abc", 0, 0)
	if !b.InsertChar(0, 1, 'X') {
		t.Fatalf("insert refused on a non-full row")
	}
	if got := lineString(b, 0); got != "aXbc" {
		t.Fatalf("line = %q, want %q", got, "aXbc")
	}
}

func TestBufferInsertCharFullRow(t *testing.T) {
	b := newBuffer(3)
	b.insertAt("abc", 0, 0)
	if b.InsertChar(0, 0, 'x') {
		t.Fatalf("insert accepted on a full row")
	}
	if got := lineString(b, 0); got != "abc" {
		t.Fatalf("line = %q, want %q untouched", got, "abc")
	}
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count = %d, want 1", got)
	}
}

func TestRemoveChar(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("abc", 0, 0)
	b.RemoveChar(0, 1)
	if got := lineString(b, 0); got != "ac" {
		t.Fatalf("line = %q, want %q", got, "ac")
	}
}

func TestInsertAndRemoveRow(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("aa\nbb", 0, 0)
	b.InsertRowAt(1)
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count = %d, want 3", got)
	}
	if got := b.LineLen(1); got != 0 {
		t.Fatalf("inserted row len = %d, want 0", got)
	}
	if got := lineString(b, 2); got != "bb" {
		t.Fatalf("shifted row = %q, want %q", got, "bb")
	}
	b.RemoveRowAt(1)
	if got := b.Content(); got != "aa\nbb\n" {
		t.Fatalf("content = %q, want %q", got, "aa\nbb\n")
	}
}

func TestSplitRow(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("abcdef", 0, 0)
	b.SplitRow(0, 2)
	if got := lineString(b, 0); got != "ab" {
		t.Fatalf("first row = %q, want %q", got, "ab")
	}
	if got := lineString(b, 1); got != "cdef" {
		t.Fatalf("second row = %q, want %q", got, "cdef")
	}
}

func TestSplitRowAtEnds(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("abc", 0, 0)
	b.SplitRow(0, 0)
	if got := b.Content(); got != "\nabc\n" {
		t.Fatalf("content = %q, want %q", got, "\nabc\n")
	}
	b.SplitRow(1, 3)
	if got := b.Content(); got != "\nabc\n\n" {
		t.Fatalf("content = %q, want %q", got, "\nabc\n\n")
	}
}

func TestMergeWithNextRow(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("ab\ncd", 0, 0)
	if !b.MergeWithNextRow(0, 2, 0) {
		t.Fatalf("merge refused within capacity")
	}
	if got := b.Content(); got != "abcd\n" {
		t.Fatalf("content = %q, want %q", got, "abcd\n")
	}
}

func TestMergeWithNextRowPartial(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("ab\ncd", 0, 0)
	if !b.MergeWithNextRow(0, 1, 1) {
		t.Fatalf("merge refused within capacity")
	}
	if got := lineString(b, 0); got != "ad" {
		t.Fatalf("line = %q, want %q", got, "ad")
	}
}

func TestMergeWithNextRowOverflow(t *testing.T) {
	b := newBuffer(3)
	b.insertAt("ab\ncd", 0, 0)
	if b.MergeWithNextRow(0, 2, 0) {
		t.Fatalf("merge accepted past capacity")
	}
	if got := b.Content(); got != "ab\ncd\n" {
		t.Fatalf("content = %q, want %q untouched", got, "ab\ncd\n")
	}
}

func TestRemoveRangeSameRow(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("abcdef", 0, 0)
	if !b.RemoveRange(NewPos(0, 1), NewPos(0, 4)) {
		t.Fatalf("same-row removal reported failure")
	}
	if got := lineString(b, 0); got != "aef" {
		t.Fatalf("line = %q, want %q", got, "aef")
	}
}

func TestRemoveRangeAcrossRows(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("aaa\nbbb\nccc", 0, 0)
	if !b.RemoveRange(NewPos(0, 1), NewPos(2, 1)) {
		t.Fatalf("cross-row removal reported failure")
	}
	if got := b.Content(); got != "acc\n" {
		t.Fatalf("content = %q, want %q", got, "acc\n")
	}
}

func TestRemoveRangeMergeOverflow(t *testing.T) {
	b := newBuffer(3)
	b.insertAt("aaa\nbbb", 0, 0)
	if b.RemoveRange(NewPos(0, 1), NewPos(1, 1)) {
		t.Fatalf("over-capacity boundary merge reported success")
	}
	// the boundary merge is over capacity, so both rows stay
	if got := b.Content(); got != "aaa\nbbb\n" {
		t.Fatalf("content = %q, want %q", got, "aaa\nbbb\n")
	}
}

func TestInsertAtWrapsAtCapacity(t *testing.T) {
	b := newBuffer(5)
	pos := b.insertAt("abcdefg", 0, 0)
	if got := b.Content(); got != "abcde\nfg\n" {
		t.Fatalf("content = %q, want %q", got, "abcde\nfg\n")
	}
	if pos != NewPos(1, 2) {
		t.Fatalf("end pos = %+v, want {1 2}", pos)
	}
}

func TestInsertAtDropsCarriageReturns(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("a\r\nb\rc", 0, 0)
	if got := b.Content(); got != "a\nbc\n" {
		t.Fatalf("content = %q, want %q", got, "a\nbc\n")
	}
}

func TestClearKeepsRowCount(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("aa\nbb", 0, 0)
	b.Clear()
	if got := b.LineCount(); got != 2 {
		t.Fatalf("line count = %d, want 2", got)
	}
	if got := b.Content(); got != "\n\n" {
		t.Fatalf("content = %q, want %q", got, "\n\n")
	}
}

func TestLinesIterator(t *testing.T) {
	b := newBuffer(10)
	b.insertAt("ab\ncd", 0, 0)
	var got []string
	for line := range b.Lines() {
		got = append(got, string(line))
	}
	if len(got) != 2 || got[0] != "ab" || got[1] != "cd" {
		t.Fatalf("lines = %q, want [ab cd]", got)
	}
}
