package session

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	return m
}

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	m := newTestManager(t)
	want := FileState{
		CursorRow:         3,
		CursorCol:         14,
		ScrollY:           1,
		SelectionActive:   true,
		SelectionStartRow: 3,
		SelectionStartCol: 2,
		SelectionEndRow:   3,
		SelectionEndCol:   14,
	}
	m.SetFileState("/tmp/notes.txt", want)
	m.Stop()

	m2 := newTestManager(t)
	defer m2.Stop()
	got, ok := m2.GetFileState("/tmp/notes.txt")
	if !ok {
		t.Fatalf("GetFileState after reload: not found")
	}
	if got != want {
		t.Fatalf("FileState = %+v, want %+v", got, want)
	}
	if m2.GetActiveFile() != "/tmp/notes.txt" {
		t.Fatalf("ActiveFile = %q, want %q", m2.GetActiveFile(), "/tmp/notes.txt")
	}
}

func TestGetFileStateMissing(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	m := newTestManager(t)
	defer m.Stop()
	if _, ok := m.GetFileState("/nowhere/else.txt"); ok {
		t.Fatalf("GetFileState for unknown path should report not found")
	}
}

func TestSaveSkipsWhenClean(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	m := newTestManager(t)
	defer m.Stop()
	if err := m.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	path := filepath.Join(dir, "qpad", "session.json")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("clean Save should not write %s", path)
	}

	m.SetFileState("/tmp/a.txt", FileState{CursorRow: 1})
	if err := m.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("dirty Save should write the session file: %v", err)
	}
}
