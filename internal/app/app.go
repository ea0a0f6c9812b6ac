package app

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qpad/internal/config"
	"github.com/kobzarvs/qpad/internal/editor"
	"github.com/kobzarvs/qpad/internal/logger"
	"github.com/kobzarvs/qpad/internal/session"
)

// App is the top-level runtime for qpad.
type App struct {
	args []string

	cfg      config.Config
	ed       *editor.Editor
	sessions *session.Manager
	styles   styleSet

	filePath string // absolute, empty for an unnamed scratch
	dirty    bool
	status   string

	scrollY  int
	dragging bool

	clipboard string

	pasting  bool
	pasteBuf strings.Builder
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.styles = newStyleSet(cfg.Theme)
	a.ed = editor.New(cfg.Editor.MaxLineLen)

	if sm, err := session.NewManager(); err == nil {
		a.sessions = sm
	} else {
		logger.Warn("session manager unavailable", "err", err)
	}

	if len(a.args) > 0 {
		if err := a.openFile(a.args[0]); err != nil {
			return err
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.EnableMouse()
	s.EnablePaste()
	defer s.Fini()

	stopBlink := make(chan struct{})
	defer close(stopBlink)
	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stopBlink:
				return
			case <-ticker.C:
				_ = s.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	defer a.shutdown()

	a.render(s)
	for {
		ev := s.PollEvent()
		scrolled := false
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if a.pasting {
				a.bufferPasteKey(ev)
				continue
			}
			if quit := a.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventPaste:
			if ev.Start() {
				a.pasting = true
				a.pasteBuf.Reset()
				continue
			}
			a.pasting = false
			a.paste(a.pasteBuf.String())
		case *tcell.EventMouse:
			scrolled = a.handleMouse(ev)
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventInterrupt:
			if !a.ed.Tick(time.Now().UnixMilli()) {
				continue
			}
		}
		if !scrolled {
			a.followCaret(s)
		}
		a.render(s)
	}
}

// handleKey reports whether the app should quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlS:
		a.save()
		return false
	case tcell.KeyCtrlC:
		a.copySelection()
		return false
	case tcell.KeyCtrlX:
		a.cutSelection()
		return false
	case tcell.KeyCtrlV:
		a.paste(a.clipboard)
		return false
	}
	if in, mods, ok := translateKey(ev); ok {
		a.apply(in, mods)
	}
	return false
}

func (a *App) apply(in editor.Input, mods editor.Modifiers) {
	a.ed.HandleInput(in, mods)
	if editsBuffer(in, mods) {
		a.dirty = true
		a.status = ""
	}
}

func editsBuffer(in editor.Input, mods editor.Modifiers) bool {
	switch in.Key {
	case editor.KeyChar:
		// ctrl+e only grows the selection
		return !mods.Ctrl || in.Rune != 'e'
	case editor.KeyText, editor.KeyEnter, editor.KeyBackspace, editor.KeyDel:
		return true
	}
	return false
}

func (a *App) bufferPasteKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		a.pasteBuf.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		a.pasteBuf.WriteByte('\n')
	case tcell.KeyTab:
		a.pasteBuf.WriteByte('\t')
	}
}

func (a *App) copySelection() {
	if text, ok := a.ed.SelectedText(); ok {
		a.clipboard = text
	}
}

func (a *App) cutSelection() {
	text, ok := a.ed.SelectedText()
	if !ok {
		return
	}
	a.clipboard = text
	a.apply(editor.KeyInput(editor.KeyDel), editor.ModNone())
}

// paste replaces any active selection with text.
func (a *App) paste(text string) {
	if text == "" {
		return
	}
	if a.ed.Selection().IsRange() {
		a.apply(editor.KeyInput(editor.KeyDel), editor.ModNone())
	}
	a.apply(editor.TextInput(text), editor.ModNone())
}

// handleMouse reports whether the event was a wheel scroll, which
// must not be undone by caret following.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	btns := ev.Buttons()
	if btns&tcell.WheelUp != 0 {
		a.scrollBy(-3)
		return true
	}
	if btns&tcell.WheelDown != 0 {
		a.scrollBy(3)
		return true
	}
	if btns&tcell.Button1 == 0 {
		a.dragging = false
		return false
	}
	x, y := ev.Position()
	row := min(max(0, y+a.scrollY), a.ed.LineCount()-1)
	col := colFromVisual(a.ed.Buffer().Line(row), x-a.gutterWidth(), a.cfg.Editor.TabWidth)
	if a.dragging {
		a.ed.HandleDrag(col, row)
	} else {
		a.ed.HandleClick(col, row)
		a.dragging = true
	}
	return false
}

func (a *App) scrollBy(delta int) {
	a.scrollY = min(a.scrollY+delta, a.ed.LineCount()-1)
	if a.scrollY < 0 {
		a.scrollY = 0
	}
}

func (a *App) followCaret(s tcell.Screen) {
	_, h := s.Size()
	viewH := h - 1
	if viewH <= 0 {
		return
	}
	row := a.ed.CursorPos().Row
	if row < a.scrollY {
		a.scrollY = row
	}
	if row >= a.scrollY+viewH {
		a.scrollY = row - viewH + 1
	}
}

func (a *App) openFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(abs)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	a.filePath = abs
	a.ed.SetContent(string(data))
	a.restoreSession()
	logger.Info("opened file", "path", abs, "lines", a.ed.LineCount())
	return nil
}

func (a *App) save() {
	if a.filePath == "" {
		a.status = "no file name"
		return
	}
	if err := os.WriteFile(a.filePath, []byte(a.ed.Content()), 0o644); err != nil {
		a.status = err.Error()
		logger.Error("save failed", "path", a.filePath, "err", err)
		return
	}
	a.dirty = false
	a.status = "saved " + filepath.Base(a.filePath)
	logger.Info("saved file", "path", a.filePath)
}

func (a *App) restoreSession() {
	if a.sessions == nil || a.filePath == "" {
		return
	}
	st, ok := a.sessions.GetFileState(a.filePath)
	if !ok {
		return
	}
	row := a.clampRow(st.CursorRow)
	a.ed.SetCursorPos(row, min(max(0, st.CursorCol), a.ed.LineLen(row)))
	if st.SelectionActive {
		sr := a.clampRow(st.SelectionStartRow)
		er := a.clampRow(st.SelectionEndRow)
		a.ed.SetSelection(
			editor.NewPos(sr, min(max(0, st.SelectionStartCol), a.ed.LineLen(sr))),
			editor.NewPos(er, min(max(0, st.SelectionEndCol), a.ed.LineLen(er))),
		)
	}
	a.scrollY = min(max(0, st.ScrollY), a.ed.LineCount()-1)
}

func (a *App) clampRow(row int) int {
	return min(max(0, row), a.ed.LineCount()-1)
}

func (a *App) shutdown() {
	if a.sessions == nil {
		return
	}
	if a.filePath != "" {
		sel := a.ed.Selection()
		cur := sel.CursorPos()
		st := session.FileState{
			CursorRow: cur.Row,
			CursorCol: cur.Col,
			ScrollY:   a.scrollY,
		}
		if sel.IsRange() {
			st.SelectionActive = true
			st.SelectionStartRow = sel.Anchor().Row
			st.SelectionStartCol = sel.Anchor().Col
			st.SelectionEndRow = cur.Row
			st.SelectionEndCol = cur.Col
		}
		a.sessions.SetFileState(a.filePath, st)
	}
	a.sessions.Stop()
}
