package app

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qpad/internal/config"
	"github.com/kobzarvs/qpad/internal/editor"
)

type styleSet struct {
	base       tcell.Style
	lineNum    tcell.Style
	selection  tcell.Style
	statusline tcell.Style
}

func newStyleSet(th config.Theme) styleSet {
	bg := tcell.GetColor(th.Background)
	return styleSet{
		base: tcell.StyleDefault.
			Foreground(tcell.GetColor(th.Foreground)).
			Background(bg),
		lineNum: tcell.StyleDefault.
			Foreground(tcell.GetColor(th.LineNumberForeground)).
			Background(bg),
		selection: tcell.StyleDefault.
			Foreground(tcell.GetColor(th.SelectionForeground)).
			Background(tcell.GetColor(th.SelectionBackground)),
		statusline: tcell.StyleDefault.
			Foreground(tcell.GetColor(th.StatuslineForeground)).
			Background(tcell.GetColor(th.StatuslineBackground)),
	}
}

// visualCol is the screen offset of a rune column after tab expansion.
func visualCol(line []rune, col, tabWidth int) int {
	vis := 0
	for i := 0; i < col && i < len(line); i++ {
		if line[i] == '\t' {
			vis += tabWidth - vis%tabWidth
		} else {
			vis++
		}
	}
	return vis
}

// colFromVisual is the inverse of visualCol: the rune column under a
// screen offset. Offsets past the line end land on the line end.
func colFromVisual(line []rune, x, tabWidth int) int {
	if x < 0 {
		return 0
	}
	vis := 0
	for i, r := range line {
		w := 1
		if r == '\t' {
			w = tabWidth - vis%tabWidth
		}
		if x < vis+w {
			return i
		}
		vis += w
	}
	return len(line)
}

func (a *App) gutterWidth() int {
	if a.cfg.Editor.LineNumbers == "off" {
		return 0
	}
	return len(strconv.Itoa(a.ed.LineCount())) + 1
}

func inSelection(sel editor.Selection, p editor.Pos) bool {
	return sel.First().Compare(p) <= 0 && p.Compare(sel.Second()) < 0
}

func (a *App) render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	viewH := h - 1
	gw := a.gutterWidth()

	sel := a.ed.Selection()
	for y := 0; y < viewH; y++ {
		row := a.scrollY + y
		if row >= a.ed.LineCount() {
			for x := 0; x < w; x++ {
				s.SetContent(x, y, ' ', nil, a.styles.base)
			}
			continue
		}
		a.renderRow(s, y, row, w, gw, sel)
	}
	a.renderStatus(s, w, h-1)
	a.placeCursor(s, gw, viewH)
	s.Show()
}

func (a *App) renderRow(s tcell.Screen, y, row, w, gw int, sel editor.Selection) {
	if gw > 0 {
		num := strconv.Itoa(row + 1)
		pad := gw - 1 - len(num)
		for i := 0; i < gw; i++ {
			r := ' '
			if i >= pad && i < gw-1 {
				r = rune(num[i-pad])
			}
			s.SetContent(i, y, r, nil, a.styles.lineNum)
		}
	}

	line := a.ed.Buffer().Line(row)
	tabWidth := a.cfg.Editor.TabWidth
	x := gw
	for col, r := range line {
		if x >= w {
			break
		}
		style := a.styles.base
		if sel.IsRange() && inSelection(sel, editor.NewPos(row, col)) {
			style = a.styles.selection
		}
		if r == '\t' {
			span := tabWidth - (x-gw)%tabWidth
			for i := 0; i < span && x < w; i++ {
				s.SetContent(x, y, ' ', nil, style)
				x++
			}
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, a.styles.base)
	}
}

func (a *App) renderStatus(s tcell.Screen, w, y int) {
	line := make([]rune, w)
	for i := range line {
		line[i] = ' '
	}
	put := func(x int, text string) {
		for _, r := range text {
			if x < 0 || x >= w {
				return
			}
			line[x] = r
			x++
		}
	}

	name := "[scratch]"
	if a.filePath != "" {
		name = filepath.Base(a.filePath)
	}
	if a.dirty {
		name += " *"
	}
	left := " " + name
	if a.status != "" {
		left += "  " + a.status
	}
	cur := a.ed.CursorPos()
	right := fmt.Sprintf("%d:%d ", cur.Row+1, cur.Col+1)

	put(0, left)
	put(w-len([]rune(right)), right)

	for x, r := range line {
		s.SetContent(x, y, r, nil, a.styles.statusline)
	}
}

func (a *App) placeCursor(s tcell.Screen, gw, viewH int) {
	cur := a.ed.CursorPos()
	y := cur.Row - a.scrollY
	if !a.ed.ShowCursor() || y < 0 || y >= viewH {
		s.HideCursor()
		return
	}
	line := a.ed.Buffer().Line(cur.Row)
	s.ShowCursor(gw+visualCol(line, cur.Col, a.cfg.Editor.TabWidth), y)
}
