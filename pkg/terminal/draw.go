package terminal

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/muv-academia/muv/pkg/widgets"
)

var (
	brandYellow = tcell.NewRGBColor(0xf6, 0xfa, 0x36)

	styleBody   = tcell.StyleDefault
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleAccent = tcell.StyleDefault.Foreground(brandYellow)
	styleMuted  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleButton = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(brandYellow)
	styleBrand  = tcell.StyleDefault.Foreground(brandYellow).Bold(true)
	styleRule   = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleBadge  = tcell.StyleDefault.Foreground(brandYellow).Bold(true)
	styleField  = tcell.StyleDefault.Underline(true)
	styleFocus  = tcell.StyleDefault.Reverse(true)
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleMenu   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
)

func styleFor(kind LineKind) tcell.Style {
	switch kind {
	case LineTitle:
		return styleTitle
	case LineAccent:
		return styleAccent
	case LineMuted:
		return styleMuted
	case LineButton:
		return styleButton
	case LineBrand:
		return styleBrand
	case LineRule:
		return styleRule
	case LineBadge:
		return styleBadge
	}
	return styleBody
}

// drawText writes s at x, y and returns the column after it. Text past the
// right edge is clipped.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	w, _ := s.Size()
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}

func fillRow(s tcell.Screen, y int, style tcell.Style) {
	w, _ := s.Size()
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func (a *App) draw() {
	a.screen.Clear()
	a.drawHeader()
	for row := 0; row < a.viewRows(); row++ {
		i := a.offset + row
		if i >= len(a.doc.Lines) {
			break
		}
		a.drawLine(headerRows+row, a.doc.Lines[i])
	}
	if a.menu.IsOpen() {
		a.drawMenu()
	}
	if a.status != "" {
		y := a.height - 1
		fillRow(a.screen, y, styleHeader)
		drawText(a.screen, margin, y, a.status, styleHeader)
	}
	a.screen.Show()
}

func (a *App) drawHeader() {
	fillRow(a.screen, 0, styleHeader)
	x := drawText(a.screen, margin, 0, a.page.Meta.Brand, styleBrand.Background(tcell.ColorBlack))

	hint := "[m] Menu"
	if a.menu.IsOpen() {
		hint = "[m] Fechar"
	}
	labels := make([]string, 0, len(a.page.Nav))
	for _, item := range a.page.Nav {
		labels = append(labels, item.Label)
	}
	full := strings.Join(labels, "  ") + "  " + hint
	if a.width-margin-runewidth.StringWidth(full) > x+2 {
		drawText(a.screen, a.width-margin-runewidth.StringWidth(full), 0, full, styleHeader)
	} else {
		drawText(a.screen, a.width-margin-runewidth.StringWidth(hint), 0, hint, styleHeader)
	}

	for x := 0; x < a.width; x++ {
		a.screen.SetContent(x, 1, '─', nil, styleRule)
	}
}

func (a *App) drawMenu() {
	width := 0
	entries := make([]string, len(a.menu.Items))
	for i, item := range a.menu.Items {
		entries[i] = " " + strconv.Itoa(i+1) + "  " + item.Label + " "
		width = max(width, runewidth.StringWidth(entries[i]))
	}
	x := max(a.width-margin-width, 0)
	for i, entry := range entries {
		y := headerRows + i
		if y >= a.height {
			break
		}
		for cx := x; cx < x+width && cx < a.width; cx++ {
			a.screen.SetContent(cx, y, ' ', nil, styleMenu)
		}
		drawText(a.screen, x, y, entry, styleMenu)
	}
}

func (a *App) drawLine(y int, line Line) {
	text := line.Text
	style := styleFor(line.Kind)

	switch line.Kind {
	case LineRule:
		for x := margin; x < a.width-margin; x++ {
			a.screen.SetContent(x, y, '─', nil, style)
		}
		return
	case LineBadge:
		if line.Slot < len(a.counters) {
			text = a.counters[line.Slot].Label()
		}
	case LineField:
		a.drawField(y, line)
		return
	}

	x := margin + line.Indent
	if line.Center {
		x = max((a.width-runewidth.StringWidth(text))/2, 0)
	}
	drawText(a.screen, x, y, text, style)
}

func (a *App) drawField(y int, line Line) {
	field := widgets.FormField(line.Slot)
	text, placeholder := a.form.Display(field)
	if field == widgets.FieldModality {
		text = "‹ " + text + " ›"
	}

	style := styleField
	if placeholder {
		style = style.Foreground(tcell.ColorGray)
	}
	if focused, ok := a.form.Focused(); ok && focused == field {
		style = styleFocus
	}

	x := margin + line.Indent
	width := max(a.width-2*margin-line.Indent, 1)
	for cx := x; cx < x+width; cx++ {
		a.screen.SetContent(cx, y, ' ', nil, style)
	}
	drawText(a.screen, x, y, runewidth.Truncate(text, width, "…"), style)
}
