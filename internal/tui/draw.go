package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/jsvensson/colorvis/internal/color"
	"github.com/jsvensson/colorvis/internal/model"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Layout, in cells.
const (
	panelTop    = 2
	panelHeight = 4
	labelX      = 3
	labelWidth  = 11
	minX        = labelX + labelWidth + 1
	fieldX      = minX + 4 + 4 // "≤ [" follows the lower bound

	swatchX      = 42
	swatchY      = panelTop
	swatchWidth  = 24
	swatchHeight = 12
)

var (
	styleText    = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Dim(true)
	styleField   = tcell.StyleDefault.Underline(true)
	styleFocus   = tcell.StyleDefault.Reverse(true)
	styleWritten = tcell.StyleDefault.Underline(true).Bold(true)
	styleError   = tcell.StyleDefault.Foreground(invalidBorder)

	invalidFill   = tcell.NewRGBColor(255, 255, 255)
	invalidBorder = tcell.NewRGBColor(255, 0, 0)
)

const help = "Tab/Up/Down move  PgUp/PgDn model  Left/Right step  Ctrl-U clear  Esc quit"

// Draw renders the whole UI.
func (a *App) Draw() {
	a.screen.Clear()

	drawText(a.screen, 1, 0, styleTitle, "colorvis")

	for _, m := range a.ctrl.Bounds() {
		a.drawPanel(m)
	}
	a.drawSwatch()

	statusY := panelTop + len(a.ctrl.Bounds())*panelHeight
	f := a.fields[a.focus]
	if _, err := a.ctrl.Value(f.id, f.index); err != nil {
		drawText(a.screen, 1, statusY, styleError, err.Error())
	} else {
		drawText(a.screen, 1, statusY, styleDim, model.Get(f.id).Bounds())
	}
	drawText(a.screen, 1, statusY+1, styleDim, help)

	x, y := fieldPos(f)
	a.screen.ShowCursor(x+len(a.ctrl.Text(f.id, f.index)), y)
	a.screen.Show()
}

func (a *App) drawPanel(m model.Model) {
	top := panelTop + int(m.ID)*panelHeight
	drawText(a.screen, 1, top, styleTitle, m.Name)

	for i, c := range m.Components {
		f := field{m.ID, i}
		_, y := fieldPos(f)

		drawText(a.screen, labelX, y, styleText, c.Name)
		drawText(a.screen, minX, y, styleDim, fmt.Sprintf("%4d ≤ [", c.Min))
		drawText(a.screen, fieldX+maxFieldLen, y, styleDim, fmt.Sprintf("] ≤ %d", c.Max))

		text := a.ctrl.Text(m.ID, i)
		style := styleField
		switch {
		case a.fields[a.focus] == f:
			style = styleFocus
		case a.written[f]:
			style = styleWritten
		}
		if _, err := a.ctrl.Value(m.ID, i); err != nil {
			style = style.Foreground(invalidBorder)
		}
		drawText(a.screen, fieldX, y, style, fmt.Sprintf("%-*s", maxFieldLen, text))
	}
}

func (a *App) drawSwatch() {
	s := a.swatch

	fill, border := invalidFill, invalidBorder
	label := "invalid"
	labelStyle := tcell.StyleDefault.Foreground(invalidBorder).Background(invalidFill)
	if s.Valid {
		fill = tcellColor(s.Color)
		border = fill
		label = s.Color.Hex()
		labelStyle = tcell.StyleDefault.Foreground(labelColor(s.Color)).Background(fill)
	}

	for y := swatchY; y < swatchY+swatchHeight; y++ {
		for x := swatchX; x < swatchX+swatchWidth; x++ {
			bg := fill
			if y == swatchY || y == swatchY+swatchHeight-1 || x == swatchX || x == swatchX+swatchWidth-1 {
				bg = border
			}
			a.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}

	lx := swatchX + (swatchWidth-len(label))/2
	drawText(a.screen, lx, swatchY+swatchHeight/2, labelStyle, label)
}

// fieldPos returns the screen position of a field's first character.
func fieldPos(f field) (x, y int) {
	return fieldX, panelTop + int(f.id)*panelHeight + 1 + f.index
}

func tcellColor(c color.Color) tcell.Color {
	return tcell.NewHexColor(int32(c.Uint24()))
}

// labelColor picks black or white text, whichever reads better on c.
func labelColor(c color.Color) tcell.Color {
	r, g, b := c.Unit()
	l, _, _ := colorful.Color{R: r, G: g, B: b}.Lab()
	if l > 0.55 {
		return tcell.NewRGBColor(0, 0, 0)
	}
	return tcell.NewRGBColor(255, 255, 255)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
