// Package tui is the terminal front end: one panel of three editable
// fields per color model and a swatch of the current color.
package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/jsvensson/colorvis/internal/color"
	"github.com/jsvensson/colorvis/internal/controller"
	"github.com/jsvensson/colorvis/internal/model"
	"github.com/tliron/commonlog"
)

// maxFieldLen fits "-127" and "255".
const maxFieldLen = 4

var log = commonlog.GetLogger("colorvis.tui")

type field struct {
	id    model.ID
	index int
}

// App owns the screen and drives a Controller from key events. It is the
// controller's View.
type App struct {
	screen tcell.Screen
	ctrl   *controller.Controller
	fields []field
	focus  int

	swatch controller.Swatch
	// written holds the fields the controller derived during the last event.
	written map[field]bool
}

// New returns an App drawing on screen, which must already be initialized,
// with every model showing initial.
func New(screen tcell.Screen, initial color.Color) *App {
	a := &App{
		screen:  screen,
		written: make(map[field]bool),
	}
	for _, id := range model.IDs() {
		for i := range 3 {
			a.fields = append(a.fields, field{id, i})
		}
	}
	a.ctrl = controller.New(a)
	a.ctrl.SetRGB(initial)
	return a
}

// WriteComponent implements controller.View. The text itself is already
// held by the controller; the field is only marked for highlighting.
func (a *App) WriteComponent(id model.ID, index int, _ int) {
	a.written[field{id, index}] = true
}

// SetSwatch implements controller.View.
func (a *App) SetSwatch(s controller.Swatch) {
	a.swatch = s
}

// Controller returns the controller behind the fields.
func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

// Run draws the UI and processes events until the user quits. The screen is
// left initialized; the caller finalizes it.
func (a *App) Run() error {
	log.Info("starting")

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.Draw()
	for ev := range events {
		if !a.HandleEvent(ev) {
			log.Info("quit")
			return nil
		}
		a.Draw()
	}
	return nil
}

// HandleEvent applies one event and reports whether the app keeps running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		clear(a.written)
		return a.handleKey(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		log.Debugf("resize to %dx%d", w, h)
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	f := a.fields[a.focus]

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyTab, tcell.KeyDown, tcell.KeyEnter:
		a.moveFocus(1)
	case tcell.KeyBacktab, tcell.KeyUp:
		a.moveFocus(-1)
	case tcell.KeyPgDn:
		a.moveFocus(3 - f.index)
	case tcell.KeyPgUp:
		a.moveFocus(-f.index - 3)

	case tcell.KeyRight:
		a.step(f, 1)
	case tcell.KeyLeft:
		a.step(f, -1)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if text := a.ctrl.Text(f.id, f.index); text != "" {
			a.ctrl.Edit(f.id, f.index, text[:len(text)-1])
		}
	case tcell.KeyCtrlU, tcell.KeyDelete:
		a.ctrl.Edit(f.id, f.index, "")

	case tcell.KeyRune:
		a.typeRune(f, ev.Rune())
	}
	return true
}

func (a *App) moveFocus(delta int) {
	n := len(a.fields)
	a.focus = ((a.focus+delta)%n + n) % n
}

// typeRune appends a digit, or a minus sign to an empty field of a
// component that allows negative values.
func (a *App) typeRune(f field, r rune) {
	text := a.ctrl.Text(f.id, f.index)
	if len(text) >= maxFieldLen {
		return
	}
	switch {
	case r >= '0' && r <= '9':
	case r == '-' && text == "" && model.Get(f.id).Component(f.index).Min < 0:
	default:
		return
	}
	a.ctrl.Edit(f.id, f.index, text+string(r))
}

// step nudges a field by delta within its bounds. A field holding no
// valid number starts from the lower bound.
func (a *App) step(f field, delta int) {
	c := model.Get(f.id).Component(f.index)
	v, err := a.ctrl.Value(f.id, f.index)
	if err != nil {
		v = c.Min
	} else {
		v = max(c.Min, min(c.Max, v+delta))
	}
	a.ctrl.Edit(f.id, f.index, strconv.Itoa(v))
}
