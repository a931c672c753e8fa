// Package controller keeps the component values of every color model
// consistent with one RGB ground truth as the user edits single fields.
//
// Edits to RGB fan out to every other model. Edits to any other model are
// converted to RGB first, and writing RGB triggers the fan-out. Two pieces
// of state stop this from recursing: a suspended flag that makes the
// fan-out's own writes inert, and an excluded model that the fan-out
// skips so the field the user is typing in is never overwritten.
//
// A Controller is not safe for concurrent use. Drive it from one event
// loop.
package controller

import (
	"strconv"

	"github.com/jsvensson/colorvis/internal/color"
	"github.com/jsvensson/colorvis/internal/model"
)

// noModel marks the absence of an excluded model.
const noModel model.ID = -1

// Swatch is the preview color. Valid is false while the edited model holds
// malformed or out-of-range input.
type Swatch struct {
	Color color.Color
	Valid bool
}

// View is the UI collaborator. The controller calls it to display derived
// values and the swatch. Implementations must not call back into Edit or
// OnFieldChanged from these methods.
type View interface {
	WriteComponent(id model.ID, index int, value int)
	SetSwatch(s Swatch)
}

type nopView struct{}

func (nopView) WriteComponent(model.ID, int, int) {}
func (nopView) SetSwatch(Swatch)                  {}

// Controller owns the field texts of every model and the suppression state.
type Controller struct {
	view   View
	texts  [][3]string
	swatch Swatch

	suspended bool
	excluded  model.ID
}

// New returns a controller with every field unset. A nil view discards
// output.
func New(view View) *Controller {
	if view == nil {
		view = nopView{}
	}
	return &Controller{
		view:     view,
		texts:    make([][3]string, len(model.IDs())),
		excluded: noModel,
	}
}

// Edit stores the raw text of one field, as typed by the user, and reacts
// to the change.
func (c *Controller) Edit(id model.ID, index int, text string) {
	c.texts[id][index] = text
	c.OnFieldChanged(id)
}

// SetRGB writes all three hub fields at once and propagates them.
func (c *Controller) SetRGB(rgb color.Color) {
	c.write(model.Hub, rgb.Triple())
}

// OnFieldChanged re-validates all three fields of id and, if they hold a
// valid triple, propagates it to the other models.
func (c *Controller) OnFieldChanged(id model.ID) {
	if c.suspended {
		return
	}

	t, err := c.Triple(id)
	if err != nil {
		c.setSwatch(Swatch{})
		return
	}

	m := model.Get(id)
	if m.IsHub() {
		c.fanOut(t)
		return
	}

	c.excluded = id
	c.write(model.Hub, m.ToRGB(t))
	c.excluded = noModel
}

// fanOut derives every non-hub model from rgb, except the excluded one,
// and paints the swatch.
func (c *Controller) fanOut(rgb model.Triple) {
	c.suspended = true
	for _, m := range model.All() {
		if m.IsHub() || m.ID == c.excluded {
			continue
		}
		c.write(m.ID, m.FromRGB(rgb))
	}
	c.setSwatch(Swatch{
		Color: color.FromTriple(rgb),
		Valid: true,
	})
	c.suspended = false
}

// write stores a derived triple, shows it, and then notifies exactly as a
// user edit would. While a fan-out is running the notification is inert.
func (c *Controller) write(id model.ID, t model.Triple) {
	for i, v := range t {
		c.texts[id][i] = strconv.Itoa(v)
		c.view.WriteComponent(id, i, v)
	}
	c.OnFieldChanged(id)
}

func (c *Controller) setSwatch(s Swatch) {
	c.swatch = s
	c.view.SetSwatch(s)
}

// Text returns the raw text of one field.
func (c *Controller) Text(id model.ID, index int) string {
	return c.texts[id][index]
}

// Value parses one field. The error is a *model.ParseError or a
// *model.RangeError.
func (c *Controller) Value(id model.ID, index int) (int, error) {
	return model.ParseComponent(id, index, c.texts[id][index])
}

// Triple parses all three fields of id.
func (c *Controller) Triple(id model.ID) (model.Triple, error) {
	return model.ParseTriple(id, c.texts[id])
}

// Swatch returns the current preview.
func (c *Controller) Swatch() Swatch {
	return c.swatch
}

// Bounds returns the model table for rendering static labels.
func (c *Controller) Bounds() []model.Model {
	return model.All()
}
