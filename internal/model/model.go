// Package model defines the supported color models, their component
// bounds, and the conversions between each model and RGB.
//
// RGB is the hub: every cross-model conversion goes through it, so each
// non-hub model only needs a pair of functions (to RGB and from RGB).
package model

import (
	"fmt"
	"strings"
)

// Triple holds the three integer components of a color in some model.
type Triple [3]int

// Component describes one axis of a color model and its inclusive bounds.
type Component struct {
	Name string
	Min  int
	Max  int
}

// Contains reports whether v lies within the component's bounds.
func (c Component) Contains(v int) bool {
	return c.Min <= v && v <= c.Max
}

// convertFunc converts a triple between a model and RGB. own holds the
// bounds of the non-hub side of the conversion.
type convertFunc func(own [3]Component, t Triple) Triple

// Model is one entry of the registry. Models are values; the registry
// hands out copies so callers cannot mutate the table.
type Model struct {
	ID         ID
	Name       string
	Components [3]Component

	toRGB   convertFunc
	fromRGB convertFunc
}

// IsHub reports whether m is the model all conversions are routed through.
func (m Model) IsHub() bool {
	return m.ID == Hub
}

// Component returns the i-th component. It panics if i is not 0, 1 or 2.
func (m Model) Component(i int) Component {
	return m.Components[i]
}

// Contains reports whether every component of t lies within m's bounds.
func (m Model) Contains(t Triple) bool {
	for i, c := range m.Components {
		if !c.Contains(t[i]) {
			return false
		}
	}
	return true
}

// Check returns a *RangeError for the first component of t that lies
// outside m's bounds, or nil.
func (m Model) Check(t Triple) error {
	for i, c := range m.Components {
		if !c.Contains(t[i]) {
			return &RangeError{Model: m.Name, Component: c.Name, Value: t[i], Min: c.Min, Max: c.Max}
		}
	}
	return nil
}

// Clamp limits every component of t to m's bounds.
func (m Model) Clamp(t Triple) Triple {
	for i, c := range m.Components {
		t[i] = max(c.Min, min(c.Max, t[i]))
	}
	return t
}

// ToRGB converts t from m to RGB. For the hub it only clamps.
func (m Model) ToRGB(t Triple) Triple {
	if m.toRGB == nil {
		return m.Clamp(t)
	}
	return m.toRGB(m.Components, t)
}

// FromRGB converts an RGB triple to m. For the hub it only clamps.
func (m Model) FromRGB(rgb Triple) Triple {
	if m.fromRGB == nil {
		return m.Clamp(rgb)
	}
	return m.fromRGB(m.Components, rgb)
}

// Format renders t in the model's function notation, e.g. "hsv(0, 100, 100)".
func (m Model) Format(t Triple) string {
	return fmt.Sprintf("%s(%d, %d, %d)", strings.ToLower(m.Name), t[0], t[1], t[2])
}

// Bounds renders the component ranges, e.g. "Hue 0..359, Saturation 0..100, Value 0..100".
func (m Model) Bounds() string {
	parts := make([]string, len(m.Components))
	for i, c := range m.Components {
		parts[i] = fmt.Sprintf("%s %d..%d", c.Name, c.Min, c.Max)
	}
	return strings.Join(parts, ", ")
}

// Convert converts t from one model to another through the hub.
// It returns a *RangeError if t is outside the bounds of from.
func Convert(from, to ID, t Triple) (Triple, error) {
	src := Get(from)
	if err := src.Check(t); err != nil {
		return Triple{}, err
	}
	return Get(to).FromRGB(src.ToRGB(t)), nil
}
