package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports component text that is not an integer.
type ParseError struct {
	Model     string
	Component string
	Text      string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s %s: empty value", e.Model, e.Component)
	}
	return fmt.Sprintf("%s %s: %q is not an integer", e.Model, e.Component, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError reports an integer outside its component's bounds.
type RangeError struct {
	Model     string
	Component string
	Value     int
	Min       int
	Max       int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s: %d is outside %d..%d", e.Model, e.Component, e.Value, e.Min, e.Max)
}

// ParseComponent parses the text of one field of model id. Surrounding
// whitespace is ignored. It returns a *ParseError or a *RangeError.
func ParseComponent(id ID, index int, text string) (int, error) {
	m := Get(id)
	c := m.Components[index]
	trimmed := strings.TrimSpace(text)
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{Model: m.Name, Component: c.Name, Text: trimmed, Err: err}
	}
	if !c.Contains(v) {
		return 0, &RangeError{Model: m.Name, Component: c.Name, Value: v, Min: c.Min, Max: c.Max}
	}
	return v, nil
}

// ParseTriple parses three field texts of model id.
func ParseTriple(id ID, texts [3]string) (Triple, error) {
	var t Triple
	for i, text := range texts {
		v, err := ParseComponent(id, i, text)
		if err != nil {
			return Triple{}, err
		}
		t[i] = v
	}
	return t, nil
}
