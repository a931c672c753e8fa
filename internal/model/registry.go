package model

import (
	"fmt"
	"strings"
)

// ID identifies a model in the registry. Resolve names to IDs once with
// Lookup and index with the ID afterwards.
type ID int

const (
	RGB ID = iota
	CMY
	HSV
	HSL
	YUV
	YIQ

	count = int(YIQ) + 1
)

// Hub is the model every conversion is routed through.
const Hub = RGB

// rgbComponents is kept outside the registry so the conversion functions
// can read the hub bounds without an initialization cycle.
var rgbComponents = [3]Component{
	{Name: "Red", Min: 0, Max: 255},
	{Name: "Green", Min: 0, Max: 255},
	{Name: "Blue", Min: 0, Max: 255},
}

var registry = [count]Model{
	{
		ID:         RGB,
		Name:       "RGB",
		Components: rgbComponents,
	},
	{
		ID:   CMY,
		Name: "CMY",
		Components: [3]Component{
			{Name: "Cyan", Min: 0, Max: 255},
			{Name: "Magenta", Min: 0, Max: 255},
			{Name: "Yellow", Min: 0, Max: 255},
		},
		toRGB:   cmyToRGB,
		fromRGB: rgbToCMY,
	},
	{
		ID:   HSV,
		Name: "HSV",
		Components: [3]Component{
			{Name: "Hue", Min: 0, Max: 359},
			{Name: "Saturation", Min: 0, Max: 100},
			{Name: "Value", Min: 0, Max: 100},
		},
		toRGB:   hsvToRGB,
		fromRGB: rgbToHSV,
	},
	{
		ID:   HSL,
		Name: "HSL",
		Components: [3]Component{
			{Name: "Hue", Min: 0, Max: 359},
			{Name: "Saturation", Min: 0, Max: 100},
			{Name: "Luminance", Min: 0, Max: 100},
		},
		toRGB:   hslToRGB,
		fromRGB: rgbToHSL,
	},
	{
		ID:   YUV,
		Name: "YUV",
		Components: [3]Component{
			{Name: "Luminance", Min: 0, Max: 255},
			{Name: "Blue", Min: -127, Max: 127},
			{Name: "Red", Min: -127, Max: 127},
		},
		toRGB:   yuvToRGB,
		fromRGB: rgbToYUV,
	},
	{
		ID:   YIQ,
		Name: "YIQ",
		Components: [3]Component{
			{Name: "Luminance", Min: 0, Max: 255},
			{Name: "In-Phase", Min: -127, Max: 127},
			{Name: "Quadrature", Min: -127, Max: 127},
		},
		toRGB:   yiqToRGB,
		fromRGB: rgbToYIQ,
	},
}

// Get returns the model with the given ID. It panics on an unknown ID.
func Get(id ID) Model {
	if !id.Valid() {
		panic(fmt.Sprintf("model: unknown id %d", int(id)))
	}
	return registry[id]
}

// All returns every model in display order, hub first.
func All() []Model {
	out := make([]Model, count)
	copy(out, registry[:])
	return out
}

// IDs returns every model ID in display order.
func IDs() []ID {
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Lookup resolves a model name (case-insensitive) to its ID.
func Lookup(name string) (ID, bool) {
	for _, m := range registry {
		if strings.EqualFold(m.Name, name) {
			return m.ID, true
		}
	}
	return 0, false
}

// Valid reports whether id names a registered model.
func (id ID) Valid() bool {
	return id >= 0 && int(id) < count
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return registry[id].Name
}

// Names returns the model names in display order.
func Names() []string {
	names := make([]string, count)
	for i, m := range registry {
		names[i] = m.Name
	}
	return names
}
