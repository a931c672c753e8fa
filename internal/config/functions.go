package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/colorvis/internal/color"
	"github.com/jsvensson/colorvis/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// EvalContext returns the functions available in config expressions: one
// per color model, named after it in lower case, plus brighten and darken.
// Every function returns a "#rrggbb" string.
func EvalContext() *hcl.EvalContext {
	funcs := make(map[string]function.Function, len(model.IDs())+2)
	for _, id := range model.IDs() {
		funcs[FunctionName(id)] = makeModelFunc(id)
	}
	funcs["brighten"] = makeLuminanceFunc("Brightens", 1)
	funcs["darken"] = makeLuminanceFunc("Darkens", -1)
	return &hcl.EvalContext{Functions: funcs}
}

// FunctionName is the config function that builds a color from a triple
// in model id.
func FunctionName(id model.ID) string {
	return strings.ToLower(id.String())
}

// makeModelFunc creates a function taking the three components of a model.
// Usage: hsv(210, 60, 80)
func makeModelFunc(id model.ID) function.Function {
	m := model.Get(id)

	params := make([]function.Parameter, len(m.Components))
	for i, c := range m.Components {
		params[i] = function.Parameter{
			Name: strings.ToLower(c.Name),
			Type: cty.Number,
		}
	}

	return function.New(&function.Spec{
		Description: fmt.Sprintf("Returns the hex color of a %s triple (%s)", m.Name, m.Bounds()),
		Params:      params,
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var t model.Triple
			for i, arg := range args {
				if err := gocty.FromCtyValue(arg, &t[i]); err != nil {
					return cty.NilVal, function.NewArgError(i, err)
				}
			}
			if err := m.Check(t); err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(color.FromTriple(m.ToRGB(t)).Hex()), nil
		},
	})
}

// makeLuminanceFunc creates a function that shifts the HSL luminance of a
// color by a fraction between -1.0 and 1.0.
// Usage: brighten("#336699", 0.1) or darken(hsv(0, 100, 100), 0.2)
func makeLuminanceFunc(verb string, sign float64) function.Function {
	return function.New(&function.Spec{
		Description: verb + " a color by the given fraction of full luminance",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
			{
				Name: "amount",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			amount, _ := args[1].AsBigFloat().Float64()
			if amount < -1 || amount > 1 {
				return cty.NilVal, function.NewArgErrorf(1, "amount must be between -1.0 and 1.0")
			}
			return cty.StringVal(shiftLuminance(c, sign*amount).Hex()), nil
		},
	})
}

func shiftLuminance(c color.Color, amount float64) color.Color {
	hsl := model.Get(model.HSL)
	t := hsl.FromRGB(c.Triple())
	t[2] += model.Round(amount * float64(hsl.Components[2].Max))
	return color.FromTriple(hsl.ToRGB(hsl.Clamp(t)))
}
