package config

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/colorvis/internal/model"
	"github.com/zclconf/go-cty/cty"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)

// Format returns config source in canonical HCL style with runs of blank
// lines collapsed to one. It works on partial or invalid input.
func Format(src []byte) []byte {
	formatted := hclwrite.Format(src)
	return multipleBlankLines.ReplaceAll(formatted, []byte("\n\n"))
}

// Render returns cfg as config source. The initial color is written as a
// call to the function of model id.
func Render(cfg Config, id model.ID) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.AppendUnstructuredTokens(hclwrite.Tokens{
		{Type: hclsyntax.TokenComment, Bytes: []byte("# Start-up color. A \"#rrggbb\" string or rgb, cmy, hsv, hsl, yuv, yiq(a, b, c).\n")},
	})
	m := model.Get(id)
	t := m.FromRGB(cfg.Initial.Triple())
	args := make([]hclwrite.Tokens, len(t))
	for i, v := range t {
		args[i] = hclwrite.TokensForValue(cty.NumberIntVal(int64(v)))
	}
	body.SetAttributeRaw("initial", hclwrite.TokensForFunctionCall(FunctionName(id), args...))
	body.AppendNewline()

	body.AppendUnstructuredTokens(hclwrite.Tokens{
		{Type: hclsyntax.TokenComment, Bytes: []byte("# Log verbosity from -4 (silent) to 2 (debug).\n")},
	})
	body.SetAttributeValue("verbosity", cty.NumberIntVal(int64(cfg.Verbosity)))
	if cfg.LogFile != "" {
		body.SetAttributeValue("log_file", cty.StringVal(cfg.LogFile))
	}

	return Format(f.Bytes())
}
