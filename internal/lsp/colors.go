package lsp

import (
	"math"

	"github.com/jsvensson/colorvis/internal/color"
	"github.com/jsvensson/colorvis/internal/model"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// colorFromLSP is the inverse of colorToLSP. Alpha is dropped.
func colorFromLSP(c protocol.Color) color.Color {
	ch := func(v float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
	}
	return color.Color{R: ch(c.Red), G: ch(c.Green), B: ch(c.Blue)}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// presentations renders c as a hex literal followed by the notation of
// every model, in registry order.
func presentations(c color.Color) []string {
	out := []string{c.Hex()}
	for _, m := range model.All() {
		out = append(out, m.Format(m.FromRGB(c.Triple())))
	}
	return out
}

// colorPresentation offers the picked color in every supported notation.
// Hex literals and model notations can be replaced; computed expressions
// such as darken(...) are left alone.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)
	if !isColorLiteral(text) {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)
	var out []protocol.ColorPresentation
	for _, p := range presentations(c) {
		out = append(out, protocol.ColorPresentation{
			Label: p,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: p,
			},
		})
	}
	return out
}

func isColorLiteral(text string) bool {
	if hexPattern.MatchString(text) && len(text) == 7 {
		return true
	}
	_, _, err := model.ParseNotation(text)
	return err == nil
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.docs.Result(params.TextDocument.URI)), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(params.TextDocument.URI)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
