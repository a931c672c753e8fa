package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorvis/internal/model"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// hover produces a Hover response for the given cursor position: the color
// under the cursor in every model. Computed expressions are headed by their
// source text. Returns nil if no color is found at the position.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		var md strings.Builder
		if cl.Computed {
			fmt.Fprintf(&md, "**%s**\n\n", extractText(content, cl.Range))
		}
		fmt.Fprintf(&md, "`%s`\n\n| Model | Value |\n|---|---|\n", cl.Color.Hex())
		for _, m := range model.All() {
			fmt.Fprintf(&md, "| %s | `%s` |\n", m.Name, m.Format(m.FromRGB(cl.Color.Triple())))
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md.String(),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI

	result := s.docs.Result(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
