package lsp

import (
	"github.com/jsvensson/colorvis/internal/config"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits returns a single whole-document edit that formats a config
// file, or no edits if it is already formatted or is not a config file.
func formatEdits(uri, content string) []protocol.TextEdit {
	if !isConfigFile(uri) {
		return []protocol.TextEdit{}
	}
	formatted := string(config.Format([]byte(content)))
	if formatted == content {
		return []protocol.TextEdit{}
	}

	li := newLineIndex(content)
	return []protocol.TextEdit{
		{
			Range:   li.rangeOf(0, len(content)),
			NewText: formatted,
		},
	}
}

// textDocumentFormatting handles textDocument/formatting requests.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(params.TextDocument.URI)
	if !ok {
		return []protocol.TextEdit{}, nil
	}
	return formatEdits(params.TextDocument.URI, content), nil
}
