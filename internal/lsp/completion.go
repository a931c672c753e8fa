package lsp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsvensson/colorvis/internal/config"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// complete returns completion items for a config file at pos: attribute
// names at the start of a line and config functions after "=".
func complete(uri, content string, pos protocol.Position) []protocol.CompletionItem {
	if !isConfigFile(uri) {
		return nil
	}

	li := newLineIndex(content)
	lineStart := li.offset(protocol.Position{Line: pos.Line})
	before := content[lineStart:li.offset(pos)]

	if isValuePosition(before) {
		return functionCompletions()
	}
	if strings.TrimSpace(before) == "" || isIdentifier(strings.TrimSpace(before)) {
		return attributeCompletions(content)
	}
	return nil
}

// isValuePosition reports whether the text before the cursor ends with an
// "=" followed by at most a partial identifier.
func isValuePosition(textBeforeCursor string) bool {
	eqIdx := strings.LastIndex(textBeforeCursor, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(textBeforeCursor[eqIdx+1:])
	return afterEq == "" || isIdentifier(afterEq)
}

func isIdentifier(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return s != ""
}

// functionCompletions offers every config function as a snippet with one
// placeholder per parameter.
func functionCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindFunction

	funcs := config.EvalContext().Functions
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	slices.Sort(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		fn := funcs[name]
		params := fn.Params()
		args := make([]string, len(params))
		placeholders := make([]string, len(params))
		for i, p := range params {
			args[i] = p.Name
			placeholders[i] = fmt.Sprintf("${%d:%s}", i+1, p.Name)
		}

		snippet := fmt.Sprintf("%s(%s)", name, strings.Join(placeholders, ", "))
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			Detail:           strPtr(fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))),
			Documentation:    fn.Description(),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

// attributeCompletions offers the config attributes not yet set in content.
func attributeCompletions(content string) []protocol.CompletionItem {
	defined := definedAttributes(content)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, name := range configAttributes {
		if defined[name] {
			continue
		}
		insert := name + " = "
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       &kind,
			InsertText: &insert,
		})
	}
	return items
}

// definedAttributes returns the names of lines of the form "name = ...".
func definedAttributes(content string) map[string]bool {
	defined := make(map[string]bool)
	for line := range strings.Lines(content) {
		name, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if isIdentifier(name) {
			defined[name] = true
		}
	}
	return defined
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	content, ok := s.docs.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return complete(params.TextDocument.URI, content, params.Position), nil
}
