package lsp

import (
	"testing"

	"github.com/jsvensson/colorvis/internal/config"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFormatEdits(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		input     string
		wantEdits int
	}{
		{"unformatted config", "file:///colorvis.hcl", `initial="#ff0000"`, 1},
		{"already formatted", "file:///colorvis.hcl", "initial = \"#ff0000\"\n", 0},
		{"empty", "file:///colorvis.hcl", "", 0},
		{"not a config file", "file:///notes.md", `initial="#ff0000"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edits := formatEdits(tt.uri, tt.input)
			if len(edits) != tt.wantEdits {
				t.Fatalf("got %d edits, want %d: %+v", len(edits), tt.wantEdits, edits)
			}
			if tt.wantEdits == 0 {
				return
			}
			if got, want := edits[0].NewText, string(config.Format([]byte(tt.input))); got != want {
				t.Errorf("NewText = %q, want %q", got, want)
			}
		})
	}
}

func TestFormatEdits_CoversWholeDocument(t *testing.T) {
	input := "initial=\"#ff0000\"\n\n\n\nverbosity=1\n"

	edits := formatEdits("file:///colorvis.hcl", input)
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}

	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 5, Character: 0},
	}
	if edits[0].Range != want {
		t.Errorf("range = %+v, want %+v", edits[0].Range, want)
	}
	if got := edits[0].NewText; got != "initial = \"#ff0000\"\n\nverbosity = 1\n" {
		t.Errorf("NewText = %q", got)
	}
}
