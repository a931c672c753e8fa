package lsp

import (
	"sort"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineIndex maps between byte offsets and LSP positions. LSP characters
// count UTF-16 code units.
type lineIndex struct {
	content string
	starts  []int
}

func newLineIndex(content string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

func (li *lineIndex) position(offset int) protocol.Position {
	offset = max(0, min(len(li.content), offset))
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1

	var char int
	for _, r := range li.content[li.starts[line]:offset] {
		char += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(char)}
}

func (li *lineIndex) rangeOf(start, end int) protocol.Range {
	return protocol.Range{Start: li.position(start), End: li.position(end)}
}

// offset is the inverse of position. Positions past the end of a line
// resolve to the end of that line.
func (li *lineIndex) offset(pos protocol.Position) int {
	if int(pos.Line) >= len(li.starts) {
		return len(li.content)
	}
	start := li.starts[pos.Line]
	end := len(li.content)
	if int(pos.Line)+1 < len(li.starts) {
		end = li.starts[pos.Line+1] - 1
	}

	var char uint32
	for i, r := range li.content[start:end] {
		if char >= pos.Character {
			return start + i
		}
		char += uint32(utf16.RuneLen(r))
	}
	return end
}

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText returns the source text at an LSP range.
func extractText(content string, r protocol.Range) string {
	li := newLineIndex(content)
	start, end := li.offset(r.Start), li.offset(r.End)
	if start > end {
		return ""
	}
	return content[start:end]
}
