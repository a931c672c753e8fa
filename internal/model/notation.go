package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// NotationPattern matches a function notation such as "hsv(0, 100, 100)".
// Submatches are the model name and the three components.
var NotationPattern = regexp.MustCompile(`\b([A-Za-z]{3})\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*\)`)

var notationExact = regexp.MustCompile(`^\s*` + NotationPattern.String() + `\s*$`)

// ParseNotation parses text like "yiq(76, 127, 52)" into a model ID and a
// triple within that model's bounds.
func ParseNotation(text string) (ID, Triple, error) {
	m := notationExact.FindStringSubmatch(text)
	if m == nil {
		return 0, Triple{}, fmt.Errorf("invalid color notation %q: want model(a, b, c)", text)
	}
	return parseNotationParts(m[1], m[2:5])
}

func parseNotationParts(name string, parts []string) (ID, Triple, error) {
	id, ok := Lookup(name)
	if !ok {
		return 0, Triple{}, fmt.Errorf("unknown color model %q (valid: %v)", name, Names())
	}
	var t Triple
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, Triple{}, fmt.Errorf("%s component %d: %w", name, i, err)
		}
		t[i] = v
	}
	if err := Get(id).Check(t); err != nil {
		return 0, Triple{}, err
	}
	return id, t, nil
}

// NotationMatch is one color notation found in a larger text.
type NotationMatch struct {
	Start, End int // byte offsets, End exclusive
	ID         ID
	Triple     Triple
}

// FindNotations returns every valid color notation in s. Matches naming an
// unknown model or holding out-of-range components are skipped.
func FindNotations(s string) []NotationMatch {
	var out []NotationMatch
	for _, loc := range NotationPattern.FindAllStringSubmatchIndex(s, -1) {
		parts := []string{s[loc[4]:loc[5]], s[loc[6]:loc[7]], s[loc[8]:loc[9]]}
		id, t, err := parseNotationParts(s[loc[2]:loc[3]], parts)
		if err != nil {
			continue
		}
		out = append(out, NotationMatch{Start: loc[0], End: loc[1], ID: id, Triple: t})
	}
	return out
}
