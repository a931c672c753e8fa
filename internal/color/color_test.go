package color

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#eb6f92", Color{235, 111, 146}, false},
		{"without hash", "eb6f92", Color{235, 111, 146}, false},
		{"black", "#000000", Color{0, 0, 0}, false},
		{"white", "#ffffff", Color{255, 255, 255}, false},
		{"uppercase", "#AABBCC", Color{170, 187, 204}, false},
		{"too short", "#fff", Color{}, true},
		{"too long", "#aabbccdd", Color{}, true},
		{"invalid chars", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	c := Color{235, 111, 146}
	want := "#eb6f92"
	if got := c.Hex(); got != want {
		t.Errorf("Color.Hex() = %q, want %q", got, want)
	}
}

func TestColorHexZeroPadding(t *testing.T) {
	c := Color{0, 5, 10}
	want := "#00050a"
	if got := c.Hex(); got != want {
		t.Errorf("Color.Hex() = %q, want %q", got, want)
	}
}

func TestUint24(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  uint32
	}{
		{"black", Color{0, 0, 0}, 0x000000},
		{"white", Color{255, 255, 255}, 0xffffff},
		{"red", Color{255, 0, 0}, 0xff0000},
		{"green", Color{0, 255, 0}, 0x00ff00},
		{"blue", Color{0, 0, 255}, 0x0000ff},
		{"mixed", Color{235, 111, 146}, 0xeb6f92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Uint24(); got != tt.want {
				t.Errorf("Uint24() = %#06x, want %#06x", got, tt.want)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	r, g, b := Color{255, 0, 51}.Unit()
	if r != 1.0 || g != 0.0 || b != 0.2 {
		t.Errorf("Unit() = (%v, %v, %v), want (1, 0, 0.2)", r, g, b)
	}
}

func TestFromTriple(t *testing.T) {
	tests := []struct {
		in   [3]int
		want Color
	}{
		{[3]int{235, 111, 146}, Color{R: 235, G: 111, B: 146}},
		{[3]int{-5, 300, 0}, Color{R: 0, G: 255, B: 0}},
	}
	for _, tt := range tests {
		if got := FromTriple(tt.in); got != tt.want {
			t.Errorf("FromTriple(%v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	c := Color{R: 1, G: 2, B: 3}
	if got := FromTriple(c.Triple()); got != c {
		t.Errorf("FromTriple(Triple()) = %+v, want %+v", got, c)
	}
}
