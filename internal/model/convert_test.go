package model

import (
	"fmt"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// hueDiff measures hue distance on the 0..359 scale, where 359 and 0 both
// sit at the red end of the circle.
func hueDiff(a, b int) int {
	d := absDiff(a, b) % 359
	return min(d, 359-d)
}

func assertWithin(t *testing.T, label string, got, want Triple, tol int) {
	t.Helper()
	for i := range got {
		if absDiff(got[i], want[i]) > tol {
			t.Errorf("%s = %v, want %v (tol %d)", label, got, want, tol)
			return
		}
	}
}

// grid returns values from c.Min to c.Max in the given step, always
// including both bounds.
func grid(c Component, step int) []int {
	var vs []int
	for v := c.Min; v < c.Max; v += step {
		vs = append(vs, v)
	}
	return append(vs, c.Max)
}

func eachTriple(m Model, step int, fn func(Triple)) {
	for _, a := range grid(m.Components[0], step) {
		for _, b := range grid(m.Components[1], step) {
			for _, c := range grid(m.Components[2], step) {
				fn(Triple{a, b, c})
			}
		}
	}
}

func TestFromRGB_KnownColors(t *testing.T) {
	tests := []struct {
		model ID
		rgb   Triple
		want  Triple
	}{
		{CMY, Triple{0, 255, 127}, Triple{255, 0, 128}},
		{CMY, Triple{255, 255, 255}, Triple{0, 0, 0}},
		{CMY, Triple{0, 0, 0}, Triple{255, 255, 255}},

		{HSV, Triple{255, 0, 0}, Triple{0, 100, 100}},
		{HSV, Triple{0, 255, 0}, Triple{120, 100, 100}},
		{HSV, Triple{0, 0, 255}, Triple{239, 100, 100}},
		{HSV, Triple{255, 255, 255}, Triple{0, 0, 100}},
		{HSV, Triple{0, 0, 0}, Triple{0, 0, 0}},
		{HSV, Triple{128, 128, 128}, Triple{0, 0, 50}},

		{HSL, Triple{255, 0, 0}, Triple{0, 100, 50}},
		{HSL, Triple{128, 0, 0}, Triple{0, 100, 25}},
		{HSL, Triple{0, 255, 255}, Triple{180, 100, 50}},
		{HSL, Triple{255, 255, 255}, Triple{0, 0, 100}},
		{HSL, Triple{0, 0, 0}, Triple{0, 0, 0}},

		{YUV, Triple{255, 0, 0}, Triple{76, -43, 127}},
		{YUV, Triple{255, 255, 255}, Triple{255, 0, 0}},
		{YUV, Triple{0, 0, 0}, Triple{0, 0, 0}},

		{YIQ, Triple{255, 0, 0}, Triple{76, 127, 52}},
		{YIQ, Triple{255, 255, 255}, Triple{255, 0, 0}},
		{YIQ, Triple{0, 0, 0}, Triple{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s from %v", tt.model, tt.rgb), func(t *testing.T) {
			got := Get(tt.model).FromRGB(tt.rgb)
			if got != tt.want {
				t.Errorf("RGB %v to %s = %v, want %v", tt.rgb, tt.model, got, tt.want)
			}
		})
	}
}

func TestToRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name  string
		model ID
		in    Triple
		want  Triple
	}{
		{"cmy", CMY, Triple{255, 0, 128}, Triple{0, 255, 127}},
		{"hsv red", HSV, Triple{0, 100, 100}, Triple{255, 0, 0}},
		{"hsv green", HSV, Triple{120, 100, 100}, Triple{0, 255, 1}},
		{"hsv blue", HSV, Triple{239, 100, 100}, Triple{0, 1, 255}},
		{"hsv hue 359 wraps to red", HSV, Triple{359, 100, 100}, Triple{255, 0, 0}},
		{"hsv gray half", HSV, Triple{0, 0, 50}, Triple{128, 128, 128}},
		{"hsl red", HSL, Triple{0, 100, 50}, Triple{255, 0, 0}},
		{"hsl dark red", HSL, Triple{0, 100, 25}, Triple{128, 0, 0}},
		{"hsl cyan", HSL, Triple{180, 100, 50}, Triple{0, 253, 255}},
		{"hsl white", HSL, Triple{0, 0, 100}, Triple{255, 255, 255}},
		{"yuv red", YUV, Triple{76, -43, 127}, Triple{255, 0, 0}},
		{"yuv white", YUV, Triple{255, 0, 0}, Triple{255, 255, 255}},
		{"yuv outside gamut clamps", YUV, Triple{255, 0, 127}, Triple{255, 164, 255}},
		{"yiq red", YIQ, Triple{76, 127, 52}, Triple{255, 0, 0}},
		{"yiq black", YIQ, Triple{0, 0, 0}, Triple{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(tt.model).ToRGB(tt.in)
			if got != tt.want {
				t.Errorf("%s %v to RGB = %v, want %v", tt.model, tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundingTiesToEven(t *testing.T) {
	// 0.3 * 255 is exactly 76.5 in float64; half-up would give 77.
	for _, id := range []ID{HSV, HSL} {
		got := Get(id).ToRGB(Triple{0, 0, 30})
		want := Triple{76, 76, 76}
		if got != want {
			t.Errorf("%s (0, 0, 30) to RGB = %v, want %v", id, got, want)
		}
	}

	if got := Round(2.5); got != 2 {
		t.Errorf("Round(2.5) = %d, want 2", got)
	}
	if got := Round(-2.5); got != -2 {
		t.Errorf("Round(-2.5) = %d, want -2", got)
	}
	if got := Round(3.5); got != 4 {
		t.Errorf("Round(3.5) = %d, want 4", got)
	}
}

func TestCMYIsInvolution(t *testing.T) {
	m := Get(CMY)
	eachTriple(m, 15, func(c Triple) {
		if got := m.FromRGB(c); got != m.ToRGB(c) {
			t.Fatalf("FromRGB(%v) = %v, ToRGB = %v", c, got, m.ToRGB(c))
		}
		if got := m.ToRGB(m.FromRGB(c)); got != c {
			t.Fatalf("ToRGB(FromRGB(%v)) = %v", c, got)
		}
	})
}

func TestHSLComponentOrder(t *testing.T) {
	// Saturation and luminance swapped would read l=1, s=0.25: white.
	got := Get(HSL).ToRGB(Triple{0, 100, 25})
	if got == (Triple{255, 255, 255}) {
		t.Fatal("HSL saturation and luminance are swapped")
	}
	c := Get(HSL).Components
	if c[1].Name != "Saturation" || c[2].Name != "Luminance" {
		t.Errorf("HSL components = %v", c)
	}
}

func TestHubRoundTrip_Linear(t *testing.T) {
	tests := []struct {
		model ID
		step  int
		tol   int
	}{
		{CMY, 17, 0},
		{YUV, 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			m := Get(tt.model)
			eachTriple(m, tt.step, func(in Triple) {
				rgb := m.ToRGB(in)
				again := m.ToRGB(m.FromRGB(rgb))
				assertWithin(t, fmt.Sprintf("%s round trip of %v", tt.model, in), again, rgb, tt.tol)
			})
		})
	}
}

func TestHubRoundTrip_YIQ(t *testing.T) {
	m := Get(YIQ)
	inGamut := func(in Triple) bool {
		r, g, b := yiqToUnit(m.Components, in)
		for _, v := range []float64{r, g, b} {
			if v < 0 || v > 1 {
				return false
			}
		}
		return true
	}

	step := 3
	if testing.Short() {
		step = 9
	}
	var in, out int
	eachTriple(m, step, func(yiq Triple) {
		if inGamut(yiq) {
			in++
		} else {
			out++
		}
		rgb := m.ToRGB(yiq)
		again := m.ToRGB(m.FromRGB(rgb))
		assertWithin(t, fmt.Sprintf("YIQ round trip of %v", yiq), again, rgb, 1)
	})
	if in == 0 || out == 0 {
		t.Fatalf("grid covered %d in-gamut and %d out-of-gamut triples, want both", in, out)
	}
}

func TestHubRoundTrip_Cylindrical(t *testing.T) {
	tests := []struct {
		model ID
		in    Triple
	}{
		{HSV, Triple{0, 100, 100}},
		{HSV, Triple{120, 100, 100}},
		{HSV, Triple{239, 100, 100}},
		{HSV, Triple{0, 0, 30}},
		{HSV, Triple{0, 0, 50}},
		{HSL, Triple{0, 100, 50}},
		{HSL, Triple{0, 100, 25}},
		{HSL, Triple{180, 100, 50}},
		{HSL, Triple{0, 0, 30}},
	}

	for _, tt := range tests {
		t.Run(Get(tt.model).Format(tt.in), func(t *testing.T) {
			m := Get(tt.model)
			rgb := m.ToRGB(tt.in)
			back := m.FromRGB(rgb)
			if back != tt.in {
				t.Errorf("FromRGB(%v) = %v, want %v", rgb, back, tt.in)
			}
			assertWithin(t, "round trip", m.ToRGB(back), rgb, 1)
		})
	}
}

func TestHubRoundTrip_NearTies(t *testing.T) {
	// Plain rounding sends these back two steps away on one channel.
	tests := []struct {
		model ID
		in    Triple
	}{
		{HSL, Triple{3, 99, 81}},
	}

	for _, tt := range tests {
		t.Run(Get(tt.model).Format(tt.in), func(t *testing.T) {
			m := Get(tt.model)
			rgb := m.ToRGB(tt.in)
			back := m.FromRGB(rgb)
			assertWithin(t, fmt.Sprintf("ToRGB(FromRGB(%v)) via %v", rgb, back), m.ToRGB(back), rgb, 1)
		})
	}
}

func TestHubRoundTrip_CylindricalSweep(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 7
	}
	for _, id := range []ID{HSV, HSL} {
		t.Run(id.String(), func(t *testing.T) {
			m := Get(id)
			var failed int
			eachTriple(m, step, func(in Triple) {
				rgb := m.ToRGB(in)
				back := m.FromRGB(rgb)
				if rgbError(m.ToRGB(back), rgb) > 1 {
					failed++
					if failed <= 5 {
						t.Errorf("%s: %v -> RGB %v -> %v -> RGB %v", id, in, rgb, back, m.ToRGB(back))
					}
				}
			})
			if failed > 5 {
				t.Errorf("%s: %d more round trips off by more than 1", id, failed-5)
			}
		})
	}
}

// go-colorful implements the same hexagonal formulas independently.
func TestCylindricalMatchesColorful(t *testing.T) {
	hub := Get(RGB)
	eachTriple(hub, 15, func(rgb Triple) {
		c := colorful.Color{
			R: float64(rgb[0]) / 255,
			G: float64(rgb[1]) / 255,
			B: float64(rgb[2]) / 255,
		}

		h, s, v := c.Hsv()
		want := Triple{int(math.Round(h / 360 * 359)), int(math.Round(s * 100)), int(math.Round(v * 100))}
		if got := Get(HSV).FromRGB(rgb); !closeToColorful(Get(HSV), rgb, got, want) {
			t.Errorf("HSV of %v = %v, colorful gives %v", rgb, got, want)
		}

		h, s, l := c.Hsl()
		want = Triple{int(math.Round(h / 360 * 359)), int(math.Round(s * 100)), int(math.Round(l * 100))}
		if got := Get(HSL).FromRGB(rgb); !closeToColorful(Get(HSL), rgb, got, want) {
			t.Errorf("HSL of %v = %v, colorful gives %v", rgb, got, want)
		}
	})
}

// closeToColorful accepts got within one step of want, or any got that
// maps back to rgb at least as closely as want does.
func closeToColorful(m Model, rgb, got, want Triple) bool {
	if hueDiff(got[0], want[0]) <= 1 && absDiff(got[1], want[1]) <= 1 && absDiff(got[2], want[2]) <= 1 {
		return true
	}
	return rgbError(m.ToRGB(got), rgb) <= rgbError(m.ToRGB(m.Clamp(want)), rgb)
}

func TestConversionsStayInBounds(t *testing.T) {
	hub := Get(RGB)
	for _, m := range All() {
		t.Run(m.Name, func(t *testing.T) {
			eachTriple(hub, 15, func(rgb Triple) {
				if got := m.FromRGB(rgb); !m.Contains(got) {
					t.Fatalf("FromRGB(%v) = %v, outside %s", rgb, got, m.Bounds())
				}
			})
			eachTriple(m, 10, func(in Triple) {
				if got := m.ToRGB(in); !hub.Contains(got) {
					t.Fatalf("ToRGB(%v) = %v, outside RGB bounds", in, got)
				}
			})
		})
	}
}

func TestConvert(t *testing.T) {
	got, err := Convert(HSV, CMY, Triple{0, 100, 100})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if want := (Triple{0, 255, 255}); got != want {
		t.Errorf("Convert(HSV red, CMY) = %v, want %v", got, want)
	}

	got, err = Convert(YIQ, HSL, Triple{76, 127, 52})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if want := (Triple{0, 100, 50}); got != want {
		t.Errorf("Convert(YIQ red, HSL) = %v, want %v", got, want)
	}

	_, err = Convert(HSV, RGB, Triple{360, 0, 0})
	if err == nil {
		t.Fatal("Convert() with hue 360 should fail")
	}
}
