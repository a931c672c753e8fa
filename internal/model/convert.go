package model

import "math"

// Chrominance maxima used to stretch U/V and I/Q over the symmetric
// component range. yiqIMax is the I of pure red, yiqQMax the Q of
// magenta (1, 0, 1); both are the extremes of the transform over the cube.
const (
	yuvUMax = 0.436
	yuvVMax = 0.615
)

var (
	_, yiqIMax, _ = yiqFromUnit(1, 0, 0)
	_, _, yiqQMax = yiqFromUnit(1, 0, 1)
)

// Round rounds half to even. Every conversion uses it so ties resolve the
// same way in both directions; callers doing integer colour maths outside
// this package should too.
func Round(x float64) int {
	return int(math.RoundToEven(x))
}

// normalize maps each component to [0, 1] using its bounds.
func normalize(cs [3]Component, t Triple) (a, b, c float64) {
	n := func(i int) float64 {
		return float64(t[i]-cs[i].Min) / float64(cs[i].Max-cs[i].Min)
	}
	return n(0), n(1), n(2)
}

// denormalize maps unit values back onto the bounds, rounds, and clamps.
func denormalize(cs [3]Component, a, b, c float64) Triple {
	d := func(i int, v float64) int {
		x := Round(float64(cs[i].Min) + v*float64(cs[i].Max-cs[i].Min))
		return max(cs[i].Min, min(cs[i].Max, x))
	}
	return Triple{d(0, a), d(1, b), d(2, c)}
}

// symmetric scales a unit value onto a component whose range is
// symmetric around zero (or starts at zero), then rounds and clamps.
func symmetric(c Component, v float64) int {
	x := Round(v * float64(c.Max))
	return max(c.Min, min(c.Max, x))
}

// wrap returns x modulo 1 in [0, 1), also for negative x.
func wrap(x float64) float64 {
	return x - math.Floor(x)
}

// CMY

func rgbToCMY(own [3]Component, rgb Triple) Triple {
	var out Triple
	for i := range out {
		out[i] = rgbComponents[i].Max - rgb[i]
	}
	return clampTo(own, out)
}

func cmyToRGB(own [3]Component, cmy Triple) Triple {
	var out Triple
	for i := range out {
		out[i] = own[i].Max - cmy[i]
	}
	return clampTo(rgbComponents, out)
}

func clampTo(cs [3]Component, t Triple) Triple {
	for i, c := range cs {
		t[i] = max(c.Min, min(c.Max, t[i]))
	}
	return t
}

// settleRadius bounds the neighbourhood settle searches.
const settleRadius = 2

// settle returns t, or the nearest triple around it whose RGB lies within
// one step of rgb on every channel. Rounding both directions can land t
// on a triple that maps back two steps away; the search picks the
// neighbour with the smallest worst-channel error, closest to t on ties.
// Some RGB values are not reachable within one step from any triple of
// the model (pure cyan in HSL); those get the best neighbour found.
func settle(own [3]Component, rgb, t Triple, toRGB func([3]Component, Triple) Triple) Triple {
	best, bestErr := t, rgbError(rgb, toRGB(own, t))
	if bestErr <= 1 {
		return t
	}
	for r := 1; r <= settleRadius; r++ {
		for d0 := -r; d0 <= r; d0++ {
			for d1 := -r; d1 <= r; d1++ {
				for d2 := -r; d2 <= r; d2++ {
					if max(abs(d0), abs(d1), abs(d2)) != r {
						continue
					}
					c := clampTo(own, Triple{t[0] + d0, t[1] + d1, t[2] + d2})
					if e := rgbError(rgb, toRGB(own, c)); e < bestErr {
						best, bestErr = c, e
					}
				}
			}
		}
		if bestErr <= 1 {
			break
		}
	}
	return best
}

// rgbError is the largest per-channel distance between two RGB triples.
func rgbError(a, b Triple) int {
	return max(abs(a[0]-b[0]), abs(a[1]-b[1]), abs(a[2]-b[2]))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// HSV

func rgbToHSV(own [3]Component, rgb Triple) Triple {
	h, s, v := hsvFromUnit(normalize(rgbComponents, rgb))
	return settle(own, rgb, denormalize(own, h, s, v), hsvToRGB)
}

func hsvToRGB(own [3]Component, hsv Triple) Triple {
	r, g, b := hsvToUnit(normalize(own, hsv))
	return denormalize(rgbComponents, r, g, b)
}

// hueFromUnit computes the hexagonal hue in [0, 1) for a non-gray color.
func hueFromUnit(r, g, b, maxc, minc float64) float64 {
	span := maxc - minc
	rc := (maxc - r) / span
	gc := (maxc - g) / span
	bc := (maxc - b) / span
	var h float64
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	return wrap(h / 6.0)
}

func hsvFromUnit(r, g, b float64) (h, s, v float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	v = maxc
	if minc == maxc {
		return 0, 0, v
	}
	s = (maxc - minc) / maxc
	return hueFromUnit(r, g, b, maxc, minc), s, v
}

func hsvToUnit(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	i := int(h * 6.0)
	f := h*6.0 - float64(i)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// HSL. The underlying formula yields (hue, lightness, saturation); the
// model declares (Hue, Saturation, Luminance), so the last two swap.

func rgbToHSL(own [3]Component, rgb Triple) Triple {
	h, l, s := hlsFromUnit(normalize(rgbComponents, rgb))
	return settle(own, rgb, denormalize(own, h, s, l), hslToRGB)
}

func hslToRGB(own [3]Component, hsl Triple) Triple {
	h, s, l := normalize(own, hsl)
	r, g, b := hlsToUnit(h, l, s)
	return denormalize(rgbComponents, r, g, b)
}

func hlsFromUnit(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sum := maxc + minc
	span := maxc - minc
	l = sum / 2.0
	if minc == maxc {
		return 0, l, 0
	}
	if l <= 0.5 {
		s = span / sum
	} else {
		s = span / (2.0 - maxc - minc)
	}
	return hueFromUnit(r, g, b, maxc, minc), l, s
}

func hlsToUnit(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2.0*l - m2
	return hueChannel(m1, m2, h+1.0/3.0), hueChannel(m1, m2, h), hueChannel(m1, m2, h-1.0/3.0)
}

func hueChannel(m1, m2, hue float64) float64 {
	hue = wrap(hue)
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6.0
	default:
		return m1
	}
}

// YUV

func rgbToYUV(own [3]Component, rgb Triple) Triple {
	r, g, b := normalize(rgbComponents, rgb)
	y := 0.29900*r + 0.58700*g + 0.11400*b
	u := -0.14713*r - 0.28886*g + 0.43600*b
	v := 0.61500*r - 0.51499*g - 0.10001*b
	yuv := Triple{
		symmetric(own[0], y),
		symmetric(own[1], u/yuvUMax),
		symmetric(own[2], v/yuvVMax),
	}
	return settle(own, rgb, yuv, yuvToRGB)
}

func yuvToRGB(own [3]Component, yuv Triple) Triple {
	y := float64(yuv[0]) / float64(own[0].Max)
	u := float64(yuv[1]) / float64(own[1].Max) * yuvUMax
	v := float64(yuv[2]) / float64(own[2].Max) * yuvVMax
	r := y + 1.13983*v
	g := y - 0.39465*u - 0.58060*v
	b := y + 2.03211*u
	return denormalize(rgbComponents, r, g, b)
}

// YIQ

func rgbToYIQ(own [3]Component, rgb Triple) Triple {
	y, i, q := yiqFromUnit(normalize(rgbComponents, rgb))
	yiq := Triple{
		symmetric(own[0], y),
		symmetric(own[1], i/yiqIMax),
		symmetric(own[2], q/yiqQMax),
	}
	return settle(own, rgb, yiq, yiqToRGB)
}

func yiqToRGB(own [3]Component, yiq Triple) Triple {
	r, g, b := yiqToUnit(own, yiq)
	return denormalize(rgbComponents, r, g, b)
}

// yiqToUnit returns the unclamped RGB of a YIQ triple. Values outside
// [0, 1] mean the triple lies outside the RGB gamut.
func yiqToUnit(own [3]Component, yiq Triple) (r, g, b float64) {
	y := float64(yiq[0]) / float64(own[0].Max)
	i := float64(yiq[1]) / float64(own[1].Max) * yiqIMax
	q := float64(yiq[2]) / float64(own[2].Max) * yiqQMax
	r = y + 0.9468822170900693*i + 0.6235565819861433*q
	g = y - 0.27478764629897834*i - 0.6356910791873801*q
	b = y - 1.1085450346420322*i + 1.7090069284064666*q
	return r, g, b
}

func yiqFromUnit(r, g, b float64) (y, i, q float64) {
	y = 0.30*r + 0.59*g + 0.11*b
	i = 0.74*(r-y) - 0.27*(b-y)
	q = 0.48*(r-y) + 0.41*(b-y)
	return y, i, q
}
