package colormodel

import "math"

// sRGB (D65) primaries, linear RGB -> XYZ.
var rgbToXYZMatrix = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// Inverse of rgbToXYZMatrix, XYZ -> linear RGB.
var xyzToRGBMatrix = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

func mulMatrix(m *[3][3]float64, a, b, c float64) (x, y, z float64) {
	x = m[0][0]*a + m[0][1]*b + m[0][2]*c
	y = m[1][0]*a + m[1][1]*b + m[1][2]*c
	z = m[2][0]*a + m[2][1]*b + m[2][2]*c
	return
}

// normalize maps an 8-bit RGBA color to [0, 1] channels.
func normalize(c RGBA) (r, g, b float64) {
	return float64(c.r) / 255, float64(c.g) / 255, float64(c.b) / 255
}

// RGBToHSB converts RGB to HSB. Alpha is dropped and all channels are
// truncated.
func RGBToHSB(c RGBA) HSB {
	r, g, b := normalize(c)
	maxv := max(r, g, b)
	minv := min(r, g, b)
	delta := maxv - minv

	// Hue
	var h float64
	if delta != 0 {
		switch maxv {
		case r:
			h = math.Mod((g-b)/delta, 6)
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}

	// Saturation
	var s float64
	if maxv != 0 {
		s = delta / maxv * 100
	}

	return NewHSB(int(h), int(s), int(maxv*100))
}

// HSBToRGB converts HSB to RGB using the six-sector p/q/t scheme.
// The result is fully opaque.
func HSBToRGB(c HSB) RGBA {
	h := float64(c.h) / 60
	s := float64(c.s) / 100
	v := float64(c.b) / 100

	// Sector 0..5 and fractional position inside it. Hue 360 lands in
	// sector 0 with f=0, same as hue 0.
	sector := math.Floor(h)
	f := h - sector
	i := int(sector) % 6

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return NewRGBA(int(r*255), int(g*255), int(b*255), 255)
}

// RGBToCMYK converts RGB to CMYK. Alpha is dropped.
//
// Pure black has K=100 and an undefined C/M/Y (the formula divides by
// 1-K); it is returned as cmyk(0, 0, 0, 100).
func RGBToCMYK(c RGBA) CMYK {
	r, g, b := normalize(c)
	k := 1 - max(r, g, b)
	if k >= 1 {
		return NewCMYK(0, 0, 0, 100)
	}

	cy := (1 - r - k) / (1 - k)
	m := (1 - g - k) / (1 - k)
	y := (1 - b - k) / (1 - k)

	return NewCMYK(int(cy*100), int(m*100), int(y*100), int(k*100))
}

// CMYKToRGB converts CMYK to RGB. The result is fully opaque.
func CMYKToRGB(c CMYK) RGBA {
	cy := float64(c.c) / 100
	m := float64(c.m) / 100
	y := float64(c.y) / 100
	k := float64(c.k) / 100

	r := (1 - cy) * (1 - k) * 255
	g := (1 - m) * (1 - k) * 255
	b := (1 - y) * (1 - k) * 255

	return NewRGBA(int(r), int(g), int(b), 255)
}

// RGBToXYZ applies the sRGB matrix directly to the normalized channels,
// without linearizing them first.
func RGBToXYZ(c RGBA) XYZ {
	r, g, b := normalize(c)
	x, y, z := mulMatrix(&rgbToXYZMatrix, r, g, b)
	return NewXYZ(x*100, y*100, z*100)
}

// RGBToXYZGamma linearizes the channels with the inverse sRGB transfer
// function before applying the sRGB matrix.
func RGBToXYZGamma(c RGBA) XYZ {
	r, g, b := normalize(c)
	x, y, z := mulMatrix(&rgbToXYZMatrix, linearize(r), linearize(g), linearize(b))
	return NewXYZ(x*100, y*100, z*100)
}

// linearize is the inverse sRGB gamma.
func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// XYZToRGB applies the inverse sRGB matrix. Channels are rounded to the
// nearest integer and clamped to [0, 255]; the result is fully opaque.
func XYZToRGB(c XYZ) RGBA {
	r, g, b := mulMatrix(&xyzToRGBMatrix, c.x/100, c.y/100, c.z/100)
	return NewRGBA(
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)),
		255,
	)
}
