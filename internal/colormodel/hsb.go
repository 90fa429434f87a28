package colormodel

import "fmt"

// HSB is a hue/saturation/brightness color. Hue is in degrees [0, 360],
// saturation and brightness are percentages [0, 100]. HSB has no alpha.
type HSB struct {
	h, s, b int
}

// NewHSB returns an HSB color with every channel clamped to its domain.
func NewHSB(h, s, b int) HSB {
	return HSB{
		h: clamp(h, 0, 360),
		s: clamp(s, 0, 100),
		b: clamp(b, 0, 100),
	}
}

func (c HSB) H() int { return c.h }
func (c HSB) S() int { return c.s }
func (c HSB) B() int { return c.b }

// WithBrightness returns a copy of c with brightness replaced (and clamped).
func (c HSB) WithBrightness(b int) HSB {
	return NewHSB(c.h, c.s, b)
}

func (HSB) Space() Space { return SpaceHSB }

// Integer packs the color as h:16 s:8 b:8.
func (c HSB) Integer() uint32 {
	return uint32(c.h)<<16 | uint32(c.s)<<8 | uint32(c.b)
}

func (c HSB) Luminance() float64 {
	return float64(c.h)/360*0.299 + float64(c.s)/100*0.587 + float64(c.b)/100*0.114
}

func (c HSB) ToRGBA() RGBA { return HSBToRGB(c) }
func (c HSB) ToHSB() HSB   { return c }
func (c HSB) ToCMYK() CMYK { return RGBToCMYK(c.ToRGBA()) }
func (c HSB) ToXYZ() XYZ   { return RGBToXYZ(c.ToRGBA()) }

func (c HSB) Add(other Color) Color {
	res, _ := Combine(OpAdd, c, other)
	return res
}

// Or combines hue bits as well; a result above 360 saturates to 360.
func (c HSB) Or(other Color) (Color, error)  { return Combine(OpOr, c, other) }
func (c HSB) And(other Color) (Color, error) { return Combine(OpAnd, c, other) }
func (c HSB) Xor(other Color) (Color, error) { return Combine(OpXor, c, other) }

func (c HSB) String() string {
	return fmt.Sprintf("hsb(%d, %d, %d)", c.h, c.s, c.b)
}

func (HSB) sealed() {}
