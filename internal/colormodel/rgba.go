package colormodel

import "fmt"

// RGBA is a device color with 8-bit red, green, blue and alpha channels.
type RGBA struct {
	r, g, b, a int
}

// NewRGBA returns an RGBA color with every channel clamped to [0, 255].
func NewRGBA(r, g, b, a int) RGBA {
	return RGBA{
		r: clamp(r, 0, 255),
		g: clamp(g, 0, 255),
		b: clamp(b, 0, 255),
		a: clamp(a, 0, 255),
	}
}

func (c RGBA) R() int { return c.r }
func (c RGBA) G() int { return c.g }
func (c RGBA) B() int { return c.b }
func (c RGBA) A() int { return c.a }

func (RGBA) Space() Space { return SpaceRGBA }

// Integer packs the color as r:8 g:8 b:8 a:8, red in the high byte.
func (c RGBA) Integer() uint32 {
	return uint32(c.r)<<24 | uint32(c.g)<<16 | uint32(c.b)<<8 | uint32(c.a)
}

// Luminance weights the normalized channels with 0.299, 0.587 and 0.114.
// Alpha is ignored.
func (c RGBA) Luminance() float64 {
	return float64(c.r)/255*0.299 + float64(c.g)/255*0.587 + float64(c.b)/255*0.114
}

func (c RGBA) ToRGBA() RGBA { return c }
func (c RGBA) ToHSB() HSB   { return RGBToHSB(c) }
func (c RGBA) ToCMYK() CMYK { return RGBToCMYK(c) }

// ToXYZ uses the gamma-corrected transform. The indirect paths from HSB and
// CMYK use the linear RGBToXYZ instead.
func (c RGBA) ToXYZ() XYZ { return RGBToXYZGamma(c) }

func (c RGBA) Add(other Color) Color {
	res, _ := Combine(OpAdd, c, other)
	return res
}

func (c RGBA) Or(other Color) (Color, error)  { return Combine(OpOr, c, other) }
func (c RGBA) And(other Color) (Color, error) { return Combine(OpAnd, c, other) }
func (c RGBA) Xor(other Color) (Color, error) { return Combine(OpXor, c, other) }

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.r, c.g, c.b, c.a)
}

func (RGBA) sealed() {}
