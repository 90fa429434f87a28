package colormodel

import "fmt"

// CMYK is a subtractive color with percentage channels [0, 100].
type CMYK struct {
	c, m, y, k int
}

// NewCMYK returns a CMYK color with every channel clamped to [0, 100].
func NewCMYK(c, m, y, k int) CMYK {
	return CMYK{
		c: clamp(c, 0, 100),
		m: clamp(m, 0, 100),
		y: clamp(y, 0, 100),
		k: clamp(k, 0, 100),
	}
}

func (c CMYK) C() int { return c.c }
func (c CMYK) M() int { return c.m }
func (c CMYK) Y() int { return c.y }
func (c CMYK) K() int { return c.k }

func (CMYK) Space() Space { return SpaceCMYK }

// Integer packs the color as c:8 m:8 y:8 k:8.
func (c CMYK) Integer() uint32 {
	return uint32(c.c)<<24 | uint32(c.m)<<16 | uint32(c.y)<<8 | uint32(c.k)
}

// Luminance uses the RGB weights for C, M and Y plus 0.1 for K.
func (c CMYK) Luminance() float64 {
	return float64(c.c)/100*0.299 + float64(c.m)/100*0.587 + float64(c.y)/100*0.114 + float64(c.k)/100*0.1
}

func (c CMYK) ToRGBA() RGBA { return CMYKToRGB(c) }
func (c CMYK) ToHSB() HSB   { return RGBToHSB(c.ToRGBA()) }
func (c CMYK) ToCMYK() CMYK { return c }
func (c CMYK) ToXYZ() XYZ   { return RGBToXYZ(c.ToRGBA()) }

func (c CMYK) Add(other Color) Color {
	res, _ := Combine(OpAdd, c, other)
	return res
}

func (c CMYK) Or(other Color) (Color, error)  { return Combine(OpOr, c, other) }
func (c CMYK) And(other Color) (Color, error) { return Combine(OpAnd, c, other) }
func (c CMYK) Xor(other Color) (Color, error) { return Combine(OpXor, c, other) }

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d, %d, %d, %d)", c.c, c.m, c.y, c.k)
}

func (CMYK) sealed() {}
