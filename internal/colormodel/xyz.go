package colormodel

import (
	"fmt"
	"math"
)

// XYZ is a CIE 1931 XYZ color scaled to [0, 100] per channel.
//
// XYZ supports conversion and Add, but not the bitwise operators.
type XYZ struct {
	x, y, z float64
}

// NewXYZ returns an XYZ color with every channel clamped to [0, 100].
// NaN channels become 0.
func NewXYZ(x, y, z float64) XYZ {
	return XYZ{
		x: clampXYZ(x),
		y: clampXYZ(y),
		z: clampXYZ(z),
	}
}

func clampXYZ(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, 0, 100)
}

func (c XYZ) X() float64 { return c.x }
func (c XYZ) Y() float64 { return c.y }
func (c XYZ) Z() float64 { return c.z }

func (XYZ) Space() Space { return SpaceXYZ }

// Integer truncates the channels and packs them as x:16 y:8 z:8. The
// fractional parts are lost, so this is only good for display.
func (c XYZ) Integer() uint32 {
	return uint32(c.x)<<16 | uint32(c.y)<<8 | uint32(c.z)
}

// Luminance applies the RGB weights directly to X, Y and Z.
func (c XYZ) Luminance() float64 {
	return c.x*0.299 + c.y*0.587 + c.z*0.114
}

func (c XYZ) ToRGBA() RGBA { return XYZToRGB(c) }
func (c XYZ) ToHSB() HSB   { return RGBToHSB(c.ToRGBA()) }
func (c XYZ) ToCMYK() CMYK { return RGBToCMYK(c.ToRGBA()) }
func (c XYZ) ToXYZ() XYZ   { return c }

func (c XYZ) Add(other Color) Color {
	res, _ := Combine(OpAdd, c, other)
	return res
}

// Or always fails with ErrUnsupportedOperation.
func (c XYZ) Or(other Color) (Color, error) { return Combine(OpOr, c, other) }

// And always fails with ErrUnsupportedOperation.
func (c XYZ) And(other Color) (Color, error) { return Combine(OpAnd, c, other) }

// Xor always fails with ErrUnsupportedOperation.
func (c XYZ) Xor(other Color) (Color, error) { return Combine(OpXor, c, other) }

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%.2f, %.2f, %.2f)", c.x, c.y, c.z)
}

func (XYZ) sealed() {}
