// Package colormodel implements immutable color values in four color spaces
// (RGBA, HSB, CMYK and XYZ), the conversion formulas between them and the
// channel-wise combination operators.
//
// RGBA is the conversion hub: HSB, CMYK and XYZ only know how to reach RGBA
// and back, every other pair is composed through it.
package colormodel

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrUnsupportedOperation is returned for bitwise combination of XYZ colors.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Space identifies one of the four color representations.
type Space int

const (
	SpaceRGBA Space = iota
	SpaceHSB
	SpaceCMYK
	SpaceXYZ
)

// Spaces lists every supported space in declaration order.
var Spaces = []Space{SpaceRGBA, SpaceHSB, SpaceCMYK, SpaceXYZ}

func (s Space) String() string {
	switch s {
	case SpaceRGBA:
		return "rgba"
	case SpaceHSB:
		return "hsb"
	case SpaceCMYK:
		return "cmyk"
	case SpaceXYZ:
		return "xyz"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// ParseSpace returns the space named by s (case-insensitive). "rgb" is
// accepted as an alias for "rgba".
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgba", "rgb":
		return SpaceRGBA, nil
	case "hsb", "hsv":
		return SpaceHSB, nil
	case "cmyk":
		return SpaceCMYK, nil
	case "xyz":
		return SpaceXYZ, nil
	default:
		return 0, fmt.Errorf("unknown color space %q", s)
	}
}

// Color is the contract shared by RGBA, HSB, CMYK and XYZ. The set of
// implementations is closed.
//
// Combination methods convert the operand into the receiver's space first
// and always return a value in the receiver's space. Operands must be
// non-nil.
type Color interface {
	Space() Space

	// Integer packs the channels into a single value. The layout depends
	// on the space and is lossy for XYZ.
	Integer() uint32

	// Luminance is a weighted channel sum local to each space; values from
	// different spaces are not comparable.
	Luminance() float64

	ToRGBA() RGBA
	ToHSB() HSB
	ToCMYK() CMYK
	ToXYZ() XYZ

	// Add returns the channel-wise midpoint of the two colors.
	Add(other Color) Color
	Or(other Color) (Color, error)
	And(other Color) (Color, error)
	Xor(other Color) (Color, error)

	String() string

	sealed()
}

var (
	_ Color = RGBA{}
	_ Color = HSB{}
	_ Color = CMYK{}
	_ Color = XYZ{}
)

// clamp limits v to [lo, hi].
func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
