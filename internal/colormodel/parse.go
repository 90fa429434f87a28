package colormodel

import (
	"fmt"
	"strconv"
	"strings"
)

// FromInteger decodes a packed value produced by Integer for the given
// space. XYZ values come back with integer channels only.
func FromInteger(space Space, v uint32) (Color, error) {
	switch space {
	case SpaceRGBA:
		return NewRGBA(int(v>>24&0xff), int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)), nil
	case SpaceHSB:
		return NewHSB(int(v>>16&0xffff), int(v>>8&0xff), int(v&0xff)), nil
	case SpaceCMYK:
		return NewCMYK(int(v>>24&0xff), int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)), nil
	case SpaceXYZ:
		return NewXYZ(float64(v>>16&0xffff), float64(v>>8&0xff), float64(v&0xff)), nil
	default:
		return nil, fmt.Errorf("unknown color space %v", space)
	}
}

// Parse reads a color written as rgba(r, g, b, a), rgb(r, g, b),
// hsb(h, s, b), cmyk(c, m, y, k), xyz(x, y, z) or a #rrggbb / #rrggbbaa hex
// string. Channels are clamped like the constructors do.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("invalid color %q: expected name(channels...) or #hex", s)
	}
	name := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	switch name {
	case "rgb":
		v, err := parseInts(args, 3)
		if err != nil {
			return nil, fmt.Errorf("invalid rgb color %q: %w", s, err)
		}
		return NewRGBA(v[0], v[1], v[2], 255), nil
	case "rgba":
		v, err := parseInts(args, 4)
		if err != nil {
			return nil, fmt.Errorf("invalid rgba color %q: %w", s, err)
		}
		return NewRGBA(v[0], v[1], v[2], v[3]), nil
	case "hsb", "hsv":
		v, err := parseInts(args, 3)
		if err != nil {
			return nil, fmt.Errorf("invalid hsb color %q: %w", s, err)
		}
		return NewHSB(v[0], v[1], v[2]), nil
	case "cmyk":
		v, err := parseInts(args, 4)
		if err != nil {
			return nil, fmt.Errorf("invalid cmyk color %q: %w", s, err)
		}
		return NewCMYK(v[0], v[1], v[2], v[3]), nil
	case "xyz":
		v, err := parseFloats(args, 3)
		if err != nil {
			return nil, fmt.Errorf("invalid xyz color %q: %w", s, err)
		}
		return NewXYZ(v[0], v[1], v[2]), nil
	default:
		return nil, fmt.Errorf("unknown color space %q", name)
	}
}

func parseInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d channels, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d channels, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseHex reads rrggbb or rrggbbaa without the leading '#'. Every pair
// must be two hex digits; whitespace or signs inside are rejected.
func parseHex(s string) (Color, error) {
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid hex color length: %d", len(s))
	}

	ch := [4]int{0, 0, 0, 255}
	for i := 0; i < len(s); i += 2 {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		ch[i/2] = int(v)
	}

	return NewRGBA(ch[0], ch[1], ch[2], ch[3]), nil
}
