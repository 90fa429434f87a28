package colormodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "rgba", input: "rgba(255, 0, 0, 255)", want: NewRGBA(255, 0, 0, 255)},
		{name: "rgb defaults alpha", input: "rgb(1,2,3)", want: NewRGBA(1, 2, 3, 255)},
		{name: "rgba clamps", input: "RGBA(300, -1, 0, 0)", want: NewRGBA(255, 0, 0, 0)},
		{name: "hsb", input: " hsb(120, 100, 100) ", want: NewHSB(120, 100, 100)},
		{name: "hsv alias", input: "hsv(400,0,0)", want: NewHSB(360, 0, 0)},
		{name: "cmyk", input: "cmyk(0,100,100,0)", want: NewCMYK(0, 100, 100, 0)},
		{name: "xyz", input: "xyz(41.24, 21.26, 1.93)", want: NewXYZ(41.24, 21.26, 1.93)},
		{name: "hex", input: "#ff8000", want: NewRGBA(255, 128, 0, 255)},
		{name: "hex with alpha", input: "#FF800080", want: NewRGBA(255, 128, 0, 128)},
		{name: "wrong channel count", input: "rgba(1,2,3)", wantErr: true},
		{name: "not a number", input: "hsb(a,b,c)", wantErr: true},
		{name: "float in integer space", input: "cmyk(0.5,0,0,0)", wantErr: true},
		{name: "unknown space", input: "lab(1,2,3)", wantErr: true},
		{name: "missing paren", input: "rgb(1,2,3", wantErr: true},
		{name: "bad hex length", input: "#fff", wantErr: true},
		{name: "bad hex digits", input: "#gg0000", wantErr: true},
		{name: "hex with inner space", input: "#ff 800", wantErr: true},
		{name: "hex with sign", input: "#+f8000", wantErr: true},
		{name: "hex alpha with inner space", input: "#ff8000 8", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err, "Parse(%q) = %v", tt.input, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, allowColors); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseString(t *testing.T) {
	for _, c := range []Color{
		NewRGBA(1, 2, 3, 4),
		NewHSB(359, 1, 99),
		NewCMYK(0, 50, 75, 100),
		NewXYZ(12.5, 0.25, 99.75),
	} {
		got, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestFromInteger(t *testing.T) {
	for _, c := range []Color{
		NewRGBA(255, 0, 128, 7),
		NewHSB(360, 100, 0),
		NewHSB(217, 3, 88),
		NewCMYK(100, 0, 50, 25),
	} {
		t.Run(c.String(), func(t *testing.T) {
			got, err := FromInteger(c.Space(), c.Integer())
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}

	got, err := FromInteger(SpaceXYZ, NewXYZ(41.24, 21.26, 1.93).Integer())
	require.NoError(t, err)
	assert.Equal(t, NewXYZ(41, 21, 1), got, "XYZ keeps only the integer part")

	_, err = FromInteger(Space(-1), 0)
	assert.Error(t, err)
}
