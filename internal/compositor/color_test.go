package compositor

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveRaw(t *testing.T, raw string) (RGBColor, error) {
	t.Helper()
	spec, err := ParseColorSpec(json.RawMessage(raw))
	if err != nil {
		return RGBColor{}, err
	}
	return Resolve(spec)
}

func TestResolve_RGBIdentity(t *testing.T) {
	for _, v := range []int{0, 1, 17, 128, 254, 255} {
		raw := fmt.Sprintf("[%d, %d, %d]", v, 255-v, v/2)
		got, err := resolveRaw(t, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, RGBColor{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}, got)
	}
}

func TestResolve_Hex(t *testing.T) {
	tests := []struct {
		input string
		want  RGBColor
	}{
		{"#FF0000", RGBColor{255, 0, 0}},
		{"#00ff00", RGBColor{0, 255, 0}},
		{"#0000Ff", RGBColor{0, 0, 255}},
		{"#1a2B3c", RGBColor{0x1a, 0x2b, 0x3c}},
		{"#000000", RGBColor{0, 0, 0}},
		{"#FFFFFF", RGBColor{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Resolve(Hex(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_HSLPrimaries(t *testing.T) {
	tests := []struct {
		input string
		want  RGBColor
	}{
		{"hsl(0, 100%, 50%)", RGBColor{255, 0, 0}},
		{"hsl(120, 100%, 50%)", RGBColor{0, 255, 0}},
		{"hsl(240, 100%, 50%)", RGBColor{0, 0, 255}},
		{"hsl(0, 0%, 100%)", RGBColor{255, 255, 255}},
		{"hsl(0, 0%, 0%)", RGBColor{0, 0, 0}},
		{"hsl(360, 100%, 50%)", RGBColor{255, 0, 0}},
		{"hsl(60,100%,50%)", RGBColor{255, 255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := resolveRaw(t, `"`+tt.input+`"`)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_HSLTruncates(t *testing.T) {
	// l=0.5, s=0 gives 127.5 per channel.
	got, err := Resolve(HSL{H: 0, S: 0, L: 50})
	require.NoError(t, err)
	assert.Equal(t, RGBColor{127, 127, 127}, got)
}

func TestResolve_HSLClampsPercentages(t *testing.T) {
	over, err := Resolve(HSL{H: 0, S: 150, L: 50})
	require.NoError(t, err)
	capped, err := Resolve(HSL{H: 0, S: 100, L: 50})
	require.NoError(t, err)
	assert.Equal(t, capped, over)

	bright, err := Resolve(HSL{H: 200, S: 40, L: 180})
	require.NoError(t, err)
	assert.Equal(t, RGBColor{255, 255, 255}, bright)
}

func TestResolve_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"wrong arity", `[1, 2]`},
		{"too many components", `[1, 2, 3, 4]`},
		{"non integer component", `[1, 2.5, 3]`},
		{"string component", `["a", 2, 3]`},
		{"out of range component", `[1, 256, 3]`},
		{"negative component", `[-1, 2, 3]`},
		{"unknown prefix", `"notacolor"`},
		{"hsl without percent", `"hsl(1,2,3)"`},
		{"hsl garbage", `"hsla(1, 2%, 3%, 0.5)"`},
		{"short hex", `"#FFF"`},
		{"bad hex digit", `"#GG0000"`},
		{"long hex", `"#FF00001"`},
		{"object", `{"r": 1}`},
		{"number", `42`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveRaw(t, tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidColorFormat)
		})
	}
}

func TestResolve_NilSpec(t *testing.T) {
	_, err := Resolve(nil)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestResolve_HexRoundTrip(t *testing.T) {
	inputs := []ColorSpec{
		RGB{R: 12, G: 200, B: 99},
		Hex("#abcdef"),
		HSL{H: 210, S: 65, L: 40},
		HSL{H: 33, S: 12, L: 87},
	}

	for _, spec := range inputs {
		first, err := Resolve(spec)
		require.NoError(t, err)

		second, err := Resolve(Hex(first.Hex()))
		require.NoError(t, err)
		assert.Equal(t, first, second, "spec %#v", spec)
	}
}

func TestParseColorString_HSLTrailingTextAllowed(t *testing.T) {
	spec, err := ParseColorString("hsl(10, 20%, 30%);")
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 10, S: 20, L: 30}, spec)
}
