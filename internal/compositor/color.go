package compositor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	hslPattern = regexp.MustCompile(`^hsl\((\d+),\s*(\d+)%,\s*(\d+)%\)`)
)

// RGBColor is a resolved 8-bit color.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as #rrggbb.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorSpec is one of RGB, Hex or HSL.
type ColorSpec interface {
	resolve() (RGBColor, error)
}

// RGB holds raw channel values as supplied by the caller.
type RGB struct {
	R, G, B int
}

// Hex holds a "#RRGGBB" string.
type Hex string

// HSL holds hue in degrees and saturation/lightness in percent.
type HSL struct {
	H, S, L int
}

// Resolve converts a ColorSpec into an RGBColor.
func Resolve(spec ColorSpec) (RGBColor, error) {
	if spec == nil {
		return RGBColor{}, fmt.Errorf("%w: empty color", ErrInvalidColorFormat)
	}
	return spec.resolve()
}

// ParseColorSpec builds a ColorSpec from the JSON "color" field. Arrays are
// RGB, strings dispatch on their "#" or "hsl" prefix.
func ParseColorSpec(raw json.RawMessage) (ColorSpec, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty color", ErrInvalidColorFormat)
	}

	switch trimmed[0] {
	case '[':
		var components []json.Number
		decoder := json.NewDecoder(bytes.NewReader(trimmed))
		decoder.UseNumber()
		if err := decoder.Decode(&components); err != nil {
			return nil, fmt.Errorf("%w: RGB color must be a list of integers", ErrInvalidColorFormat)
		}
		return ParseRGB(components)
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidColorFormat, err)
		}
		return ParseColorString(s)
	default:
		return nil, fmt.Errorf("%w: unsupported color format", ErrInvalidColorFormat)
	}
}

// ParseRGB accepts exactly three integer components.
func ParseRGB(components []json.Number) (ColorSpec, error) {
	if len(components) != 3 {
		return nil, fmt.Errorf("%w: RGB color must be a list of 3 values", ErrInvalidColorFormat)
	}

	var values [3]int
	for i, component := range components {
		v, err := strconv.Atoi(component.String())
		if err != nil {
			return nil, fmt.Errorf("%w: RGB component %q is not an integer", ErrInvalidColorFormat, component)
		}
		values[i] = v
	}

	return RGB{R: values[0], G: values[1], B: values[2]}, nil
}

// ParseColorString parses "#RRGGBB" or "hsl(h, s%, l%)".
func ParseColorString(s string) (ColorSpec, error) {
	if strings.HasPrefix(s, "#") {
		return Hex(s), nil
	}

	if strings.HasPrefix(s, "hsl") {
		match := hslPattern.FindStringSubmatch(strings.TrimSpace(s))
		if match == nil {
			return nil, fmt.Errorf("%w: invalid HSL color format: %s", ErrInvalidColorFormat, s)
		}

		var values [3]int
		for i := range values {
			v, err := strconv.Atoi(match[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid HSL color format: %s", ErrInvalidColorFormat, s)
			}
			values[i] = v
		}
		return HSL{H: values[0], S: values[1], L: values[2]}, nil
	}

	return nil, fmt.Errorf("%w: unsupported color format: %s", ErrInvalidColorFormat, s)
}

func (c RGB) resolve() (RGBColor, error) {
	for _, v := range []int{c.R, c.G, c.B} {
		if v < 0 || v > 255 {
			return RGBColor{}, fmt.Errorf("%w: RGB component %d out of range 0-255", ErrInvalidColorFormat, v)
		}
	}
	return RGBColor{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}, nil
}

func (h Hex) resolve() (RGBColor, error) {
	match := hexPattern.FindStringSubmatch(string(h))
	if match == nil {
		return RGBColor{}, fmt.Errorf("%w: invalid HEX color format: %s", ErrInvalidColorFormat, string(h))
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(match[i+1], 16, 8)
		if err != nil {
			return RGBColor{}, fmt.Errorf("%w: invalid HEX color format: %s", ErrInvalidColorFormat, string(h))
		}
		channels[i] = uint8(v)
	}

	return RGBColor{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// resolve uses the hue-chroma form of HSL to RGB. Saturation and lightness
// are clamped to [0,100]; each channel is truncated after scaling by 255.
func (c HSL) resolve() (RGBColor, error) {
	hue := math.Mod(float64(c.H), 360)
	if hue < 0 {
		hue += 360
	}
	s := clampPercent(c.S) / 100
	l := clampPercent(c.L) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	sector := hue / 60
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))

	var r, g, b float64
	switch {
	case sector < 1:
		r, g, b = chroma, x, 0
	case sector < 2:
		r, g, b = x, chroma, 0
	case sector < 3:
		r, g, b = 0, chroma, x
	case sector < 4:
		r, g, b = 0, x, chroma
	case sector < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := l - chroma/2
	return RGBColor{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}, nil
}

func clampPercent(v int) float64 {
	return float64(min(max(v, 0), 100))
}

func toChannel(v float64) uint8 {
	scaled := int(v * 255)
	return uint8(min(max(scaled, 0), 255))
}
