package engine

import (
	"fmt"
	"math"
	"strings"
)

// HSL holds a color in hue/saturation/lightness form.
// Hue is 0-360 degrees, saturation and lightness are 0-100 percent.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Color is the canonical color representation used across the engine.
// Hex is the source of truth, HSL is the cached decomposition of it.
type Color struct {
	Hex       string `json:"hex"`
	HSL       HSL    `json:"hsl"`
	Name      string `json:"name"`
	IsNeutral bool   `json:"is_neutral"`
}

const (
	neutralSaturationMax = 15
	neutralLightnessLow  = 10
	neutralLightnessHigh = 90
)

// ParseHexColor builds a full Color from a "#RGB" or "#RRGGBB" string,
// deriving HSL, a fashion name and the neutral flag.
func ParseHexColor(hex string) (Color, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{
		Hex:       HSLToHex(hsl),
		HSL:       hsl,
		Name:      ColorName(hsl),
		IsNeutral: ClassifyNeutral(hsl),
	}, nil
}

func parseHexChannels(hex string) (r, g, b int, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	var parsed [3]int
	for i := 0; i < 3; i++ {
		v, convErr := hexByte(s[i*2 : i*2+2])
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
		parsed[i] = v
	}
	return parsed[0], parsed[1], parsed[2], nil
}

func hexByte(s string) (int, error) {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v = v*16 + int(c-'0')
		case c >= 'a' && c <= 'f':
			v = v*16 + int(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v*16 + int(c-'A'+10)
		default:
			return 0, fmt.Errorf("non-hex byte %q", c)
		}
	}
	return v, nil
}

// HexToHSL converts a 3- or 6-digit hex string to HSL.
// Returns ErrInvalidColorFormat for anything that is not well-formed RGB hex.
func HexToHSL(hex string) (HSL, error) {
	ri, gi, bi, err := parseHexChannels(hex)
	if err != nil {
		return HSL{}, err
	}
	r := float64(ri) / 255.0
	g := float64(gi) / 255.0
	b := float64(bi) / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return HSL{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}, nil
}

// HSLToHex converts HSL back to a "#RRGGBB" string. Inverse of HexToHSL
// within the rounding error of 8-bit channels.
func HSLToHex(hsl HSL) string {
	h := math.Mod(float64(hsl.H), 360)
	if h < 0 {
		h += 360
	}
	s := clampFloat(float64(hsl.S), 0, 100) / 100
	l := clampFloat(float64(hsl.L), 0, 100) / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02X%02X%02X",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)),
	)
}

// ClassifyNeutral reports whether a color reads as neutral on a garment:
// washed-out saturation or lightness near the black/white ends.
func ClassifyNeutral(hsl HSL) bool {
	return hsl.S <= neutralSaturationMax ||
		hsl.L <= neutralLightnessLow ||
		hsl.L >= neutralLightnessHigh
}

// HueDistance is the shortest angular distance between two hues on the
// color wheel, always in [0, 180].
func HueDistance(h1, h2 int) int {
	d := h1 - h2
	if d < 0 {
		d = -d
	}
	d = d % 360
	if d > 180 {
		d = 360 - d
	}
	return d
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
