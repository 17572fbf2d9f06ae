// SPDX-License-Identifier: MIT
package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a hex color string does not match
// the 6-digit form, with or without a leading "#".
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB holds integer channels in [0,255].
type RGB struct {
	R int
	G int
	B int
}

// HSL holds hue in degrees [0,360) and saturation/lightness fractions in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// HexToRGB parses a hex color string. The leading "#" is optional and hex
// digits are case-insensitive. This is the single validation gate: every
// other function in this package assumes well-formed input.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 || !isHexDigits(s) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	r, _ := strconv.ParseInt(s[0:2], 16, 0)
	g, _ := strconv.ParseInt(s[2:4], 16, 0)
	b, _ := strconv.ParseInt(s[4:6], 16, 0)

	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// RGBToHex renders the canonical lowercase "#rrggbb" form. Channels are
// clamped to [0,255] so internally derived values never overflow the format.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// RGBToHSL converts integer channels to hue/saturation/lightness.
// Achromatic inputs (max == min) map to hue 0, saturation 0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: normalizeHue(h), S: s, L: l}
}

// HSLToRGB converts back to integer channels, rounding to the nearest value.
// RGBToHSL and HSLToRGB are inverse within one unit per channel.
func HSLToRGB(c HSL) RGB {
	if c.S == 0 {
		v := int(math.Round(c.L * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q
	h := normalizeHue(c.H) / 360

	r := hueToChannel(p, q, h+1.0/3)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3)

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampFraction(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lighten raises HSL lightness by amount (a fraction in [0,1]), clamped.
func Lighten(hex string, amount float64) string {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return hex
	}
	hsl := RGBToHSL(rgb)
	hsl.L = clampFraction(hsl.L + amount)
	return RGBToHex(HSLToRGB(hsl))
}

// Darken lowers HSL lightness by amount, clamped.
func Darken(hex string, amount float64) string {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return hex
	}
	hsl := RGBToHSL(rgb)
	hsl.L = clampFraction(hsl.L - amount)
	return RGBToHex(HSLToRGB(hsl))
}

// Saturate raises HSL saturation by amount, clamped. Hue and lightness are
// unchanged.
func Saturate(hex string, amount float64) string {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return hex
	}
	hsl := RGBToHSL(rgb)
	hsl.S = clampFraction(hsl.S + amount)
	return RGBToHex(HSLToRGB(hsl))
}

// ShiftHue rotates the hue by degrees, normalized into [0,360). Saturation
// and lightness are unchanged.
func ShiftHue(hex string, degrees float64) string {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return hex
	}
	hsl := RGBToHSL(rgb)
	hsl.H = normalizeHue(hsl.H + degrees)
	return RGBToHex(HSLToRGB(hsl))
}

// DefaultAnalogousShift is the hue distance used by Analogous.
const DefaultAnalogousShift = 30

// Complementary returns the color opposite on the hue wheel.
func Complementary(hex string) string {
	return ShiftHue(hex, 180)
}

// Analogous returns the neighboring color at the default 30° shift.
func Analogous(hex string) string {
	return ShiftHue(hex, DefaultAnalogousShift)
}

// Triadic returns the two colors at 120° and 240° from hex.
func Triadic(hex string) (string, string) {
	return ShiftHue(hex, 120), ShiftHue(hex, 240)
}

// HexToRGBA formats "rgba(r, g, b, a)". Alpha is passed through as given:
// callers own the [0,1] range.
func HexToRGBA(hex string, alpha float64) string {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B,
		strconv.FormatFloat(alpha, 'g', -1, 64))
}

// Luminance computes WCAG relative luminance from gamma-expanded channels.
func Luminance(hex string) float64 {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return 0
	}
	r := linearize(float64(rgb.R) / 255)
	g := linearize(float64(rgb.G) / 255)
	b := linearize(float64(rgb.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ShouldUseWhiteText reports whether white text reads better on hex.
// A coarse heuristic, not a WCAG contrast guarantee.
func ShouldUseWhiteText(hex string) bool {
	return Luminance(hex) < 0.5
}
