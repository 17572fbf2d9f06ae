package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/huegen/huegen/internal/colors"
)

// Scheme is the full set of colors derived from one seed. Every field is a
// pure function of Primary; the struct is built once and never mutated.
type Scheme struct {
	Primary      string // Validated seed, canonical #rrggbb
	PrimaryLight string
	PrimaryDark  string
	PrimaryGlow  string // rgba() string, not hex
	Cyan         string // Hue-banded accent near cyan
	Indigo       string // Hue-banded accent near indigo

	GradientPrimary     string
	GradientBlue        string
	GradientBlueIntense string
	GradientAccent      string

	GlowPrimary string
	GlowBlue    string
	GlowCyan    string

	ThemeColor string // Always equal to Primary
}

const (
	lightenAmount = 0.15
	darkenAmount  = 0.12

	primaryGlowAlpha = 0.4
	blueGlowAlpha    = 0.35
	cyanGlowAlpha    = 0.3
)

// Generate derives a Scheme from a seed hex color, with or without the
// leading "#". The seed is the only input ever validated; an invalid seed
// returns colors.ErrInvalidColorFormat unwrapped.
func Generate(seed string) (*Scheme, error) {
	if !strings.HasPrefix(seed, "#") {
		seed = "#" + seed
	}

	rgb, err := colors.HexToRGB(seed)
	if err != nil {
		return nil, err
	}
	primary := colors.RGBToHex(rgb)
	hsl := colors.RGBToHSL(rgb)

	cyan := deriveCyan(hsl)
	indigo := deriveIndigo(hsl)
	primaryDark := colors.Darken(primary, darkenAmount)

	s := &Scheme{
		Primary:      primary,
		PrimaryLight: colors.Lighten(primary, lightenAmount),
		PrimaryDark:  primaryDark,
		PrimaryGlow:  colors.HexToRGBA(primary, primaryGlowAlpha),
		Cyan:         cyan,
		Indigo:       indigo,

		GradientPrimary: fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 50%%, %s 100%%)",
			primaryDark, primary, cyan),
		GradientBlue: fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)",
			indigo, primary),
		GradientBlueIntense: fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)",
			primaryDark, indigo),
		GradientAccent: fmt.Sprintf("linear-gradient(90deg, %s 0%%, %s 100%%)",
			cyan, primary),

		GlowPrimary: fmt.Sprintf("0 0 80px %s", colors.HexToRGBA(primary, primaryGlowAlpha)),
		GlowBlue:    fmt.Sprintf("0 0 60px %s", colors.HexToRGBA(indigo, blueGlowAlpha)),
		GlowCyan:    fmt.Sprintf("0 0 40px %s", colors.HexToRGBA(cyan, cyanGlowAlpha)),

		ThemeColor: primary,
	}

	return s, nil
}

// deriveCyan forces the hue into a narrow band above 180° that still tracks
// the seed's own hue, then brightens. Not a plain complementary shift.
func deriveCyan(hsl colors.HSL) string {
	out := colors.HSL{
		H: 180 + math.Mod(hsl.H, 30),
		S: math.Min(hsl.S*1.1, 1.0),
		L: math.Min(hsl.L+0.1, 0.85),
	}
	return colors.RGBToHex(colors.HSLToRGB(out))
}

// deriveIndigo does the same with a band above 240°, slightly muted.
func deriveIndigo(hsl colors.HSL) string {
	out := colors.HSL{
		H: 240 + math.Mod(hsl.H, 20),
		S: hsl.S * 0.9,
		L: hsl.L * 0.95,
	}
	return colors.RGBToHex(colors.HSLToRGB(out))
}
