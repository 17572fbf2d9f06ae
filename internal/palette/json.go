package palette

import "encoding/json"

// schemeJSON is the exported subset of a Scheme. Gradient and glow strings
// are CSS-only and intentionally left out.
type schemeJSON struct {
	Primary      string `json:"primary"`
	PrimaryLight string `json:"primaryLight"`
	PrimaryDark  string `json:"primaryDark"`
	Cyan         string `json:"cyan"`
	Indigo       string `json:"indigo"`
	ThemeColor   string `json:"themeColor"`
}

// GenerateJSON serializes the scheme's hex colors as an indented document.
func GenerateJSON(s *Scheme) string {
	doc := schemeJSON{
		Primary:      s.Primary,
		PrimaryLight: s.PrimaryLight,
		PrimaryDark:  s.PrimaryDark,
		Cyan:         s.Cyan,
		Indigo:       s.Indigo,
		ThemeColor:   s.ThemeColor,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		// Marshaling a flat string struct cannot fail.
		return "{}"
	}
	return string(out)
}
