// SPDX-License-Identifier: MIT
package palette

import "fmt"

const (
	// Seed-independent design tokens
	ColorBg      = "#0f172a" // Page background
	ColorSurface = "#1e293b" // Card/container background
	ColorText    = "#f1f5f9" // Main text
	ColorSuccess = "#22c55e" // Green
	ColorWarning = "#f59e0b" // Amber
	ColorError   = "#ef4444" // Red

	BorderSubtle  = "rgba(148, 163, 184, 0.1)"
	BorderDefault = "rgba(148, 163, 184, 0.2)"
	BorderHover   = "rgba(148, 163, 184, 0.35)"
)

// GenerateCSS renders the scheme as one :root block of custom properties.
// Token order is fixed so output is byte-stable for a given seed.
func GenerateCSS(s *Scheme) string {
	return fmt.Sprintf(`:root {
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-primary: %s;
  --color-primary-light: %s;
  --color-primary-dark: %s;
  --color-primary-glow: %s;
  --color-cyan: %s;
  --color-indigo: %s;
  --color-success: %s;
  --color-warning: %s;
  --color-error: %s;
  --gradient-primary: %s;
  --gradient-blue: %s;
  --gradient-blue-intense: %s;
  --gradient-accent: %s;
  --glow-primary: %s;
  --glow-blue: %s;
  --glow-cyan: %s;
  --border-subtle: %s;
  --border-default: %s;
  --border-hover: %s;
}
`, ColorBg, ColorSurface, ColorText,
		s.Primary, s.PrimaryLight, s.PrimaryDark, s.PrimaryGlow,
		s.Cyan, s.Indigo,
		ColorSuccess, ColorWarning, ColorError,
		s.GradientPrimary, s.GradientBlue, s.GradientBlueIntense, s.GradientAccent,
		s.GlowPrimary, s.GlowBlue, s.GlowCyan,
		BorderSubtle, BorderDefault, BorderHover)
}

// BaseCSS returns element styles layered on the token block. Only the
// preview server uses this; GenerateCSS stays a pure token serializer.
func BaseCSS() string {
	return `
* { box-sizing: border-box; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  background: var(--color-bg);
  color: var(--color-text);
  margin: 0;
  padding: 0;
  line-height: 1.5;
}

a {
  color: var(--color-primary-light);
  text-decoration: none;
}

a:hover { text-decoration: underline; }

button, .btn {
  background: var(--gradient-blue);
  color: var(--color-text);
  border: none;
  padding: 8px 16px;
  border-radius: 6px;
  cursor: pointer;
  transition: box-shadow 0.2s;
}

button:hover, .btn:hover {
  box-shadow: var(--glow-blue);
}

.card, .surface {
  background: var(--color-surface);
  border: 1px solid var(--border-default);
  border-radius: 8px;
  padding: 16px;
}

.card:hover {
  border-color: var(--border-hover);
}

.hero {
  background: var(--gradient-primary);
}

.accent {
  background: var(--gradient-accent);
}

.icon {
  color: var(--color-cyan);
}

.muted { opacity: 0.65; }

.success { color: var(--color-success); }
.warning { color: var(--color-warning); }
.error, .danger { color: var(--color-error); }

hr, .divider {
  border: none;
  border-top: 1px solid var(--border-subtle);
}
`
}
