package icons

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// The glyph table and sanitizer policy are built once at first use and
// immutable afterward.
var (
	initOnce sync.Once
	glyphs   map[string]string
	policy   *bluemonday.Policy
)

var shortcodePattern = regexp.MustCompile(`:([a-z0-9-]+):`)

func initRegistry() {
	glyphs = map[string]string{
		"check":       "✓",
		"cross":       "✗",
		"star":        "★",
		"heart":       "♥",
		"arrow-right": "→",
		"arrow-left":  "←",
		"arrow-up":    "↑",
		"arrow-down":  "↓",
		"sun":         "☀",
		"moon":        "☾",
		"gear":        "⚙",
		"info":        "ℹ",
		"warning":     "⚠",
		"mail":        "✉",
		"pencil":      "✎",
		"flag":        "⚑",
		"music":       "♪",
		"bolt":        "⚡",
		"sparkle":     "✦",
		"circle":      "●",
	}

	policy = bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("span", "div", "a")
}

// Lookup returns the glyph for an icon name.
func Lookup(name string) (string, bool) {
	initOnce.Do(initRegistry)
	g, ok := glyphs[name]
	return g, ok
}

// Names returns the number of registered icons.
func Names() int {
	initOnce.Do(initRegistry)
	return len(glyphs)
}

// Render sanitizes markup and substitutes :name: shortcodes with glyph
// spans. Unknown shortcodes are left in place.
func Render(markup string) string {
	initOnce.Do(initRegistry)

	safe := policy.Sanitize(markup)

	return shortcodePattern.ReplaceAllStringFunc(safe, func(match string) string {
		name := shortcodePattern.FindStringSubmatch(match)[1]
		glyph, ok := glyphs[name]
		if !ok {
			return match
		}
		return fmt.Sprintf(`<span class="icon" title=%q>%s</span>`, name, glyph)
	})
}
