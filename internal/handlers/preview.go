// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huegen/huegen/internal/colors"
	"github.com/huegen/huegen/internal/icons"
	"github.com/huegen/huegen/internal/palette"
	"github.com/huegen/huegen/internal/swatch"
)

// HealthHandler reports service status
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "huegen",
	})
}

// ThemeCSSHandler serves the full stylesheet for the scheme: the token
// block followed by the base element styles.
func ThemeCSSHandler(s *palette.Scheme) gin.HandlerFunc {
	return func(c *gin.Context) {
		css := palette.GenerateCSS(s) + palette.BaseCSS()
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
	}
}

// PaletteJSONHandler serves the structured palette document
func PaletteJSONHandler(s *palette.Scheme) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(palette.GenerateJSON(s)))
	}
}

// SwatchHandler serves the palette rendered as a PNG strip
func SwatchHandler(s *palette.Scheme, width, height int) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := swatch.Encode(s, width, height)
		if err != nil {
			c.String(http.StatusInternalServerError, "swatch rendering failed: %v", err)
			return
		}
		c.Data(http.StatusOK, "image/png", data)
	}
}

// DemoPageHandler serves a page exercising the generated tokens so a seed
// can be judged at a glance.
func DemoPageHandler(s *palette.Scheme) gin.HandlerFunc {
	textClass := "light-text"
	if !colors.ShouldUseWhiteText(s.Primary) {
		textClass = "dark-text"
	}

	intro := icons.Render(`<p>:sparkle: Palette preview: gradients, glows and accents
derived from one seed. Looks right? :check: Ship it. Off-brand? :cross: Try another seed.</p>`)

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="theme-color" content="%s">
	<title>huegen preview: %s</title>
	<link rel="stylesheet" href="/theme.css">
	<style>
		main { max-width: 720px; margin: 0 auto; padding: 32px; }
		.chip { display: inline-block; width: 120px; padding: 24px 0; text-align: center;
			border-radius: 8px; margin: 4px; }
		.light-text { color: #ffffff; }
		.dark-text { color: #000000; }
	</style>
</head>
<body>
	<main>
		<h1>huegen preview</h1>
		%s
		<div class="hero card">
			<span class="chip %s" style="background: var(--color-primary)">primary</span>
			<span class="chip %s" style="background: var(--color-primary-light)">light</span>
			<span class="chip %s" style="background: var(--color-primary-dark)">dark</span>
			<span class="chip %s" style="background: var(--color-cyan)">cyan</span>
			<span class="chip %s" style="background: var(--color-indigo)">indigo</span>
		</div>
		<div class="card">
			<img src="/swatch.png" alt="palette swatch" style="max-width: 100%%">
		</div>
		<div class="card accent">
			<button>Primary action</button>
			<span class="success">saved</span>
			<span class="warning">draft</span>
			<span class="error">failed</span>
		</div>
		<p class="muted">seed %s &middot; <a href="/palette.json">palette.json</a> &middot; <a href="/theme.css">theme.css</a></p>
	</main>
</body>
</html>`, s.ThemeColor, s.Primary, intro,
		textClass, textClass, textClass, textClass, textClass, s.Primary)

	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	}
}
