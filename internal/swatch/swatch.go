package swatch

import (
	"bytes"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/huegen/huegen/internal/colors"
	"github.com/huegen/huegen/internal/palette"
)

const (
	// DefaultWidth and DefaultHeight are the standard swatch dimensions.
	DefaultWidth  = 500
	DefaultHeight = 100
)

// Bands returns the scheme colors rendered in the swatch, in order.
func Bands(s *palette.Scheme) []string {
	return []string{s.PrimaryDark, s.Primary, s.PrimaryLight, s.Cyan, s.Indigo}
}

// Render draws the scheme as equal vertical color bands.
func Render(s *palette.Scheme, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch dimensions %dx%d", width, height)
	}

	bands := Bands(s)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for i, hex := range bands {
		rgb, err := colors.HexToRGB(hex)
		if err != nil {
			return nil, fmt.Errorf("scheme produced invalid color %q: %w", hex, err)
		}
		fill := &image.Uniform{C: stdcolor.RGBA{
			R: uint8(rgb.R),
			G: uint8(rgb.G),
			B: uint8(rgb.B),
			A: 255,
		}}

		x0 := i * width / len(bands)
		x1 := (i + 1) * width / len(bands)
		draw.Draw(img, image.Rect(x0, 0, x1, height), fill, image.Point{}, draw.Src)
	}

	return img, nil
}

// Encode renders the scheme and returns encoded PNG bytes.
func Encode(s *palette.Scheme, width, height int) ([]byte, error) {
	img, err := Render(s, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG renders the scheme and writes it to path, creating parent
// directories as needed.
func WritePNG(s *palette.Scheme, path string, width, height int) error {
	data, err := Encode(s, width, height)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write swatch file: %w", err)
	}

	return nil
}
