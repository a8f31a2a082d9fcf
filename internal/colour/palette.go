package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PaletteColor is a representative colour produced by clustering.
type PaletteColor struct {
	Pixel
}

// NewPaletteColor creates a PaletteColor from 8-bit channels.
func NewPaletteColor(r, g, b uint8) PaletteColor {
	return PaletteColor{Pixel{R: r, G: g, B: b}}
}

// HSV returns the colour in the HSV model. It is derived on every call.
func (c PaletteColor) HSV() HSV {
	return rgbToHSV(c.Pixel)
}

// vividness is the ordering key: saturation plus value, each in 0-1.
func (c PaletteColor) vividness() float64 {
	hsv := c.HSV()
	return hsv.S + hsv.V
}

// Result is the outcome of a successful extraction.
type Result struct {
	// Colors is the palette, most vivid first.
	Colors []PaletteColor

	// UsedPixels is the sampled buffer that was fed to clustering.
	UsedPixels []Pixel
}

// Len returns the number of colours in the palette.
func (r *Result) Len() int {
	return len(r.Colors)
}

// ToHex converts the palette colours to hex strings.
func (r *Result) ToHex() []string {
	hexColors := make([]string, len(r.Colors))
	for i, c := range r.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB Pixel  `json:"rgb"`
	HSV HSV    `json:"hsv"`
}

// ResultJSON represents the result in JSON format.
type ResultJSON struct {
	Count      int         `json:"count"`
	UsedPixels int         `json:"used_pixels"`
	Colors     []ColorJSON `json:"colors"`
}

// ToJSON converts the result to indented JSON.
// The sampled pixels are summarised by count rather than listed.
func (r *Result) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(r.Colors))
	for i, c := range r.Colors {
		colors[i] = ColorJSON{
			Hex: c.Hex(),
			RGB: c.Pixel,
			HSV: c.HSV(),
		}
	}

	return json.MarshalIndent(ResultJSON{
		Count:      len(r.Colors),
		UsedPixels: len(r.UsedPixels),
		Colors:     colors,
	}, "", "  ")
}

// String returns a human-readable representation of the palette.
func (r *Result) String() string {
	if len(r.Colors) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours (%d pixels sampled):\n", len(r.Colors), len(r.UsedPixels))
	for i, c := range r.Colors {
		fmt.Fprintf(&sb, "  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return sb.String()
}
