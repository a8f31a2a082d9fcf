// Package colour extracts small representative palettes from pixel data.
//
// The pipeline is sample -> cluster -> order. Every stage is a pure function of
// its inputs, so a single extraction is deterministic and callers may run
// extractions concurrently without synchronisation.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Pixel is a single RGB sample with 8-bit channels.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the pixel in the format "rgb(r, g, b)".
func (p Pixel) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", p.R, p.G, p.B)
}

// Hex returns the pixel as a hex string (e.g., "#1a2b3c").
func (p Pixel) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// RGBA implements color.Color with full opacity.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}.RGBA()
}

// PixelFromColor converts a color.Color to a Pixel, discarding alpha.
func PixelFromColor(c color.Color) Pixel {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: nc.R, G: nc.G, B: nc.B}
}

// PixelsFromRGBA converts an interleaved R,G,B,A byte buffer into pixels.
// Alpha is dropped and row-major order is preserved. Trailing bytes that do
// not form a whole pixel are ignored.
func PixelsFromRGBA(data []byte) []Pixel {
	pixels := make([]Pixel, 0, len(data)/4)
	for i := 0; i+3 < len(data); i += 4 {
		pixels = append(pixels, Pixel{R: data[i], G: data[i+1], B: data[i+2]})
	}
	return pixels
}

// ParsePixel parses "#rrggbb", "#rgb" or "r,g,b".
func ParsePixel(s string) (Pixel, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexPixel(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Pixel{}, fmt.Errorf("invalid pixel %q: expected r,g,b or #rrggbb", s)
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Pixel{}, fmt.Errorf("invalid pixel %q: channel %d must be 0-255", s, i+1)
		}
		channels[i] = uint8(v)
	}
	return Pixel{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// parseHexPixel parses "#rrggbb" or the short form "#rgb".
func parseHexPixel(s string) (Pixel, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Pixel{}, fmt.Errorf("invalid hex colour %q: must be 3 or 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Pixel{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return Pixel{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
