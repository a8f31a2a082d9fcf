package colour

import "math"

// HSV is a colour in the hue/saturation/value model.
// Hue is in degrees (0-360), saturation and value are in the range 0-1.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// rgbToHSV converts an RGB triple to HSV.
func rgbToHSV(p Pixel) HSV {
	r := float64(p.R) / 255.0
	g := float64(p.G) / 255.0
	b := float64(p.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	hsv := HSV{V: maxVal}
	if maxVal > 0 {
		hsv.S = delta / maxVal
	}

	// Achromatic (grey).
	if delta == 0 {
		return hsv
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	hsv.H = h * 60

	return hsv
}

// clampChannel rounds v to the nearest integer and clamps it to 0-255.
func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
