package colour

import "math"

// DefaultPixelRatio is the sampling ratio used when none is given.
const DefaultPixelRatio = 0.5

// Sample down-samples pixels by ratio using an even stride.
//
// A ratio outside (0, 1) returns the input unchanged. Otherwise the result has
// ceil(len(pixels)*ratio) elements and element i is pixels[floor(i/ratio)].
// The input slice is never modified.
func Sample(pixels []Pixel, ratio float64) []Pixel {
	if ratio >= 1 || ratio <= 0 || math.IsNaN(ratio) {
		return pixels
	}

	n := int(math.Ceil(float64(len(pixels)) * ratio))
	sampled := make([]Pixel, n)
	for i := range n {
		idx := int(math.Floor(float64(i) / ratio))
		// Floating point error can push the last index one past the end.
		if idx >= len(pixels) {
			idx = len(pixels) - 1
		}
		sampled[i] = pixels[idx]
	}
	return sampled
}
