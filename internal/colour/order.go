package colour

import "slices"

// Order sorts colours by saturation plus value, most vivid first.
// The sort is stable and the input slice is left untouched.
func Order(colors []PaletteColor) []PaletteColor {
	ordered := slices.Clone(colors)
	keys := make(map[Pixel]float64, len(ordered))
	for _, c := range ordered {
		keys[c.Pixel] = c.vividness()
	}

	slices.SortStableFunc(ordered, func(a, b PaletteColor) int {
		ka, kb := keys[a.Pixel], keys[b.Pixel]
		switch {
		case ka > kb:
			return -1
		case ka < kb:
			return 1
		default:
			return 0
		}
	})
	return ordered
}
