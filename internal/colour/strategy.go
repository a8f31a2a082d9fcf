package colour

import (
	"fmt"
	"strings"
)

// Strategy selects the clustering algorithm used to reduce pixels to a palette.
type Strategy string

const (
	// StrategyCentroid uses k-means clustering with deterministic seeds.
	// It is slower but always returns the requested number of colours.
	StrategyCentroid Strategy = "centroid"

	// StrategyCut uses median cut colour quantisation.
	StrategyCut Strategy = "cut"
)

// ValidStrategies returns a list of valid strategy names.
func ValidStrategies() []Strategy {
	return []Strategy{
		StrategyCentroid,
		StrategyCut,
	}
}

// IsValid reports whether s names a known strategy.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyCentroid, StrategyCut:
		return true
	default:
		return false
	}
}

// ParseStrategy parses a strategy name. The older names "kmeans", "quantize"
// and "mediancut" are accepted as aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "centroid", "kmeans", "k-means":
		return StrategyCentroid, nil
	case "cut", "quantize", "quantise", "mediancut", "median-cut":
		return StrategyCut, nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q (valid strategies: %v)", ErrDegenerateRequest, name, ValidStrategies())
	}
}

// Cluster reduces pixels to colorCount representative colours using strategy.
// The returned colours are unordered; see Order.
//
// The centroid strategy always returns exactly colorCount colours. The cut
// strategy may return fewer, and fails with ErrClusteringFailure when no
// palette can be produced.
func Cluster(pixels []Pixel, colorCount int, strategy Strategy) ([]PaletteColor, error) {
	if len(pixels) == 0 {
		return nil, ErrEmptyInput
	}
	if colorCount < 1 {
		return nil, fmt.Errorf("%w: color count must be at least 1, got %d", ErrDegenerateRequest, colorCount)
	}

	switch strategy {
	case StrategyCentroid:
		return clusterCentroid(pixels, colorCount), nil
	case StrategyCut:
		return clusterCut(pixels, colorCount)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrDegenerateRequest, strategy)
	}
}
