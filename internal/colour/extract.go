package colour

import (
	"errors"
	"fmt"
)

const (
	// MinColorCount is the smallest palette size that is not considered degenerate.
	MinColorCount = 4

	// MaxColorCount is the largest palette size accepted, matching the
	// median cut bucket limit.
	MaxColorCount = maxCutColors
)

var (
	// ErrEmptyInput is returned when there are no pixels to extract from.
	ErrEmptyInput = errors.New("no pixels to extract from")

	// ErrDegenerateRequest is returned for palettes smaller than MinColorCount
	// and for option values outside their documented ranges.
	ErrDegenerateRequest = errors.New("degenerate palette request")

	// ErrClusteringFailure is returned when the chosen strategy cannot
	// produce a palette from the pixels.
	ErrClusteringFailure = errors.New("clustering failed to produce a palette")
)

// Options configures palette extraction.
type Options struct {
	// ColorCount is the number of colours requested, in [MinColorCount, MaxColorCount].
	ColorCount int

	// Strategy selects the clustering algorithm.
	Strategy Strategy

	// PixelRatio is the share of pixels kept by sampling.
	// Nil means DefaultPixelRatio. Values outside (0, 1] disable sampling.
	PixelRatio *float64
}

// Ratio returns a pointer to r, for use as Options.PixelRatio.
func Ratio(r float64) *float64 {
	return &r
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		ColorCount: 8,
		Strategy:   StrategyCentroid,
	}
}

// ratio resolves the effective sampling ratio.
func (o Options) ratio() float64 {
	if o.PixelRatio == nil {
		return DefaultPixelRatio
	}
	return *o.PixelRatio
}

// Validate checks the options without touching any pixels.
func (o Options) Validate() error {
	if o.ColorCount < MinColorCount {
		return fmt.Errorf("%w: color count must be at least %d, got %d", ErrDegenerateRequest, MinColorCount, o.ColorCount)
	}
	if o.ColorCount > MaxColorCount {
		return fmt.Errorf("%w: color count must be at most %d, got %d", ErrDegenerateRequest, MaxColorCount, o.ColorCount)
	}
	if !o.Strategy.IsValid() {
		return fmt.Errorf("%w: unknown strategy %q (valid strategies: %v)", ErrDegenerateRequest, o.Strategy, ValidStrategies())
	}
	return nil
}

// PaletteFromPixels extracts an ordered palette from pixels.
//
// The pixels are sampled by opts.PixelRatio, clustered with opts.Strategy and
// ordered by vividness. On success the result holds the sampled pixels that
// informed the palette. The result is nil whenever the error is not, and the
// error wraps one of ErrEmptyInput, ErrDegenerateRequest or ErrClusteringFailure.
func PaletteFromPixels(pixels []Pixel, opts Options) (*Result, error) {
	if len(pixels) == 0 {
		return nil, ErrEmptyInput
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sampled := Sample(pixels, opts.ratio())

	colors, err := Cluster(sampled, opts.ColorCount, opts.Strategy)
	if err != nil {
		return nil, err
	}

	return &Result{
		Colors:     Order(colors),
		UsedPixels: sampled,
	}, nil
}
