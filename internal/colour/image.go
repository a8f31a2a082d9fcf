package colour

import (
	"fmt"
	"image"

	imageutil "github.com/jmylchreest/swatch/internal/image"
)

// ImageOptions configures extraction from an image.
type ImageOptions struct {
	Options

	// Region restricts extraction to part of the image. Nil means the whole image.
	Region *imageutil.Region
}

// PaletteFromImage extracts a palette from img, or from opts.Region of it.
//
// The region is rasterised to RGBA, alpha is discarded and the pixels are
// passed to PaletteFromPixels. Region pixels outside the image count as black.
func PaletteFromImage(img image.Image, opts ImageOptions) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image cannot be nil", ErrEmptyInput)
	}

	region := imageutil.FullRegion(img)
	if opts.Region != nil {
		region = *opts.Region
	}

	data, err := imageutil.ExtractRegion(img, region)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateRequest, err)
	}

	return PaletteFromPixels(PixelsFromRGBA(data), opts.Options)
}
