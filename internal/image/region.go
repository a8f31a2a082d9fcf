package image

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// maxRegionPixels bounds the buffer ExtractRegion will allocate.
const maxRegionPixels = 1 << 28

// Region is a rectangle relative to the top-left corner of an image.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FullRegion returns the region covering the whole image.
func FullRegion(img image.Image) Region {
	bounds := img.Bounds()
	return Region{Width: bounds.Dx(), Height: bounds.Dy()}
}

// String returns the region as "x,y,width,height".
func (r Region) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Rect translates the region into the coordinate space of bounds.
func (r Region) Rect(bounds image.Rectangle) image.Rectangle {
	minPt := bounds.Min.Add(image.Pt(r.X, r.Y))
	return image.Rectangle{Min: minPt, Max: minPt.Add(image.Pt(r.Width, r.Height))}
}

// ParseRegion parses "x,y,width,height".
func ParseRegion(s string) (Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Region{}, fmt.Errorf("invalid region %q: expected x,y,width,height", s)
	}

	vals := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Region{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		vals[i] = v
	}

	r := Region{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if r.Width < 0 || r.Height < 0 {
		return Region{}, fmt.Errorf("invalid region %q: width and height must not be negative", s)
	}
	return r, nil
}

// ExtractRegion rasterises region of img into a non-premultiplied RGBA
// buffer, row-major with 4 bytes per pixel and no row padding. Parts of the
// region that fall outside the image read as transparent black. An empty
// region yields an empty buffer.
func ExtractRegion(img image.Image, region Region) ([]byte, error) {
	if region.Empty() {
		return nil, nil
	}
	if int64(region.Width)*int64(region.Height) > maxRegionPixels {
		return nil, fmt.Errorf("region %s is too large (maximum %d pixels)", region, maxRegionPixels)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, region.Width, region.Height))
	xdraw.Copy(dst, image.Point{}, img, region.Rect(img.Bounds()), xdraw.Src, nil)

	return dst.Pix, nil
}
