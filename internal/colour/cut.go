package colour

import (
	"fmt"
	"slices"
)

const (
	// maxCutColors is the largest bucket request the quantiser accepts.
	maxCutColors = 256

	// fractByPopulation is the share of buckets split by population alone
	// before switching to population times colour-space volume.
	fractByPopulation = 0.75

	// cutCompensationThreshold is the colour count from which one extra
	// bucket is requested, restoring the exact count callers ask for.
	cutCompensationThreshold = 7
)

// cutBucketCount returns the number of buckets to request from the
// partitioner for a caller asking for colorCount colours.
func cutBucketCount(colorCount int) int {
	if colorCount >= cutCompensationThreshold {
		return colorCount + 1
	}
	return colorCount
}

// clusterCut quantises pixels with median cut. Surplus buckets are dropped,
// least populated first. A shortfall is returned as is.
func clusterCut(pixels []Pixel, colorCount int) ([]PaletteColor, error) {
	target := cutBucketCount(colorCount)
	if target < 2 || target > maxCutColors {
		return nil, fmt.Errorf("%w: cannot quantise to %d buckets (valid: 2-%d)", ErrClusteringFailure, target, maxCutColors)
	}

	buckets := medianCut(pixels, target)
	if len(buckets) == 0 {
		return nil, fmt.Errorf("%w: no buckets produced", ErrClusteringFailure)
	}

	slices.SortStableFunc(buckets, func(a, b bucket) int {
		return len(b.pixels) - len(a.pixels)
	})
	if len(buckets) > colorCount {
		buckets = buckets[:colorCount]
	}

	colors := make([]PaletteColor, len(buckets))
	for i, b := range buckets {
		colors[i] = b.mean()
	}
	return colors, nil
}

// medianCut partitions pixels into at most target buckets. The input slice is
// copied before any reordering.
func medianCut(pixels []Pixel, target int) []bucket {
	if len(pixels) == 0 {
		return nil
	}

	work := slices.Clone(pixels)
	buckets := []bucket{newBucket(work)}

	populationTarget := int(fractByPopulation * float64(target))
	buckets = splitUntil(buckets, populationTarget, func(b bucket) int {
		return len(b.pixels)
	})
	buckets = splitUntil(buckets, target, func(b bucket) int {
		return len(b.pixels) * b.volume()
	})

	return buckets
}

// splitUntil repeatedly splits the splittable bucket with the highest priority
// until there are target buckets or nothing can be split.
func splitUntil(buckets []bucket, target int, priority func(bucket) int) []bucket {
	for len(buckets) < target {
		best := -1
		bestPriority := -1
		for i, b := range buckets {
			if !b.canSplit() {
				continue
			}
			if p := priority(b); p > bestPriority {
				best = i
				bestPriority = p
			}
		}
		if best < 0 {
			break
		}

		left, right := buckets[best].split()
		buckets[best] = left
		buckets = append(buckets, right)
	}
	return buckets
}

// bucket is a box in RGB space holding the pixels that fall inside it.
type bucket struct {
	pixels     []Pixel
	rMin, rMax uint8
	gMin, gMax uint8
	bMin, bMax uint8
}

// newBucket computes the bounding box of pixels, which must not be empty.
func newBucket(pixels []Pixel) bucket {
	first := pixels[0]
	b := bucket{
		pixels: pixels,
		rMin:   first.R,
		rMax:   first.R,
		gMin:   first.G,
		gMax:   first.G,
		bMin:   first.B,
		bMax:   first.B,
	}
	for _, p := range pixels[1:] {
		b.rMin, b.rMax = min(b.rMin, p.R), max(b.rMax, p.R)
		b.gMin, b.gMax = min(b.gMin, p.G), max(b.gMax, p.G)
		b.bMin, b.bMax = min(b.bMin, p.B), max(b.bMax, p.B)
	}
	return b
}

// volume is the number of RGB cells covered by the bounding box.
func (b bucket) volume() int {
	return (int(b.rMax-b.rMin) + 1) * (int(b.gMax-b.gMin) + 1) * (int(b.bMax-b.bMin) + 1)
}

func (b bucket) canSplit() bool {
	return len(b.pixels) > 1
}

// widestChannel returns 0, 1 or 2 for red, green or blue.
func (b bucket) widestChannel() int {
	rRange := b.rMax - b.rMin
	gRange := b.gMax - b.gMin
	bRange := b.bMax - b.bMin

	if rRange >= gRange && rRange >= bRange {
		return 0
	}
	if gRange >= bRange {
		return 1
	}
	return 2
}

func channel(p Pixel, axis int) uint8 {
	switch axis {
	case 0:
		return p.R
	case 1:
		return p.G
	default:
		return p.B
	}
}

// split divides the bucket at the median of its widest channel. When the
// channel varies, the cut moves to the nearest boundary between distinct
// values so equal colours stay together. A bucket of identical pixels is
// halved by count.
func (b bucket) split() (bucket, bucket) {
	axis := b.widestChannel()
	slices.SortStableFunc(b.pixels, func(x, y Pixel) int {
		return int(channel(x, axis)) - int(channel(y, axis))
	})

	mid := len(b.pixels) / 2
	cut := mid
	if channel(b.pixels[0], axis) != channel(b.pixels[len(b.pixels)-1], axis) {
		cut = boundaryNear(b.pixels, mid, axis)
	}

	return newBucket(b.pixels[:cut]), newBucket(b.pixels[cut:])
}

// boundaryNear returns the index closest to mid at which the channel value
// changes. sorted must contain at least two distinct values on axis.
func boundaryNear(sorted []Pixel, mid, axis int) int {
	for offset := 0; offset < len(sorted); offset++ {
		if i := mid + offset; i > 0 && i < len(sorted) &&
			channel(sorted[i], axis) != channel(sorted[i-1], axis) {
			return i
		}
		if i := mid - offset; i > 0 && i < len(sorted) &&
			channel(sorted[i], axis) != channel(sorted[i-1], axis) {
			return i
		}
	}
	return mid
}

// mean returns the average colour of the bucket.
func (b bucket) mean() PaletteColor {
	var r, g, bl uint64
	for _, p := range b.pixels {
		r += uint64(p.R)
		g += uint64(p.G)
		bl += uint64(p.B)
	}
	n := float64(len(b.pixels))
	return NewPaletteColor(
		clampChannel(float64(r)/n),
		clampChannel(float64(g)/n),
		clampChannel(float64(bl)/n),
	)
}
