package colour

import "math"

// maxCentroidIterations caps Lloyd refinement. Refinement normally reaches a
// fixed point long before this.
const maxCentroidIterations = 10000

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distanceSq calculates the squared Euclidean distance between two points.
// Squared distance preserves ordering, so nearest-centroid search skips the root.
func (p point3D) distanceSq(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return dr*dr + dg*dg + db*db
}

// weightedPoint is a distinct colour and the number of pixels that share it.
type weightedPoint struct {
	point3D
	weight float64
}

// histogram folds pixels into distinct colours, keeping first-seen order.
func histogram(pixels []Pixel) []weightedPoint {
	index := make(map[Pixel]int, 256)
	points := make([]weightedPoint, 0, 256)
	for _, p := range pixels {
		if i, ok := index[p]; ok {
			points[i].weight++
			continue
		}
		index[p] = len(points)
		points = append(points, weightedPoint{
			point3D: point3D{R: float64(p.R), G: float64(p.G), B: float64(p.B)},
			weight:  1,
		})
	}
	return points
}

// grayRampSeeds places k centroids evenly along the grey diagonal, excluding
// pure black and white.
func grayRampSeeds(k int) []point3D {
	seeds := make([]point3D, k)
	step := 255.0 / float64(k+1)
	for idx := range k {
		channel := step * float64(idx+1)
		seeds[idx] = point3D{R: channel, G: channel, B: channel}
	}
	return seeds
}

// clusterCentroid runs k-means over pixels and returns exactly k colours.
func clusterCentroid(pixels []Pixel, k int) []PaletteColor {
	points := histogram(pixels)
	centroids := kmeans(points, grayRampSeeds(k))

	colors := make([]PaletteColor, len(centroids))
	for i, c := range centroids {
		colors[i] = NewPaletteColor(clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
	}
	return colors
}

// kmeans refines centroids until assignments stop changing or the iteration
// cap is reached.
func kmeans(points []weightedPoint, centroids []point3D) []point3D {
	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for range maxCentroidIterations {
		changed := false
		for i, point := range points {
			nearest := findNearestCentroid(point.point3D, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed = true
			}
		}
		if !changed {
			break
		}
		centroids = recalculateCentroids(points, assignments, centroids)
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
// Ties resolve to the lowest index.
func findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distanceSq(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids moves each centroid to the weighted mean of its points.
// A centroid with no points keeps its previous position.
func recalculateCentroids(points []weightedPoint, assignments []int, previous []point3D) []point3D {
	k := len(previous)
	sums := make([]point3D, k)
	weights := make([]float64, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R * point.weight
		sums[cluster].G += point.G * point.weight
		sums[cluster].B += point.B * point.weight
		weights[cluster] += point.weight
	}

	centroids := make([]point3D, k)
	for i := range k {
		if weights[i] == 0 {
			centroids[i] = previous[i]
			continue
		}
		centroids[i] = point3D{
			R: sums[i].R / weights[i],
			G: sums[i].G / weights[i],
			B: sums[i].B / weights[i],
		}
	}

	return centroids
}
