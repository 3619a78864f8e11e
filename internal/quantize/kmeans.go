// Package quantize reduces an image's colors to a small LAB palette using
// deterministic k-means clustering.
package quantize

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"stitch-mapper/pkg/colorlab"
)

// DefaultMaxIterations bounds the k-means refinement loop.
const DefaultMaxIterations = 16

// Quantize clusters the pixels into at most k LAB colors and assigns every
// pixel to its nearest cluster. Initialization is deterministic (median
// lightness seed, then farthest-point selection), so identical inputs always
// produce identical palettes and labels.
func Quantize(pixels []colorlab.LAB, k, maxIterations int) ([]colorlab.LAB, []uint16) {
	if len(pixels) == 0 || k <= 0 {
		return nil, nil
	}
	if k > len(pixels) {
		k = len(pixels)
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	centers := initCenters(pixels, k)
	labels := make([]uint16, len(pixels))

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for i, p := range pixels {
			best := nearestCenter(p, centers)
			if labels[i] != best {
				labels[i] = best
				changed++
			}
		}
		if changed == 0 && iter > 0 {
			break
		}

		// Recompute centroids. Empty clusters keep their previous center.
		sums := make([][]float64, len(centers))
		counts := make([]int, len(centers))
		for i := range sums {
			sums[i] = make([]float64, 3)
		}
		for i, p := range pixels {
			floats.Add(sums[labels[i]], []float64{p.L, p.A, p.B})
			counts[labels[i]]++
		}
		for i := range centers {
			if counts[i] == 0 {
				continue
			}
			floats.Scale(1/float64(counts[i]), sums[i])
			centers[i] = colorlab.LAB{L: sums[i][0], A: sums[i][1], B: sums[i][2]}
		}
	}

	return centers, labels
}

// initCenters seeds k centers: the pixel of median lightness first, then
// repeatedly the pixel farthest (by its minimum distance) from the chosen
// set. Ties resolve to the lowest pixel index.
func initCenters(pixels []colorlab.LAB, k int) []colorlab.LAB {
	order := make([]int, len(pixels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return pixels[order[i]].L < pixels[order[j]].L
	})

	centers := make([]colorlab.LAB, 0, k)
	first := order[len(order)/2]
	centers = append(centers, pixels[first])

	minDist := make([]float64, len(pixels))
	for i, p := range pixels {
		minDist[i] = colorlab.DeltaE76(p, centers[0])
	}

	for len(centers) < k {
		bestIdx := 0
		bestDist := -1.0
		for i, d := range minDist {
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		next := pixels[bestIdx]
		centers = append(centers, next)
		for i, p := range pixels {
			if d := colorlab.DeltaE76(p, next); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	return centers
}

func nearestCenter(p colorlab.LAB, centers []colorlab.LAB) uint16 {
	best := 0
	bestDist := colorlab.DeltaE76(p, centers[0])
	for i := 1; i < len(centers); i++ {
		if d := colorlab.DeltaE76(p, centers[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint16(best)
}
