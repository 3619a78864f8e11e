package vectorize

import (
	"math"

	"stitch-mapper/pkg/geometry"
)

// simplifyPath reduces vertex count using the Douglas-Peucker algorithm.
// The recursion is replaced by an explicit range stack so stack depth stays
// bounded on very long contours. Inputs of one or two points are returned
// unchanged; epsilon <= 0 disables simplification.
func simplifyPath(path []geometry.Point2D, epsilon float64) []geometry.Point2D {
	if len(path) <= 2 || epsilon <= 0 {
		return path
	}

	keep := make([]bool, len(path))
	keep[0] = true
	keep[len(path)-1] = true

	type span struct{ start, end int }
	stack := []span{{0, len(path) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Find the point farthest from the chord start-end.
		dmax := 0.0
		index := s.start
		for i := s.start + 1; i < s.end; i++ {
			d := perpendicularDistance(path[i], path[s.start], path[s.end])
			if d > dmax {
				dmax = d
				index = i
			}
		}

		if dmax > epsilon {
			keep[index] = true
			if index-s.start > 1 {
				stack = append(stack, span{s.start, index})
			}
			if s.end-index > 1 {
				stack = append(stack, span{index, s.end})
			}
		}
	}

	result := make([]geometry.Point2D, 0, len(path))
	for i, p := range path {
		if keep[i] {
			result = append(result, p)
		}
	}
	return result
}

// perpendicularDistance calculates the perpendicular distance from point p
// to the line a-b. A zero-length baseline falls back to point distance.
func perpendicularDistance(p, a, b geometry.Point2D) float64 {
	d := b.Sub(a)

	if d.X == 0 && d.Y == 0 {
		return p.Distance(a)
	}

	num := math.Abs(d.Y*p.X - d.X*p.Y + b.X*a.Y - b.Y*a.X)
	den := math.Sqrt(d.X*d.X + d.Y*d.Y)
	return num / den
}
