package vectorize

import (
	"stitch-mapper/pkg/geometry"
)

// smoothClosed applies Chaikin corner cutting to a closed polygon: every
// edge (p0,p1), including the wrap-around edge, is replaced by the points at
// its 1/4 and 3/4 interpolation positions. Stops early once fewer than three
// points remain.
func smoothClosed(points []geometry.Point2D, iterations int) []geometry.Point2D {
	for iter := 0; iter < iterations; iter++ {
		if len(points) < 3 {
			break
		}

		smoothed := make([]geometry.Point2D, 0, len(points)*2)
		n := len(points)
		for i := 0; i < n; i++ {
			p0 := points[i]
			p1 := points[(i+1)%n]
			smoothed = append(smoothed,
				p0.Scale(0.75).Add(p1.Scale(0.25)),
				p0.Scale(0.25).Add(p1.Scale(0.75)),
			)
		}
		points = smoothed
	}
	return points
}
