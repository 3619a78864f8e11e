package vectorize

import (
	"stitch-mapper/pkg/geometry"
)

// Bounds returns the axis-aligned bounding box of the contour.
func (p Path) Bounds() geometry.Rect {
	return geometry.BoundingBox(p.Points)
}

// Contains reports whether pt lies inside the contour or within tolerance
// of its outline. Contours run through cell centers, so callers checking
// cell coverage pass a half-cell tolerance to count cells the outline
// itself crosses.
func (p Path) Contains(pt geometry.Point2D, tolerance float64) bool {
	if len(p.Points) < 3 {
		return false
	}

	// Quick bounds check first.
	b := p.Bounds()
	b.X -= tolerance
	b.Y -= tolerance
	b.Width += 2 * tolerance
	b.Height += 2 * tolerance
	if !b.Contains(pt) {
		return false
	}

	if geometry.PointInPolygon(pt, p.Points) {
		return true
	}

	n := len(p.Points)
	for i := 0; i < n; i++ {
		if pointToSegmentDistance(pt, p.Points[i], p.Points[(i+1)%n]) <= tolerance {
			return true
		}
	}
	return false
}

// pointToSegmentDistance calculates the minimum distance from pt to the
// line segment a-b.
func pointToSegmentDistance(pt, a, b geometry.Point2D) float64 {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return pt.Distance(a)
	}

	// Parameter of the closest point on the infinite line, clamped to
	// the segment.
	t := ((pt.X-a.X)*d.X + (pt.Y-a.Y)*d.Y) / (d.X*d.X + d.Y*d.Y)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return pt.Distance(a.Add(d.Scale(t)))
}
