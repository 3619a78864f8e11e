// Package vectorize converts label maps into renderable polygon outlines
// using Moore-neighbor contour tracing, Douglas-Peucker simplification, and
// Chaikin corner-cutting.
package vectorize

import (
	"stitch-mapper/pkg/geometry"
)

// Options configures tracing for one label map.
type Options struct {
	// SimplifyEpsilon is the Douglas-Peucker tolerance in pixels. Zero or
	// negative disables simplification.
	SimplifyEpsilon float64
	// SmoothIterations is the number of corner-cutting passes.
	SmoothIterations int
	// ManualMask optionally overrides cells to fabric: a zero value at a
	// cell forces it out of every label's mask. Must be len(width*height)
	// when present.
	ManualMask []uint8
}

// DefaultOptions returns the tracing defaults used by the CLI.
func DefaultOptions() Options {
	return Options{SimplifyEpsilon: 1.0, SmoothIterations: 1}
}

// Path is one closed contour traced for a label. A label owning disjoint
// areas (or holes) yields several paths.
type Path struct {
	Points   []geometry.Point2D `json:"points"`
	Label    uint16             `json:"label"`
	IsFabric bool               `json:"isFabric"`
}

// 8-connected neighborhood in clockwise order starting east.
var mooreDirs = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Trace vectorizes every distinct label in the grid. fabricLabels marks
// labels whose contours are flagged as fabric in the output. The function is
// pure: malformed inputs produce fewer or empty paths, never a panic.
func Trace(labels []uint16, width, height int, fabricLabels map[uint16]bool, opts Options) []Path {
	if width <= 0 || height <= 0 || len(labels) != width*height {
		return nil
	}

	maxLabel := uint16(0)
	for _, l := range labels {
		if l > maxLabel {
			maxLabel = l
		}
	}

	var paths []Path
	mask := make([]bool, width*height)
	for l := uint16(0); ; l++ {
		present := buildMask(mask, labels, opts.ManualMask, l)
		if present {
			for _, contour := range traceLabel(mask, width, height) {
				points := simplifyPath(contour, opts.SimplifyEpsilon)
				points = smoothClosed(points, opts.SmoothIterations)
				if len(points) < 3 {
					continue
				}
				paths = append(paths, Path{
					Points:   points,
					Label:    l,
					IsFabric: fabricLabels[l],
				})
			}
		}
		if l == maxLabel {
			break
		}
	}

	return paths
}

// buildMask fills mask with the membership of label l, honoring the manual
// fabric override. Returns whether any cell is set.
func buildMask(mask []bool, labels []uint16, manual []uint8, l uint16) bool {
	present := false
	for i := range mask {
		member := labels[i] == l
		if member && len(manual) == len(labels) && manual[i] == 0 {
			member = false
		}
		mask[i] = member
		present = present || member
	}
	return present
}

// traceLabel collects all disjoint boundary contours of the mask using
// Moore-neighbor tracing. Boundary pixels already walked are skipped so the
// same contour is not traced twice.
func traceLabel(mask []bool, width, height int) [][]geometry.Point2D {
	visited := make([]bool, len(mask))
	var contours [][]geometry.Point2D

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if !mask[idx] || visited[idx] || !isBoundary(mask, width, height, x, y) {
				continue
			}
			contour := traceContour(mask, visited, width, height, x, y)
			if len(contour) >= 3 {
				contours = append(contours, contour)
			}
		}
	}

	return contours
}

// isBoundary reports whether a foreground pixel touches the grid edge or a
// 4-neighbor outside the mask.
func isBoundary(mask []bool, width, height, x, y int) bool {
	if x == 0 || y == 0 || x == width-1 || y == height-1 {
		return true
	}
	idx := y*width + x
	return !mask[idx-1] || !mask[idx+1] || !mask[idx-width] || !mask[idx+width]
}

// traceContour walks the boundary starting at (sx,sy): at each step the
// eight neighbor directions are scanned clockwise starting just past the
// direction back to the previous pixel, and the first foreground neighbor
// becomes the next position. The walk ends when it returns to the start or
// after width*height steps on malformed masks.
func traceContour(mask []bool, visited []bool, width, height, sx, sy int) []geometry.Point2D {
	inMask := func(x, y int) bool {
		return x >= 0 && x < width && y >= 0 && y < height && mask[y*width+x]
	}

	points := []geometry.Point2D{{X: float64(sx), Y: float64(sy)}}
	visited[sy*width+sx] = true

	// The backtrack seed must be an empty neighbor of the start pixel.
	// The west cell works for outer contours found by the raster scan,
	// but a hole's boundary pixel can have a foreground cell there, so
	// fall back to the first empty neighbor. A boundary pixel always has
	// one: either a 4-neighbor outside the mask or the grid edge.
	prevX, prevY := sx-1, sy
	if inMask(prevX, prevY) {
		for _, d := range mooreDirs {
			nx, ny := sx+d[0], sy+d[1]
			if !inMask(nx, ny) {
				prevX, prevY = nx, ny
				break
			}
		}
	}
	curX, curY := sx, sy

	maxSteps := width * height
	for step := 0; step < maxSteps; step++ {
		// Direction index pointing from current back to previous.
		backDir := 0
		for i, d := range mooreDirs {
			if curX+d[0] == prevX && curY+d[1] == prevY {
				backDir = i
				break
			}
		}

		nextX, nextY := -1, -1
		for i := 1; i <= 8; i++ {
			dir := mooreDirs[(backDir+i)%8]
			nx, ny := curX+dir[0], curY+dir[1]
			if inMask(nx, ny) {
				nextX, nextY = nx, ny
				// The previous pixel for the next step is the last
				// empty cell scanned before this hit.
				prev := mooreDirs[(backDir+i-1)%8]
				prevX, prevY = curX+prev[0], curY+prev[1]
				break
			}
		}

		if nextX < 0 {
			// Isolated pixel: nothing to walk.
			break
		}

		curX, curY = nextX, nextY
		if curX == sx && curY == sy {
			break
		}

		visited[curY*width+curX] = true
		points = append(points, geometry.Point2D{X: float64(curX), Y: float64(curY)})
	}

	return points
}
