package vectorize

import (
	"math"
	"testing"

	"stitch-mapper/pkg/geometry"
)

// labelsFromRows builds a label grid from digit rows.
func labelsFromRows(rows []string) ([]uint16, int, int) {
	height := len(rows)
	width := len(rows[0])
	labels := make([]uint16, 0, width*height)
	for _, row := range rows {
		for _, r := range row {
			labels = append(labels, uint16(r-'0'))
		}
	}
	return labels, width, height
}

func rawOptions() Options {
	// No simplification or smoothing: contours stay on pixel centers.
	return Options{}
}

func TestTraceSquare(t *testing.T) {
	labels, w, h := labelsFromRows([]string{
		"00000",
		"01110",
		"01110",
		"01110",
		"00000",
	})

	paths := Trace(labels, w, h, map[uint16]bool{0: true}, rawOptions())

	var square *Path
	for i := range paths {
		if paths[i].Label == 1 {
			if square != nil {
				t.Fatal("label 1 produced more than one contour")
			}
			square = &paths[i]
		}
	}
	if square == nil {
		t.Fatal("no contour for label 1")
	}
	if square.IsFabric {
		t.Error("label 1 wrongly flagged as fabric")
	}
	if len(square.Points) != 8 {
		t.Errorf("square contour has %d points, want 8", len(square.Points))
	}

	// Every traced point must be a member pixel of the label.
	for _, p := range square.Points {
		x, y := int(p.X), int(p.Y)
		if labels[y*w+x] != 1 {
			t.Errorf("contour point (%v,%v) not on label 1", p.X, p.Y)
		}
	}
}

func TestTraceFabricFlag(t *testing.T) {
	labels, w, h := labelsFromRows([]string{
		"001",
		"011",
	})
	paths := Trace(labels, w, h, map[uint16]bool{0: true}, rawOptions())

	sawFabric := false
	for _, p := range paths {
		if p.Label == 0 && p.IsFabric {
			sawFabric = true
		}
		if p.Label == 1 && p.IsFabric {
			t.Error("label 1 flagged fabric")
		}
	}
	if !sawFabric {
		t.Error("no fabric path for label 0")
	}
}

func TestTraceDisjointContours(t *testing.T) {
	labels, w, h := labelsFromRows([]string{
		"11011",
		"11011",
		"00000",
		"11011",
		"11011",
	})

	paths := Trace(labels, w, h, nil, rawOptions())

	count := 0
	for _, p := range paths {
		if p.Label == 1 {
			count++
		}
	}
	if count != 4 {
		t.Errorf("label 1 produced %d contours, want 4", count)
	}
}

func TestTraceHoleProducesInnerContour(t *testing.T) {
	// Thick ring of 1s with a 0 hole: label 1 owns an outer and an inner
	// boundary contour.
	labels, w, h := labelsFromRows([]string{
		"1111111",
		"1111111",
		"1100011",
		"1100011",
		"1100011",
		"1111111",
		"1111111",
	})

	paths := Trace(labels, w, h, map[uint16]bool{0: true}, rawOptions())

	count := 0
	for _, p := range paths {
		if p.Label == 1 {
			count++
		}
	}
	if count != 2 {
		t.Errorf("ring produced %d contours for label 1, want 2 (outer + hole)", count)
	}
}

func TestTraceDiscardsTinyContours(t *testing.T) {
	labels, w, h := labelsFromRows([]string{
		"100",
		"000",
		"000",
	})

	paths := Trace(labels, w, h, nil, rawOptions())
	for _, p := range paths {
		if p.Label == 1 {
			t.Errorf("isolated pixel produced a %d-point contour", len(p.Points))
		}
	}
}

func TestTraceManualMaskForcesFabric(t *testing.T) {
	labels, w, h := labelsFromRows([]string{
		"111",
		"111",
		"111",
	})

	// Mask out everything: label 1 has no remaining pixels.
	manual := make([]uint8, w*h)
	opts := rawOptions()
	opts.ManualMask = manual

	paths := Trace(labels, w, h, nil, opts)
	for _, p := range paths {
		if p.Label == 1 {
			t.Error("masked-out label still produced a contour")
		}
	}
}

func TestTraceMalformedInput(t *testing.T) {
	if got := Trace(nil, 0, 0, nil, rawOptions()); got != nil {
		t.Errorf("empty input produced %v", got)
	}
	if got := Trace(make([]uint16, 5), 3, 3, nil, rawOptions()); got != nil {
		t.Errorf("length mismatch produced %v", got)
	}
}

func TestSimplifyCollapsesCollinear(t *testing.T) {
	line := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
	}
	got := simplifyPath(line, 0.5)
	if len(got) != 2 {
		t.Fatalf("collinear line simplified to %d points, want 2", len(got))
	}
	if got[0] != line[0] || got[1] != line[4] {
		t.Errorf("endpoints not preserved: %v", got)
	}
}

func TestSimplifyKeepsCorners(t *testing.T) {
	corner := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}
	got := simplifyPath(corner, 0.5)
	if len(got) != 3 {
		t.Fatalf("corner simplified to %d points, want 3: %v", len(got), got)
	}
	if got[1] != (geometry.Point2D{X: 2, Y: 0}) {
		t.Errorf("corner point lost: %v", got)
	}
}

func TestSimplifyDegenerateInputsUnchanged(t *testing.T) {
	one := []geometry.Point2D{{X: 1, Y: 1}}
	if got := simplifyPath(one, 1); len(got) != 1 {
		t.Errorf("single point changed: %v", got)
	}
	two := []geometry.Point2D{{X: 0, Y: 0}, {X: 5, Y: 5}}
	if got := simplifyPath(two, 1); len(got) != 2 {
		t.Errorf("two points changed: %v", got)
	}
}

func TestPerpendicularDistanceZeroChord(t *testing.T) {
	a := geometry.Point2D{X: 1, Y: 1}
	p := geometry.Point2D{X: 4, Y: 5}
	want := 5.0
	if got := perpendicularDistance(p, a, a); math.Abs(got-want) > 1e-9 {
		t.Errorf("zero-chord distance = %v, want %v", got, want)
	}
}

func TestSmoothClosedDoublesPoints(t *testing.T) {
	square := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}
	got := smoothClosed(square, 1)
	if len(got) != 8 {
		t.Fatalf("one pass produced %d points, want 8", len(got))
	}

	// Cut corners stay within the original bounding box.
	box := geometry.BoundingBox(square)
	for _, p := range got {
		if !box.Contains(p) {
			t.Errorf("smoothed point %v escapes bounding box", p)
		}
	}

	// First edge of the square: quarter points at (1,0) and (3,0).
	if got[0] != (geometry.Point2D{X: 1, Y: 0}) || got[1] != (geometry.Point2D{X: 3, Y: 0}) {
		t.Errorf("quarter points wrong: %v %v", got[0], got[1])
	}
}

func TestSmoothClosedStopsBelowThreePoints(t *testing.T) {
	two := []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}
	got := smoothClosed(two, 3)
	if len(got) != 2 {
		t.Errorf("degenerate polygon changed: %v", got)
	}
}
