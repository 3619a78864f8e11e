package quantize

import (
	"reflect"
	"testing"

	"stitch-mapper/pkg/colorlab"
)

func labFromRGB(r, g, b uint8) colorlab.LAB {
	return colorlab.RGBToLab(colorlab.RGB{R: r, G: g, B: b})
}

func TestQuantizeSeparatesDistinctColors(t *testing.T) {
	// 30 pixels in two well-separated clusters.
	var pixels []colorlab.LAB
	for i := 0; i < 15; i++ {
		pixels = append(pixels, labFromRGB(250, uint8(i), 10))
	}
	for i := 0; i < 15; i++ {
		pixels = append(pixels, labFromRGB(10, uint8(i), 250))
	}

	palette, labels := Quantize(pixels, 2, 0)
	if len(palette) != 2 {
		t.Fatalf("palette size %d, want 2", len(palette))
	}
	if len(labels) != len(pixels) {
		t.Fatalf("labels length %d, want %d", len(labels), len(pixels))
	}

	// All reds share one label, all blues the other.
	redLabel := labels[0]
	for i := 0; i < 15; i++ {
		if labels[i] != redLabel {
			t.Errorf("red pixel %d got label %d, want %d", i, labels[i], redLabel)
		}
	}
	blueLabel := labels[15]
	if blueLabel == redLabel {
		t.Fatal("red and blue collapsed into one cluster")
	}
	for i := 15; i < 30; i++ {
		if labels[i] != blueLabel {
			t.Errorf("blue pixel %d got label %d, want %d", i, labels[i], blueLabel)
		}
	}
}

func TestQuantizeDeterministic(t *testing.T) {
	var pixels []colorlab.LAB
	for i := 0; i < 64; i++ {
		pixels = append(pixels, labFromRGB(uint8(i*4), uint8(255-i*3), uint8(i*2)))
	}

	p1, l1 := Quantize(pixels, 5, 10)
	p2, l2 := Quantize(pixels, 5, 10)
	if !reflect.DeepEqual(p1, p2) {
		t.Error("palettes differ between identical runs")
	}
	if !reflect.DeepEqual(l1, l2) {
		t.Error("labels differ between identical runs")
	}
}

func TestQuantizeDegenerateInputs(t *testing.T) {
	if p, l := Quantize(nil, 4, 10); p != nil || l != nil {
		t.Error("empty input should produce nil results")
	}
	if p, _ := Quantize([]colorlab.LAB{{L: 50}}, 8, 10); len(p) != 1 {
		t.Errorf("k clamps to pixel count, got %d centers", len(p))
	}
}

func TestMergeSmallRegions(t *testing.T) {
	// A single label-1 pixel inside a field of label 0.
	labels := []uint16{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	palette := []colorlab.LAB{{L: 10}, {L: 90}}

	MergeSmallRegions(labels, 3, 3, palette, 2)

	for i, l := range labels {
		if l != 0 {
			t.Errorf("cell %d still labeled %d after merge", i, l)
		}
	}
}

func TestMergeSmallRegionsKeepsLargeRegions(t *testing.T) {
	labels := []uint16{
		0, 0, 1, 1,
		0, 0, 1, 1,
	}
	original := make([]uint16, len(labels))
	copy(original, labels)

	MergeSmallRegions(labels, 4, 2, []colorlab.LAB{{L: 10}, {L: 90}}, 3)

	if !reflect.DeepEqual(labels, original) {
		t.Errorf("large regions changed: %v", labels)
	}
}

func TestMergeSmallRegionsTieBreakByColor(t *testing.T) {
	// The lone 2 touches labels 0 and 1 twice each; label 1 is closer in
	// color, so it wins the frequency tie.
	labels := []uint16{
		0, 0, 0,
		0, 2, 1,
		1, 1, 1,
	}
	palette := []colorlab.LAB{{L: 5}, {L: 60}, {L: 55}}

	MergeSmallRegions(labels, 3, 3, palette, 2)

	if labels[4] != 1 {
		t.Errorf("tie broken to label %d, want 1", labels[4])
	}
}
