package pattern

import (
	"math"
	"testing"

	"stitch-mapper/pkg/colorlab"
)

func TestColorKey(t *testing.T) {
	tests := []struct {
		name      string
		code, hex string
		want      string
	}{
		{name: "plain", code: "310", hex: "#000000", want: "310|#000000"},
		{name: "lowercased input", code: "b5200", hex: "#ffffff", want: "B5200|#FFFFFF"},
		{name: "surrounding space", code: " 310 ", hex: " #000000", want: "310|#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorKey(tt.code, tt.hex); got != tt.want {
				t.Errorf("ColorKey(%q, %q) = %q, want %q", tt.code, tt.hex, got, tt.want)
			}
		})
	}
}

func TestSplitColorKey(t *testing.T) {
	code, hex := SplitColorKey("310|#000000")
	if code != "310" || hex != "#000000" {
		t.Errorf("SplitColorKey = %q, %q", code, hex)
	}
}

func TestStitchIsFabric(t *testing.T) {
	tests := []struct {
		name   string
		stitch Stitch
		want   bool
	}{
		{name: "empty marker", stitch: Stitch{DMCCode: "310"}, want: true},
		{name: "fabric code", stitch: Stitch{DMCCode: "Fabric", Marker: "X"}, want: true},
		{name: "fabric code lowercase", stitch: Stitch{DMCCode: "fabric", Marker: "X"}, want: true},
		{name: "thread", stitch: Stitch{DMCCode: "310", Marker: "X"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stitch.IsFabric(); got != tt.want {
				t.Errorf("IsFabric = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaletteOrderIndependentOfStitchOrder(t *testing.T) {
	forward := &Pattern{
		Width: 2, Height: 1,
		Stitches: []Stitch{
			{X: 0, Y: 0, DMCCode: "310", Hex: "#000000", Marker: "X"},
			{X: 1, Y: 0, DMCCode: "321", Hex: "#CE1938", Marker: "O"},
		},
	}
	backward := &Pattern{
		Width: 2, Height: 1,
		Stitches: []Stitch{
			{X: 1, Y: 0, DMCCode: "321", Hex: "#CE1938", Marker: "O"},
			{X: 0, Y: 0, DMCCode: "310", Hex: "#000000", Marker: "X"},
		},
	}

	keysA, idxA := forward.Palette()
	keysB, idxB := backward.Palette()

	if len(keysA) != 2 || len(keysB) != 2 {
		t.Fatalf("palette sizes: %d, %d", len(keysA), len(keysB))
	}
	for i := range keysA {
		if keysA[i] != keysB[i] {
			t.Errorf("palette order differs at %d: %q vs %q", i, keysA[i], keysB[i])
		}
	}
	if idxA[keysA[0]] != 0 || idxB[keysB[0]] != 0 {
		t.Error("first raster color does not have index 0")
	}
}

func TestLegend(t *testing.T) {
	p := &Pattern{
		Width: 2, Height: 2,
		Stitches: []Stitch{
			{X: 0, Y: 0, DMCCode: "310", Hex: "#000000", Marker: "X"},
			{X: 1, Y: 0, DMCCode: "310", Hex: "#000000", Marker: "X"},
			{X: 0, Y: 1, DMCCode: "310", Hex: "#000000", Marker: "X"},
			{X: 1, Y: 1, DMCCode: "RAW-2", Hex: "#123456", Marker: "O"},
		},
	}

	legend := Legend(p)
	if len(legend) != 2 {
		t.Fatalf("legend has %d entries, want 2", len(legend))
	}

	first := legend[0]
	if first.DMCCode != "310" || first.StitchCount != 3 {
		t.Errorf("first entry = %+v, want 310 with 3 stitches", first)
	}
	if first.Name != "Black" || !first.IsMappedToDMC {
		t.Errorf("310 should resolve to catalog name Black, got %+v", first)
	}
	if math.Abs(first.CoveragePercent-75.0) > 1e-9 {
		t.Errorf("coverage = %v, want 75", first.CoveragePercent)
	}

	second := legend[1]
	if second.IsMappedToDMC || second.Name != "Quantized Color" {
		t.Errorf("RAW code should not resolve to catalog: %+v", second)
	}
}

func TestLegendSkipsFabric(t *testing.T) {
	p := &Pattern{
		Width: 2, Height: 1,
		Stitches: []Stitch{
			{X: 0, Y: 0, DMCCode: FabricCode, Hex: "#FFFFFF"},
			{X: 1, Y: 0, DMCCode: "310", Hex: "#000000", Marker: "X"},
		},
	}
	legend := Legend(p)
	if len(legend) != 1 {
		t.Fatalf("legend has %d entries, want 1", len(legend))
	}
	if math.Abs(legend[0].CoveragePercent-100.0) > 1e-9 {
		t.Errorf("coverage = %v, want 100 (fabric excluded)", legend[0].CoveragePercent)
	}
}

func TestProcess(t *testing.T) {
	// 4x2 image: left half dark, right half light.
	pixels := []colorlab.RGB{
		{R: 10, G: 10, B: 10}, {R: 12, G: 10, B: 8}, {R: 250, G: 250, B: 250}, {R: 245, G: 250, B: 252},
		{R: 8, G: 12, B: 12}, {R: 10, G: 8, B: 10}, {R: 252, G: 248, B: 250}, {R: 250, G: 252, B: 248},
	}

	p, err := Process(pixels, 4, 2, ProcessOptions{ColorCount: 2, UseDMCPalette: true})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if p.Width != 4 || p.Height != 2 {
		t.Errorf("dimensions %dx%d", p.Width, p.Height)
	}
	if len(p.Stitches) != 8 {
		t.Fatalf("got %d stitches, want 8", len(p.Stitches))
	}
	if len(p.RawPalette) != 2 {
		t.Errorf("raw palette size %d, want 2", len(p.RawPalette))
	}

	// Dark half maps to black thread, light half to white.
	if p.Stitches[0].DMCCode != "310" {
		t.Errorf("dark stitch mapped to %s, want 310", p.Stitches[0].DMCCode)
	}
	if got := p.Stitches[2].DMCCode; got != "B5200" && got != "White" && got != "3865" {
		t.Errorf("light stitch mapped to %s, want a white thread", got)
	}

	// Stitches are emitted row-major with coordinates matching position.
	for i, s := range p.Stitches {
		if s.X != i%4 || s.Y != i/4 {
			t.Errorf("stitch %d at (%d,%d), want (%d,%d)", i, s.X, s.Y, i%4, i/4)
		}
		if s.IsFabric() {
			t.Errorf("stitch %d unexpectedly fabric", i)
		}
	}
}

func TestProcessWithMask(t *testing.T) {
	pixels := []colorlab.RGB{
		{R: 0, G: 0, B: 0}, {R: 0, G: 0, B: 0},
		{R: 0, G: 0, B: 0}, {R: 0, G: 0, B: 0},
	}
	mask := []uint8{1, 0, 1, 1}

	p, err := Process(pixels, 2, 2, ProcessOptions{ColorCount: 1, UseDMCPalette: true, Mask: mask})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !p.Stitches[1].IsFabric() {
		t.Error("masked cell is not fabric")
	}
	if p.Stitches[0].IsFabric() {
		t.Error("unmasked cell is fabric")
	}
}

func TestProcessRawPalette(t *testing.T) {
	pixels := []colorlab.RGB{{R: 200, G: 30, B: 40}, {R: 200, G: 30, B: 40}}
	p, err := Process(pixels, 2, 1, ProcessOptions{ColorCount: 1, UseDMCPalette: false})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p.Stitches[0].DMCCode != "RAW-1" {
		t.Errorf("raw code = %s, want RAW-1", p.Stitches[0].DMCCode)
	}
	if len(p.MappedPalette) != 0 {
		t.Errorf("raw processing should not produce a mapped palette: %v", p.MappedPalette)
	}
}

func TestProcessValidation(t *testing.T) {
	pixels := make([]colorlab.RGB, 4)
	if _, err := Process(pixels, 0, 4, DefaultProcessOptions()); err == nil {
		t.Error("accepted zero width")
	}
	if _, err := Process(pixels, 3, 2, DefaultProcessOptions()); err == nil {
		t.Error("accepted mismatched pixel count")
	}
	if _, err := Process(pixels, 2, 2, ProcessOptions{ColorCount: 0}); err == nil {
		t.Error("accepted zero colors")
	}
	if _, err := Process(pixels, 2, 2, ProcessOptions{ColorCount: 2, Mask: []uint8{1}}); err == nil {
		t.Error("accepted short mask")
	}
}
