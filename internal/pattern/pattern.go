// Package pattern defines the stitch grid produced from a quantized image
// and the per-color legend derived from it.
package pattern

import (
	"strings"

	"stitch-mapper/internal/dmc"
)

// FabricCode marks grid cells with no thread assignment.
const FabricCode = "Fabric"

// Stitch is one pixel's resolved thread color assignment. Marker is empty
// for fabric/background cells.
type Stitch struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Hex     string `json:"hex"`
	DMCCode string `json:"dmcCode"`
	Marker  string `json:"marker"`
}

// IsFabric reports whether the stitch is a fabric/background cell.
func (s Stitch) IsFabric() bool {
	return s.Marker == "" || strings.EqualFold(s.DMCCode, FabricCode)
}

// ColorKey returns the stitch's palette discriminator.
func (s Stitch) ColorKey() string {
	return ColorKey(s.DMCCode, s.Hex)
}

// Pattern is one processed image: a stitch grid plus its palettes. Region
// and vector state are derived artifacts, never stored here.
//
// Stitches are produced in row-major order but consumers must not rely on
// that: derived artifacts are required to be identical for any permutation.
type Pattern struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Stitches      []Stitch      `json:"stitches"`
	RawPalette    []string      `json:"rawPalette"`
	MappedPalette []string      `json:"mappedPalette"`
	Mappings      []dmc.Mapping `json:"mappings"`
}

// ColorKey combines a thread code and hex value into the discriminator used
// for region segmentation. Case and surrounding whitespace are ignored.
func ColorKey(code, hex string) string {
	return strings.ToUpper(strings.TrimSpace(code)) + "|" + strings.ToUpper(strings.TrimSpace(hex))
}

// SplitColorKey is the inverse of ColorKey.
func SplitColorKey(key string) (code, hex string) {
	if i := strings.IndexByte(key, '|'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, ""
}

// Palette returns the distinct non-fabric color keys of the pattern in
// first-seen raster order, along with a key->index lookup. The index is the
// colorIndex used by region ordering.
func (p *Pattern) Palette() ([]string, map[string]int) {
	byKey := make(map[string]int)
	var keys []string

	// Index stitches by grid position so palette order follows the raster
	// scan, not the (possibly permuted) stitch slice order.
	grid := p.Grid()
	for _, s := range grid {
		if s == nil || s.IsFabric() {
			continue
		}
		key := s.ColorKey()
		if _, ok := byKey[key]; ok {
			continue
		}
		byKey[key] = len(keys)
		keys = append(keys, key)
	}
	return keys, byKey
}

// Grid returns the stitches arranged row-major by their coordinates. Cells
// with no stitch are nil. Out-of-bounds stitches are dropped.
func (p *Pattern) Grid() []*Stitch {
	grid := make([]*Stitch, p.Width*p.Height)
	for i := range p.Stitches {
		s := &p.Stitches[i]
		if s.X < 0 || s.X >= p.Width || s.Y < 0 || s.Y >= p.Height {
			continue
		}
		grid[s.Y*p.Width+s.X] = s
	}
	return grid
}
