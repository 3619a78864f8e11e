package pattern

import (
	"fmt"

	"stitch-mapper/internal/dmc"
	"stitch-mapper/internal/quantize"
	"stitch-mapper/pkg/colorlab"
)

// markers are the per-color symbols printed on pattern charts. Assignment is
// by palette index so identical inputs always chart identically.
var markers = []string{
	"S", "O", "T", "*", "D", "X", "+", "#", "%", "@",
	"A", "B", "C", "E", "H", "K", "M", "N", "P", "R",
	"U", "V", "W", "Y", "Z", "0", "1", "2", "3", "4",
}

// MaxColors caps the palette size a pattern may request.
const MaxColors = 30

// ProcessOptions configures image-to-pattern conversion.
type ProcessOptions struct {
	// ColorCount is the number of palette colors to quantize to (1..MaxColors).
	ColorCount int
	// MaxIterations bounds k-means refinement; zero uses the default.
	MaxIterations int
	// MinRegionSize merges connected color patches smaller than this many
	// cells into a neighbor. Zero or one disables merging.
	MinRegionSize int
	// UseDMCPalette maps quantized colors onto catalog threads. When false,
	// stitches carry synthetic RAW-n codes and the quantized hex.
	UseDMCPalette bool
	// Mask optionally marks cells as fabric: a zero byte at a cell excludes
	// it from the stitch area. Must be width*height long when present.
	Mask []uint8
}

// DefaultProcessOptions mirrors the standard conversion preset.
func DefaultProcessOptions() ProcessOptions {
	return ProcessOptions{
		ColorCount:    16,
		MinRegionSize: 4,
		UseDMCPalette: true,
	}
}

// Process converts a pixel buffer into a stitch pattern: quantize to a small
// LAB palette, absorb under-sized color patches, optionally map the palette
// onto catalog threads, and emit one stitch per cell in row-major order.
func Process(pixels []colorlab.RGB, width, height int, opts ProcessOptions) (*Pattern, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("process: invalid dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("process: pixel count %d does not match %dx%d", len(pixels), width, height)
	}
	if len(opts.Mask) > 0 && len(opts.Mask) != width*height {
		return nil, fmt.Errorf("process: mask length %d does not match %dx%d", len(opts.Mask), width, height)
	}
	k := opts.ColorCount
	if k <= 0 {
		return nil, fmt.Errorf("process: color count must be positive")
	}
	if k > MaxColors {
		k = MaxColors
	}

	labs := make([]colorlab.LAB, len(pixels))
	for i, p := range pixels {
		labs[i] = colorlab.RGBToLab(p)
	}

	palette, labels := quantize.Quantize(labs, k, opts.MaxIterations)
	if opts.MinRegionSize > 1 {
		quantize.MergeSmallRegions(labels, width, height, palette, opts.MinRegionSize)
	}

	// Recompute each cluster's color from its final members so the palette
	// reflects the mean of what is actually assigned.
	palette = recomputePalette(labs, labels, palette)

	rawPalette := make([]string, len(palette))
	for i, lab := range palette {
		rawPalette[i] = colorlab.RGBToHex(colorlab.LabToRGB(lab))
	}

	p := &Pattern{
		Width:      width,
		Height:     height,
		RawPalette: rawPalette,
	}

	threadByLabel := make([]dmc.Thread, len(palette))
	if opts.UseDMCPalette {
		mapping, err := dmc.MapPalette(rawPalette, dmc.DefaultWeights())
		if err != nil {
			return nil, fmt.Errorf("process: %w", err)
		}
		p.MappedPalette = mapping.MappedPalette
		p.Mappings = mapping.Mappings
		for i, hex := range rawPalette {
			threadByLabel[i] = mapping.MetadataByMappedHex[mapping.OriginalToMapped[hex]]
		}
	}

	p.Stitches = make([]Stitch, 0, width*height)
	for i := 0; i < width*height; i++ {
		x := i % width
		y := i / width

		if len(opts.Mask) > 0 && opts.Mask[i] == 0 {
			p.Stitches = append(p.Stitches, Stitch{
				X: x, Y: y, Hex: "#FFFFFF", DMCCode: FabricCode,
			})
			continue
		}

		label := int(labels[i])
		stitch := Stitch{X: x, Y: y, Marker: markers[label%len(markers)]}
		if opts.UseDMCPalette {
			stitch.DMCCode = threadByLabel[label].Code
			stitch.Hex = threadByLabel[label].Hex
		} else {
			stitch.DMCCode = fmt.Sprintf("RAW-%d", label+1)
			stitch.Hex = rawPalette[label]
		}
		p.Stitches = append(p.Stitches, stitch)
	}

	return p, nil
}

// recomputePalette replaces each cluster center with the mean LAB of its
// assigned pixels. Clusters that lost all members keep their old center.
func recomputePalette(labs []colorlab.LAB, labels []uint16, palette []colorlab.LAB) []colorlab.LAB {
	sums := make([]colorlab.LAB, len(palette))
	counts := make([]int, len(palette))
	for i, lab := range labs {
		l := labels[i]
		sums[l].L += lab.L
		sums[l].A += lab.A
		sums[l].B += lab.B
		counts[l]++
	}

	out := make([]colorlab.LAB, len(palette))
	for i := range palette {
		if counts[i] == 0 {
			out[i] = palette[i]
			continue
		}
		n := float64(counts[i])
		out[i] = colorlab.LAB{L: sums[i].L / n, A: sums[i].A / n, B: sums[i].B / n}
	}
	return out
}
