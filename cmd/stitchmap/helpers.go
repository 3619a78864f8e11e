package main

import (
	"fmt"

	"stitch-mapper/internal/config"
	"stitch-mapper/internal/imageio"
	"stitch-mapper/internal/pattern"
	"stitch-mapper/internal/vectorize"
	"stitch-mapper/pkg/geometry"
)

// convertImage runs the shared front half of the pipeline: load the image,
// reduce it to the stitch grid, and quantize it into a pattern.
func convertImage(path string, cfg config.Config) (*pattern.Pattern, error) {
	if !imageio.IsSupportedFormat(path) {
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}
	src, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	src = src.Resize(cfg.Output.MaxDimension)

	return pattern.Process(src.Pixels(), src.Width, src.Height, pattern.ProcessOptions{
		ColorCount:    cfg.Quantize.ColorCount,
		MaxIterations: cfg.Quantize.MaxIterations,
		MinRegionSize: cfg.Quantize.MinRegionSize,
		UseDMCPalette: cfg.Quantize.UseDMCPalette,
	})
}

// colorLabels flattens a pattern into per-cell palette labels for tracing,
// alongside the fabric label set and the fill color per label. The palette
// index only covers thread colors, so label 0 is reserved for fabric and
// color labels are shifted up by one.
func colorLabels(p *pattern.Pattern) (labels []uint16, fabric map[uint16]bool, fills map[uint16]string) {
	_, index := p.Palette()
	grid := p.Grid()

	labels = make([]uint16, p.Width*p.Height)
	fabric = map[uint16]bool{0: true}
	fills = make(map[uint16]string)

	for i, s := range grid {
		if s == nil || s.IsFabric() {
			continue
		}
		l := uint16(index[s.ColorKey()] + 1)
		labels[i] = l
		fills[l] = s.Hex
	}
	return labels, fabric, fills
}

// annotationVisible reports whether a region's label point falls on one of
// its color's rendered outlines. Regions whose contours were discarded as
// too small get no floating number.
func annotationVisible(paths []vectorize.Path, label uint16, cell geometry.GridPoint) bool {
	pt := cell.ToFloat()
	for _, p := range paths {
		if p.Label == label && p.Contains(pt, 0.5) {
			return true
		}
	}
	return false
}

func legendRows(entries []pattern.LegendEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		source := "DMC"
		if !e.IsMappedToDMC {
			source = "quantized"
		}
		rows = append(rows, []string{
			e.DMCCode,
			e.Name,
			e.Hex,
			fmt.Sprintf("%d", e.StitchCount),
			fmt.Sprintf("%.1f%%", e.CoveragePercent),
			source,
		})
	}
	return rows
}

var legendHeaders = []string{"Code", "Name", "Color", "Stitches", "Coverage", "Source"}

var legendAligns = []columnAlignment{
	alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft,
}
