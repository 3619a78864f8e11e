// Package export renders traced pattern outlines as SVG documents.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"stitch-mapper/internal/vectorize"
	"stitch-mapper/pkg/geometry"
)

// RegionLabel places a text annotation inside a region, typically its
// number or thread code at the region's label point.
type RegionLabel struct {
	Point geometry.GridPoint
	Text  string
}

// Document collects everything a rendered pattern sheet needs: the grid
// dimensions, the traced outlines, and the fill color for each label.
type Document struct {
	Width  int
	Height int
	Paths  []vectorize.Path
	// FillByLabel maps a path's label to its fill color as a #RRGGBB hex
	// string. Labels without an entry render unfilled.
	FillByLabel map[uint16]string
	Labels      []RegionLabel
}

// Options controls SVG rendering.
type Options struct {
	// CellSize is the rendered size of one stitch cell in SVG units.
	CellSize float64
	// StrokeColor outlines every path; empty disables stroking.
	StrokeColor string
	// StrokeWidth is the outline width in SVG units.
	StrokeWidth float64
	// FontSize for region labels; zero derives it from CellSize.
	FontSize float64
	// Background fills the whole sheet before paths are drawn; empty
	// leaves it transparent.
	Background string
}

// DefaultOptions renders at ten units per cell with a thin dark outline.
func DefaultOptions() Options {
	return Options{
		CellSize:    10,
		StrokeColor: "#333333",
		StrokeWidth: 0.5,
		Background:  "#FFFFFF",
	}
}

// Write renders the document as a standalone SVG.
func Write(w io.Writer, doc Document, opts Options) error {
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("export: invalid dimensions %dx%d", doc.Width, doc.Height)
	}
	cell := opts.CellSize
	if cell <= 0 {
		cell = DefaultOptions().CellSize
	}

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(float64(doc.Width)*cell, float64(doc.Height)*cell)

	if opts.Background != "" {
		canvas.Rect(0, 0, float64(doc.Width)*cell, float64(doc.Height)*cell,
			"fill:"+opts.Background)
	}

	for _, p := range doc.Paths {
		if len(p.Points) < 3 {
			continue
		}
		style := pathStyle(doc.FillByLabel[p.Label], opts)
		canvas.Path(pathData(p.Points, cell), style)
	}

	if len(doc.Labels) > 0 {
		fontSize := opts.FontSize
		if fontSize <= 0 {
			fontSize = cell * 0.6
		}
		for _, l := range doc.Labels {
			x := (float64(l.Point.X) + 0.5) * cell
			y := (float64(l.Point.Y) + 0.5) * cell
			canvas.Text(x, y, l.Text, fmt.Sprintf(
				"font-size:%.2f;text-anchor:middle;dominant-baseline:central;font-family:sans-serif", fontSize))
		}
	}

	canvas.End()
	return bw.Flush()
}

// pathData builds a closed SVG path from cell-space points scaled by cell.
func pathData(points []geometry.Point2D, cell float64) string {
	var b strings.Builder
	for i, pt := range points {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		fmt.Fprintf(&b, "%.2f %.2f", pt.X*cell, pt.Y*cell)
	}
	b.WriteByte('Z')
	return b.String()
}

func pathStyle(fill string, opts Options) string {
	var parts []string
	if fill != "" {
		parts = append(parts, "fill:"+fill)
	} else {
		parts = append(parts, "fill:none")
	}
	if opts.StrokeColor != "" {
		parts = append(parts, "stroke:"+opts.StrokeColor)
		width := opts.StrokeWidth
		if width <= 0 {
			width = DefaultOptions().StrokeWidth
		}
		parts = append(parts, fmt.Sprintf("stroke-width:%.2f", width))
		parts = append(parts, "stroke-linejoin:round")
	}
	return strings.Join(parts, ";")
}
