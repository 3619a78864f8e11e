package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"stitch-mapper/internal/export"
	"stitch-mapper/internal/pattern"
	"stitch-mapper/internal/region"
	"stitch-mapper/internal/vectorize"
)

func newProcessCommand(configFlag, presetFlag *string) *cobra.Command {
	var output string
	var colors int
	var raw bool
	var noLabels bool

	cmd := &cobra.Command{
		Use:   "process <image>",
		Short: "Convert an image into an SVG stitch pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*configFlag, *presetFlag)
			if err != nil {
				return err
			}
			if colors > 0 {
				cfg.Quantize.ColorCount = colors
			}
			if raw {
				cfg.Quantize.UseDMCPalette = false
			}
			if noLabels {
				cfg.Output.ShowLabels = false
			}

			input := args[0]
			if output == "" {
				output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
			}

			p, err := convertImage(input, cfg)
			if err != nil {
				return err
			}

			art := region.Build(p)
			log.Printf("segmented %dx%d grid into %d regions (hash %s)",
				art.Width, art.Height, len(art.Regions), art.LockHash[:12])

			labels, fabric, fills := colorLabels(p)
			traced := vectorize.Trace(labels, p.Width, p.Height, fabric, vectorize.Options{
				SimplifyEpsilon:  cfg.Outline.SimplifyEpsilon,
				SmoothIterations: cfg.Outline.SmoothIterations,
			})
			// Fabric shows through as background, so only stitched
			// outlines are rendered.
			paths := traced[:0:0]
			for _, path := range traced {
				if !path.IsFabric {
					paths = append(paths, path)
				}
			}

			doc := export.Document{
				Width:       p.Width,
				Height:      p.Height,
				Paths:       paths,
				FillByLabel: fills,
			}
			if cfg.Output.ShowLabels {
				for _, r := range art.Regions {
					lp := art.LabelPoints[r.ID]
					if !annotationVisible(paths, uint16(r.ColorIndex+1), lp) {
						continue
					}
					doc.Labels = append(doc.Labels, export.RegionLabel{
						Point: lp,
						Text:  fmt.Sprintf("%d", r.ID),
					})
				}
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()

			opts := export.DefaultOptions()
			opts.CellSize = cfg.Output.CellSize
			opts.StrokeWidth = cfg.Output.StrokeWidth
			if err := export.Write(f, doc, opts); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(legendHeaders, legendRows(pattern.Legend(p)), legendAligns))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d paths)\n", output, len(paths))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output SVG path (default: input name with .svg)")
	cmd.Flags().IntVar(&colors, "colors", 0, "Override palette size")
	cmd.Flags().BoolVar(&raw, "raw", false, "Keep quantized colors instead of mapping to DMC threads")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "Omit region number annotations")

	return cmd
}
