package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stitch-mapper/internal/region"
)

func newRegionsCommand(configFlag, presetFlag *string) *cobra.Command {
	var colors int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "regions <image>",
		Short: "Segment an image into stitch regions and print the region graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*configFlag, *presetFlag)
			if err != nil {
				return err
			}
			if colors > 0 {
				cfg.Quantize.ColorCount = colors
			}

			p, err := convertImage(args[0], cfg)
			if err != nil {
				return err
			}
			art := region.Build(p)

			headers := []string{"Region", "Color", "Area", "Neighbors", "Label At"}
			aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft}
			rows := make([][]string, 0, len(art.Regions))
			for _, r := range art.Regions {
				lp := art.LabelPoints[r.ID]
				rows = append(rows, []string{
					fmt.Sprintf("%d", r.ID),
					r.ColorKey,
					fmt.Sprintf("%d", r.Area),
					fmt.Sprintf("%d", len(art.Adjacency[r.ID])),
					fmt.Sprintf("(%d,%d)", lp.X, lp.Y),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			fmt.Fprintf(cmd.OutOrStdout(), "%d regions, lock hash %s\n", len(art.Regions), art.LockHash)

			if verbose {
				for _, r := range art.Regions {
					fmt.Fprintf(cmd.OutOrStdout(), "region %d adjacency: %v\n", r.ID, art.Adjacency[r.ID])
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&colors, "colors", 0, "Override palette size")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print full adjacency lists")

	return cmd
}
