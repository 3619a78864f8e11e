package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stitch-mapper/internal/pattern"
)

func newPaletteCommand(configFlag, presetFlag *string) *cobra.Command {
	var colors int
	var raw bool

	cmd := &cobra.Command{
		Use:   "palette <image>",
		Short: "Show the thread palette an image would convert to",
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

			p, err := convertImage(args[0], cfg)
			if err != nil {
				return err
			}

			entries := pattern.Legend(p)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(legendHeaders, legendRows(entries), legendAligns))
			fmt.Fprintf(cmd.OutOrStdout(), "%d colors over %dx%d stitches\n", len(entries), p.Width, p.Height)
			return nil
		},
	}

	cmd.Flags().IntVar(&colors, "colors", 0, "Override palette size")
	cmd.Flags().BoolVar(&raw, "raw", false, "Keep quantized colors instead of mapping to DMC threads")

	return cmd
}
