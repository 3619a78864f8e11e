package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stitch-mapper/internal/dmc"
	"stitch-mapper/pkg/colorlab"
)

func parseMetric(name string) (colorlab.Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cie76", "76":
		return colorlab.MetricCIE76, nil
	case "cie94", "94":
		return colorlab.MetricCIE94, nil
	case "cmc":
		return colorlab.MetricCMC, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (available: cie76, cie94, cmc)", name)
	}
}

func newMatchCommand() *cobra.Command {
	var metricName string
	var count int
	var preserveValue bool
	var exclude []string

	cmd := &cobra.Command{
		Use:   "match <hex-color>",
		Short: "Find the closest DMC threads to a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := parseMetric(metricName)
			if err != nil {
				return err
			}
			rgb, err := colorlab.HexToRGB(args[0])
			if err != nil {
				return err
			}
			lab := colorlab.RGBToLab(rgb)

			if preserveValue {
				best, err := dmc.MatchPreserveValue(lab, exclude, dmc.DefaultWeights())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", best.Code, best.Hex, best.Name)
				return nil
			}

			threads := dmc.ClosestN(lab, count, exclude, metric)
			headers := []string{"Code", "Name", "Color", "Delta E"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}
			rows := make([][]string, 0, len(threads))
			for _, th := range threads {
				rows = append(rows, []string{
					th.Code,
					th.Name,
					th.Hex,
					fmt.Sprintf("%.2f", colorlab.Distance(lab, th.Lab, metric)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().StringVarP(&metricName, "metric", "m", "cmc", "Color distance metric: cie76, cie94, cmc")
	cmd.Flags().IntVarP(&count, "n", "n", 5, "Number of candidates to show")
	cmd.Flags().BoolVar(&preserveValue, "preserve-value", false, "Weight lightness over hue when matching")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Thread codes to exclude")

	return cmd
}
