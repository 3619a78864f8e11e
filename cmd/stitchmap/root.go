package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stitch-mapper/internal/config"
	"stitch-mapper/internal/version"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var presetFlag string

	rootCmd := &cobra.Command{
		Use:           "stitchmap",
		Short:         "Convert images into cross-stitch patterns with DMC thread colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (TOML)")
	rootCmd.PersistentFlags().StringVarP(&presetFlag, "preset", "p", "", "Quality preset: draft, standard, high-detail")

	rootCmd.AddCommand(newProcessCommand(&configFlag, &presetFlag))
	rootCmd.AddCommand(newPaletteCommand(&configFlag, &presetFlag))
	rootCmd.AddCommand(newRegionsCommand(&configFlag, &presetFlag))
	rootCmd.AddCommand(newMatchCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// resolveConfig layers the preset under the config file: the preset picks
// the baseline, the file overrides individual fields.
func resolveConfig(configPath, preset string) (config.Config, error) {
	if configPath != "" && preset != "" {
		return config.Config{}, fmt.Errorf("--config and --preset are mutually exclusive")
	}
	if configPath != "" {
		return config.Load(configPath)
	}
	if preset != "" {
		return config.Preset(preset)
	}
	return config.Default(), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stitchmap %s (commit %s, built %s)\n",
				version.Version, version.GitCommit, version.BuildTime)
		},
	}
}
