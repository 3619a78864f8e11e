package config

import (
	"fmt"
	"sort"
	"strings"
)

const (
	defaultColorCount    = 16
	defaultMaxIterations = 16
	defaultMinRegionSize = 4
	defaultCellSize      = 10.0
	defaultStrokeWidth   = 0.5
	defaultMaxDimension  = 400
)

// Default returns the standard-quality configuration.
func Default() Config {
	return Config{
		Quantize: Quantize{
			ColorCount:    defaultColorCount,
			MaxIterations: defaultMaxIterations,
			MinRegionSize: defaultMinRegionSize,
			UseDMCPalette: true,
		},
		Outline: Outline{
			SimplifyEpsilon:  0.42,
			SmoothIterations: 1,
		},
		Output: Output{
			CellSize:     defaultCellSize,
			StrokeWidth:  defaultStrokeWidth,
			ShowLabels:   true,
			MaxDimension: defaultMaxDimension,
		},
	}
}

// presets maps quality preset names to configurations. Draft trades
// outline fidelity for fewer points, high-detail the reverse.
var presets = map[string]func() Config{
	"draft": func() Config {
		cfg := Default()
		cfg.Quantize.ColorCount = 8
		cfg.Quantize.MinRegionSize = 8
		cfg.Outline.SimplifyEpsilon = 0.75
		cfg.Outline.SmoothIterations = 1
		return cfg
	},
	"standard": Default,
	"high-detail": func() Config {
		cfg := Default()
		cfg.Quantize.ColorCount = 24
		cfg.Quantize.MinRegionSize = 2
		cfg.Outline.SimplifyEpsilon = 0.22
		cfg.Outline.SmoothIterations = 2
		return cfg
	},
}

// Preset returns the named quality preset.
func Preset(name string) (Config, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return fn(), nil
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
