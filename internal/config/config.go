// Package config loads and validates pattern conversion settings from TOML.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Quantize contains configuration for palette reduction.
type Quantize struct {
	ColorCount    int  `toml:"color_count"`
	MaxIterations int  `toml:"max_iterations"`
	MinRegionSize int  `toml:"min_region_size"`
	UseDMCPalette bool `toml:"use_dmc_palette"`
}

// Outline contains configuration for contour tracing and cleanup.
type Outline struct {
	SimplifyEpsilon  float64 `toml:"simplify_epsilon"`
	SmoothIterations int     `toml:"smooth_iterations"`
}

// Output contains configuration for rendered output.
type Output struct {
	CellSize     float64 `toml:"cell_size"`
	StrokeWidth  float64 `toml:"stroke_width"`
	ShowLabels   bool    `toml:"show_labels"`
	MaxDimension int     `toml:"max_dimension"`
}

// Config is the full conversion configuration.
type Config struct {
	Quantize Quantize `toml:"quantize"`
	Outline  Outline  `toml:"outline"`
	Output   Output   `toml:"output"`
}

// Load reads a TOML config file, applying defaults for absent fields.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Quantize.ColorCount < 1 {
		return fmt.Errorf("quantize.color_count must be at least 1, got %d", c.Quantize.ColorCount)
	}
	if c.Quantize.MaxIterations < 0 {
		return fmt.Errorf("quantize.max_iterations must not be negative, got %d", c.Quantize.MaxIterations)
	}
	if c.Quantize.MinRegionSize < 0 {
		return fmt.Errorf("quantize.min_region_size must not be negative, got %d", c.Quantize.MinRegionSize)
	}
	if c.Outline.SimplifyEpsilon < 0 {
		return fmt.Errorf("outline.simplify_epsilon must not be negative, got %g", c.Outline.SimplifyEpsilon)
	}
	if c.Outline.SmoothIterations < 0 || c.Outline.SmoothIterations > 8 {
		return fmt.Errorf("outline.smooth_iterations must be between 0 and 8, got %d", c.Outline.SmoothIterations)
	}
	if c.Output.CellSize <= 0 {
		return fmt.Errorf("output.cell_size must be positive, got %g", c.Output.CellSize)
	}
	if c.Output.MaxDimension < 1 {
		return fmt.Errorf("output.max_dimension must be at least 1, got %d", c.Output.MaxDimension)
	}
	return nil
}
