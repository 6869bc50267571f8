package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/warp/internal/config"
)

// resolveConfig layers the configuration: defaults, then the preset, then
// the config file, then any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Body.Mass = mass
	}
	if flags.Changed("radius") {
		cfg.Body.Radius = radius
	}
	if flags.Changed("extent") {
		cfg.Grid.Extent = extent
	}
	if flags.Changed("resolution") {
		cfg.Grid.Resolution = resolution
	}
	if flags.Changed("capacity") {
		cfg.Grid.Capacity = capacity
	}
	if flags.Changed("semi-major") {
		cfg.Orbit.SemiMajor = semiMajor
	}
	if flags.Changed("semi-minor") {
		cfg.Orbit.SemiMinor = semiMinor
	}
	if flags.Changed("step") {
		cfg.Orbit.Step = step
	}
	if flags.Changed("width") {
		cfg.Window.Width = winWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = winHeight
	}
	if flags.Changed("floor") {
		cfg.Render.FloorProgram = floor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
