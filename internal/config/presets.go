package config

import "sort"

// Presets adjust the default configuration. Each entry is applied to a fresh
// DefaultConfig so presets never share state.
var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"heavy": func(c *Config) {
		c.Body.Mass = 5.0e26
	},
	"dense": func(c *Config) {
		c.Grid.Resolution = 160
	},
	"circular": func(c *Config) {
		c.Orbit.SemiMajor = 3
		c.Orbit.SemiMinor = 3
	},
	"wide": func(c *Config) {
		c.Grid.Extent = 20
		c.Body.Radius = 0.5
		c.Sphere.Radius = 0.5
	},
}

var presetDescriptions = map[string]string{
	"default":  "1e26 kg body on a 3x2 ellipse over a 10x10 grid",
	"heavy":    "five times the default mass",
	"dense":    "160x160 grid cells",
	"circular": "circular orbit of radius 3",
	"wide":     "20x20 grid with a half-size body",
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func DescribePreset(name string) string {
	return presetDescriptions[name]
}
