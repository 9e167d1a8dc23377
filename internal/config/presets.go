package config

import (
	"sort"

	"github.com/san-kum/ballpit/internal/world"
)

// Presets only set the scene; physics and viewport stay at their defaults
// unless noted.
var Presets = map[string]*Config{
	"flat": {
		Scene: world.Scene{Color: "#38bdf8", Count: 10, AngleDeg: 0},
	},
	"ramp": {
		Scene: world.Scene{Color: "#f97316", Count: 15, AngleDeg: 15},
	},
	"steep": {
		Scene: world.Scene{Color: "#ef4444", Count: 8, AngleDeg: 35},
	},
	"uphill": {
		Scene: world.Scene{Color: "#a3e635", Count: 12, AngleDeg: -20},
	},
	"crowd": {
		Scene:  world.Scene{Color: "#e879f9", Count: 40, AngleDeg: 5},
		Frames: 1800,
	},
	"elastic": {
		Scene: world.Scene{Color: "#facc15", Count: 12, AngleDeg: 8},
		Physics: world.Params{
			Friction:   1.0,
			WallBounce: 1.0,
			Bounce:     0.95,
		},
	},
}

// GetPreset returns the default config with the preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Scene = p.Scene
	if p.Frames != 0 {
		cfg.Frames = p.Frames
	}
	if p.Physics.Friction != 0 {
		cfg.Physics.Friction = p.Physics.Friction
	}
	if p.Physics.WallBounce != 0 {
		cfg.Physics.WallBounce = p.Physics.WallBounce
	}
	if p.Physics.Bounce != 0 {
		cfg.Physics.Bounce = p.Physics.Bounce
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
