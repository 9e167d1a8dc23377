package config

import (
	"fmt"
	"os"

	"github.com/san-kum/ballpit/internal/world"
	"gopkg.in/yaml.v3"
)

const (
	DefaultColor    = "#38bdf8"
	DefaultCount    = 10
	DefaultAngle    = 10.0
	DefaultWidth    = 1280.0
	DefaultHeight   = 720.0
	DefaultFPS      = 60
	DefaultFrames   = 600
	DefaultLogLevel = "info"
)

type Config struct {
	Scene    world.Scene    `yaml:"scene"`
	Viewport ViewportConfig `yaml:"viewport"`
	Physics  world.Params   `yaml:"physics"`
	Seed     int64          `yaml:"seed"`
	FPS      int            `yaml:"fps"`
	Frames   int            `yaml:"frames"`
	LogLevel string         `yaml:"log_level"`
}

// ViewportConfig sizes the world for headless runs; interactive hosts
// use the window or terminal size instead.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene: world.Scene{
			Color:    DefaultColor,
			Count:    DefaultCount,
			AngleDeg: DefaultAngle,
		},
		Viewport: ViewportConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Physics:  world.DefaultParams(),
		FPS:      DefaultFPS,
		Frames:   DefaultFrames,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %.0fx%.0f", c.Viewport.Width, c.Viewport.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", c.Frames)
	}
	if c.Scene.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Scene.Count)
	}
	if b := c.Physics.Bounce; b < 0 || b > 1 {
		return fmt.Errorf("bounce must be in [0,1], got %g", b)
	}
	if c.Physics.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", c.Physics.Radius)
	}
	return nil
}

func (c *Config) Bounds() world.Bounds {
	return world.Bounds{Width: c.Viewport.Width, Height: c.Viewport.Height}
}
