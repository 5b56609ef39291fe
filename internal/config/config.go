// Package config handles raycaster configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Controls ControlsConfig `yaml:"controls"`
	World    WorldConfig    `yaml:"world"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window settings. The logical frame is Width/Scale by
// Height/Scale and is upscaled to the window.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Scale      int  `yaml:"scale"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// RenderConfig holds projector settings.
type RenderConfig struct {
	Workers    int    `yaml:"workers"`    // column-casting goroutines, 1 = sequential
	MaxSteps   int    `yaml:"max_steps"`  // DDA bound, 0 = derived from map size
	Background uint32 `yaml:"background"` // RRGGBBAA
}

// ControlsConfig holds movement settings, applied once per logic tick.
type ControlsConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`   // map units per tick
	RotateSpeed float64 `yaml:"rotate_speed"` // radians per tick
	TickRate    int     `yaml:"tick_rate"`    // logic ticks per second
	MaxFrameSec float64 `yaml:"max_frame_sec"`
}

// WorldConfig holds map and camera start settings.
type WorldConfig struct {
	MapPath         string     `yaml:"map_path"`
	EmptyKey        uint32     `yaml:"empty_key"` // pixel value treated as floor, 0 = off
	AllowUnenclosed bool       `yaml:"allow_unenclosed"`
	StartPosition   [2]float64 `yaml:"start_position"`
	StartDirection  [2]float64 `yaml:"start_direction"`
	StartPlane      [2]float64 `yaml:"start_plane"`
}

// UIConfig holds overlay settings.
type UIConfig struct {
	ShowBand      bool   `yaml:"show_band"`
	BandHeight    int    `yaml:"band_height"`
	ShowMinimap   bool   `yaml:"show_minimap"`
	MinimapCell   int    `yaml:"minimap_cell"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Scale:      4,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			Workers:    1,
			MaxSteps:   0,
			Background: 0x302c2eff,
		},
		Controls: ControlsConfig{
			MoveSpeed:   0.08,
			RotateSpeed: 0.05,
			TickRate:    60,
			MaxFrameSec: 0.1,
		},
		World: WorldConfig{
			MapPath:        "assets/map.png",
			StartPosition:  [2]float64{2, 2},
			StartDirection: [2]float64{-1, 0},
			StartPlane:     [2]float64{0, 0.66},
		},
		UI: UIConfig{
			ShowBand:      false,
			BandHeight:    150 / 4,
			ShowMinimap:   false,
			MinimapCell:   2,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Logical returns the size of the rendered frame before upscaling.
func (c *Config) Logical() (width, height int) {
	return c.Graphics.Width / c.Graphics.Scale, c.Graphics.Height / c.Graphics.Scale
}

var errInvalid = errors.New("invalid config")

// Validate checks values that would make the renderer unusable.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Scale < 1:
		return fmt.Errorf("%w: graphics.scale must be >= 1, got %d", errInvalid, c.Graphics.Scale)
	case c.Graphics.Width < c.Graphics.Scale || c.Graphics.Height < c.Graphics.Scale:
		return fmt.Errorf("%w: window %dx%d smaller than scale %d",
			errInvalid, c.Graphics.Width, c.Graphics.Height, c.Graphics.Scale)
	case c.Controls.TickRate <= 0:
		return fmt.Errorf("%w: controls.tick_rate must be positive, got %d", errInvalid, c.Controls.TickRate)
	case c.Controls.MaxFrameSec <= 0:
		return fmt.Errorf("%w: controls.max_frame_sec must be positive", errInvalid)
	case c.Render.Workers < 1:
		return fmt.Errorf("%w: render.workers must be >= 1, got %d", errInvalid, c.Render.Workers)
	case c.World.MapPath == "":
		return fmt.Errorf("%w: world.map_path is empty", errInvalid)
	}
	return nil
}
