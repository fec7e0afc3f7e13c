// Package config loads the viewer settings from a TOML file.
// A missing file is not an error: the defaults are used instead.
package config

import (
	"bytes"
	"encoding/hex"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"chosenoffset.com/alphatri/internal/placeholders"
	"chosenoffset.com/alphatri/internal/scenes"
)

// Config holds all viewer settings
type Config struct {
	Window WindowConfig `toml:"window"`
	Tile   TileConfig   `toml:"tile"`
	Viewer ViewerConfig `toml:"viewer"`
	Log    LogConfig    `toml:"log"`
}

// WindowConfig describes the ebiten window
type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// TileConfig selects the triangle tile. An empty path means the tile is
// generated in memory at Size pixels.
type TileConfig struct {
	Path string `toml:"path"`
	Size int    `toml:"size"`
}

// ViewerConfig controls what the viewer shows
type ViewerConfig struct {
	Scenes       []string `toml:"scenes"`
	Background   string   `toml:"background"` // RRGGBB
	Outline      bool     `toml:"outline"`
	OutlineWidth float64  `toml:"outline_width"`
}

// LogConfig sets the slog level: debug, info, warn or error
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the settings used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1920,
			Height:    1080,
			Title:     "alphatri",
			Resizable: true,
		},
		Tile: TileConfig{
			Size: placeholders.TileSize,
		},
		Viewer: ViewerConfig{
			Scenes:       scenes.Names(),
			Background:   "ffffff",
			Outline:      false,
			OutlineWidth: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML config on top of the defaults and validates it
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Write stores the config as TOML
func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}
	return nil
}

// Validate checks sizes, scene names, the background color and the log level
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Tile.Path == "" && c.Tile.Size < 3 {
		return errors.Errorf("tile size must be at least 3, got %d", c.Tile.Size)
	}
	if len(c.Viewer.Scenes) == 0 {
		return errors.New("no scenes configured")
	}
	for _, name := range c.Viewer.Scenes {
		if _, ok := scenes.Lookup(name); !ok {
			return errors.Errorf("unknown scene %q (have %s)", name, strings.Join(scenes.Names(), ", "))
		}
	}
	if c.Viewer.OutlineWidth <= 0 {
		return errors.Errorf("outline width must be positive, got %g", c.Viewer.OutlineWidth)
	}
	if _, err := ParseColor(c.Viewer.Background); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background, white if it does not parse.
func (c *Config) BackgroundColor() color.RGBA {
	clr, err := ParseColor(c.Viewer.Background)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return clr
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, errors.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}

// ParseColor parses an opaque "RRGGBB" color, with or without a leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 3 {
		return color.RGBA{}, errors.Errorf("invalid color %q, want RRGGBB", s)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
}
