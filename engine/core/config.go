package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title    string `toml:"title"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	VSync    bool   `toml:"vsync"`
	ClearHex string `toml:"clear_color"`

	UI UIConfig `toml:"ui"`

	// ClearColor is resolved from ClearHex by DecodeConfig/LoadConfig.
	ClearColor colors.Color `toml:"-"`
}

// UIConfig tunes the retained UI layer.
type UIConfig struct {
	Font          string  `toml:"font"`      // .ttf/.otf under the asset fonts/ dir; empty uses Go Regular
	FontSize      float64 `toml:"font_size"` // pixels
	Theme         string  `toml:"theme"`     // theme .toml below the asset root; empty uses the built-in theme
	DoubleClickMs int     `toml:"double_click_ms"`
	DragThreshold float32 `toml:"drag_threshold"`
	CaretBlinkMs  int     `toml:"caret_blink_ms"`
}

func (u UIConfig) DoubleClickTime() time.Duration {
	return time.Duration(u.DoubleClickMs) * time.Millisecond
}

func (u UIConfig) CaretBlink() time.Duration {
	return time.Duration(u.CaretBlinkMs) * time.Millisecond
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		Title:      "Grove UI",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearHex:   "#1e1e1e",
		ClearColor: colors.MustHex("#1e1e1e"),
		UI: UIConfig{
			FontSize:      16,
			DoubleClickMs: 500,
			DragThreshold: 2,
			CaretBlinkMs:  530,
		},
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes TOML from r over DefaultConfig.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	c, err := colors.FromHex(cfg.ClearHex)
	if err != nil {
		return Config{}, fmt.Errorf("clear_color: %w", err)
	}
	cfg.ClearColor = c
	return cfg, nil
}
