// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggview"
)

// Config holds the viewer's startup settings. All fields have usable
// defaults; a TOML file can override any subset of them.
type Config struct {
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the initial window size in screen coordinates.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// VSync selects Fifo presentation. When false the surface presents
	// immediately, tearing permitted.
	VSync bool `toml:"vsync"`

	// PreferSoftware requests a CPU fallback adapter when the platform
	// offers one.
	PreferSoftware bool `toml:"prefer_software"`

	// BaseColor is the scene background as a hex string ("#141414").
	BaseColor string `toml:"base_color"`

	// ClearColor is the surface clear color as a hex string.
	ClearColor string `toml:"clear_color"`
}

// DefaultConfig returns the stock configuration: a 800x600 vsynced
// window with a near-black scene background.
func DefaultConfig() Config {
	return Config{
		Title:      "ggview",
		Width:      800,
		Height:     600,
		VSync:      true,
		BaseColor:  "#141414",
		ClearColor: "#0000FF",
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("app: read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("app: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// baseColor returns the parsed scene background.
func (c Config) baseColor() ggview.RGBA { return ggview.Hex(c.BaseColor) }

// clearColor returns the parsed surface clear color.
func (c Config) clearColor() ggview.RGBA { return ggview.Hex(c.ClearColor) }
