// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("default size %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if !cfg.VSync {
		t.Error("vsync off by default")
	}
	if cfg.PreferSoftware {
		t.Error("software fallback on by default")
	}
	base := cfg.baseColor()
	if base.A != 1 || base.R != 20.0/255 {
		t.Errorf("default base color = %+v", base)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ggview.toml")
	data := []byte(`
title = "demo"
width = 1280
prefer_software = true
base_color = "#FF0000"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "demo" || cfg.Width != 1280 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Height != 600 || !cfg.VSync {
		t.Errorf("defaults lost: height=%d vsync=%v", cfg.Height, cfg.VSync)
	}
	if !cfg.PreferSoftware {
		t.Error("prefer_software not applied")
	}
	if c := cfg.baseColor(); c.R != 1 || c.G != 0 {
		t.Errorf("base color = %+v, want red", c)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("missing file did not error")
	}
	// Defaults come back so the caller can choose to continue.
	if cfg.Width != 800 {
		t.Errorf("error path lost defaults: %+v", cfg)
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("width = }"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed TOML did not error")
	}
}
