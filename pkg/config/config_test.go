package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Layout != "circle" {
		t.Errorf("default layout = %q, want %q", cfg.Render.Layout, "circle")
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("default cache backend = %q, want %q", cfg.Cache.Backend, "file")
	}
}

func TestLoad(t *testing.T) {
	content := `
[render]
width = 800
height = 600
layout = "grid"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl_hours = 12

[server]
addr = ":9000"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Width != 800 || cfg.Render.Height != 600 {
		t.Errorf("render size = %gx%g, want 800x600", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Layout != "grid" {
		t.Errorf("layout = %q, want %q", cfg.Render.Layout, "grid")
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTLHours != 12 {
		t.Errorf("ttl = %d, want 12", cfg.Cache.TTLHours)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q, want %q", cfg.Server.Addr, ":9000")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[render]\nwidth = 500\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Width != 500 {
		t.Errorf("width = %g, want 500", cfg.Render.Width)
	}
	if cfg.Render.Layout != "circle" {
		t.Errorf("layout default lost: %q", cfg.Render.Layout)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server default lost: %q", cfg.Server.Addr)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("render = [broken"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid TOML")
	}
}
