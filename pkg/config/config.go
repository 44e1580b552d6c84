// Package config loads user configuration from a TOML file. The config
// supplies defaults only; it is read once at the command boundary and passed
// down explicitly, never consulted from inside the rendering or I/O code.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName names the configuration directory under the user config root.
const appName = "graphport"

// Config is the full user configuration.
type Config struct {
	Render Render `toml:"render"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Render holds default drawing parameters applied when the corresponding
// flag or request field is unset.
type Render struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	VertexSize float64 `toml:"vertex_size"`
	FontSize   float64 `toml:"font_size"`
	Layout     string  `toml:"layout"`
}

// Cache selects and configures the artifact cache backend.
type Cache struct {
	// Backend is "file", "redis", or "none". Empty means "file".
	Backend string `toml:"backend"`
	// Dir overrides the file backend's directory.
	Dir string `toml:"dir"`
	// RedisAddr is the host:port of the redis backend.
	RedisAddr string `toml:"redis_addr"`
	// TTLHours bounds the lifetime of cached artifacts. Zero means no
	// expiration.
	TTLHours int `toml:"ttl_hours"`
}

// Server configures the HTTP rendering server.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: Render{Layout: "circle"},
		Cache:  Cache{Backend: "file"},
		Server: Server{Addr: ":8080"},
	}
}

// Path returns the default config file location
// (~/.config/graphport/config.toml, honoring XDG_CONFIG_HOME).
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		var err error
		if path, err = Path(); err != nil {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
