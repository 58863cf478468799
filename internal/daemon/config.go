// Package daemon wires the EcoTrack service together: config, logging,
// storage, and the HTTP API.
package daemon

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the daemon configuration, loaded from ~/.ecotrack/config.toml.
type Config struct {
	API      APIConfig      `toml:"api"`
	Store    StoreConfig    `toml:"store"`
	Insights InsightsConfig `toml:"insights"`
	Log      LogConfig      `toml:"log"`
}

// APIConfig configures the HTTP server.
type APIConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	EnableMetrics bool   `toml:"enable_metrics"`
}

// StoreConfig configures the sqlite store.
type StoreConfig struct {
	Dir string `toml:"dir"`
}

// InsightsConfig configures tip and insight delivery.
type InsightsConfig struct {
	LiveFeed bool `toml:"live_feed"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host:          "127.0.0.1",
			Port:          8090,
			EnableMetrics: true,
		},
		Store: StoreConfig{
			Dir: defaultStoreDir(),
		},
		Insights: InsightsConfig{
			LiveFeed: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() string {
	return filepath.Join(defaultStoreDir(), "config.toml")
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error — defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ecotrack"
	}
	return filepath.Join(home, ".ecotrack")
}
