// Package config handles configuration loading for the color table server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the YAML file.
const (
	EnvPort        = "COLORTABLES_PORT"
	EnvCORSOrigins = "COLORTABLES_CORS_ORIGINS"
)

// Config represents the server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Cache   CacheConfig   `yaml:"cache"`
	Preview PreviewConfig `yaml:"preview"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
	Title       string   `yaml:"title"`
}

// CacheConfig contains caching settings.
type CacheConfig struct {
	PreviewSizeMB     int `yaml:"preview_size_mb"`
	PreviewTTLMinutes int `yaml:"preview_ttl_minutes"`
	PayloadCacheSize  int `yaml:"payload_cache_size"`
}

// PreviewConfig contains preview swatch settings.
type PreviewConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	DefaultTable string `yaml:"default_table"`
}

// Load reads configuration from a YAML file, then applies environment
// overrides. A .env file in the working directory is loaded if present.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		applyDefaults(&fileCfg)
		cfg = &fileCfg
	}

	// Missing .env is fine
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			Title:       "Color Tables",
		},
		Cache: CacheConfig{
			PreviewSizeMB:     32,
			PreviewTTLMinutes: 60,
			PayloadCacheSize:  128,
		},
		Preview: PreviewConfig{
			Width:        256,
			Height:       24,
			DefaultTable: "Physics",
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaults.Server.Port
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = defaults.Server.CORSOrigins
	}
	if cfg.Server.Title == "" {
		cfg.Server.Title = defaults.Server.Title
	}
	if cfg.Cache.PreviewSizeMB == 0 {
		cfg.Cache.PreviewSizeMB = defaults.Cache.PreviewSizeMB
	}
	if cfg.Cache.PreviewTTLMinutes == 0 {
		cfg.Cache.PreviewTTLMinutes = defaults.Cache.PreviewTTLMinutes
	}
	if cfg.Cache.PayloadCacheSize == 0 {
		cfg.Cache.PayloadCacheSize = defaults.Cache.PayloadCacheSize
	}
	if cfg.Preview.Width == 0 {
		cfg.Preview.Width = defaults.Preview.Width
	}
	if cfg.Preview.Height == 0 {
		cfg.Preview.Height = defaults.Preview.Height
	}
	if cfg.Preview.DefaultTable == "" {
		cfg.Preview.DefaultTable = defaults.Preview.DefaultTable
	}
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return fmt.Errorf("invalid %s: %q", EnvPort, v)
		}
		cfg.Server.Port = port
	}
	if v := strings.TrimSpace(os.Getenv(EnvCORSOrigins)); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.Server.CORSOrigins = origins
		}
	}
	return nil
}
