package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FullFile(t *testing.T) {
	content := `
server:
  port: 9000
  cors_origins: ["http://maps.local"]
  title: "Subsurface"
cache:
  preview_size_mb: 8
  preview_ttl_minutes: 5
  payload_cache_size: 16
preview:
  width: 512
  height: 32
  default_table: "Seismic"
`
	cfg := loadFromString(t, content)

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "http://maps.local" {
		t.Errorf("unexpected cors origins: %v", cfg.Server.CORSOrigins)
	}
	if cfg.Server.Title != "Subsurface" {
		t.Errorf("unexpected title: %q", cfg.Server.Title)
	}
	if cfg.Cache.PreviewSizeMB != 8 || cfg.Cache.PreviewTTLMinutes != 5 || cfg.Cache.PayloadCacheSize != 16 {
		t.Errorf("unexpected cache config: %+v", cfg.Cache)
	}
	if cfg.Preview.Width != 512 || cfg.Preview.Height != 32 {
		t.Errorf("unexpected preview size: %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Preview.DefaultTable != "Seismic" {
		t.Errorf("unexpected default table: %q", cfg.Preview.DefaultTable)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	content := `
server:
  port: 0
`
	cfg := loadFromString(t, content)

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Cache.PreviewSizeMB != 32 {
		t.Errorf("expected default preview cache 32, got %d", cfg.Cache.PreviewSizeMB)
	}
	if cfg.Preview.Width != 256 || cfg.Preview.Height != 24 {
		t.Errorf("expected default preview 256x24, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Preview.DefaultTable != "Physics" {
		t.Errorf("expected default table Physics, got %q", cfg.Preview.DefaultTable)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "9191")
	t.Setenv(EnvCORSOrigins, "http://a.local, http://b.local,")

	cfg := loadFromString(t, "server:\n  port: 9000\n")

	if cfg.Server.Port != 9191 {
		t.Errorf("expected env port 9191, got %d", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.local" {
		t.Errorf("unexpected cors origins: %v", cfg.Server.CORSOrigins)
	}
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func loadFromString(t *testing.T, content string) *Config {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
