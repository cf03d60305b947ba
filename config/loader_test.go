package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  allowedOrigins:
    - "http://localhost:5173"
data:
  source: http
  stationsURL: "https://example.com/stations.json"
  tripsURL: "https://example.com/trips.csv"
`)
	if err := LoadAppConfig(path); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Server.Port != 9090 {
		t.Errorf("port %d, want 9090", Config.Server.Port)
	}
	if Config.Data.Source != "http" {
		t.Errorf("source %q, want http", Config.Data.Source)
	}
	if len(Config.Server.AllowedOrigins) != 1 {
		t.Errorf("allowedOrigins = %v", Config.Server.AllowedOrigins)
	}
}

func TestLoadAppConfigDefaultSource(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
data:
  stationsURL: "stations.csv"
  tripsURL: "trips.csv"
`)
	if err := LoadAppConfig(path); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Data.Source != "http" {
		t.Errorf("default source %q, want http", Config.Data.Source)
	}
}

func TestLoadAppConfigRejectsBadSource(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
data:
  source: carrier-pigeon
`)
	if err := LoadAppConfig(path); err == nil {
		t.Fatal("expected validation error for unknown source")
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	if err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
