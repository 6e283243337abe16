package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/taxi-compare/config"
)

const validConfig = `
server:
  port: 8080
  staticDir: public
data:
  snapshots:
    - label: "2019"
      path: data/yellow_tripdata_2019-02.parquet
    - label: "2023"
      path: https://d37ci6vzurychx.cloudfront.net/trip-data/yellow_tripdata_2023-02.parquet
  zones: data/taxi_zone_lookup.csv
logging:
  level: DEBUG
  format: text
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// TestConfig_LoadFromFile tests loading a complete config file
func TestConfig_LoadFromFile(t *testing.T) {
	origConfig := config.Config
	defer func() { config.Config = origConfig }()

	if err := config.LoadAppConfig(writeConfig(t, validConfig)); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	cfg := config.Config
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.StaticDir != "public" {
		t.Errorf("Expected staticDir public, got %q", cfg.Server.StaticDir)
	}
	if len(cfg.Data.Snapshots) != 2 || cfg.Data.Snapshots[1].Label != "2023" {
		t.Errorf("Unexpected snapshots: %+v", cfg.Data.Snapshots)
	}
	if cfg.Logging.Level != "DEBUG" || cfg.Logging.Format != "text" {
		t.Errorf("Unexpected logging config: %+v", cfg.Logging)
	}
	if !cfg.Server.MetricsEnabled() {
		t.Error("Metrics should be enabled by default")
	}

	t.Logf("✓ Loaded config with snapshots %s and %s", cfg.Data.Snapshots[0].Label, cfg.Data.Snapshots[1].Label)
}

// TestConfig_Defaults tests that omitted settings get defaults
func TestConfig_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
data:
  snapshots:
    - {label: a, path: a.csv}
    - {label: b, path: b.csv}
  zones: zones.csv
server:
  metrics: false
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "INFO" || cfg.Logging.Format != "json" {
		t.Errorf("Expected INFO/json logging, got %+v", cfg.Logging)
	}
	if cfg.Server.MetricsEnabled() {
		t.Error("Metrics should be disabled when set to false")
	}

	t.Logf("✓ Defaults applied: port=%d level=%s", cfg.Server.Port, cfg.Logging.Level)
}

// TestConfig_MissingFile tests error handling for missing config
func TestConfig_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, config.ErrNoConfigFile) {
		t.Fatalf("Expected ErrNoConfigFile, got %v", err)
	}

	t.Logf("✓ Missing config returns error: %v", err)
}

// TestConfig_FirstExistingPathWins tests the candidate path order
func TestConfig_FirstExistingPathWins(t *testing.T) {
	path := writeConfig(t, validConfig)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"), "", path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected config from %s, got port %d", path, cfg.Server.Port)
	}

	t.Log("✓ Skipped missing candidate paths")
}

// TestConfig_InvalidYAML tests error handling for invalid YAML
func TestConfig_InvalidYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "invalid: yaml: content: [[["))
	if err == nil {
		t.Fatal("Loading invalid YAML should return error")
	}
	if !strings.Contains(err.Error(), "decode config") {
		t.Errorf("Expected decode error, got %v", err)
	}

	t.Logf("✓ Invalid YAML returns error: %v", err)
}

// TestConfig_Validation tests the struct tag rules
func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "empty file",
			yaml: "",
		},
		{
			name: "single snapshot",
			yaml: `
data:
  snapshots:
    - {label: a, path: a.csv}
  zones: zones.csv`,
		},
		{
			name: "three snapshots",
			yaml: `
data:
  snapshots:
    - {label: a, path: a.csv}
    - {label: b, path: b.csv}
    - {label: c, path: c.csv}
  zones: zones.csv`,
		},
		{
			name: "duplicate labels",
			yaml: `
data:
  snapshots:
    - {label: a, path: a.csv}
    - {label: a, path: b.csv}
  zones: zones.csv`,
		},
		{
			name: "missing path",
			yaml: `
data:
  snapshots:
    - {label: a, path: a.csv}
    - {label: b}
  zones: zones.csv`,
		},
		{
			name: "missing zones",
			yaml: `
data:
  snapshots:
    - {label: a, path: a.csv}
    - {label: b, path: b.csv}`,
		},
		{
			name: "port out of range",
			yaml: `
server: {port: 70000}
data:
  snapshots:
    - {label: a, path: a.csv}
    - {label: b, path: b.csv}
  zones: zones.csv`,
		},
		{
			name: "unknown log level",
			yaml: `
logging: {level: TRACE}
data:
  snapshots:
    - {label: a, path: a.csv}
    - {label: b, path: b.csv}
  zones: zones.csv`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), "invalid config") {
				t.Errorf("Expected validation error, got %v", err)
			}
			t.Logf("✓ Rejected: %v", err)
		})
	}
}
