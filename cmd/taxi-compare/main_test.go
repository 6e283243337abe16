package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	fx "github.com/theoremus-urban-solutions/taxi-compare/internal/testfixtures"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	a := fx.WriteTripsCSV(t, dir, "2019.csv", fx.Rows(fx.Ride("2019-02-01 05:10:00", 132, 10, 2, 15, 1, 1)))
	b := fx.WriteTripsCSV(t, dir, "2023.csv", fx.Rows(fx.Ride("2023-02-01 06:10:00", 161, 20, 4, 25, 1, 2)))
	zones := fx.WriteZonesCSV(t, dir)
	cfg := fmt.Sprintf(`
data:
  snapshots:
    - {label: "2019", path: %q}
    - {label: "2023", path: %q}
  zones: %q
logging:
  level: ERROR
`, a, b, zones)
	return fx.WriteFile(t, dir, "config.yml", []byte(cfg))
}

func runCLI(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	orig := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(orig)
		configPath, queryFormat = "", "json"
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.Bytes(), err
}

func TestQueryCommand(t *testing.T) {
	out, err := runCLI(t, "query", "fares", "--config", writeConfig(t))
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	var rows []views.FareRow
	if err := json.Unmarshal(out, &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 2 || rows[0].MeanFare == nil || *rows[0].MeanFare != 10 || *rows[1].MeanFare != 20 {
		t.Errorf("Unexpected fares %s", out)
	}
	t.Logf("✓ query printed %s", bytes.TrimSpace(out))
}

func TestQueryCommand_Summary(t *testing.T) {
	out, err := runCLI(t, "query", "summary", "-c", writeConfig(t))
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	var sum views.Summary
	if err := json.Unmarshal(out, &sum); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(sum.Hourly) != 48 || len(sum.TopZones) != 2 {
		t.Errorf("Unexpected summary sizes hourly=%d top_zones=%d", len(sum.Hourly), len(sum.TopZones))
	}
}

func TestQueryCommand_Errors(t *testing.T) {
	cfg := writeConfig(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown view", []string{"query", "heatmap", "--config", cfg}},
		{"unknown format", []string{"query", "hourly", "--format", "xml", "--config", cfg}},
		{"missing config", []string{"query", "hourly", "--config", filepath.Join(t.TempDir(), "none.yml")}},
		{"no view", []string{"query"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
