package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !slices.Equal(cfg.Workload.Scales, []int{1000, 5000, 10000, 50000}) {
		t.Errorf("unexpected default scales %v", cfg.Workload.Scales)
	}

	if cfg.Report.QueryCount != 100 {
		t.Errorf("unexpected default query count %d", cfg.Report.QueryCount)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := []byte(`
log:
  level: DEBUG
workload:
  seed: 99
  scales: [100, 200]
report:
  query_count: 10
  workers: 2
  ops_per_worker: 50
  results_db: bench.db
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "DEBUG" {
		t.Errorf("log level not loaded: %s", cfg.Log.Level)
	}
	if cfg.Workload.Seed != 99 {
		t.Errorf("seed not loaded: %d", cfg.Workload.Seed)
	}
	if !slices.Equal(cfg.Workload.Scales, []int{100, 200}) {
		t.Errorf("scales not loaded: %v", cfg.Workload.Scales)
	}
	if cfg.Report.ResultsDB != "bench.db" {
		t.Errorf("results db not loaded: %s", cfg.Report.ResultsDB)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FSINDEX_LOG_LEVEL", "ERROR")
	t.Setenv("FSINDEX_SEED", "7")
	t.Setenv("FSINDEX_WORKERS", "8")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "ERROR" {
		t.Errorf("env log level not applied: %s", cfg.Log.Level)
	}
	if cfg.Workload.Seed != 7 {
		t.Errorf("env seed not applied: %d", cfg.Workload.Seed)
	}
	if cfg.Report.Workers != 8 {
		t.Errorf("env workers not applied: %d", cfg.Report.Workers)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := os.WriteFile(path, []byte("workload:\n  scales: [0]\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for zero scale")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
