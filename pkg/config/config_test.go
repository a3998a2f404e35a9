package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() should be valid, got %v", err)
	}
}

func TestLoadFromEnvOverridesWorkerAndPregel(t *testing.T) {
	for _, v := range []string{"GDS_CONCURRENCY", "GDS_DEFAULT_PARTITION_SIZE", "GDS_BSP_MAX_ITERATIONS", "GDS_BSP_TIMEOUT_SECONDS"} {
		os.Unsetenv(v)
	}
	os.Setenv("GDS_CONCURRENCY", "8")
	os.Setenv("GDS_DEFAULT_PARTITION_SIZE", "2048")
	os.Setenv("GDS_BSP_MAX_ITERATIONS", "50")
	os.Setenv("GDS_BSP_TIMEOUT_SECONDS", "30")
	defer func() {
		os.Unsetenv("GDS_CONCURRENCY")
		os.Unsetenv("GDS_DEFAULT_PARTITION_SIZE")
		os.Unsetenv("GDS_BSP_MAX_ITERATIONS")
		os.Unsetenv("GDS_BSP_TIMEOUT_SECONDS")
	}()

	cfg := LoadFromEnv()
	if cfg.Worker.Concurrency != 8 {
		t.Errorf("Concurrency = %d, want 8", cfg.Worker.Concurrency)
	}
	if cfg.Worker.DefaultPartitionSize != 2048 {
		t.Errorf("DefaultPartitionSize = %d, want 2048", cfg.Worker.DefaultPartitionSize)
	}
	if cfg.Pregel.MaxIterations != 50 {
		t.Errorf("MaxIterations = %d, want 50", cfg.Pregel.MaxIterations)
	}
	if cfg.Pregel.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Pregel.TimeoutSeconds)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsOutOfRangeConcurrency(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Worker.Concurrency = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for concurrency 0")
	}

	cfg.Worker.Concurrency = 101
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for concurrency 101")
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestValidateRejectsNonPositiveMaxIterations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pregel.MaxIterations = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero max iterations")
	}
}

func TestLoadConfigFileOverlaysYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gds.yaml")
	contents := `
worker:
  concurrency: 16
  default_partition_size: 5000
pregel:
  max_iterations: 100
memory:
  limit: "4GB"
  gc_percent: 75
logging:
  level: debug
  verbose: true
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Worker.Concurrency != 16 {
		t.Errorf("Concurrency = %d, want 16", cfg.Worker.Concurrency)
	}
	if cfg.Worker.DefaultPartitionSize != 5000 {
		t.Errorf("DefaultPartitionSize = %d, want 5000", cfg.Worker.DefaultPartitionSize)
	}
	if cfg.Pregel.MaxIterations != 100 {
		t.Errorf("MaxIterations = %d, want 100", cfg.Pregel.MaxIterations)
	}
	if cfg.Memory.RuntimeLimit != 4*1024*1024*1024 {
		t.Errorf("RuntimeLimit = %d, want 4GB", cfg.Memory.RuntimeLimit)
	}
	if cfg.Memory.GCPercent != 75 {
		t.Errorf("GCPercent = %d, want 75", cfg.Memory.GCPercent)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Verbose {
		t.Errorf("Logging = %+v, want debug/verbose", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadConfigFileMissingFileErrors(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
