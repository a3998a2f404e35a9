// Package config loads runtime tuning knobs for the graph store from
// environment variables.
//
// There is no query-language surface to configure here: just the handful
// of settings that govern parallel execution (pkg/concurrency), bulk
// synchronous computation (pkg/pregel), and the Go runtime's own memory
// behavior. All values have defaults, so LoadFromEnv can be called without
// any environment variables set, and Validate should be called before the
// result is used to build a GraphStore or run a computation.
//
// Example Usage:
//
//	cfg := config.LoadFromEnv()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("invalid config: %v", err)
//	}
//
// Environment Variables:
//
//   - GDS_CONCURRENCY (default 4)
//   - GDS_DEFAULT_PARTITION_SIZE (default 10000)
//   - GDS_BSP_MAX_ITERATIONS (default 20)
//   - GDS_BSP_TIMEOUT_SECONDS (default 0, meaning no timeout)
//   - GDS_MEMORY_LIMIT (e.g. "2GB", default "0" meaning unlimited)
//   - GDS_GC_PERCENT (default 100)
//   - GDS_LOG_LEVEL (default "info")
//   - GDS_LOG_VERBOSE (default false)
package config

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all graph store configuration loaded from environment
// variables.
type Config struct {
	Worker  WorkerConfig  `yaml:"worker"`
	Pregel  PregelConfig  `yaml:"pregel"`
	Memory  MemoryConfig  `yaml:"memory"`
	Logging LoggingConfig `yaml:"logging"`
}

// WorkerConfig bounds how concurrency.Run partitions and dispatches work.
type WorkerConfig struct {
	// Concurrency is the default worker count handed to concurrency.Must
	// when a caller doesn't pick one explicitly. Must fall within [1,100].
	Concurrency int `yaml:"concurrency"`
	// DefaultPartitionSize is a target node count per partition. It is
	// loaded and validated here only; concurrency.Partitions sizes
	// partitions from the worker count alone and does not read it.
	DefaultPartitionSize int `yaml:"default_partition_size"`
}

// PregelConfig bounds a bulk-synchronous computation (pkg/pregel.Run).
type PregelConfig struct {
	// MaxIterations caps the number of supersteps regardless of whether
	// the computation would otherwise keep sending messages.
	MaxIterations int `yaml:"max_iterations"`
	// TimeoutSeconds is a time limit in seconds, 0 meaning no timeout. It
	// is loaded and validated here only; pregel.Run does not read it and
	// applies no timeout of its own.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// MemoryConfig controls Go runtime memory tuning, independent of the
// pkg/memory Tracker's per-task bookkeeping.
type MemoryConfig struct {
	// RuntimeLimit is the soft memory limit (GOMEMLIMIT) in bytes.
	// 0 = unlimited (Go manages automatically).
	RuntimeLimit int64 `yaml:"-"`
	// RuntimeLimitStr is the human-readable form (e.g. "2GB", "512MB").
	RuntimeLimitStr string `yaml:"limit"`
	// GCPercent controls GC aggressiveness (GOGC). 100 is the Go default;
	// lower trades CPU for lower peak memory.
	GCPercent int `yaml:"gc_percent"`
}

// LoggingConfig controls pkg/internal/tracelog's output.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn".
	Level string `yaml:"level"`
	// Verbose gates tracelog.Debugf output regardless of Level.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration LoadFromEnv would produce with
// no environment variables set.
func DefaultConfig() *Config {
	return &Config{
		Worker:  WorkerConfig{Concurrency: 4, DefaultPartitionSize: 10000},
		Pregel:  PregelConfig{MaxIterations: 20, TimeoutSeconds: 0},
		Memory:  MemoryConfig{RuntimeLimitStr: "0", RuntimeLimit: 0, GCPercent: 100},
		Logging: LoggingConfig{Level: "info", Verbose: false},
	}
}

// LoadFromEnv loads configuration from environment variables, applying
// defaults for anything unset.
func LoadFromEnv() *Config {
	cfg := DefaultConfig()

	cfg.Worker.Concurrency = getEnvInt("GDS_CONCURRENCY", cfg.Worker.Concurrency)
	cfg.Worker.DefaultPartitionSize = getEnvInt("GDS_DEFAULT_PARTITION_SIZE", cfg.Worker.DefaultPartitionSize)

	cfg.Pregel.MaxIterations = getEnvInt("GDS_BSP_MAX_ITERATIONS", cfg.Pregel.MaxIterations)
	cfg.Pregel.TimeoutSeconds = getEnvInt("GDS_BSP_TIMEOUT_SECONDS", cfg.Pregel.TimeoutSeconds)

	cfg.Memory.RuntimeLimitStr = getEnv("GDS_MEMORY_LIMIT", cfg.Memory.RuntimeLimitStr)
	cfg.Memory.RuntimeLimit = parseMemorySize(cfg.Memory.RuntimeLimitStr)
	cfg.Memory.GCPercent = getEnvInt("GDS_GC_PERCENT", cfg.Memory.GCPercent)

	cfg.Logging.Level = strings.ToLower(getEnv("GDS_LOG_LEVEL", cfg.Logging.Level))
	cfg.Logging.Verbose = getEnvBool("GDS_LOG_VERBOSE", cfg.Logging.Verbose)

	return cfg
}

// LoadConfigFile reads a YAML config file and overlays it onto
// DefaultConfig, leaving fields the file doesn't mention at their default.
// It does not consult the environment; callers wanting both a file and
// environment overrides should call LoadFromEnv first and overlay the file
// result's non-zero fields themselves.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Memory.RuntimeLimit = parseMemorySize(cfg.Memory.RuntimeLimitStr)
	return cfg, nil
}

// Validate checks the configuration for out-of-range or nonsensical
// values. Call it after LoadFromEnv and before using the Config.
func (c *Config) Validate() error {
	if c.Worker.Concurrency < 1 || c.Worker.Concurrency > 100 {
		return fmt.Errorf("worker concurrency must be within [1,100], got %d", c.Worker.Concurrency)
	}
	if c.Worker.DefaultPartitionSize <= 0 {
		return fmt.Errorf("default partition size must be positive, got %d", c.Worker.DefaultPartitionSize)
	}
	if c.Pregel.MaxIterations <= 0 {
		return fmt.Errorf("bsp max iterations must be positive, got %d", c.Pregel.MaxIterations)
	}
	if c.Pregel.TimeoutSeconds < 0 {
		return fmt.Errorf("bsp timeout seconds must not be negative, got %d", c.Pregel.TimeoutSeconds)
	}
	if c.Memory.RuntimeLimit < 0 {
		return fmt.Errorf("memory limit must not be negative, got %d", c.Memory.RuntimeLimit)
	}
	if c.Memory.GCPercent <= 0 && c.Memory.GCPercent != -1 {
		return fmt.Errorf("gc percent must be positive (or -1 to disable GC), got %d", c.Memory.GCPercent)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// String returns a string representation of the Config suitable for
// startup logging.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Concurrency: %d, PartitionSize: %d, BSPMaxIterations: %d, MemoryLimit: %s, LogLevel: %s}",
		c.Worker.Concurrency, c.Worker.DefaultPartitionSize, c.Pregel.MaxIterations,
		FormatMemorySize(c.Memory.RuntimeLimit), c.Logging.Level,
	)
}

// ApplyRuntimeMemory applies the runtime memory settings to the Go
// runtime. Should be called early in main() before heavy allocations.
func (c *MemoryConfig) ApplyRuntimeMemory() {
	if c.RuntimeLimit > 0 {
		debug.SetMemoryLimit(c.RuntimeLimit)
	}
	if c.GCPercent != 100 {
		debug.SetGCPercent(c.GCPercent)
	}
}

// FormatMemorySize formats bytes as a human-readable string.
func FormatMemorySize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// parseMemorySize parses a human-readable memory size string.
// Supports: "1024", "1KB", "1MB", "1GB", "1TB", "0", "unlimited".
func parseMemorySize(s string) int64 {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" || s == "0" || s == "UNLIMITED" {
		return 0
	}

	s = strings.TrimSuffix(s, "B")

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(s, "K"):
		multiplier = 1024
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		multiplier = 1024 * 1024
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "G"):
		multiplier = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "G")
	case strings.HasSuffix(s, "T"):
		multiplier = 1024 * 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "T")
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return val * multiplier
}

// Helper functions for environment variable parsing.

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}
