// Package config loads the benchmark tool configuration from an
// optional YAML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config is the complete benchmark tool configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Workload WorkloadConfig `yaml:"workload"`
	Report   ReportConfig   `yaml:"report"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	NoTerminal bool   `yaml:"no_terminal"`
}

// WorkloadConfig controls the synthetic population.
type WorkloadConfig struct {
	Seed   uint64 `yaml:"seed"`
	Scales []int  `yaml:"scales"`
}

// ReportConfig controls the benchmark phases and result persistence.
type ReportConfig struct {
	QueryCount      int    `yaml:"query_count"`
	ConcurrentScale int    `yaml:"concurrent_scale"`
	Workers         int    `yaml:"workers"`
	OpsPerWorker    int    `yaml:"ops_per_worker"`
	ResultsDB       string `yaml:"results_db"`
}

// Default returns the configuration used when no file is given,
// matching the scales the benchmark has always exercised.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "INFO",
		},
		Workload: WorkloadConfig{
			Seed:   1,
			Scales: []int{1000, 5000, 10000, 50000},
		},
		Report: ReportConfig{
			QueryCount:      100,
			ConcurrentScale: 10000,
			Workers:         4,
			OpsPerWorker:    1000,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file
// at path, and FSINDEX_* environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnvironment()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvironment() {
	if val := os.Getenv("FSINDEX_LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("FSINDEX_LOG_FILE"); val != "" {
		c.Log.File = val
	}
	if val := os.Getenv("FSINDEX_SEED"); val != "" {
		if seed, err := strconv.ParseUint(val, 10, 64); err == nil {
			c.Workload.Seed = seed
		}
	}
	if val := os.Getenv("FSINDEX_WORKERS"); val != "" {
		if workers, err := strconv.Atoi(val); err == nil {
			c.Report.Workers = workers
		}
	}
	if val := os.Getenv("FSINDEX_RESULTS_DB"); val != "" {
		c.Report.ResultsDB = val
	}
}

func (c *Config) validate() error {
	if len(c.Workload.Scales) == 0 {
		return fmt.Errorf("config: no workload scales defined")
	}

	for _, scale := range c.Workload.Scales {
		if scale <= 0 {
			return fmt.Errorf("config: invalid workload scale %d", scale)
		}
	}

	if c.Report.Workers <= 0 {
		return fmt.Errorf("config: invalid worker count %d", c.Report.Workers)
	}

	return nil
}
