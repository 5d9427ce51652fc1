package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fastbc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
	if cfg.Precision <= 0 {
		t.Errorf("Precision = %v, want > 0", cfg.Precision)
	}
	if cfg.Parallelism != 4 {
		t.Errorf("Parallelism = %d, want 4", cfg.Parallelism)
	}
	if !cfg.DedupSources {
		t.Error("DedupSources should default to true")
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
precision: 0.001
parallelism: 8
workers: 2
seed: 42
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Precision != 0.001 {
		t.Errorf("Precision = %v, want 0.001", cfg.Precision)
	}
	if cfg.Parallelism != 8 {
		t.Errorf("Parallelism = %d, want 8", cfg.Parallelism)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}

	// Unset keys keep their defaults
	if cfg.MaxPasses != Default().MaxPasses {
		t.Errorf("MaxPasses = %d, want default %d", cfg.MaxPasses, Default().MaxPasses)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "precision: [not a number\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for malformed YAML")
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"ZeroPrecision", func(c *Config) { c.Precision = 0 }, "Precision"},
		{"PrecisionAboveOne", func(c *Config) { c.Precision = 1.5 }, "Precision"},
		{"ZeroParallelism", func(c *Config) { c.Parallelism = 0 }, "Parallelism"},
		{"NegativeWorkers", func(c *Config) { c.Workers = -1 }, "Workers"},
		{"ZeroMaxPasses", func(c *Config) { c.MaxPasses = 0 }, "MaxPasses"},
		{"ZeroMaxLevels", func(c *Config) { c.MaxLevels = 0 }, "MaxLevels"},
		{"ZeroMaxSweeps", func(c *Config) { c.MaxSweeps = 0 }, "MaxSweeps"},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "loud" }, "LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q does not mention field %s", err.Error(), tt.want)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); err != ErrConfigNil {
		t.Errorf("Validate() on nil = %v, want ErrConfigNil", err)
	}
}
