// Package config loads and validates pipeline configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-fastbc/pkg/brandes"
	"github.com/dd0wney/cluso-fastbc/pkg/louvain"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ErrConfigNil is returned when a nil config is validated.
var ErrConfigNil = errors.New("config cannot be nil")

// Config holds all tunables for a centrality run.
type Config struct {
	// Precision is the minimum modularity gain required to keep iterating
	// a partitioning pass.
	Precision float64 `yaml:"precision" validate:"gt=0,lte=1"`
	// Parallelism is the number of candidate partitions evaluated per level.
	Parallelism int `yaml:"parallelism" validate:"min=1,max=256"`
	// Workers bounds concurrent community processing; zero means one worker
	// per CPU.
	Workers int `yaml:"workers" validate:"min=0,max=4096"`
	// MaxPasses caps local-move passes within a single partitioning level.
	MaxPasses int `yaml:"max_passes" validate:"min=1"`
	// MaxLevels caps coarsening levels.
	MaxLevels int `yaml:"max_levels" validate:"min=1"`
	// MaxSweeps caps border-vector relaxation sweeps per cluster.
	MaxSweeps int `yaml:"max_sweeps" validate:"min=1"`
	// Seed makes candidate shuffles reproducible.
	Seed int64 `yaml:"seed"`
	// DedupSources collapses border-equivalent vertices into scaled pivot runs.
	DedupSources bool `yaml:"dedup_sources"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// Default returns a config with production defaults.
func Default() *Config {
	return &Config{
		Precision:    louvain.DefaultPrecision,
		Parallelism:  louvain.DefaultParallelism,
		Workers:      0,
		MaxPasses:    louvain.DefaultMaxPasses,
		MaxLevels:    louvain.DefaultMaxLevels,
		MaxSweeps:    brandes.DefaultMaxSweeps,
		Seed:         1,
		DedupSources: true,
		LogLevel:     "info",
	}
}

// Load reads a YAML config file, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config against its constraints.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
