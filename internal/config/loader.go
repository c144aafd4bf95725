package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TRAINLENS_CONFIG is set
//  3. env (prefix TRAINLENS_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("TRAINLENS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TRAINLENS_ADDR, TRAINLENS_DATASET_PATH, ...
	// Map env keys like TRAINLENS_BASE_COST_PER_HIRE -> base_cost_per_hire
	// (flat keys; underscores preserved to match the koanf tags).
	envProvider := env.Provider("TRAINLENS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "trainlens_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.RetentionThresholdMonths <= 0:
		return fmt.Errorf("%w: retention_threshold_months must be > 0", ErrInvalidConfig)
	case c.BaseCostPerHire < 0:
		return fmt.Errorf("%w: base_cost_per_hire must be >= 0", ErrInvalidConfig)
	case c.TrainingCostPerPerson < 0:
		return fmt.Errorf("%w: training_cost_per_person must be >= 0", ErrInvalidConfig)
	case c.MaxFilterMonths <= 0:
		return fmt.Errorf("%w: max_filter_months must be > 0", ErrInvalidConfig)
	}
	return nil
}
