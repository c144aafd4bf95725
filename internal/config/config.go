// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"github.com/trainlens/trainlens/internal/domain/analytics"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath optionally points at a delimited dataset file with
	// columns Company, Months_Retained, Productivity_Rating. Empty
	// means the embedded seed table is used.
	DatasetPath string `koanf:"dataset_path"`

	// RetentionThresholdMonths is the tenure a hire must reach to count
	// as retained.
	RetentionThresholdMonths float64 `koanf:"retention_threshold_months"`

	// BaseCostPerHire is the flat hiring cost per person, both arms.
	BaseCostPerHire float64 `koanf:"base_cost_per_hire"`

	// TrainingCostPerPerson is the additional training spend per person
	// in the training arm.
	TrainingCostPerPerson float64 `koanf:"training_cost_per_person"`

	// MaxFilterMonths bounds the minimum-retention filter control.
	MaxFilterMonths float64 `koanf:"max_filter_months"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                 "info",
		Addr:                     ":9090",
		DatasetPath:              "",
		RetentionThresholdMonths: analytics.DefaultRetentionThresholdMonths,
		BaseCostPerHire:          analytics.DefaultBaseCostPerHire,
		TrainingCostPerPerson:    analytics.DefaultTrainingCostPerPerson,
		MaxFilterMonths:          12,
	}
}
