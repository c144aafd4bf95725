package repository

import (
	"github.com/trainlens/trainlens/internal/domain/model"
)

// storeConfig collects construction-time settings for a MemStore.
type storeConfig struct {
	records []model.EmployeeRecord
}

// Option applies a configuration option to a MemStore under construction.
type Option func(*storeConfig)

// WithRecords replaces the embedded seed table with the given records.
func WithRecords(records []model.EmployeeRecord) Option {
	return func(c *storeConfig) {
		if len(records) > 0 {
			c.records = records
		}
	}
}
