// Package repository supplies the fixed employee dataset and derived
// read-only views over it.
package repository

import (
	"context"

	"github.com/trainlens/trainlens/internal/domain/model"
)

// Store provides read access to the dataset. The underlying table is
// immutable after load, so every method is safe for concurrent use and
// deterministic across calls.
type Store interface {
	// All returns the full ordered record sequence.
	All(ctx context.Context) []model.EmployeeRecord

	// Filter returns the records with MonthsRetained >= minMonths.
	// minMonths of 0 means no filtering. The result is a derived view;
	// the underlying table is never modified.
	Filter(ctx context.Context, minMonths float64) []model.EmployeeRecord

	// CountByCohort returns the record count per cohort in the full table.
	CountByCohort(ctx context.Context) map[model.Cohort]int

	// Size returns the number of records in the full table.
	Size(ctx context.Context) int
}
