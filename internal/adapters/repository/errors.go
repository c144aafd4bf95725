package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrMissingCohort = errors.New("dataset must contain at least one record per cohort")
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyDataset  = errors.New("dataset contains no rows")
)
