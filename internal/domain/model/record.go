// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Observation window bounds for a single record.
const (
	// ObservationWindowMonths caps months_retained; tenure beyond the
	// window is not observed.
	ObservationWindowMonths = 12.0

	// MinProductivityRating and MaxProductivityRating bound the
	// manager-assigned rating scale.
	MinProductivityRating = 1.0
	MaxProductivityRating = 5.0
)

// Cohort identifies which program arm a hire belongs to. The set is
// closed: exactly two values.
type Cohort string

// Cohort values.
const (
	CohortTraining Cohort = "Training"
	CohortControl  Cohort = "Control"
)

// Label returns the display label for the cohort. The control arm is
// presented as "No Training" in every front-end.
func (c Cohort) Label() string {
	if c == CohortControl {
		return "No Training"
	}
	return string(c)
}

// Valid reports whether the cohort is one of the two known values.
func (c Cohort) Valid() bool {
	return c == CohortTraining || c == CohortControl
}

// ParseCohort normalizes a raw cohort label. The raw label "Control" and
// the display label "No Training" map to the same value.
func ParseCohort(raw string) (Cohort, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "training":
		return CohortTraining, nil
	case "control", "no training":
		return CohortControl, nil
	default:
		return "", fmt.Errorf("%w: unknown cohort %q", ErrMalformedRecord, raw)
	}
}

// EmployeeRecord is one row of the dataset: a single hire observed over
// the 12-month window. Records are immutable after load; filtering
// produces new derived views, never in-place edits.
type EmployeeRecord struct {
	ID                 string  // stable record identifier
	Cohort             Cohort  // program arm, immutable once created
	MonthsRetained     float64 // non-negative, capped at the observation window
	ProductivityRating float64 // manager-assigned, [1.0, 5.0]
	AbsenteeismDays    int     // observed days absent in the window
}

// ReachedThreshold reports whether the hire's tenure reached the given
// retention threshold. Derived on every read so it can never drift from
// MonthsRetained; exactly at the boundary counts as reached.
func (r EmployeeRecord) ReachedThreshold(thresholdMonths float64) bool {
	return r.MonthsRetained >= thresholdMonths
}

// Validate fails fast on out-of-domain values so downstream computation
// never runs on corrupt data.
func (r EmployeeRecord) Validate() error {
	switch {
	case !r.Cohort.Valid():
		return fmt.Errorf("%w: unknown cohort %q", ErrMalformedRecord, string(r.Cohort))
	case r.MonthsRetained < 0:
		return fmt.Errorf("%w: negative months_retained %v", ErrMalformedRecord, r.MonthsRetained)
	case r.MonthsRetained > ObservationWindowMonths:
		return fmt.Errorf("%w: months_retained %v exceeds the %v-month observation window", ErrMalformedRecord, r.MonthsRetained, ObservationWindowMonths)
	case r.ProductivityRating < MinProductivityRating || r.ProductivityRating > MaxProductivityRating:
		return fmt.Errorf("%w: productivity_rating %v outside [%v, %v]", ErrMalformedRecord, r.ProductivityRating, MinProductivityRating, MaxProductivityRating)
	case r.AbsenteeismDays < 0:
		return fmt.Errorf("%w: negative absenteeism_days %d", ErrMalformedRecord, r.AbsenteeismDays)
	}
	return nil
}
