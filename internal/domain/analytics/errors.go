package analytics

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoData signals that filtering left at least one cohort empty.
	// It is a recoverable result, not a crash: the presentation layer
	// shows an empty-state notice instead of charts.
	ErrNoData = errors.New("no data for selected filters")
)
