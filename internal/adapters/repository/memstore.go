package repository

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/trainlens/trainlens/internal/domain/model"
	"github.com/trainlens/trainlens/pkg/metrics"
)

// MemStore is the in-memory Store implementation.
//
// The record table is fixed at construction and never mutated, which
// makes filtered views safe to memoize: the same minMonths threshold
// always yields the same view for the lifetime of the store. Views are
// cached under a read-write mutex and handed out as copies so callers
// can never reach the shared backing arrays.
type MemStore struct {
	records []model.EmployeeRecord

	mu        sync.RWMutex
	viewCache map[float64][]model.EmployeeRecord

	byCohort map[model.Cohort]int
}

// compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore builds a MemStore. Without options it holds the embedded
// seed table. Construction fails if any record is malformed or if either
// cohort would be empty; the dashboard is meaningless without both arms.
func NewMemStore(_ context.Context, opts ...Option) (*MemStore, error) {
	cfg := storeConfig{records: seedRecords()}
	for _, opt := range opts {
		opt(&cfg)
	}

	byCohort := make(map[model.Cohort]int, 2)
	for i, r := range cfg.records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, r.ID, err)
		}
		byCohort[r.Cohort]++
	}
	if byCohort[model.CohortTraining] == 0 || byCohort[model.CohortControl] == 0 {
		return nil, ErrMissingCohort
	}

	// Copy so the caller's slice cannot alias the immutable table.
	records := make([]model.EmployeeRecord, len(cfg.records))
	copy(records, cfg.records)

	return &MemStore{
		records:   records,
		viewCache: make(map[float64][]model.EmployeeRecord),
		byCohort:  byCohort,
	}, nil
}

// All returns a copy of the full ordered record sequence.
func (s *MemStore) All(ctx context.Context) []model.EmployeeRecord {
	return s.Filter(ctx, 0)
}

// Filter returns the records with MonthsRetained >= minMonths. Views are
// memoized per threshold; each call returns a fresh copy of the cached view.
func (s *MemStore) Filter(_ context.Context, minMonths float64) []model.EmployeeRecord {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	// Callers validate thresholds, but NaN must never become a cache
	// key: NaN keys never compare equal, so each one would insert a
	// fresh view and the cache would grow without bound.
	if math.IsNaN(minMonths) {
		minMonths = 0
	}

	s.mu.RLock()
	view, ok := s.viewCache[minMonths]
	s.mu.RUnlock()

	if !ok {
		metrics.RecordStoreCacheMiss()
		view = make([]model.EmployeeRecord, 0, len(s.records))
		for _, r := range s.records {
			if minMonths > 0 && r.MonthsRetained < minMonths {
				continue
			}
			view = append(view, r)
		}
		s.mu.Lock()
		s.viewCache[minMonths] = view
		s.mu.Unlock()
	} else {
		metrics.RecordStoreCacheHit()
	}

	out := make([]model.EmployeeRecord, len(view))
	copy(out, view)
	return out
}

// CountByCohort returns the record count per cohort in the full table.
func (s *MemStore) CountByCohort(_ context.Context) map[model.Cohort]int {
	out := make(map[model.Cohort]int, len(s.byCohort))
	for c, n := range s.byCohort {
		out[c] = n
	}
	return out
}

// Size returns the number of records in the full table.
func (s *MemStore) Size(_ context.Context) int {
	return len(s.records)
}
