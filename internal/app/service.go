// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	repository "github.com/trainlens/trainlens/internal/adapters/repository"
	"github.com/trainlens/trainlens/internal/domain/analytics"
	"github.com/trainlens/trainlens/internal/domain/model"
	"github.com/trainlens/trainlens/internal/domain/types"
	"github.com/trainlens/trainlens/pkg/logger"
	"github.com/trainlens/trainlens/pkg/metrics"
)

// noDataMessage is the user-visible empty-state notice.
const noDataMessage = "No data available for the selected filters."

// ErrInvalidParams indicates a request parameter outside its allowed range.
var ErrInvalidParams = errors.New("invalid parameters")

// Service wires the dataset store and the metrics engine together and
// shapes engine output into the view models the API serves. Every
// interaction triggers one synchronous recomputation; results are
// constructed fresh per call and never shared mutably.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	engine *analytics.Engine

	// Configuration
	datasetPath              string
	retentionThresholdMonths float64
	baseCostPerHire          float64
	trainingCostPerPerson    float64
	maxFilterMonths          float64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option configures the service.
type Option func(*Service)

// WithStore injects a prebuilt dataset store, bypassing dataset loading.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithDatasetPath points the service at a CSV dataset file. When empty
// the embedded table is used.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		s.datasetPath = path
	}
}

// WithRetentionThreshold sets the retention success cutoff in months.
func WithRetentionThreshold(months float64) Option {
	return func(s *Service) {
		if months > 0 {
			s.retentionThresholdMonths = months
		}
	}
}

// WithBaseCostPerHire sets the flat hiring cost applied to every record.
func WithBaseCostPerHire(cost float64) Option {
	return func(s *Service) {
		if cost >= 0 {
			s.baseCostPerHire = cost
		}
	}
}

// WithTrainingCostPerPerson sets the per-head training spend.
func WithTrainingCostPerPerson(cost float64) Option {
	return func(s *Service) {
		if cost >= 0 {
			s.trainingCostPerPerson = cost
		}
	}
}

// WithMaxFilterMonths sets the upper bound for the retention filter.
func WithMaxFilterMonths(months float64) Option {
	return func(s *Service) {
		if months > 0 {
			s.maxFilterMonths = months
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		retentionThresholdMonths: analytics.DefaultRetentionThresholdMonths,
		baseCostPerHire:          analytics.DefaultBaseCostPerHire,
		trainingCostPerPerson:    analytics.DefaultTrainingCostPerPerson,
		maxFilterMonths:          model.ObservationWindowMonths,
		logger:                   nil, // Will be replaced when the service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset and builds the engine. The dataset is loaded
// exactly once and cached for the process lifetime; no I/O happens on
// the interaction path afterwards.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	s.engine = analytics.New(
		analytics.WithRetentionThreshold(s.retentionThresholdMonths),
		analytics.WithBaseCostPerHire(s.baseCostPerHire),
		analytics.WithTrainingCostPerPerson(s.trainingCostPerPerson),
	)

	if s.store == nil {
		var storeOpts []repository.Option
		if s.datasetPath != "" {
			records, err := repository.LoadCSVFile(s.datasetPath)
			if err != nil {
				return fmt.Errorf("load dataset %s: %w", s.datasetPath, err)
			}
			s.logger.Info(ctx, "loaded dataset file",
				logger.String("path", s.datasetPath),
				logger.Int("records", len(records)),
			)
			storeOpts = append(storeOpts, repository.WithRecords(records))
		}

		store, err := repository.NewMemStore(ctx, storeOpts...)
		if err != nil {
			return fmt.Errorf("build dataset store: %w", err)
		}
		s.store = store
	}

	metrics.RecordDatasetLoad()
	metrics.UpdateDatasetRecords(s.store.Size(ctx))
	for cohort, n := range s.store.CountByCohort(ctx) {
		metrics.UpdateCohortRecords(cohort.Label(), n)
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("records", s.store.Size(ctx)),
		logger.Float64("retentionThresholdMonths", s.retentionThresholdMonths),
		logger.Float64("baseCostPerHire", s.baseCostPerHire),
		logger.Float64("trainingCostPerPerson", s.trainingCostPerPerson),
	)

	return nil
}

// Stop shuts the service down. The store holds no external resources,
// so this only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// MaxFilterMonths returns the upper bound for the retention filter control.
func (s *Service) MaxFilterMonths() float64 {
	return s.maxFilterMonths
}

// validFilter reports whether v is a finite filter value within
// [0, maxFilterMonths]. NaN and the infinities fail every range
// comparison, so they are rejected explicitly before v can become a
// store cache key.
func (s *Service) validFilter(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= 0 && v <= s.maxFilterMonths
}

// Overview recomputes the full comparison for the given parameters. An
// emptied cohort yields a NoData view model, never an error: the
// presentation layer renders the notice and skips the charts.
func (s *Service) Overview(ctx context.Context, params types.Params) (types.Overview, error) {
	if !s.validFilter(params.MinRetentionMonths) {
		return types.Overview{}, fmt.Errorf("%w: min_retention_months %v outside [0, %v]",
			ErrInvalidParams, params.MinRetentionMonths, s.maxFilterMonths)
	}

	start := time.Now()
	defer func() {
		metrics.RecordRecomputeDuration(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()
	metrics.RecordRecompute()

	comparison, err := s.engine.Compute(ctx, s.store.All(ctx), params.MinRetentionMonths)
	if err != nil {
		if errors.Is(err, analytics.ErrNoData) {
			metrics.RecordRecomputeNoData()
			s.logger.Debug(ctx, "filter emptied a cohort",
				logger.Float64("minRetentionMonths", params.MinRetentionMonths),
			)
			return types.Overview{NoData: true, Message: noDataMessage}, nil
		}
		return types.Overview{}, err
	}

	view := types.Overview{
		Retention:       pairView(comparison.Retention),
		Productivity:    pairView(comparison.Productivity),
		Absenteeism:     pairView(comparison.Absenteeism),
		CostPerRetained: pairView(comparison.CostPerRetained),
	}

	if params.ShowDetails {
		roi := s.engine.ROI(comparison)
		view.Training = s.groupDetail(model.CohortTraining, comparison.Training, comparison.Retention.Training)
		view.Control = s.groupDetail(model.CohortControl, comparison.Control, comparison.Retention.Control)
		view.ROI = &types.ROIDetail{
			SavingsPerEmployee: roi.SavingsPerEmployee,
			TotalSavings:       roi.TotalSavings,
			ROIPercent:         roi.ROIPercent,
			ExtraRetained:      roi.ExtraRetained,
		}
	}

	return view, nil
}

// Records returns the filtered record sequence shaped for scatter and
// distribution rendering.
func (s *Service) Records(ctx context.Context, minMonths float64) ([]types.RecordPoint, error) {
	if !s.validFilter(minMonths) {
		return nil, fmt.Errorf("%w: min_retention_months %v outside [0, %v]",
			ErrInvalidParams, minMonths, s.maxFilterMonths)
	}

	records := s.store.Filter(ctx, minMonths)
	points := make([]types.RecordPoint, len(records))
	for i, r := range records {
		points[i] = types.RecordPoint{
			ID:                 r.ID,
			Cohort:             r.Cohort.Label(),
			MonthsRetained:     r.MonthsRetained,
			ProductivityRating: r.ProductivityRating,
			AbsenteeismDays:    r.AbsenteeismDays,
			ReachedThreshold:   r.ReachedThreshold(s.retentionThresholdMonths),
		}
	}
	return points, nil
}

// Summary recomputes the comparison over the full table and shapes the
// selected dimension for the compare view.
func (s *Service) Summary(ctx context.Context, metric types.Metric) (types.Summary, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRecomputeDuration(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()
	metrics.RecordRecompute()

	comparison, err := s.engine.Compute(ctx, s.store.All(ctx), 0)
	if err != nil {
		return types.Summary{}, err
	}

	summary := types.Summary{Metric: metric}
	switch metric {
	case types.MetricProductivity:
		summary.Label = "Productivity Rating"
		summary.Unit = "rating (1-5)"
		summary.Pair = pairView(comparison.Productivity)
		summary.Training = s.series(ctx, model.CohortTraining, productivityValue)
		summary.Control = s.series(ctx, model.CohortControl, productivityValue)
	case types.MetricCost:
		summary.Label = "Cost per Retained Employee"
		summary.Unit = "USD"
		summary.Pair = pairView(comparison.CostPerRetained)
		// Per-record values are flat spend (hire cost plus training
		// spend for the training arm); the pair divides total spend by
		// retained count instead.
		summary.Training = s.series(ctx, model.CohortTraining, s.costValue)
		summary.Control = s.series(ctx, model.CohortControl, s.costValue)
	default: // retention
		summary.Label = "12-Month Retention"
		summary.Unit = "months retained"
		summary.Pair = pairView(comparison.Retention)
		summary.Training = s.series(ctx, model.CohortTraining, monthsValue)
		summary.Control = s.series(ctx, model.CohortControl, monthsValue)
	}

	return summary, nil
}

// DatasetStats returns the dataset composition counters served by the
// stats endpoint: per-cohort record counts plus the active cost and
// threshold configuration.
func (s *Service) DatasetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":                    s.started,
		"retention_threshold_months": s.retentionThresholdMonths,
		"base_cost_per_hire":         s.baseCostPerHire,
		"training_cost_per_person":   s.trainingCostPerPerson,
	}

	if s.started {
		ctx := context.Background()
		stats["dataset_records"] = s.store.Size(ctx)
		for cohort, n := range s.store.CountByCohort(ctx) {
			stats[fmt.Sprintf("cohort_%s_records", cohort)] = n
		}
	}

	return stats
}

func pairView(p analytics.MetricPair) types.MetricPair {
	return types.MetricPair{
		Training:      p.Training,
		Control:       p.Control,
		Difference:    p.Difference(),
		PercentChange: p.PercentChange(),
	}
}

func (s *Service) groupDetail(cohort model.Cohort, stats analytics.GroupStats, rate float64) *types.GroupDetail {
	initial := s.baseCostPerHire
	if cohort == model.CohortTraining {
		initial += s.trainingCostPerPerson
	}
	return &types.GroupDetail{
		Cohort:          cohort.Label(),
		Size:            stats.Size,
		Retained:        stats.Retained,
		RetentionRate:   rate,
		InitialCost:     initial,
		TotalCost:       stats.TotalCost,
		CostPerRetained: stats.CostPerRetained,
	}
}

// series collects one cohort's raw values for distribution rendering.
func (s *Service) series(ctx context.Context, cohort model.Cohort, value func(model.EmployeeRecord) float64) types.Series {
	var values []float64
	var sum float64
	for _, r := range s.store.All(ctx) {
		if r.Cohort == cohort {
			v := value(r)
			values = append(values, v)
			sum += v
		}
	}
	mean := 0.0
	if len(values) > 0 {
		mean = sum / float64(len(values))
	}
	return types.Series{Cohort: cohort.Label(), Mean: mean, Values: values}
}

func monthsValue(r model.EmployeeRecord) float64       { return r.MonthsRetained }
func productivityValue(r model.EmployeeRecord) float64 { return r.ProductivityRating }

func (s *Service) costValue(r model.EmployeeRecord) float64 {
	if r.Cohort == model.CohortTraining {
		return s.baseCostPerHire + s.trainingCostPerPerson
	}
	return s.baseCostPerHire
}
