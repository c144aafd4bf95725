// Package analytics computes group-level comparison statistics from
// per-employee records. It is the only piece of the system with real
// domain logic; everything else consumes its output.
package analytics

import (
	"context"
	"fmt"

	"github.com/trainlens/trainlens/internal/domain/model"
)

// Default values for the named cost-model constants. All three are
// overridable through options (and, one layer up, through config).
const (
	DefaultRetentionThresholdMonths = 12.0
	DefaultBaseCostPerHire          = 1750.0
	DefaultTrainingCostPerPerson    = 300.0
)

// MetricPair holds one tracked dimension as a (training, control) pair.
type MetricPair struct {
	Training float64
	Control  float64
}

// Difference returns training minus control.
func (p MetricPair) Difference() float64 {
	return p.Training - p.Control
}

// PercentChange returns the difference relative to the control value,
// in percent. Defined as 0 when the control value is 0; collapsing the
// undefined ratio keeps NaN/Inf out of every downstream consumer.
func (p MetricPair) PercentChange() float64 {
	if p.Control == 0 {
		return 0
	}
	return p.Difference() / p.Control * 100
}

// GroupStats carries the per-cohort figures behind the pairs. Used by
// the detail view and the ROI report.
type GroupStats struct {
	Size            int     // records in the group after filtering
	Retained        int     // records that reached the retention threshold
	TotalCost       float64 // hiring (+ training) spend for the group
	CostPerRetained float64 // TotalCost / Retained, 0 when Retained == 0
}

// Comparison is the engine's output: a value object constructed fresh on
// every recomputation and never mutated afterwards.
type Comparison struct {
	Retention       MetricPair // retention rate, percent in [0, 100]
	Productivity    MetricPair // mean productivity rating
	Absenteeism     MetricPair // mean days absent
	CostPerRetained MetricPair // cost per retained employee

	Training GroupStats
	Control  GroupStats
}

// ROIReport holds the derived return-on-investment figures used by the
// optional detail view.
type ROIReport struct {
	SavingsPerEmployee float64 // control cost-per-retained minus training cost-per-retained
	TotalSavings       float64 // SavingsPerEmployee * training retained count
	ROIPercent         float64 // TotalSavings relative to total training spend
	ExtraRetained      int     // training retained minus control retained
}

// Engine turns record sequences into Comparisons. It holds only the
// read-only cost-model constants, so a single Engine is safe for
// concurrent use.
type Engine struct {
	retentionThresholdMonths float64
	baseCostPerHire          float64
	trainingCostPerPerson    float64
}

// New creates an Engine with the default cost model, adjusted by options.
func New(opts ...Option) *Engine {
	e := &Engine{
		retentionThresholdMonths: DefaultRetentionThresholdMonths,
		baseCostPerHire:          DefaultBaseCostPerHire,
		trainingCostPerPerson:    DefaultTrainingCostPerPerson,
	}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RetentionThreshold returns the configured retention threshold in months.
func (e *Engine) RetentionThreshold() float64 {
	return e.retentionThresholdMonths
}

// BaseCostPerHire returns the configured flat hiring cost per person.
func (e *Engine) BaseCostPerHire() float64 {
	return e.baseCostPerHire
}

// TrainingCostPerPerson returns the configured training spend per person.
func (e *Engine) TrainingCostPerPerson() float64 {
	return e.trainingCostPerPerson
}

// Filter returns the records with MonthsRetained >= minRetentionMonths.
// A threshold of 0 means no filtering. The input is never modified; the
// result is always a fresh slice.
func (e *Engine) Filter(records []model.EmployeeRecord, minRetentionMonths float64) []model.EmployeeRecord {
	out := make([]model.EmployeeRecord, 0, len(records))
	for _, r := range records {
		if minRetentionMonths > 0 && r.MonthsRetained < minRetentionMonths {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Compute runs the full aggregation pipeline:
// filter -> partition -> guard -> rates, means, and cost economics.
// It returns ErrNoData when filtering leaves either cohort empty; callers
// render an empty state instead of charts. The computation is
// deterministic, side-effect-free, and re-entrant.
func (e *Engine) Compute(_ context.Context, records []model.EmployeeRecord, minRetentionMonths float64) (Comparison, error) {
	if minRetentionMonths < 0 {
		return Comparison{}, fmt.Errorf("min retention months must be >= 0, got %v", minRetentionMonths)
	}

	filtered := e.Filter(records, minRetentionMonths)

	var training, control []model.EmployeeRecord
	for _, r := range filtered {
		if r.Cohort == model.CohortTraining {
			training = append(training, r)
		} else {
			control = append(control, r)
		}
	}

	if len(training) == 0 || len(control) == 0 {
		return Comparison{}, ErrNoData
	}

	trainingStats := e.groupStats(training, true)
	controlStats := e.groupStats(control, false)

	return Comparison{
		Retention: MetricPair{
			Training: retentionRate(trainingStats),
			Control:  retentionRate(controlStats),
		},
		Productivity: MetricPair{
			Training: meanProductivity(training),
			Control:  meanProductivity(control),
		},
		Absenteeism: MetricPair{
			Training: meanAbsenteeism(training),
			Control:  meanAbsenteeism(control),
		},
		CostPerRetained: MetricPair{
			Training: trainingStats.CostPerRetained,
			Control:  controlStats.CostPerRetained,
		},
		Training: trainingStats,
		Control:  controlStats,
	}, nil
}

// ROI derives the return-on-investment figures from a Comparison. Zero
// denominators (no training spend, no group) collapse to 0 by the same
// policy as cost-per-retained.
func (e *Engine) ROI(c Comparison) ROIReport {
	savings := c.Control.CostPerRetained - c.Training.CostPerRetained
	total := savings * float64(c.Training.Retained)

	var roiPercent float64
	if spend := float64(c.Training.Size) * e.trainingCostPerPerson; spend > 0 {
		roiPercent = total / spend * 100
	}

	return ROIReport{
		SavingsPerEmployee: savings,
		TotalSavings:       total,
		ROIPercent:         roiPercent,
		ExtraRetained:      c.Training.Retained - c.Control.Retained,
	}
}

// groupStats computes size, retained count, and the cost economics for
// one cohort. The training arm carries the per-person training spend on
// top of the flat hiring cost.
func (e *Engine) groupStats(group []model.EmployeeRecord, trained bool) GroupStats {
	stats := GroupStats{Size: len(group)}
	for _, r := range group {
		if r.ReachedThreshold(e.retentionThresholdMonths) {
			stats.Retained++
		}
	}

	perHire := e.baseCostPerHire
	if trained {
		perHire += e.trainingCostPerPerson
	}
	stats.TotalCost = float64(stats.Size) * perHire

	// With zero retained employees the cost per retained is undefined;
	// it collapses to 0 rather than propagating Inf into displays.
	if stats.Retained > 0 {
		stats.CostPerRetained = stats.TotalCost / float64(stats.Retained)
	}

	return stats
}

func retentionRate(stats GroupStats) float64 {
	if stats.Size == 0 {
		return 0
	}
	return float64(stats.Retained) / float64(stats.Size) * 100
}

func meanProductivity(group []model.EmployeeRecord) float64 {
	var sum float64
	for _, r := range group {
		sum += r.ProductivityRating
	}
	return sum / float64(len(group))
}

func meanAbsenteeism(group []model.EmployeeRecord) float64 {
	var sum float64
	for _, r := range group {
		sum += float64(r.AbsenteeismDays)
	}
	return sum / float64(len(group))
}
