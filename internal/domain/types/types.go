// Package types contains the renderable view models shared between the
// service layer and the HTTP API. They mirror the JSON shapes both
// front-ends consume.
package types

// Highlight selects which cohort the scatter plot emphasizes. Purely a
// presentation parameter; it never changes the computed numbers.
type Highlight string

// Highlight values.
const (
	HighlightBoth     Highlight = "both"
	HighlightTraining Highlight = "training"
	HighlightControl  Highlight = "control"
)

// Metric selects which dimension the compare view charts.
type Metric string

// Metric values.
const (
	MetricRetention    Metric = "retention"
	MetricProductivity Metric = "productivity"
	MetricCost         Metric = "cost"
)

// Params carries the three user-controlled dashboard parameters. A fresh
// recomputation runs on every interaction; no state survives between calls.
type Params struct {
	MinRetentionMonths float64   `json:"min_retention_months"` // 0-12, 0 disables filtering
	Highlight          Highlight `json:"highlight"`
	ShowDetails        bool      `json:"show_details"`
}

// MetricPair is one tracked dimension as a (training, control) pair with
// its derived deltas precomputed for display.
type MetricPair struct {
	Training      float64 `json:"training"`
	Control       float64 `json:"control"`
	Difference    float64 `json:"difference"`
	PercentChange float64 `json:"percent_change"`
}

// GroupDetail carries per-cohort figures for the detail section.
type GroupDetail struct {
	Cohort          string  `json:"cohort"`
	Size            int     `json:"size"`
	Retained        int     `json:"retained"`
	RetentionRate   float64 `json:"retention_rate"`
	InitialCost     float64 `json:"initial_cost"`
	TotalCost       float64 `json:"total_cost"`
	CostPerRetained float64 `json:"cost_per_retained"`
}

// ROIDetail carries the derived return-on-investment figures.
type ROIDetail struct {
	SavingsPerEmployee float64 `json:"savings_per_employee"`
	TotalSavings       float64 `json:"total_savings"`
	ROIPercent         float64 `json:"roi_percent"`
	ExtraRetained      int     `json:"extra_retained"`
}

// Overview is the full dashboard view model. When NoData is set the
// metric fields are zero-valued and the front-end renders the message
// instead of charts.
type Overview struct {
	NoData  bool   `json:"no_data"`
	Message string `json:"message,omitempty"`

	Retention       MetricPair `json:"retention"`
	Productivity    MetricPair `json:"productivity"`
	Absenteeism     MetricPair `json:"absenteeism"`
	CostPerRetained MetricPair `json:"cost_per_retained"`

	Training *GroupDetail `json:"training,omitempty"`
	Control  *GroupDetail `json:"control,omitempty"`
	ROI      *ROIDetail   `json:"roi,omitempty"`
}

// RecordPoint is one employee record shaped for scatter and distribution
// rendering.
type RecordPoint struct {
	ID                 string  `json:"id"`
	Cohort             string  `json:"cohort"`
	MonthsRetained     float64 `json:"months_retained"`
	ProductivityRating float64 `json:"productivity_rating"`
	AbsenteeismDays    int     `json:"absenteeism_days"`
	ReachedThreshold   bool    `json:"reached_threshold"`
}

// Series is one cohort's values for a charted dimension.
type Series struct {
	Cohort string    `json:"cohort"`
	Mean   float64   `json:"mean"`
	Values []float64 `json:"values"`
}

// Summary is the compare view's payload for one selected metric.
type Summary struct {
	Metric   Metric     `json:"metric"`
	Label    string     `json:"label"`
	Unit     string     `json:"unit"`
	Pair     MetricPair `json:"pair"`
	Training Series     `json:"training"`
	Control  Series     `json:"control"`
}

// ParseHighlight validates a raw highlight parameter. Empty means both.
func ParseHighlight(raw string) (Highlight, bool) {
	switch Highlight(raw) {
	case "", HighlightBoth:
		return HighlightBoth, true
	case HighlightTraining:
		return HighlightTraining, true
	case HighlightControl:
		return HighlightControl, true
	default:
		return "", false
	}
}

// ParseMetric validates a raw metric selector. Empty means retention.
func ParseMetric(raw string) (Metric, bool) {
	switch Metric(raw) {
	case "", MetricRetention:
		return MetricRetention, true
	case MetricProductivity:
		return MetricProductivity, true
	case MetricCost:
		return MetricCost, true
	default:
		return "", false
	}
}
