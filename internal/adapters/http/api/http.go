// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/trainlens/trainlens/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Overview recomputes the cohort comparison for the given parameters.
	Overview(ctx context.Context, params types.Params) (types.Overview, error)

	// Records returns the filtered record sequence for chart rendering.
	Records(ctx context.Context, minMonths float64) ([]types.RecordPoint, error)

	// Summary shapes one selected metric for the compare view.
	Summary(ctx context.Context, metric types.Metric) (types.Summary, error)

	// MaxFilterMonths is the upper bound for the retention filter control.
	MaxFilterMonths() float64
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *DatasetStatsHandler
	overviewHandler *OverviewHandler
	recordsHandler  *RecordsHandler
	summaryHandler  *SummaryHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider DatasetStatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewDatasetStatsHandler(statsProvider),
		overviewHandler: NewOverviewHandler(deps),
		recordsHandler:  NewRecordsHandler(deps),
		summaryHandler:  NewSummaryHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/overview", MetricsMiddleware(s.overviewHandler.HandleGetOverview, "overview"))
	mux.HandleFunc("/api/records", MetricsMiddleware(s.recordsHandler.HandleGetRecords, "records"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// parseMinMonths reads the min_months query parameter. Absent means 0
// (no filtering); present values must parse and fall within [0, max].
func parseMinMonths(r *http.Request, max float64) (float64, error) {
	raw := r.URL.Query().Get("min_months")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, Wrap("invalid min_months", ErrBadRequest)
	}
	// ParseFloat accepts "NaN" and "Inf"; neither satisfies a range
	// comparison, so reject them before the bounds check.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Wrap("min_months must be finite", ErrBadRequest)
	}
	if v < 0 || v > max {
		return 0, Wrap("min_months out of range", ErrBadRequest)
	}
	return v, nil
}
