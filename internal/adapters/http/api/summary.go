// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/trainlens/trainlens/internal/domain/types"
)

// SummaryHandler handles compare-view summary requests.
type SummaryHandler struct {
	deps Dependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps Dependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /api/summary?metric=M requests. Valid
// metrics are retention, productivity and cost; absent means retention.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	metric, ok := types.ParseMetric(r.URL.Query().Get("metric"))
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, Wrap("invalid metric", ErrBadRequest)))
		return
	}

	summary, err := h.deps.Summary(r.Context(), metric)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
