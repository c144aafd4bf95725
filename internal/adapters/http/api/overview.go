// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/trainlens/trainlens/internal/domain/types"
)

// OverviewHandler handles cohort-comparison requests.
type OverviewHandler struct {
	deps Dependencies
}

// NewOverviewHandler creates a new overview handler.
func NewOverviewHandler(deps Dependencies) *OverviewHandler {
	return &OverviewHandler{deps: deps}
}

// HandleGetOverview handles GET /api/overview requests. Query parameters:
// min_months (0-12), highlight (both|training|control), details (bool).
// An emptied cohort is a valid outcome, served as 200 with no_data set.
func (h *OverviewHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_overview"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	minMonths, err := parseMinMonths(r, h.deps.MaxFilterMonths())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}

	highlight, ok := types.ParseHighlight(r.URL.Query().Get("highlight"))
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, Wrap("invalid highlight", ErrBadRequest)))
		return
	}

	params := types.Params{
		MinRetentionMonths: minMonths,
		Highlight:          highlight,
		ShowDetails:        r.URL.Query().Get("details") == "true",
	}

	view, err := h.deps.Overview(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, view)
}
