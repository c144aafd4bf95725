// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// RecordsHandler handles raw record requests.
type RecordsHandler struct {
	deps Dependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps Dependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleGetRecords handles GET /api/records?min_months=N requests.
func (h *RecordsHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_records"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	minMonths, err := parseMinMonths(r, h.deps.MaxFilterMonths())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}

	points, err := h.deps.Records(r.Context(), minMonths)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, points)
}
