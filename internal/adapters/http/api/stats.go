// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// DatasetStatsProvider reports dataset composition counters: record
// totals, per-cohort sizes, and the active threshold configuration.
type DatasetStatsProvider interface {
	DatasetStats() map[string]any
}

// DatasetStatsHandler serves the dataset snapshot behind GET /stats.
type DatasetStatsHandler struct {
	provider DatasetStatsProvider
}

func NewDatasetStatsHandler(provider DatasetStatsProvider) *DatasetStatsHandler {
	return &DatasetStatsHandler{provider: provider}
}

// HandleStats answers GET /stats with the current dataset counters.
func (h *DatasetStatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.provider.DatasetStats())
}
