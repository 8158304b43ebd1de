// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/golazo-dev/golazo/internal/domain/stats"
)

// ComparisonDependencies defines the interface for the two-team
// comparison. Empty team names are resolved to the service defaults.
type ComparisonDependencies interface {
	TeamComparison(ctx context.Context, team1, team2 string) (stats.Comparison, error)
}

// ComparisonHandler handles team-comparison requests.
type ComparisonHandler struct {
	deps ComparisonDependencies
}

// NewComparisonHandler creates a new team-comparison handler.
func NewComparisonHandler(deps ComparisonDependencies) *ComparisonHandler {
	return &ComparisonHandler{deps: deps}
}

// HandleTeamComparison handles GET /api/team-comparison?team1=&team2=
// requests. Unknown team names yield zero-valued stats, never an
// error.
func (h *ComparisonHandler) HandleTeamComparison(w http.ResponseWriter, r *http.Request) {
	const op = "api.team_comparison"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	data, err := h.deps.TeamComparison(r.Context(), q.Get("team1"), q.Get("team2"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Insight: insightTeamComparison(data),
	})
}
