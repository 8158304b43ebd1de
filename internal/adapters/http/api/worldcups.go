// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/golazo-dev/golazo/internal/domain/stats"
)

// WorldCupsDependencies defines the interface for the per-edition
// goals query.
type WorldCupsDependencies interface {
	GoalsPerWorldCup(ctx context.Context) ([]stats.WorldCupGoals, error)
}

// WorldCupsHandler handles goals-per-worldcup requests.
type WorldCupsHandler struct {
	deps WorldCupsDependencies
}

// NewWorldCupsHandler creates a new goals-per-worldcup handler.
func NewWorldCupsHandler(deps WorldCupsDependencies) *WorldCupsHandler {
	return &WorldCupsHandler{deps: deps}
}

// HandleGoalsPerWorldCup handles GET /api/goals-per-worldcup requests.
func (h *WorldCupsHandler) HandleGoalsPerWorldCup(w http.ResponseWriter, r *http.Request) {
	const op = "api.goals_per_worldcup"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	data, err := h.deps.GoalsPerWorldCup(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Insight: insightGoalsPerWorldCup,
	})
}

// MatchesPerYearDependencies defines the interface for the per-year
// totals query.
type MatchesPerYearDependencies interface {
	MatchesPerYear(ctx context.Context) ([]stats.YearSummary, error)
}

// MatchesPerYearHandler handles matches-per-year requests.
type MatchesPerYearHandler struct {
	deps MatchesPerYearDependencies
}

// NewMatchesPerYearHandler creates a new matches-per-year handler.
func NewMatchesPerYearHandler(deps MatchesPerYearDependencies) *MatchesPerYearHandler {
	return &MatchesPerYearHandler{deps: deps}
}

// HandleMatchesPerYear handles GET /api/matches-per-year requests.
func (h *MatchesPerYearHandler) HandleMatchesPerYear(w http.ResponseWriter, r *http.Request) {
	const op = "api.matches_per_year"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	data, err := h.deps.MatchesPerYear(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Insight: insightMatchesPerYear,
	})
}
