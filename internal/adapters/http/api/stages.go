// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/golazo-dev/golazo/internal/domain/stats"
)

// StagesDependencies defines the interface for the stage breakdown.
type StagesDependencies interface {
	GoalsByStage(ctx context.Context) (stats.StageBreakdown, error)
}

// StagesHandler handles goals-by-stage requests.
type StagesHandler struct {
	deps StagesDependencies
}

// NewStagesHandler creates a new goals-by-stage handler.
func NewStagesHandler(deps StagesDependencies) *StagesHandler {
	return &StagesHandler{deps: deps}
}

// HandleGoalsByStage handles GET /api/goals-by-stage requests.
func (h *StagesHandler) HandleGoalsByStage(w http.ResponseWriter, r *http.Request) {
	const op = "api.goals_by_stage"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	data, err := h.deps.GoalsByStage(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Insight: insightGoalsByStage(data.Overall),
	})
}

// ContinentsDependencies defines the interface for the continent sums.
type ContinentsDependencies interface {
	GoalsByContinent(ctx context.Context) ([]stats.ContinentGoals, error)
}

// ContinentsHandler handles goals-by-continent requests.
type ContinentsHandler struct {
	deps ContinentsDependencies
}

// NewContinentsHandler creates a new goals-by-continent handler.
func NewContinentsHandler(deps ContinentsDependencies) *ContinentsHandler {
	return &ContinentsHandler{deps: deps}
}

// HandleGoalsByContinent handles GET /api/goals-by-continent requests.
func (h *ContinentsHandler) HandleGoalsByContinent(w http.ResponseWriter, r *http.Request) {
	const op = "api.goals_by_continent"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	data, err := h.deps.GoalsByContinent(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Insight: insightGoalsByContinent,
	})
}
