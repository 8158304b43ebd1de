// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/golazo-dev/golazo/internal/domain/stats"
)

// TopTeamsDependencies defines the interface for team rankings.
type TopTeamsDependencies interface {
	TopTeams(ctx context.Context, metric stats.Metric, limit int) ([]stats.Ranking, error)
}

// TopTeamsHandler handles top-teams requests.
type TopTeamsHandler struct {
	deps         TopTeamsDependencies
	defaultLimit int
}

// NewTopTeamsHandler creates a new top-teams handler.
func NewTopTeamsHandler(deps TopTeamsDependencies, defaultLimit int) *TopTeamsHandler {
	if defaultLimit < 1 {
		defaultLimit = stats.DefaultTopLimit
	}
	return &TopTeamsHandler{deps: deps, defaultLimit: defaultLimit}
}

// HandleTopTeams handles GET /api/top-teams?metric=wins&limit=10
// requests. Malformed parameters degrade to the defaults rather than
// failing the request.
func (h *TopTeamsHandler) HandleTopTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.top_teams"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	rawMetric := r.URL.Query().Get("metric")
	metric := stats.ParseMetric(rawMetric)

	limit := h.defaultLimit
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		if n, err := strconv.Atoi(rawLimit); err == nil && n > 0 {
			limit = n
		}
	}

	data, err := h.deps.TopTeams(r.Context(), metric, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	echo := rawMetric
	if echo == "" {
		echo = string(stats.MetricWins)
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Metric:  echo,
		Insight: insightTopTeams[echo],
	})
}

// TeamsDependencies defines the interface for the team listing.
type TeamsDependencies interface {
	Teams(ctx context.Context) ([]string, error)
}

// TeamsHandler handles available-teams requests.
type TeamsHandler struct {
	deps TeamsDependencies
}

// NewTeamsHandler creates a new available-teams handler.
func NewTeamsHandler(deps TeamsDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleAvailableTeams handles GET /api/available-teams requests.
func (h *TeamsHandler) HandleAvailableTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.available_teams"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	teams, err := h.deps.Teams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeEnvelope(w, teams)
}
