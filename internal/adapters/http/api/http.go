// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golazo-dev/golazo/internal/domain/stats"
)

// Dependencies bundles everything the HTTP handlers need. Keeping it
// an interface bundle keeps the handler layer loosely coupled to the
// service implementation.
type Dependencies interface {
	GoalsPerWorldCup(ctx context.Context) ([]stats.WorldCupGoals, error)
	TopTeams(ctx context.Context, metric stats.Metric, limit int) ([]stats.Ranking, error)
	GoalsByStage(ctx context.Context) (stats.StageBreakdown, error)
	GoalsByContinent(ctx context.Context) ([]stats.ContinentGoals, error)
	TeamComparison(ctx context.Context, team1, team2 string) (stats.Comparison, error)
	MatchesPerYear(ctx context.Context) ([]stats.YearSummary, error)
	Teams(ctx context.Context) ([]string, error)
}

// Server wires HTTP routes for the analytics API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	worldCupsHandler   *WorldCupsHandler
	topTeamsHandler    *TopTeamsHandler
	stagesHandler      *StagesHandler
	continentsHandler  *ContinentsHandler
	comparisonHandler  *ComparisonHandler
	teamsHandler       *TeamsHandler
	matchesYearHandler *MatchesPerYearHandler
}

// NewServer creates an API server with all handlers. defaultLimit
// bounds nothing; it only fills in for absent or unparseable top-teams
// limits.
func NewServer(deps Dependencies, statsProvider StatsProvider, defaultLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		worldCupsHandler:   NewWorldCupsHandler(deps),
		topTeamsHandler:    NewTopTeamsHandler(deps, defaultLimit),
		stagesHandler:      NewStagesHandler(deps),
		continentsHandler:  NewContinentsHandler(deps),
		comparisonHandler:  NewComparisonHandler(deps),
		teamsHandler:       NewTeamsHandler(deps),
		matchesYearHandler: NewMatchesPerYearHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	handle := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}

	handle("/healthz", "healthz", s.healthHandler.HandleHealth)
	handle("/stats", "stats", s.statsHandler.HandleStats)
	handle("/api/goals-per-worldcup", "goals_per_worldcup", s.worldCupsHandler.HandleGoalsPerWorldCup)
	handle("/api/top-teams", "top_teams", s.topTeamsHandler.HandleTopTeams)
	handle("/api/goals-by-stage", "goals_by_stage", s.stagesHandler.HandleGoalsByStage)
	handle("/api/goals-by-continent", "goals_by_continent", s.continentsHandler.HandleGoalsByContinent)
	handle("/api/team-comparison", "team_comparison", s.comparisonHandler.HandleTeamComparison)
	handle("/api/matches-per-year", "matches_per_year", s.matchesYearHandler.HandleMatchesPerYear)
	handle("/api/available-teams", "available_teams", s.teamsHandler.HandleAvailableTeams)
}

// envelope is the response wrapper every API payload is delivered in.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Metric  string `json:"metric,omitempty"`
	Insight string `json:"insight,omitempty"`
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

func writeEnvelope(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
