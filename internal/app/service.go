// Package service wires the dataset loader and the aggregation engine
// into the single long-lived object the HTTP API depends on.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golazo-dev/golazo/internal/adapters/dataset"
	"github.com/golazo-dev/golazo/internal/domain/stats"
	"github.com/golazo-dev/golazo/pkg/logger"
	"github.com/golazo-dev/golazo/pkg/metrics"
)

// Service loads both tables once at Start and answers queries from the
// immutable result. All query methods are pure reads and safe for
// concurrent use.
type Service struct {
	mu sync.RWMutex

	// Configuration
	dataDir      string
	defaultTeam1 string
	defaultTeam2 string

	// State
	engine  *stats.Engine
	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataDir sets the directory the CSV tables are loaded from.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithDefaultTeams sets the comparison teams used when a caller omits
// them.
func WithDefaultTeams(team1, team2 string) Option {
	return func(s *Service) {
		if team1 != "" {
			s.defaultTeam1 = team1
		}
		if team2 != "" {
			s.defaultTeam2 = team2
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataDir:      "data",
		defaultTeam1: "Brazil",
		defaultTeam2: "Germany",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset eagerly so no query ever races a lazy
// initialization. A load failure is fatal for the caller; the service
// cannot answer anything without its tables.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "loading dataset", logger.String("dir", s.dataDir))
	begin := time.Now()
	ds, err := dataset.Load(ctx, s.dataDir)
	if err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	loadMs := float64(time.Since(begin).Microseconds()) / 1000

	s.engine = stats.New(ds.Matches, ds.Tournaments)
	s.started = true

	metrics.RecordDatasetLoadDuration(loadMs)
	metrics.UpdateDatasetSizes(s.engine.MatchCount(), s.engine.TournamentCount(), len(s.engine.Teams()))

	s.logger.Info(ctx, "dataset loaded",
		logger.Int("matches", s.engine.MatchCount()),
		logger.Int("tournaments", s.engine.TournamentCount()),
		logger.Float64("durationMs", loadMs),
	)
	return nil
}

// Stop marks the service stopped. There is nothing to tear down; the
// tables are plain memory.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "analytics service stopped")
}

// ready returns the engine, or an error when Start has not completed.
func (s *Service) ready() (*stats.Engine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started || s.engine == nil {
		return nil, ErrNotStarted
	}
	return s.engine, nil
}

// observe times one query operation for the metrics pipeline.
func observe(operation string) func() {
	begin := time.Now()
	return func() {
		metrics.RecordQuery(operation, float64(time.Since(begin).Microseconds())/1000)
	}
}

// GoalsPerWorldCup returns per-edition goal totals and averages.
func (s *Service) GoalsPerWorldCup(ctx context.Context) ([]stats.WorldCupGoals, error) {
	e, err := s.ready()
	if err != nil {
		return nil, err
	}
	defer observe("goals_per_worldcup")()
	out, err := e.GoalsPerWorldCup()
	if err != nil {
		metrics.RecordQueryError("goals_per_worldcup")
		return nil, err
	}
	return out, nil
}

// TopTeams ranks teams by the requested metric.
func (s *Service) TopTeams(ctx context.Context, metric stats.Metric, limit int) ([]stats.Ranking, error) {
	e, err := s.ready()
	if err != nil {
		return nil, err
	}
	defer observe("top_teams")()
	return e.TopTeams(metric, limit), nil
}

// GoalsByStage compares group and knockout scoring.
func (s *Service) GoalsByStage(ctx context.Context) (stats.StageBreakdown, error) {
	e, err := s.ready()
	if err != nil {
		return stats.StageBreakdown{}, err
	}
	defer observe("goals_by_stage")()
	return e.GoalsByStage(), nil
}

// GoalsByContinent sums goals per continent.
func (s *Service) GoalsByContinent(ctx context.Context) ([]stats.ContinentGoals, error) {
	e, err := s.ready()
	if err != nil {
		return nil, err
	}
	defer observe("goals_by_continent")()
	return e.GoalsByContinent(), nil
}

// TeamComparison compares two teams; empty names fall back to the
// configured defaults.
func (s *Service) TeamComparison(ctx context.Context, team1, team2 string) (stats.Comparison, error) {
	e, err := s.ready()
	if err != nil {
		return stats.Comparison{}, err
	}
	if team1 == "" {
		team1 = s.defaultTeam1
	}
	if team2 == "" {
		team2 = s.defaultTeam2
	}
	defer observe("team_comparison")()
	return e.TeamComparison(team1, team2), nil
}

// MatchesPerYear returns the per-edition totals.
func (s *Service) MatchesPerYear(ctx context.Context) ([]stats.YearSummary, error) {
	e, err := s.ready()
	if err != nil {
		return nil, err
	}
	defer observe("matches_per_year")()
	return e.MatchesPerYear(), nil
}

// Teams returns the sorted distinct team names.
func (s *Service) Teams(ctx context.Context) ([]string, error) {
	e, err := s.ready()
	if err != nil {
		return nil, err
	}
	defer observe("available_teams")()
	return e.Teams(), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]any{
		"started": s.started,
		"dataDir": s.dataDir,
	}
	if s.started && s.engine != nil {
		out["matches"] = s.engine.MatchCount()
		out["tournaments"] = s.engine.TournamentCount()
		out["teams"] = len(s.engine.Teams())
	}
	return out
}
