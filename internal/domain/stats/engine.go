// Package stats implements the aggregation engine: pure, deterministic
// query operations over the two loaded tables. Every operation
// recomputes from scratch; nothing here holds mutable state.
package stats

import (
	"math"
	"sort"

	"github.com/golazo-dev/golazo/internal/domain/model"
)

// Engine answers analytical queries over the match and tournament
// tables. Both tables are immutable after construction, so a single
// Engine is safe for concurrent use.
type Engine struct {
	matches     []model.Match
	tournaments []model.Tournament
}

// New builds an engine over already-loaded tables.
func New(matches []model.Match, tournaments []model.Tournament) *Engine {
	return &Engine{matches: matches, tournaments: tournaments}
}

// MatchCount returns the number of match rows.
func (e *Engine) MatchCount() int { return len(e.matches) }

// TournamentCount returns the number of tournament rows.
func (e *Engine) TournamentCount() int { return len(e.tournaments) }

// Teams returns the sorted distinct team names appearing on either
// side of any match.
func (e *Engine) Teams() []string {
	seen := make(map[string]bool)
	var teams []string
	for _, m := range e.matches {
		if !seen[m.HomeTeam] {
			seen[m.HomeTeam] = true
			teams = append(teams, m.HomeTeam)
		}
		if !seen[m.AwayTeam] {
			seen[m.AwayTeam] = true
			teams = append(teams, m.AwayTeam)
		}
	}
	sort.Strings(teams)
	return teams
}

// teamTotals is the per-team accumulator built by one ordered pass
// over the match table. Order of the returned slice is first
// appearance (home side before away side within a row), which fixes
// tie-break order for every ranking built on top of it.
type teamTotals struct {
	team    string
	goals   int
	matches int
	wins    int
}

func (e *Engine) accumulateTeams() []*teamTotals {
	byTeam := make(map[string]*teamTotals)
	var order []*teamTotals

	get := func(team string) *teamTotals {
		if t, ok := byTeam[team]; ok {
			return t
		}
		t := &teamTotals{team: team}
		byTeam[team] = t
		order = append(order, t)
		return t
	}

	for _, m := range e.matches {
		home := get(m.HomeTeam)
		home.goals += m.HomeScore
		home.matches++

		away := get(m.AwayTeam)
		away.goals += m.AwayScore
		away.matches++

		if m.Winner != model.Draw {
			get(m.Winner).wins++
		}
	}
	return order
}

// round2 rounds to two decimal places, matching the dataset's
// published averages.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place (win rates).
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
