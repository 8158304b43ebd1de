package stats

import "fmt"

// WorldCupGoals is one GoalsPerWorldCup record.
type WorldCupGoals struct {
	Year             int     `json:"year"`
	TotalGoals       int     `json:"total_goals"`
	TotalMatches     int     `json:"total_matches"`
	Host             string  `json:"host"`
	Winner           string  `json:"winner"`
	AvgGoalsPerMatch float64 `json:"avg_goals_per_match"`
}

// GoalsPerWorldCup returns one record per tournament in table order
// (year ascending), with the goals-per-match average rounded to two
// decimals. A tournament with zero matches is a data error, not a
// value to special-case.
func (e *Engine) GoalsPerWorldCup() ([]WorldCupGoals, error) {
	out := make([]WorldCupGoals, 0, len(e.tournaments))
	for _, t := range e.tournaments {
		if t.TotalMatches == 0 {
			return nil, fmt.Errorf("year %d: %w", t.Year, ErrNoMatches)
		}
		out = append(out, WorldCupGoals{
			Year:             t.Year,
			TotalGoals:       t.TotalGoals,
			TotalMatches:     t.TotalMatches,
			Host:             t.Host,
			Winner:           t.Winner,
			AvgGoalsPerMatch: round2(float64(t.TotalGoals) / float64(t.TotalMatches)),
		})
	}
	return out, nil
}

// YearSummary is one MatchesPerYear record, sourced directly from the
// tournament table.
type YearSummary struct {
	Year         int    `json:"year"`
	TotalMatches int    `json:"total_matches"`
	TotalGoals   int    `json:"total_goals"`
	Host         string `json:"host"`
	Winner       string `json:"winner"`
}

// MatchesPerYear returns the per-edition totals in table order.
func (e *Engine) MatchesPerYear() []YearSummary {
	out := make([]YearSummary, 0, len(e.tournaments))
	for _, t := range e.tournaments {
		out = append(out, YearSummary{
			Year:         t.Year,
			TotalMatches: t.TotalMatches,
			TotalGoals:   t.TotalGoals,
			Host:         t.Host,
			Winner:       t.Winner,
		})
	}
	return out
}
