package stats

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/golazo-dev/golazo/internal/domain/model"
)

// Metric selects the ranking criterion for TopTeams.
type Metric string

// Supported ranking metrics.
const (
	MetricWins        Metric = "wins"
	MetricGoals       Metric = "goals"
	MetricAppearances Metric = "appearances"
	MetricTitles      Metric = "titles"
)

// DefaultTopLimit is used when the caller supplies no (or an invalid)
// limit.
const DefaultTopLimit = 10

// ParseMetric maps a raw metric string to a Metric. An empty string
// means the default (wins); anything unrecognized degrades to
// appearances rather than failing, mirroring the catch-all branch the
// selection has always had.
func ParseMetric(s string) Metric {
	switch Metric(s) {
	case "":
		return MetricWins
	case MetricWins, MetricGoals, MetricAppearances, MetricTitles:
		return Metric(s)
	default:
		return MetricAppearances
	}
}

// Ranking is one row of a TopTeams result. JSON key order depends on
// the requested metric: team first, then the ranking metric, then the
// remaining counters. Titles rows carry only the title count.
type Ranking struct {
	Team    string
	Wins    int
	Goals   int
	Matches int
	Titles  int

	metric Metric
}

// MarshalJSON emits keys in metric-dependent order, so consumers can
// rely on the sort key being the first counter of every record.
func (r Ranking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fmt.Fprintf(&buf, "%q:%q", "team", r.Team)
	write := func(key string, v int) {
		fmt.Fprintf(&buf, ",%q:%d", key, v)
	}
	switch r.metric {
	case MetricTitles:
		write("titles", r.Titles)
	case MetricGoals:
		write("goals", r.Goals)
		write("wins", r.Wins)
		write("matches", r.Matches)
	case MetricAppearances:
		write("matches", r.Matches)
		write("wins", r.Wins)
		write("goals", r.Goals)
	default: // wins
		write("wins", r.Wins)
		write("goals", r.Goals)
		write("matches", r.Matches)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TopTeams ranks teams by the given metric and returns the top limit
// rows. Ties keep first-appearance order: grouping order for titles,
// match-table order otherwise. A non-positive limit falls back to
// DefaultTopLimit.
func (e *Engine) TopTeams(metric Metric, limit int) []Ranking {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	if metric == MetricTitles {
		return e.topTitles(limit)
	}

	totals := e.accumulateTeams()
	rows := make([]Ranking, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, Ranking{
			Team:    t.team,
			Wins:    t.wins,
			Goals:   t.goals,
			Matches: t.matches,
			metric:  metric,
		})
	}

	key := func(r Ranking) int {
		switch metric {
		case MetricGoals:
			return r.Goals
		case MetricAppearances:
			return r.Matches
		default:
			return r.Wins
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return key(rows[i]) > key(rows[j])
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func (e *Engine) topTitles(limit int) []Ranking {
	counts := make(map[string]int)
	var order []string
	for _, t := range e.tournaments {
		if counts[t.Winner] == 0 {
			order = append(order, t.Winner)
		}
		counts[t.Winner]++
	}

	rows := make([]Ranking, 0, len(order))
	for _, team := range order {
		rows = append(rows, Ranking{Team: team, Titles: counts[team], metric: MetricTitles})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Titles > rows[j].Titles
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// TeamStats aggregates one team's record over the whole dataset.
type TeamStats struct {
	Team          string  `json:"team"`
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	GoalsScored   int     `json:"goals_scored"`
	GoalsConceded int     `json:"goals_conceded"`
	Titles        int     `json:"titles"`
	Finals        int     `json:"finals"`
	WinRate       float64 `json:"win_rate"`
}

// HeadToHead summarizes the direct meetings of the two compared teams.
type HeadToHead struct {
	Matches   int `json:"matches"`
	Team1Wins int `json:"team1_wins"`
	Team2Wins int `json:"team2_wins"`
	Draws     int `json:"draws"`
}

// Comparison is the TeamComparison result.
type Comparison struct {
	Team1      TeamStats  `json:"team1"`
	Team2      TeamStats  `json:"team2"`
	HeadToHead HeadToHead `json:"head_to_head"`
}

// TeamComparison compares two teams across the dataset. Teams absent
// from the data yield zero-valued stats; comparing a team with itself
// yields an empty head-to-head, since no match pairs a team against
// itself.
func (e *Engine) TeamComparison(team1, team2 string) Comparison {
	c := Comparison{
		Team1: e.teamStats(team1),
		Team2: e.teamStats(team2),
	}

	for _, m := range e.matches {
		direct := (m.HomeTeam == team1 && m.AwayTeam == team2) ||
			(m.HomeTeam == team2 && m.AwayTeam == team1)
		if !direct {
			continue
		}
		c.HeadToHead.Matches++
		switch m.Winner {
		case team1:
			c.HeadToHead.Team1Wins++
		case team2:
			c.HeadToHead.Team2Wins++
		case model.Draw:
			c.HeadToHead.Draws++
		}
	}
	return c
}

func (e *Engine) teamStats(team string) TeamStats {
	s := TeamStats{Team: team}
	for _, m := range e.matches {
		switch team {
		case m.HomeTeam:
			s.Matches++
			s.GoalsScored += m.HomeScore
			s.GoalsConceded += m.AwayScore
		case m.AwayTeam:
			s.Matches++
			s.GoalsScored += m.AwayScore
			s.GoalsConceded += m.HomeScore
		}
		if m.Winner == team {
			s.Wins++
		}
	}
	for _, t := range e.tournaments {
		if t.Winner == team {
			s.Titles++
		}
		if t.Winner == team || t.RunnerUp == team {
			s.Finals++
		}
	}
	if s.Matches > 0 {
		s.WinRate = round1(float64(s.Wins) / float64(s.Matches) * 100)
	}
	return s
}
