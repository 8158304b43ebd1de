// Package model contains the immutable table rows the analytics engine
// operates on, plus the columns derived from them at load time.
package model

import "strings"

// Draw is the literal winner value recorded for a drawn match.
const Draw = "Draw"

// StageCategory classifies a match's free-text stage label.
type StageCategory string

// Stage categories derived from the stage column.
const (
	StageGroup    StageCategory = "Group"
	StageKnockout StageCategory = "Knockout"
	StageOther    StageCategory = "Other"
)

// knockoutMarkers are the lowercase substrings that mark a knockout
// stage label. Checked only after the group check fails.
var knockoutMarkers = []string{"final", "semi", "quarter", "round of", "second round"}

// Match is one played fixture within a tournament year.
// TotalGoals, Winner and Stage category are derived once at load.
type Match struct {
	Year      int    `json:"year"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Stage     string `json:"stage"`

	// Derived columns.
	TotalGoals    int           `json:"total_goals"`
	Winner        string        `json:"winner"`
	StageCategory StageCategory `json:"stage_category"`
}

// Tournament is one edition of the competition. Year is unique and is
// the join key to Match rows.
type Tournament struct {
	Year         int    `json:"year"`
	Host         string `json:"host"`
	Winner       string `json:"winner"`
	RunnerUp     string `json:"runner_up"`
	TotalMatches int    `json:"total_matches"`
	TotalGoals   int    `json:"total_goals"`
}

// Derive fills the computed columns from the raw score and stage fields.
func (m *Match) Derive() {
	m.TotalGoals = m.HomeScore + m.AwayScore
	switch {
	case m.HomeScore > m.AwayScore:
		m.Winner = m.HomeTeam
	case m.AwayScore > m.HomeScore:
		m.Winner = m.AwayTeam
	default:
		m.Winner = Draw
	}
	m.StageCategory = CategorizeStage(m.Stage)
}

// CategorizeStage maps a free-text stage label to its category.
// "group" wins over any knockout marker if both appear in the label.
func CategorizeStage(stage string) StageCategory {
	s := strings.ToLower(stage)
	if strings.Contains(s, "group") {
		return StageGroup
	}
	for _, marker := range knockoutMarkers {
		if strings.Contains(s, marker) {
			return StageKnockout
		}
	}
	return StageOther
}
