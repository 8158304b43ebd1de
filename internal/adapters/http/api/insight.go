// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"

	"github.com/golazo-dev/golazo/internal/domain/stats"
)

// Dashboard insight copy. The list endpoints carry static one-liners;
// goals-by-stage and team-comparison compute theirs from the result.
const (
	insightGoalsPerWorldCup = "The 1954 World Cup in Switzerland holds the record for highest goals per match (5.38), while modern tournaments average around 2.5-2.7 goals per game."
	insightGoalsByContinent = "Europe leads with the most goals scored, followed by South America. Together, these two continents account for over 80% of all World Cup goals."
	insightMatchesPerYear   = "The tournament has grown from 17-18 matches in the 1930s to 64 matches since 1998, with 2026 expanding to 104 matches."
)

var insightTopTeams = map[string]string{
	"wins":        "Brazil leads with the most World Cup match wins, followed by Germany and Argentina.",
	"goals":       "Brazil and Germany are the highest-scoring nations in World Cup history.",
	"titles":      "Brazil holds the record with 5 World Cup titles, followed by Germany and Italy with 4 each.",
	"appearances": "Brazil is the only team to have participated in every World Cup since 1930.",
}

func insightGoalsByStage(overall stats.StageOverall) string {
	diff := overall.Group - overall.Knockout
	return fmt.Sprintf(
		"Group stage matches average %.2f goals, while knockout rounds average %.2f goals. The pressure of elimination does reduce scoring by approximately %.2f goals per match.",
		overall.Group, overall.Knockout, diff,
	)
}

func insightTeamComparison(c stats.Comparison) string {
	return fmt.Sprintf(
		"%s has %d World Cup titles vs %s's %d. In head-to-head meetings (%d matches), %s has won %d times and %s has won %d times.",
		c.Team1.Team, c.Team1.Titles, c.Team2.Team, c.Team2.Titles,
		c.HeadToHead.Matches,
		c.Team1.Team, c.HeadToHead.Team1Wins,
		c.Team2.Team, c.HeadToHead.Team2Wins,
	)
}
