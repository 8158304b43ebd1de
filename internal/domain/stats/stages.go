package stats

import (
	"sort"

	"github.com/golazo-dev/golazo/internal/domain/model"
)

// StageOverall holds the dataset-wide mean goals per match for each
// stage category.
type StageOverall struct {
	Group    float64 `json:"group"`
	Knockout float64 `json:"knockout"`
}

// StageBreakdown is the GoalsByStage result. GroupAvg and KnockoutAvg
// are positionally aligned with Years; a year with no matches in a
// category carries 0 at its index.
type StageBreakdown struct {
	Years       []int        `json:"years"`
	GroupAvg    []float64    `json:"group_avg"`
	KnockoutAvg []float64    `json:"knockout_avg"`
	Overall     StageOverall `json:"overall"`
}

// GoalsByStage compares scoring between group and knockout football,
// per year and across the whole dataset.
func (e *Engine) GoalsByStage() StageBreakdown {
	type agg struct {
		goals   int
		matches int
	}
	perYear := make(map[int]map[model.StageCategory]*agg)
	total := make(map[model.StageCategory]*agg)

	for _, m := range e.matches {
		byCat, ok := perYear[m.Year]
		if !ok {
			byCat = make(map[model.StageCategory]*agg)
			perYear[m.Year] = byCat
		}
		for _, a := range []map[model.StageCategory]*agg{byCat, total} {
			cur, ok := a[m.StageCategory]
			if !ok {
				cur = &agg{}
				a[m.StageCategory] = cur
			}
			cur.goals += m.TotalGoals
			cur.matches++
		}
	}

	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}
	sort.Ints(years)

	mean := func(a *agg) float64 {
		if a == nil || a.matches == 0 {
			return 0
		}
		return round2(float64(a.goals) / float64(a.matches))
	}

	b := StageBreakdown{
		Years:       years,
		GroupAvg:    make([]float64, len(years)),
		KnockoutAvg: make([]float64, len(years)),
		Overall: StageOverall{
			Group:    mean(total[model.StageGroup]),
			Knockout: mean(total[model.StageKnockout]),
		},
	}
	for i, y := range years {
		b.GroupAvg[i] = mean(perYear[y][model.StageGroup])
		b.KnockoutAvg[i] = mean(perYear[y][model.StageKnockout])
	}
	return b
}

// ContinentGoals is one GoalsByContinent record.
type ContinentGoals struct {
	Continent string `json:"continent"`
	Goals     int    `json:"goals"`
}

// GoalsByContinent attributes every goal to the team that scored it,
// maps teams to continents and sums. Continents are ordered by goals
// descending; ties keep first-encounter order, which is itself fixed
// by the teams' first appearance in the match table.
func (e *Engine) GoalsByContinent() []ContinentGoals {
	byContinent := make(map[string]int)
	var order []string

	for _, t := range e.accumulateTeams() {
		continent := model.ContinentOf(t.team)
		if _, ok := byContinent[continent]; !ok {
			order = append(order, continent)
		}
		byContinent[continent] += t.goals
	}

	out := make([]ContinentGoals, 0, len(order))
	for _, c := range order {
		out = append(out, ContinentGoals{Continent: c, Goals: byContinent[c]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Goals > out[j].Goals
	})
	return out
}
