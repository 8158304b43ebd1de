// Package report renders query results as terminal tables for the
// golazo-report CLI.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/golazo-dev/golazo/internal/domain/stats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintWorldCupsTo writes the per-edition goal table to w.
func PrintWorldCupsTo(w io.Writer, records []stats.WorldCupGoals) {
	table := newTable(w)
	table.Header("YEAR", "HOST", "WINNER", "MATCHES", "GOALS", "GOALS/MATCH")
	for _, r := range records {
		table.Append(
			strconv.Itoa(r.Year),
			r.Host,
			r.Winner,
			strconv.Itoa(r.TotalMatches),
			strconv.Itoa(r.TotalGoals),
			fmt.Sprintf("%.2f", r.AvgGoalsPerMatch),
		)
	}
	table.Render()
}

// PrintTopTeamsTo writes a ranking table to w. The metric column is
// printed right after the team name, mirroring the API's field order.
func PrintTopTeamsTo(w io.Writer, rows []stats.Ranking, metric stats.Metric) {
	table := newTable(w)
	if metric == stats.MetricTitles {
		table.Header("#", "TEAM", "TITLES")
		for i, r := range rows {
			table.Append(strconv.Itoa(i+1), r.Team, strconv.Itoa(r.Titles))
		}
		table.Render()
		return
	}

	switch metric {
	case stats.MetricGoals:
		table.Header("#", "TEAM", "GOALS", "WINS", "MATCHES")
	case stats.MetricAppearances:
		table.Header("#", "TEAM", "MATCHES", "WINS", "GOALS")
	default:
		table.Header("#", "TEAM", "WINS", "GOALS", "MATCHES")
	}
	for i, r := range rows {
		cells := []any{strconv.Itoa(i + 1), r.Team}
		switch metric {
		case stats.MetricGoals:
			cells = append(cells, strconv.Itoa(r.Goals), strconv.Itoa(r.Wins), strconv.Itoa(r.Matches))
		case stats.MetricAppearances:
			cells = append(cells, strconv.Itoa(r.Matches), strconv.Itoa(r.Wins), strconv.Itoa(r.Goals))
		default:
			cells = append(cells, strconv.Itoa(r.Wins), strconv.Itoa(r.Goals), strconv.Itoa(r.Matches))
		}
		table.Append(cells...)
	}
	table.Render()
}

// PrintContinentsTo writes the continent goal totals to w.
func PrintContinentsTo(w io.Writer, rows []stats.ContinentGoals) {
	table := newTable(w)
	table.Header("CONTINENT", "GOALS")
	for _, r := range rows {
		table.Append(r.Continent, strconv.Itoa(r.Goals))
	}
	table.Render()
}
