package report_test

import (
	"bytes"
	"testing"

	"github.com/golazo-dev/golazo/internal/domain/stats"
	"github.com/golazo-dev/golazo/internal/report"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrintWorldCupsTo(t *testing.T) {
	Convey("Given per-edition records", t, func() {
		records := []stats.WorldCupGoals{
			{Year: 1930, Host: "Uruguay", Winner: "Uruguay", TotalMatches: 18, TotalGoals: 70, AvgGoalsPerMatch: 3.89},
			{Year: 1950, Host: "Brazil", Winner: "Uruguay", TotalMatches: 22, TotalGoals: 88, AvgGoalsPerMatch: 4.0},
		}

		Convey("When rendering the table", func() {
			var buf bytes.Buffer
			report.PrintWorldCupsTo(&buf, records)
			out := buf.String()

			Convey("Then headers and every row appear", func() {
				So(out, ShouldContainSubstring, "YEAR")
				So(out, ShouldContainSubstring, "GOALS/MATCH")
				So(out, ShouldContainSubstring, "1930")
				So(out, ShouldContainSubstring, "3.89")
				So(out, ShouldContainSubstring, "4.00")
				So(out, ShouldContainSubstring, "Brazil")
			})
		})
	})
}

func TestPrintTopTeamsTo(t *testing.T) {
	Convey("Given ranking rows", t, func() {
		rows := []stats.Ranking{
			{Team: "Brazil", Wins: 76, Goals: 237, Matches: 114},
			{Team: "Germany", Wins: 68, Goals: 232, Matches: 112},
		}

		Convey("When rendering the default (wins) table", func() {
			var buf bytes.Buffer
			report.PrintTopTeamsTo(&buf, rows, stats.MetricWins)
			out := buf.String()

			Convey("Then teams are numbered and the wins column leads", func() {
				So(out, ShouldContainSubstring, "WINS")
				So(out, ShouldContainSubstring, "Brazil")
				So(out, ShouldContainSubstring, "76")
			})
		})

		Convey("When rendering a titles table", func() {
			titleRows := []stats.Ranking{{Team: "Brazil", Titles: 5}}
			var buf bytes.Buffer
			report.PrintTopTeamsTo(&buf, titleRows, stats.MetricTitles)
			out := buf.String()

			Convey("Then only the title columns render", func() {
				So(out, ShouldContainSubstring, "TITLES")
				So(out, ShouldNotContainSubstring, "GOALS")
				So(out, ShouldContainSubstring, "5")
			})
		})
	})
}

func TestPrintContinentsTo(t *testing.T) {
	Convey("Given continent totals", t, func() {
		rows := []stats.ContinentGoals{
			{Continent: "Europe", Goals: 1200},
			{Continent: "South America", Goals: 800},
		}

		Convey("When rendering the table", func() {
			var buf bytes.Buffer
			report.PrintContinentsTo(&buf, rows)
			out := buf.String()

			Convey("Then both continents appear with their totals", func() {
				So(out, ShouldContainSubstring, "CONTINENT")
				So(out, ShouldContainSubstring, "Europe")
				So(out, ShouldContainSubstring, "1200")
				So(out, ShouldContainSubstring, "South America")
			})
		})
	})
}
