package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	service "github.com/golazo-dev/golazo/internal/app"
	"github.com/golazo-dev/golazo/internal/domain/stats"
	"github.com/golazo-dev/golazo/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.InitWithWriter(io.Discard)
}

func newStartedService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(
		service.WithDataDir("testdata"),
		service.WithDefaultTeams("Uruguay", "Argentina"),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service before Start", t, func() {
		svc := service.New(service.WithDataDir("testdata"))

		Convey("When querying too early", func() {
			_, err := svc.Teams(ctx)

			Convey("Then it refuses with ErrNotStarted", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When starting against a missing data directory", func() {
			bad := service.New(service.WithDataDir(t.TempDir()))
			err := bad.Start(ctx)

			Convey("Then Start fails instead of serving an empty dataset", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When starting with the test dataset", func() {
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then queries work and a second Start is a no-op", func() {
				teams, err := svc.Teams(ctx)
				So(err, ShouldBeNil)
				So(teams, ShouldHaveLength, 5)
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And Stop makes the service refuse again", func() {
				svc.Stop()
				_, err := svc.Teams(ctx)
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})
	})
}

func TestServiceQueries(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := newStartedService(t)

		Convey("When requesting goals per World Cup", func() {
			records, err := svc.GoalsPerWorldCup(ctx)

			Convey("Then both editions come back in order", func() {
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 2)
				So(records[0].Year, ShouldEqual, 1930)
				So(records[0].AvgGoalsPerMatch, ShouldEqual, 4.0)
			})
		})

		Convey("When requesting top teams", func() {
			rows, err := svc.TopTeams(ctx, stats.MetricWins, 2)

			Convey("Then the limit is honored", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0].Team, ShouldEqual, "Italy")
			})
		})

		Convey("When comparing teams without naming them", func() {
			c, err := svc.TeamComparison(ctx, "", "")

			Convey("Then the configured defaults fill in", func() {
				So(err, ShouldBeNil)
				So(c.Team1.Team, ShouldEqual, "Uruguay")
				So(c.Team2.Team, ShouldEqual, "Argentina")
				So(c.HeadToHead.Matches, ShouldEqual, 1)
			})
		})

		Convey("When comparing explicitly named teams", func() {
			c, err := svc.TeamComparison(ctx, "Italy", "Brazil")

			Convey("Then the names pass through", func() {
				So(err, ShouldBeNil)
				So(c.Team1.Team, ShouldEqual, "Italy")
				So(c.Team2.Team, ShouldEqual, "Brazil")
			})
		})

		Convey("When requesting the remaining aggregates", func() {
			breakdown, err := svc.GoalsByStage(ctx)
			So(err, ShouldBeNil)
			continents, err := svc.GoalsByContinent(ctx)
			So(err, ShouldBeNil)
			years, err := svc.MatchesPerYear(ctx)
			So(err, ShouldBeNil)

			Convey("Then each reflects the loaded tables", func() {
				So(breakdown.Years, ShouldResemble, []int{1930, 1934})
				So(continents[0].Continent, ShouldEqual, "South America")
				So(years, ShouldHaveLength, 2)
			})
		})

		Convey("When reading runtime stats", func() {
			got := svc.GetStats()

			Convey("Then the dataset dimensions are reported", func() {
				So(got["started"], ShouldEqual, true)
				So(got["dataDir"], ShouldEqual, "testdata")
				So(got["matches"], ShouldEqual, 4)
				So(got["tournaments"], ShouldEqual, 2)
				So(got["teams"], ShouldEqual, 5)
			})
		})
	})
}
