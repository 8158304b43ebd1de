package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})

			Convey("And the metrics land on that registry", func() {
				RecordQuery("top_teams", 1.2)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				// Only registration is checked here; the package helpers
				// always feed the process-wide registry.
				So(families, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the package-level helpers", t, func() {
		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("top_teams", "GET", "200")
				RecordHTTPRequestDuration("top_teams", "GET", "200", 12.5)
			}, ShouldNotPanic)
		})

		Convey("When recording query metrics", func() {
			So(func() {
				RecordQuery("goals_per_worldcup", 0.42)
				RecordQueryError("goals_per_worldcup")
			}, ShouldNotPanic)
		})

		Convey("When recording dataset metrics", func() {
			So(func() {
				UpdateDatasetSizes(900, 22, 80)
				RecordDatasetLoadDuration(35.7)
			}, ShouldNotPanic)
		})

		Convey("When recording error metrics", func() {
			So(func() {
				RecordErrorByEndpoint("team_comparison", "GET", "server_error")
				RecordErrorByType("server_error", "high")
			}, ShouldNotPanic)
		})

		Convey("When recording system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(64 << 20)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.8)
			}, ShouldNotPanic)
		})
	})
}

func TestQueryCounters(t *testing.T) {
	Convey("Given the process-wide registry", t, func() {
		Convey("When a query is recorded", func() {
			RecordQuery("goals_by_stage", 2.5)

			Convey("Then the counter is gatherable from GetRegistry", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)

				found := false
				for _, f := range families {
					if f.GetName() == "golazo_analytics_queries_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}
