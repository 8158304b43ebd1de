package model_test

import (
	"testing"

	"github.com/golazo-dev/golazo/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCategorizeStage(t *testing.T) {
	Convey("Given stage labels from the dataset", t, func() {
		Convey("When the label mentions a group", func() {
			So(model.CategorizeStage("Group Stage"), ShouldEqual, model.StageGroup)
			So(model.CategorizeStage("Group A"), ShouldEqual, model.StageGroup)
			So(model.CategorizeStage("GROUP B"), ShouldEqual, model.StageGroup)
		})

		Convey("When the label marks a knockout round", func() {
			So(model.CategorizeStage("Final"), ShouldEqual, model.StageKnockout)
			So(model.CategorizeStage("Semi-finals"), ShouldEqual, model.StageKnockout)
			So(model.CategorizeStage("Quarter-finals"), ShouldEqual, model.StageKnockout)
			So(model.CategorizeStage("Round of 16"), ShouldEqual, model.StageKnockout)
			So(model.CategorizeStage("Second Round"), ShouldEqual, model.StageKnockout)
			So(model.CategorizeStage("Third place final"), ShouldEqual, model.StageKnockout)
		})

		Convey("When the label matches neither family", func() {
			So(model.CategorizeStage("First Round"), ShouldEqual, model.StageOther)
			So(model.CategorizeStage(""), ShouldEqual, model.StageOther)
		})

		Convey("When the label contains both group and knockout markers", func() {
			// Group takes precedence by evaluation order.
			So(model.CategorizeStage("Group Stage Final"), ShouldEqual, model.StageGroup)
		})
	})
}

func TestMatchDerive(t *testing.T) {
	Convey("Given a raw match row", t, func() {
		Convey("When the home side scores more", func() {
			m := model.Match{HomeTeam: "Brazil", AwayTeam: "Italy", HomeScore: 4, AwayScore: 1, Stage: "Final"}
			m.Derive()
			So(m.Winner, ShouldEqual, "Brazil")
			So(m.TotalGoals, ShouldEqual, 5)
			So(m.StageCategory, ShouldEqual, model.StageKnockout)
		})

		Convey("When the away side scores more", func() {
			m := model.Match{HomeTeam: "Germany", AwayTeam: "Brazil", HomeScore: 0, AwayScore: 2, Stage: "Final"}
			m.Derive()
			So(m.Winner, ShouldEqual, "Brazil")
			So(m.TotalGoals, ShouldEqual, 2)
		})

		Convey("When the match is level", func() {
			m := model.Match{HomeTeam: "Italy", AwayTeam: "France", HomeScore: 1, AwayScore: 1, Stage: "Final"}
			m.Derive()
			So(m.Winner, ShouldEqual, model.Draw)
			So(m.TotalGoals, ShouldEqual, 2)
		})

		Convey("When both sides fail to score", func() {
			m := model.Match{HomeTeam: "Brazil", AwayTeam: "Italy", Stage: "Group Stage"}
			m.Derive()
			So(m.Winner, ShouldEqual, model.Draw)
			So(m.TotalGoals, ShouldEqual, 0)
			So(m.StageCategory, ShouldEqual, model.StageGroup)
		})
	})
}

func TestContinentOf(t *testing.T) {
	Convey("Given the static continent mapping", t, func() {
		Convey("Then current teams resolve to their continent", func() {
			So(model.ContinentOf("Brazil"), ShouldEqual, "South America")
			So(model.ContinentOf("Germany"), ShouldEqual, "Europe")
			So(model.ContinentOf("Senegal"), ShouldEqual, "Africa")
			So(model.ContinentOf("Japan"), ShouldEqual, "Asia")
			So(model.ContinentOf("Mexico"), ShouldEqual, "North America")
			So(model.ContinentOf("New Zealand"), ShouldEqual, "Oceania")
		})

		Convey("Then superseded entities are still covered", func() {
			So(model.ContinentOf("West Germany"), ShouldEqual, "Europe")
			So(model.ContinentOf("Soviet Union"), ShouldEqual, "Europe")
			So(model.ContinentOf("Zaire"), ShouldEqual, "Africa")
			So(model.ContinentOf("Dutch East Indies"), ShouldEqual, "Asia")
		})

		Convey("Then Australia follows its confederation, not geography", func() {
			So(model.ContinentOf("Australia"), ShouldEqual, "Asia")
		})

		Convey("Then unmapped teams fall back to Other", func() {
			So(model.ContinentOf("Atlantis"), ShouldEqual, model.ContinentOther)
			So(model.ContinentOf(""), ShouldEqual, model.ContinentOther)
		})
	})
}
