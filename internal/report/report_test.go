package report_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/dapub1013/deadstream/internal/domain/model"
	"github.com/dapub1013/deadstream/internal/report"
)

func sampleRanking() model.Ranking {
	return model.Ranking{
		Entries: []model.RankedEntry{
			{
				Identifier: "gd1977-05-08.sbd.miller",
				Breakdown: model.Breakdown{
					Components: map[string]float64{
						model.ComponentSource:  100,
						model.ComponentFormat:  100,
						model.ComponentRating:  96,
						model.ComponentLineage: 50,
						model.ComponentTaper:   100,
					},
					Total: 94.2,
				},
			},
			{
				Identifier: "gd1977-05-08.aud.unknown",
				Breakdown: model.Breakdown{
					Components: map[string]float64{
						model.ComponentSource:  55,
						model.ComponentFormat:  50,
						model.ComponentRating:  64,
						model.ComponentLineage: 50,
						model.ComponentTaper:   50,
					},
					Total: 54.55,
				},
			},
		},
		Margin: 39.65,
	}
}

func TestRender(t *testing.T) {
	Convey("Given a two-entry ranking", t, func() {
		ranking := sampleRanking()

		Convey("When rendering with defaults", func() {
			out := report.New().Render(ranking)

			Convey("Then every candidate appears with its literal total", func() {
				So(out, ShouldContainSubstring, "gd1977-05-08.sbd.miller")
				So(out, ShouldContainSubstring, "94.20")
				So(out, ShouldContainSubstring, "gd1977-05-08.aud.unknown")
				So(out, ShouldContainSubstring, "54.55")
			})

			Convey("Then all five component columns are present", func() {
				for _, header := range []string{"SRC", "FMT", "RTG", "LIN", "TPR"} {
					So(out, ShouldContainSubstring, header)
				}
				So(out, ShouldContainSubstring, "96.00")
			})

			Convey("Then the winner and margin are stated", func() {
				So(out, ShouldContainSubstring, "winner: gd1977-05-08.sbd.miller (94.20)")
				So(out, ShouldContainSubstring, "margin: 39.65 over gd1977-05-08.aud.unknown")
			})

			Convey("Then rendering twice yields identical output", func() {
				So(report.New().Render(ranking), ShouldEqual, out)
			})
		})

		Convey("When rendering with a custom bar width", func() {
			out := report.New(report.WithBarWidth(10)).Render(ranking)

			Convey("Then the bar is proportional to the total", func() {
				// 94.2/100 of 10 chars rounds to 9 filled.
				So(out, ShouldContainSubstring, "#########.")
				// 54.55/100 of 10 chars rounds to 5 filled.
				So(out, ShouldContainSubstring, "#####.....")
			})
		})

		Convey("When rendering a single-candidate ranking", func() {
			solo := model.Ranking{Entries: ranking.Entries[:1]}
			out := report.New().Render(solo)

			Convey("Then the winner prints without a margin line", func() {
				So(out, ShouldContainSubstring, "winner: gd1977-05-08.sbd.miller")
				So(out, ShouldNotContainSubstring, "margin:")
			})
		})

		Convey("When rendering the winner summary", func() {
			line := report.New().RenderWinner(ranking)

			Convey("Then it carries identifier, total, and margin", func() {
				So(line, ShouldEqual, "gd1977-05-08.sbd.miller (94.20, margin 39.65)\n")
			})
		})
	})
}

func TestBarBounds(t *testing.T) {
	Convey("Given totals at the scale edges", t, func() {
		r := report.New(report.WithBarWidth(20))

		Convey("When a candidate scores 100", func() {
			full := model.Ranking{Entries: []model.RankedEntry{{
				Identifier: "full",
				Breakdown:  model.Breakdown{Components: map[string]float64{}, Total: 100},
			}}}
			out := r.Render(full)

			Convey("Then the bar is completely filled", func() {
				So(out, ShouldContainSubstring, strings.Repeat("#", 20))
			})
		})

		Convey("When a candidate scores 0", func() {
			empty := model.Ranking{Entries: []model.RankedEntry{{
				Identifier: "empty",
				Breakdown:  model.Breakdown{Components: map[string]float64{}, Total: 0},
			}}}
			out := r.Render(empty)

			Convey("Then the bar is completely empty", func() {
				So(out, ShouldContainSubstring, strings.Repeat(".", 20))
			})
		})
	})
}
