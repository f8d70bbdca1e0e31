package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/dapub1013/deadstream/internal/domain/model"
	"github.com/dapub1013/deadstream/internal/domain/profile"
	"github.com/dapub1013/deadstream/internal/domain/scoring"
)

func TestSourceAndFormatScores(t *testing.T) {
	Convey("Given the fixed source lookup", t, func() {
		Convey("Then each source maps to its table value", func() {
			So(scoring.SourceScore(model.Soundboard), ShouldEqual, 100)
			So(scoring.SourceScore(model.Matrix), ShouldEqual, 85)
			So(scoring.SourceScore(model.FMBroadcast), ShouldEqual, 70)
			So(scoring.SourceScore(model.Audience), ShouldEqual, 55)
		})

		Convey("Then an unknown source scores neutral, not minimum", func() {
			So(scoring.SourceScore(model.SourceUnknown), ShouldEqual, 50)
		})
	})

	Convey("Given the fixed format lookup", t, func() {
		Convey("Then each format maps to its table value", func() {
			So(scoring.FormatScore(model.Lossless), ShouldEqual, 100)
			So(scoring.FormatScore(model.HighBitrateLossy), ShouldEqual, 80)
			So(scoring.FormatScore(model.LowBitrateLossy), ShouldEqual, 50)
			So(scoring.FormatScore(model.FormatUnknown), ShouldEqual, 40)
		})
	})
}

func TestRatingScore(t *testing.T) {
	Convey("Given a scorer with the default confidence threshold", t, func() {
		s := scoring.New()

		Convey("When a recording has a well-reviewed rating", func() {
			rec := model.Recording{AvgRating: 4.0, HasRating: true, NumReviews: 50}

			Convey("Then the rating maps linearly onto 0-100", func() {
				So(s.Score(rec).Components[model.ComponentRating], ShouldEqual, 80)
			})
		})

		Convey("When a rating is backed by few reviews", func() {
			rec := model.Recording{AvgRating: 4.0, HasRating: true, NumReviews: 2}

			Convey("Then the score blends toward neutral", func() {
				// raw 80 at confidence 2/5: 50 + 30*0.4
				So(s.Score(rec).Components[model.ComponentRating], ShouldEqual, 62)
			})
		})

		Convey("When a rating has zero reviews", func() {
			rec := model.Recording{AvgRating: 5.0, HasRating: true, NumReviews: 0}

			Convey("Then the score is fully neutral", func() {
				So(s.Score(rec).Components[model.ComponentRating], ShouldEqual, 50)
			})
		})

		Convey("When the rating is absent", func() {
			rec := model.Recording{}

			Convey("Then the score is exactly neutral, never the minimum", func() {
				So(s.Score(rec).Components[model.ComponentRating], ShouldEqual, 50)
			})
		})

		Convey("When a low rating is well reviewed", func() {
			rec := model.Recording{AvgRating: 1.0, HasRating: true, NumReviews: 100}

			Convey("Then a genuinely bad rating does score low", func() {
				So(s.Score(rec).Components[model.ComponentRating], ShouldEqual, 20)
			})
		})
	})

	Convey("Given a scorer with a custom confidence threshold", t, func() {
		s := scoring.New(scoring.WithReviewConfidenceThreshold(10))

		Convey("When the review count sits between old and new thresholds", func() {
			rec := model.Recording{AvgRating: 4.0, HasRating: true, NumReviews: 5}

			Convey("Then the blend uses the custom threshold", func() {
				So(s.Score(rec).Components[model.ComponentRating], ShouldEqual, 65)
			})
		})
	})
}

func TestLineageScore(t *testing.T) {
	Convey("Given the lineage scorer", t, func() {
		Convey("When the recording is a master", func() {
			rec := model.Recording{LineageGen: 1, HasLineage: true}
			So(scoring.LineageScore(rec), ShouldEqual, 100)
		})

		Convey("When the recording is a later generation", func() {
			So(scoring.LineageScore(model.Recording{LineageGen: 2, HasLineage: true}), ShouldEqual, 85)
			So(scoring.LineageScore(model.Recording{LineageGen: 4, HasLineage: true}), ShouldEqual, 55)
		})

		Convey("When the generation count is very deep", func() {
			rec := model.Recording{LineageGen: 12, HasLineage: true}

			Convey("Then the score floors at 20", func() {
				So(scoring.LineageScore(rec), ShouldEqual, 20)
			})
		})

		Convey("When lineage is unknown", func() {
			Convey("Then the score is neutral", func() {
				So(scoring.LineageScore(model.Recording{}), ShouldEqual, 50)
			})
		})
	})
}

func TestTaperScore(t *testing.T) {
	Convey("Given a scorer with the default taper table", t, func() {
		s := scoring.New()

		Convey("When the taper is recognized", func() {
			rec := model.Recording{Taper: "Charlie Miller"}

			Convey("Then the table bonus applies regardless of case", func() {
				So(s.Score(rec).Components[model.ComponentTaper], ShouldEqual, 100)
			})
		})

		Convey("When the taper is unrecognized or absent", func() {
			Convey("Then the score is neutral", func() {
				So(s.Score(model.Recording{Taper: "somebody"}).Components[model.ComponentTaper], ShouldEqual, 50)
				So(s.Score(model.Recording{}).Components[model.ComponentTaper], ShouldEqual, 50)
			})
		})
	})

	Convey("Given a scorer with a custom taper table", t, func() {
		s := scoring.New(scoring.WithTaperTable(map[string]float64{"Local Hero": 90}))

		Convey("Then the custom table replaces the default one", func() {
			So(s.Score(model.Recording{Taper: "local hero"}).Components[model.ComponentTaper], ShouldEqual, 90)
			So(s.Score(model.Recording{Taper: "Charlie Miller"}).Components[model.ComponentTaper], ShouldEqual, 50)
		})
	})
}

func TestAggregate(t *testing.T) {
	Convey("Given a scored breakdown and the balanced preset", t, func() {
		s := scoring.New()
		balanced, err := profile.Preset(profile.PresetBalanced)
		So(err, ShouldBeNil)

		Convey("When aggregating a fully known top-shelf recording", func() {
			rec := model.Recording{
				Source:     model.Soundboard,
				Format:     model.Lossless,
				AvgRating:  5.0,
				HasRating:  true,
				NumReviews: 100,
				LineageGen: 1,
				HasLineage: true,
				Taper:      "betty cantor",
			}
			b := scoring.Aggregate(s.Score(rec), balanced)

			Convey("Then the total is 100", func() {
				So(b.Total, ShouldEqual, 100)
			})
		})

		Convey("When aggregating a recording with every field absent", func() {
			b := scoring.Aggregate(s.Score(model.Recording{}), balanced)

			Convey("Then every optional component sits at neutral", func() {
				So(b.Components[model.ComponentRating], ShouldEqual, 50)
				So(b.Components[model.ComponentLineage], ShouldEqual, 50)
				So(b.Components[model.ComponentTaper], ShouldEqual, 50)
				So(b.Components[model.ComponentSource], ShouldEqual, 50)
				So(b.Components[model.ComponentFormat], ShouldEqual, 40)
			})

			Convey("Then the total stays within [0,100]", func() {
				So(b.Total, ShouldBeGreaterThanOrEqualTo, 0)
				So(b.Total, ShouldBeLessThanOrEqualTo, 100)
			})
		})

		Convey("When comparing dominant against dominated recordings", func() {
			strong := model.Recording{Source: model.Soundboard, Format: model.Lossless}
			weak := model.Recording{Source: model.Audience, Format: model.LowBitrateLossy}

			Convey("Then the dominant candidate scores at least as high under any preset", func() {
				for _, name := range profile.PresetNames() {
					p, err := profile.Preset(name)
					So(err, ShouldBeNil)
					So(scoring.Aggregate(s.Score(strong), p).Total,
						ShouldBeGreaterThanOrEqualTo,
						scoring.Aggregate(s.Score(weak), p).Total)
				}
			})
		})
	})
}
