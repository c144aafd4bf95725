package datagen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/trainlens/trainlens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given a default generation config", t, func() {
		cfg := Config{CohortSize: DefaultCohortSize, Seed: DefaultSeed}

		Convey("When generating a dataset", func() {
			records := Generate(cfg)

			Convey("Then it should contain both cohorts in equal measure", func() {
				So(records, ShouldHaveLength, 60)
				counts := map[model.Cohort]int{}
				for _, r := range records {
					counts[r.Cohort]++
				}
				So(counts[model.CohortTraining], ShouldEqual, 30)
				So(counts[model.CohortControl], ShouldEqual, 30)
			})

			Convey("And every record should pass validation", func() {
				for _, r := range records {
					So(r.Validate(), ShouldBeNil)
				}
			})

			Convey("And IDs should be unique", func() {
				seen := map[string]bool{}
				for _, r := range records {
					So(seen[r.ID], ShouldBeFalse)
					seen[r.ID] = true
				}
			})
		})

		Convey("When generating twice with the same seed", func() {
			first := Generate(cfg)
			second := Generate(cfg)

			Convey("Then the datasets should be identical", func() {
				So(second, ShouldResemble, first)
			})
		})

		Convey("When generating with a different seed", func() {
			first := Generate(cfg)
			second := Generate(Config{CohortSize: DefaultCohortSize, Seed: 7})

			Convey("Then the datasets should differ", func() {
				So(second, ShouldNotResemble, first)
			})
		})

		Convey("When the cohort size is not positive", func() {
			records := Generate(Config{Seed: DefaultSeed})

			Convey("Then the default size should apply", func() {
				So(records, ShouldHaveLength, 2*DefaultCohortSize)
			})
		})
	})

	Convey("Given generated training records", t, func() {
		records := Generate(Config{CohortSize: 100, Seed: DefaultSeed})

		Convey("Then trained hires should cluster near the observation window", func() {
			var trainingSum, controlSum float64
			for _, r := range records {
				if r.Cohort == model.CohortTraining {
					trainingSum += r.MonthsRetained
				} else {
					controlSum += r.MonthsRetained
				}
			}
			So(trainingSum/100, ShouldBeGreaterThan, controlSum/100)
		})
	})
}

func TestWriteCSV(t *testing.T) {
	Convey("Given a generated dataset", t, func() {
		records := Generate(Config{CohortSize: 5, Seed: DefaultSeed})

		Convey("When writing it as CSV", func() {
			var buf bytes.Buffer
			err := WriteCSV(&buf, records)

			Convey("Then it should produce a header plus one row per record", func() {
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				So(lines, ShouldHaveLength, 11)
				So(lines[0], ShouldEqual, "id,company,months_retained,productivity_rating,absenteeism_days")
			})
		})
	})
}
