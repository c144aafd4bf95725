package repository_test

import (
	"context"
	"math"
	"testing"

	repository "github.com/trainlens/trainlens/internal/adapters/repository"
	"github.com/trainlens/trainlens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStoreSeed(t *testing.T) {
	Convey("Given a store built from the embedded seed table", t, func() {
		ctx := context.Background()
		store, err := repository.NewMemStore(ctx)
		So(err, ShouldBeNil)

		Convey("When reading the full table", func() {
			all := store.All(ctx)

			Convey("Then it holds 30 hires per program arm", func() {
				So(store.Size(ctx), ShouldEqual, 60)
				So(len(all), ShouldEqual, 60)
				counts := store.CountByCohort(ctx)
				So(counts[model.CohortTraining], ShouldEqual, 30)
				So(counts[model.CohortControl], ShouldEqual, 30)
			})

			Convey("And every record is in domain", func() {
				for _, r := range all {
					So(r.Validate(), ShouldBeNil)
				}
			})

			Convey("And repeated reads are identical", func() {
				So(store.All(ctx), ShouldResemble, all)
			})
		})

		Convey("When mutating a returned view", func() {
			first := store.All(ctx)
			first[0].MonthsRetained = -99

			Convey("Then the underlying table is unaffected", func() {
				again := store.All(ctx)
				So(again[0].MonthsRetained, ShouldBeGreaterThanOrEqualTo, 0)
			})
		})

		Convey("When filtering by minimum months retained", func() {
			Convey("Then raising the threshold never grows the view", func() {
				prev := len(store.Filter(ctx, 0))
				for _, min := range []float64{1, 3, 6, 9, 12} {
					n := len(store.Filter(ctx, min))
					So(n, ShouldBeLessThanOrEqualTo, prev)
					prev = n
				}
			})

			Convey("And the boundary counts as retained", func() {
				atTwelve := store.Filter(ctx, 12)
				// 21 training + 9 control hires reached the full window.
				So(len(atTwelve), ShouldEqual, 30)
			})

			Convey("And a memoized view matches a fresh one", func() {
				first := store.Filter(ctx, 6)
				second := store.Filter(ctx, 6)
				So(second, ShouldResemble, first)
			})

			Convey("And zero means no filtering", func() {
				So(len(store.Filter(ctx, 0)), ShouldEqual, 60)
			})

			Convey("And NaN collapses to the unfiltered view", func() {
				all := store.All(ctx)
				for i := 0; i < 100; i++ {
					So(store.Filter(ctx, math.NaN()), ShouldResemble, all)
				}
			})
		})
	})
}

func TestMemStoreConstruction(t *testing.T) {
	Convey("Given custom record tables", t, func() {
		ctx := context.Background()

		Convey("When one cohort is missing", func() {
			records := []model.EmployeeRecord{
				{ID: "T-01", Cohort: model.CohortTraining, MonthsRetained: 12, ProductivityRating: 4.0},
			}

			Convey("Then construction fails", func() {
				_, err := repository.NewMemStore(ctx, repository.WithRecords(records))
				So(err, ShouldWrap, repository.ErrMissingCohort)
			})
		})

		Convey("When a record is malformed", func() {
			records := []model.EmployeeRecord{
				{ID: "T-01", Cohort: model.CohortTraining, MonthsRetained: 12, ProductivityRating: 4.0},
				{ID: "C-01", Cohort: model.CohortControl, MonthsRetained: -3, ProductivityRating: 3.0},
			}

			Convey("Then construction fails fast", func() {
				_, err := repository.NewMemStore(ctx, repository.WithRecords(records))
				So(err, ShouldWrap, model.ErrMalformedRecord)
			})
		})

		Convey("When records are valid", func() {
			records := []model.EmployeeRecord{
				{ID: "T-01", Cohort: model.CohortTraining, MonthsRetained: 12, ProductivityRating: 4.0},
				{ID: "C-01", Cohort: model.CohortControl, MonthsRetained: 6, ProductivityRating: 3.0},
			}
			store, err := repository.NewMemStore(ctx, repository.WithRecords(records))
			So(err, ShouldBeNil)

			Convey("Then the caller's slice cannot alias the table", func() {
				records[0].MonthsRetained = 1
				So(store.All(ctx)[0].MonthsRetained, ShouldEqual, 12)
			})
		})
	})
}
