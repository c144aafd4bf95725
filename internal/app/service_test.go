package service_test

import (
	"context"
	"math"
	"testing"
	"time"

	service "github.com/trainlens/trainlens/internal/app"
	"github.com/trainlens/trainlens/internal/domain/types"
	"github.com/trainlens/trainlens/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func startedService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	svc := service.New(opts...)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			So(svc.MaxFilterMonths(), ShouldEqual, 12.0)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithRetentionThreshold(6),
			service.WithBaseCostPerHire(2000),
			service.WithTrainingCostPerPerson(450),
			service.WithMaxFilterMonths(24),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
			So(svc.MaxFilterMonths(), ShouldEqual, 24.0)
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()

		Convey("When starting the service", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And it should expose the embedded dataset", func() {
				stats := svc.DatasetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["dataset_records"], ShouldEqual, 60)
			})

			Convey("And starting again should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})
	})

	Convey("Given a service pointed at a missing dataset file", t, func() {
		svc := service.New(service.WithDatasetPath("/nonexistent/dataset.csv"))

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestService_Overview(t *testing.T) {
	Convey("Given a started service over the embedded dataset", t, func() {
		svc := startedService(t)
		ctx := context.Background()

		Convey("When computing the unfiltered overview", func() {
			view, err := svc.Overview(ctx, types.Params{})

			Convey("Then it should return the full comparison", func() {
				So(err, ShouldBeNil)
				So(view.NoData, ShouldBeFalse)
				So(view.Retention.Training, ShouldAlmostEqual, 70.0, 1e-9)
				So(view.Retention.Control, ShouldAlmostEqual, 30.0, 1e-9)
				So(view.Retention.Difference, ShouldAlmostEqual, 40.0, 1e-9)
				So(view.Absenteeism.Training, ShouldBeLessThan, view.Absenteeism.Control)
			})

			Convey("And the detail section should be omitted", func() {
				So(view.Training, ShouldBeNil)
				So(view.Control, ShouldBeNil)
				So(view.ROI, ShouldBeNil)
			})
		})

		Convey("When details are requested", func() {
			view, err := svc.Overview(ctx, types.Params{ShowDetails: true})

			Convey("Then per-cohort figures and ROI should be present", func() {
				So(err, ShouldBeNil)
				So(view.Training, ShouldNotBeNil)
				So(view.Control, ShouldNotBeNil)
				So(view.ROI, ShouldNotBeNil)
				So(view.Training.Size, ShouldEqual, 30)
				So(view.Training.Retained, ShouldEqual, 21)
				So(view.Training.InitialCost, ShouldAlmostEqual, 2050.0, 1e-9)
				So(view.Training.TotalCost, ShouldAlmostEqual, 61500.0, 1e-9)
				So(view.Control.Size, ShouldEqual, 30)
				So(view.Control.Retained, ShouldEqual, 9)
				So(view.Control.InitialCost, ShouldAlmostEqual, 1750.0, 1e-9)
				So(view.ROI.ExtraRetained, ShouldEqual, 12)
			})
		})

		Convey("When a filter empties a cohort", func() {
			view, err := svc.Overview(ctx, types.Params{MinRetentionMonths: 12})

			Convey("Then it should return the empty-state view, not an error", func() {
				So(err, ShouldBeNil)
				So(view.NoData, ShouldBeTrue)
				So(view.Message, ShouldNotBeEmpty)
			})
		})

		Convey("When the filter is outside the allowed range", func() {
			_, errLow := svc.Overview(ctx, types.Params{MinRetentionMonths: -1})
			_, errHigh := svc.Overview(ctx, types.Params{MinRetentionMonths: 13})

			Convey("Then it should reject the parameters", func() {
				So(errLow, ShouldWrap, service.ErrInvalidParams)
				So(errHigh, ShouldWrap, service.ErrInvalidParams)
			})
		})

		Convey("When the filter is not a finite number", func() {
			_, errNaN := svc.Overview(ctx, types.Params{MinRetentionMonths: math.NaN()})
			_, errInf := svc.Overview(ctx, types.Params{MinRetentionMonths: math.Inf(1)})

			Convey("Then it should reject the parameters", func() {
				So(errNaN, ShouldWrap, service.ErrInvalidParams)
				So(errInf, ShouldWrap, service.ErrInvalidParams)
			})
		})

		Convey("When the same parameters are computed twice", func() {
			first, err1 := svc.Overview(ctx, types.Params{MinRetentionMonths: 6, ShowDetails: true})
			second, err2 := svc.Overview(ctx, types.Params{MinRetentionMonths: 6, ShowDetails: true})

			Convey("Then the results should be identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestService_Records(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService(t)
		ctx := context.Background()

		Convey("When fetching all records", func() {
			points, err := svc.Records(ctx, 0)

			Convey("Then it should return the full shaped dataset", func() {
				So(err, ShouldBeNil)
				So(points, ShouldHaveLength, 60)
			})

			Convey("And cohort labels should be display names", func() {
				labels := map[string]bool{}
				for _, p := range points {
					labels[p.Cohort] = true
				}
				So(labels["Training"], ShouldBeTrue)
				So(labels["No Training"], ShouldBeTrue)
				So(labels["Control"], ShouldBeFalse)
			})

			Convey("And the threshold flag should match retained months", func() {
				for _, p := range points {
					So(p.ReachedThreshold, ShouldEqual, p.MonthsRetained >= 12.0)
				}
			})
		})

		Convey("When filtering by minimum retention", func() {
			points, err := svc.Records(ctx, 12)

			Convey("Then only qualifying records should remain", func() {
				So(err, ShouldBeNil)
				So(points, ShouldHaveLength, 30)
				for _, p := range points {
					So(p.MonthsRetained, ShouldBeGreaterThanOrEqualTo, 12.0)
				}
			})
		})

		Convey("When the filter is out of range", func() {
			_, err := svc.Records(ctx, 12.5)

			Convey("Then it should reject the parameter", func() {
				So(err, ShouldWrap, service.ErrInvalidParams)
			})
		})

		Convey("When the filter is NaN", func() {
			_, err := svc.Records(ctx, math.NaN())

			Convey("Then it should reject the parameter", func() {
				So(err, ShouldWrap, service.ErrInvalidParams)
			})
		})
	})
}

func TestService_Summary(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService(t)
		ctx := context.Background()

		Convey("When summarizing retention", func() {
			summary, err := svc.Summary(ctx, types.MetricRetention)

			Convey("Then it should carry the retention pair and raw months", func() {
				So(err, ShouldBeNil)
				So(summary.Metric, ShouldEqual, types.MetricRetention)
				So(summary.Pair.Training, ShouldAlmostEqual, 70.0, 1e-9)
				So(summary.Training.Values, ShouldHaveLength, 30)
				So(summary.Control.Values, ShouldHaveLength, 30)
			})
		})

		Convey("When summarizing productivity", func() {
			summary, err := svc.Summary(ctx, types.MetricProductivity)

			Convey("Then series means should match the cohort means", func() {
				So(err, ShouldBeNil)
				So(summary.Training.Mean, ShouldAlmostEqual, summary.Pair.Training, 1e-9)
				So(summary.Control.Mean, ShouldAlmostEqual, summary.Pair.Control, 1e-9)
			})
		})

		Convey("When summarizing cost", func() {
			summary, err := svc.Summary(ctx, types.MetricCost)

			Convey("Then per-record spend should be flat within each cohort", func() {
				So(err, ShouldBeNil)
				for _, v := range summary.Training.Values {
					So(v, ShouldAlmostEqual, 2050.0, 1e-9)
				}
				for _, v := range summary.Control.Values {
					So(v, ShouldAlmostEqual, 1750.0, 1e-9)
				}
			})

			Convey("And the pair should divide by retained count", func() {
				So(summary.Pair.Training, ShouldAlmostEqual, 61500.0/21.0, 1e-6)
				So(summary.Pair.Control, ShouldAlmostEqual, 52500.0/9.0, 1e-6)
			})
		})
	})
}

func TestService_DatasetStats(t *testing.T) {
	Convey("Given a service that has not been started", t, func() {
		svc := service.New()

		Convey("When fetching stats", func() {
			stats := svc.DatasetStats()

			Convey("Then it should report the configured constants only", func() {
				So(stats["started"], ShouldBeFalse)
				So(stats["retention_threshold_months"], ShouldEqual, 12.0)
				So(stats["base_cost_per_hire"], ShouldEqual, 1750.0)
				So(stats["training_cost_per_person"], ShouldEqual, 300.0)
				So(stats, ShouldNotContainKey, "dataset_records")
			})
		})
	})

	Convey("Given a started service", t, func() {
		svc := startedService(t)

		Convey("When fetching stats", func() {
			stats := svc.DatasetStats()

			Convey("Then it should include dataset figures", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["dataset_records"], ShouldEqual, 60)
				So(stats["cohort_Training_records"], ShouldEqual, 30)
				So(stats["cohort_Control_records"], ShouldEqual, 30)
			})
		})
	})
}
