package repository

import (
	"github.com/trainlens/trainlens/internal/domain/model"
)

// seedRecords is the canonical embedded dataset: 60 entry-level hires
// observed over a 12-month window, 30 per program arm. It is fixed and
// deterministic so repeated loads within one process are bit-identical.
func seedRecords() []model.EmployeeRecord {
	return []model.EmployeeRecord{
		{ID: "T-01", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.7, AbsenteeismDays: 4},
		{ID: "T-02", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.0, AbsenteeismDays: 1},
		{ID: "T-03", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 5.0, AbsenteeismDays: 1},
		{ID: "T-04", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 3.8, AbsenteeismDays: 4},
		{ID: "T-05", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.6, AbsenteeismDays: 3},
		{ID: "T-06", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 5.0, AbsenteeismDays: 4},
		{ID: "T-07", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.0, AbsenteeismDays: 4},
		{ID: "T-08", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.2, AbsenteeismDays: 3},
		{ID: "T-09", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.4, AbsenteeismDays: 1},
		{ID: "T-10", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.2, AbsenteeismDays: 0},
		{ID: "T-11", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 3.8, AbsenteeismDays: 2},
		{ID: "T-12", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.4, AbsenteeismDays: 5},
		{ID: "T-13", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.0, AbsenteeismDays: 3},
		{ID: "T-14", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.6, AbsenteeismDays: 1},
		{ID: "T-15", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.0, AbsenteeismDays: 3},
		{ID: "T-16", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 5.0, AbsenteeismDays: 4},
		{ID: "T-17", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.1, AbsenteeismDays: 1},
		{ID: "T-18", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.3, AbsenteeismDays: 3},
		{ID: "T-19", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.7, AbsenteeismDays: 3},
		{ID: "T-20", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 3.9, AbsenteeismDays: 1},
		{ID: "T-21", Cohort: model.CohortTraining, MonthsRetained: 12.0, ProductivityRating: 4.5, AbsenteeismDays: 4},
		{ID: "T-22", Cohort: model.CohortTraining, MonthsRetained: 11.8, ProductivityRating: 4.9, AbsenteeismDays: 4},
		{ID: "T-23", Cohort: model.CohortTraining, MonthsRetained: 11.5, ProductivityRating: 3.8, AbsenteeismDays: 5},
		{ID: "T-24", Cohort: model.CohortTraining, MonthsRetained: 10.9, ProductivityRating: 4.5, AbsenteeismDays: 5},
		{ID: "T-25", Cohort: model.CohortTraining, MonthsRetained: 10.2, ProductivityRating: 4.5, AbsenteeismDays: 0},
		{ID: "T-26", Cohort: model.CohortTraining, MonthsRetained: 9.8, ProductivityRating: 4.7, AbsenteeismDays: 1},
		{ID: "T-27", Cohort: model.CohortTraining, MonthsRetained: 9.4, ProductivityRating: 3.9, AbsenteeismDays: 4},
		{ID: "T-28", Cohort: model.CohortTraining, MonthsRetained: 8.7, ProductivityRating: 3.9, AbsenteeismDays: 4},
		{ID: "T-29", Cohort: model.CohortTraining, MonthsRetained: 7.6, ProductivityRating: 4.6, AbsenteeismDays: 4},
		{ID: "T-30", Cohort: model.CohortTraining, MonthsRetained: 6.9, ProductivityRating: 4.5, AbsenteeismDays: 11},
		{ID: "C-01", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 3.5, AbsenteeismDays: 12},
		{ID: "C-02", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 3.5, AbsenteeismDays: 14},
		{ID: "C-03", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 2.9, AbsenteeismDays: 13},
		{ID: "C-04", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 3.4, AbsenteeismDays: 12},
		{ID: "C-05", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 3.5, AbsenteeismDays: 8},
		{ID: "C-06", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 2.9, AbsenteeismDays: 13},
		{ID: "C-07", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 4.4, AbsenteeismDays: 6},
		{ID: "C-08", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 3.6, AbsenteeismDays: 9},
		{ID: "C-09", Cohort: model.CohortControl, MonthsRetained: 12.0, ProductivityRating: 2.6, AbsenteeismDays: 8},
		{ID: "C-10", Cohort: model.CohortControl, MonthsRetained: 11.2, ProductivityRating: 3.7, AbsenteeismDays: 10},
		{ID: "C-11", Cohort: model.CohortControl, MonthsRetained: 10.8, ProductivityRating: 2.7, AbsenteeismDays: 19},
		{ID: "C-12", Cohort: model.CohortControl, MonthsRetained: 9.5, ProductivityRating: 3.8, AbsenteeismDays: 2},
		{ID: "C-13", Cohort: model.CohortControl, MonthsRetained: 8.9, ProductivityRating: 4.0, AbsenteeismDays: 12},
		{ID: "C-14", Cohort: model.CohortControl, MonthsRetained: 8.1, ProductivityRating: 2.8, AbsenteeismDays: 3},
		{ID: "C-15", Cohort: model.CohortControl, MonthsRetained: 7.4, ProductivityRating: 3.9, AbsenteeismDays: 8},
		{ID: "C-16", Cohort: model.CohortControl, MonthsRetained: 6.8, ProductivityRating: 3.5, AbsenteeismDays: 14},
		{ID: "C-17", Cohort: model.CohortControl, MonthsRetained: 6.2, ProductivityRating: 3.8, AbsenteeismDays: 10},
		{ID: "C-18", Cohort: model.CohortControl, MonthsRetained: 5.5, ProductivityRating: 4.4, AbsenteeismDays: 5},
		{ID: "C-19", Cohort: model.CohortControl, MonthsRetained: 4.9, ProductivityRating: 3.2, AbsenteeismDays: 7},
		{ID: "C-20", Cohort: model.CohortControl, MonthsRetained: 4.3, ProductivityRating: 2.8, AbsenteeismDays: 12},
		{ID: "C-21", Cohort: model.CohortControl, MonthsRetained: 3.8, ProductivityRating: 2.8, AbsenteeismDays: 7},
		{ID: "C-22", Cohort: model.CohortControl, MonthsRetained: 3.2, ProductivityRating: 2.8, AbsenteeismDays: 10},
		{ID: "C-23", Cohort: model.CohortControl, MonthsRetained: 2.7, ProductivityRating: 3.3, AbsenteeismDays: 10},
		{ID: "C-24", Cohort: model.CohortControl, MonthsRetained: 2.1, ProductivityRating: 3.5, AbsenteeismDays: 7},
		{ID: "C-25", Cohort: model.CohortControl, MonthsRetained: 1.8, ProductivityRating: 3.5, AbsenteeismDays: 18},
		{ID: "C-26", Cohort: model.CohortControl, MonthsRetained: 7.7, ProductivityRating: 3.8, AbsenteeismDays: 12},
		{ID: "C-27", Cohort: model.CohortControl, MonthsRetained: 8.4, ProductivityRating: 3.3, AbsenteeismDays: 1},
		{ID: "C-28", Cohort: model.CohortControl, MonthsRetained: 9.1, ProductivityRating: 4.2, AbsenteeismDays: 10},
		{ID: "C-29", Cohort: model.CohortControl, MonthsRetained: 10.3, ProductivityRating: 3.1, AbsenteeismDays: 7},
		{ID: "C-30", Cohort: model.CohortControl, MonthsRetained: 6.6, ProductivityRating: 4.9, AbsenteeismDays: 13},
	}
}
