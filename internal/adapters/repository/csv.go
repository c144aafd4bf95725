package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/trainlens/trainlens/internal/domain/model"
)

// CSV ingestion for the delimited-file dataset variant. Expected columns:
// Company, Months_Retained, Productivity_Rating, plus an optional
// Absenteeism_Days and an optional ID. Header matching is relaxed
// ("Months Retained" and "months_retained" both work); the raw cohort
// label "Control" normalizes to the control arm. Unlike the lenient
// parsers this variant fails fast: a single malformed row rejects the
// whole file rather than silently computing on corrupt data.

// LoadCSVFile reads and parses a dataset file from disk.
func LoadCSVFile(path string) ([]model.EmployeeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV parses delimited dataset rows into employee records.
func ParseCSV(r io.Reader) ([]model.EmployeeRecord, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[toSnakeCase(h)] = i
	}

	var (
		companyCol, okCompany = cols["company"]
		monthsCol, okMonths   = cols["months_retained"]
		ratingCol, okRating   = cols["productivity_rating"]
		absentCol, okAbsent   = cols["absenteeism_days"]
		idCol, okID           = cols["id"]
	)
	switch {
	case !okCompany:
		return nil, fmt.Errorf("%w: Company", ErrMissingColumn)
	case !okMonths:
		return nil, fmt.Errorf("%w: Months_Retained", ErrMissingColumn)
	case !okRating:
		return nil, fmt.Errorf("%w: Productivity_Rating", ErrMissingColumn)
	}

	var records []model.EmployeeRecord
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		cohort, err := model.ParseCohort(fields[companyCol])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		months, err := parseFloatField(fields[monthsCol], "months_retained")
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		rating, err := parseFloatField(fields[ratingCol], "productivity_rating")
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		var absent int
		if okAbsent {
			absent, err = parseIntField(fields[absentCol], "absenteeism_days")
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		}

		id := fmt.Sprintf("R-%02d", row)
		if okID && strings.TrimSpace(fields[idCol]) != "" {
			id = strings.TrimSpace(fields[idCol])
		}

		rec := model.EmployeeRecord{
			ID:                 id,
			Cohort:             cohort,
			MonthsRetained:     months,
			ProductivityRating: rating,
			AbsenteeismDays:    absent,
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

func parseFloatField(raw, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not numeric", model.ErrMalformedRecord, name, raw)
	}
	return v, nil
}

func parseIntField(raw, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", model.ErrMalformedRecord, name, raw)
	}
	return v, nil
}

// toSnakeCase converts "Column Name" or "Column-Name" to "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
