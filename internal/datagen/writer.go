package datagen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/trainlens/trainlens/internal/domain/model"
)

// File permission for generated datasets.
const outputFilePermission = 0o600

// WriteCSV writes records in the column layout the dataset loader reads.
func WriteCSV(w io.Writer, records []model.EmployeeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "company", "months_retained", "productivity_rating", "absenteeism_days"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID,
			string(r.Cohort),
			strconv.FormatFloat(r.MonthsRetained, 'f', 2, 64),
			strconv.FormatFloat(r.ProductivityRating, 'f', 2, 64),
			strconv.Itoa(r.AbsenteeismDays),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile generates the file at path, truncating any existing one.
func WriteCSVFile(path string, records []model.EmployeeRecord) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, records)
}
