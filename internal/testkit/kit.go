package testkit

import (
	"encoding/csv"
	"math/rand"
	"os"

	"sheetpick/ports"

	"github.com/xuri/excelize/v2"
)

// SampleGrid returns a small mixed-type grid fixture: typed cells the way
// the excel adapter produces them, including blanks and an all-blank row.
func SampleGrid() *ports.Grid {
	return &ports.Grid{
		Columns: []string{"name", "age", "score", "active", "note"},
		Rows: [][]interface{}{
			{"Ana", float64(30), 2.5, true, "fast"},
			{nil, nil, nil, nil, nil},
			{"Bo", float64(41), nil, false, ""},
			{"Chen", float64(28), 7.25, true, "café"},
		},
	}
}

// FakeGridSource implements the GridSource port for tests without files
type FakeGridSource struct {
	GridValue *ports.Grid
	Err       error
	Path      string
}

// ReadGrid returns the configured grid or error
func (s *FakeGridSource) ReadGrid(sheet string) (*ports.Grid, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.GridValue, nil
}

// SourcePath returns the configured path
func (s *FakeGridSource) SourcePath() string {
	if s.Path == "" {
		return "fake://grid"
	}
	return s.Path
}

// RNGAdapter implements the RNGPort interface for testing
type RNGAdapter struct {
	Seed int64
}

// Stream returns a fixed-seed generator so tests replay exactly
func (r *RNGAdapter) Stream(name string, seed int64) *rand.Rand {
	if r.Seed != 0 {
		return rand.New(rand.NewSource(r.Seed))
	}
	return rand.New(rand.NewSource(seed))
}

// WriteXLSX writes a small workbook fixture for reader tests
func WriteXLSX(path, sheet string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()

	// Ensure the target sheet exists, is active, and is the only sheet, so
	// first-sheet selection lands on it.
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	// Header row
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r := 0; r < len(rows); r++ {
		rowIdx := r + 2
		for c, v := range rows[r] {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// WriteCSV writes a CSV fixture for reader tests
func WriteCSV(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
