package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sheetpick/internal/errors"
	"sheetpick/ports"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files into raw grids
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	config   ReaderConfig
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	return NewDataReaderWithConfig(filePath, DefaultReaderConfig())
}

// NewDataReaderWithConfig creates a data reader with explicit reading knobs
func NewDataReaderWithConfig(filePath string, config ReaderConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, config: config}
}

// SourcePath returns the path this reader reads from
func (r *DataReader) SourcePath() string {
	return r.filePath
}

// ReadGrid reads the named sheet into a raw grid. Empty string selects the
// workbook's first sheet; CSV sources ignore the selector entirely.
func (r *DataReader) ReadGrid(sheet string) (*ports.Grid, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	// Check if file exists
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("%s file %s", strings.ToUpper(r.fileType), r.filePath))
	}

	switch r.fileType {
	case "csv":
		return r.readCSVGrid()
	case "xlsx":
		return r.readExcelGrid(sheet)
	default:
		return nil, errors.LoadError(fmt.Sprintf("unsupported file type: %s", r.fileType), nil)
	}
}

// readExcelGrid reads one worksheet into a typed grid
func (r *DataReader) readExcelGrid(sheet string) (*ports.Grid, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.LoadError("failed to open Excel file", err)
	}
	defer f.Close()
	fileOpenTime := time.Since(startTime)
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(fileOpenTime.Nanoseconds())/1e6)

	sheetName, err := r.resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.LoadError(fmt.Sprintf("failed to read sheet %q", sheetName), err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] Sheet %q read in %.2fms (%d rows)", sheetName, float64(readTime.Nanoseconds())/1e6, len(rows))

	// A sheet with no header row is an empty grid, not an error.
	if len(rows) == 0 {
		return &ports.Grid{Columns: []string{}, Rows: [][]interface{}{}}, nil
	}

	headers := normalizeHeaders(rows[0])
	cells := make([][]interface{}, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		cells = append(cells, r.typedExcelRow(f, sheetName, i-1, len(headers), rows[i]))
	}

	log.Printf("[DataReader] XLSX file processed (%d columns, %d rows)", len(headers), len(cells))
	return &ports.Grid{Columns: headers, Rows: cells}, nil
}

// resolveSheet maps the selector onto a worksheet name. An unset selector
// means the first sheet, matching how spreadsheet tools treat it.
func (r *DataReader) resolveSheet(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		name := f.GetSheetName(0)
		if name == "" {
			return "", errors.LoadError("workbook has no sheets", nil)
		}
		return name, nil
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx == -1 {
		return "", errors.LoadError(fmt.Sprintf("sheet %q does not exist in workbook", sheet), err)
	}
	return sheet, nil
}

// typedExcelRow rebuilds one data row with native cell typing. GetRows hands
// back formatted strings and truncates trailing blanks, so each surviving
// cell's type attribute decides the conversion and short rows pad with nil.
func (r *DataReader) typedExcelRow(f *excelize.File, sheetName string, dataIdx, columnCount int, raw []string) []interface{} {
	cells := make([]interface{}, columnCount)
	for col := 0; col < columnCount && col < len(raw); col++ {
		value := raw[col]
		if value == "" {
			continue
		}
		cellRef, err := excelize.CoordinatesToCellName(col+1, dataIdx+2) // +2 because row 1 is header, Excel is 1-indexed
		if err != nil {
			cells[col] = value
			continue
		}
		cellType, err := f.GetCellType(sheetName, cellRef)
		if err != nil {
			cellType = excelize.CellTypeUnset
		}
		cells[col] = typedCell(cellType, value)
	}
	return cells
}

// typedCell converts one formatted cell string using its native type.
// Untyped cells are numbers in the xlsx encoding, so those parse as float
// with a string fallback for formatted oddities.
func typedCell(cellType excelize.CellType, value string) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return value == "1" || strings.EqualFold(value, "TRUE")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		return value
	default:
		return value
	}
}

// readCSVGrid reads CSV data into a typed grid
func (r *DataReader) readCSVGrid() (*ports.Grid, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.LoadError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = r.config.Comma
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.LoadError("failed to read CSV file", err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return &ports.Grid{Columns: []string{}, Rows: [][]interface{}{}}, nil
	}

	headers := normalizeHeaders(rows[0])
	cells := make([][]interface{}, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := make([]interface{}, len(headers))
		for col := 0; col < len(headers) && col < len(rows[i]); col++ {
			row[col] = r.inferCSVCell(rows[i][col])
		}
		cells = append(cells, row)
	}

	log.Printf("[DataReader] CSV file processed (%d columns, %d rows)", len(headers), len(cells))
	return &ports.Grid{Columns: headers, Rows: cells}, nil
}

// inferCSVCell types a raw CSV cell the way native spreadsheet cells
// arrive: numbers as float64, booleans as bool, blanks as nil. Anything
// else stays a string.
func (r *DataReader) inferCSVCell(value string) interface{} {
	if r.config.TrimCells {
		value = strings.TrimSpace(value)
	}
	if value == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}

// normalizeHeaders trims header cells, names blanks Column_N, and suffixes
// duplicates so payload keys stay distinct
func normalizeHeaders(headerRow []string) []string {
	headers := make([]string, len(headerRow))
	seen := make(map[string]bool, len(headerRow))
	for i, header := range headerRow {
		h := strings.TrimSpace(header)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		base := h
		for n := 2; seen[h]; n++ {
			h = fmt.Sprintf("%s_%d", base, n)
		}
		seen[h] = true
		headers[i] = h
	}
	return headers
}
