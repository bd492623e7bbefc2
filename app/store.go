package app

import (
	"encoding/json"
	"io"

	"sheetpick/domain/record"
	"sheetpick/internal"
	"sheetpick/internal/errors"
	"sheetpick/ports"
)

// RecordStore owns the in-memory record collection built from one
// spreadsheet load at a time. Not safe for concurrent use; callers that
// want overlapping loads must serialize them.
type RecordStore struct {
	records []record.Record
	columns []string
	logger  *internal.Logger
}

// NewRecordStore creates an empty record store
func NewRecordStore() *RecordStore {
	return &RecordStore{logger: internal.NewDefaultLogger()}
}

// Load reads the source grid and replaces the whole collection. Rows whose
// every cell normalizes to null are dropped before numbering, so IDs run
// contiguously from 1 over the surviving rows. On any failure the store is
// left empty and the coded error is returned.
func (s *RecordStore) Load(source ports.GridSource, sheet string) error {
	s.records = nil
	s.columns = nil

	grid, err := source.ReadGrid(sheet)
	if err != nil {
		return errors.Wrapf(err, "failed to load records from %s", source.SourcePath())
	}

	records := make([]record.Record, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		values := make([]record.Value, len(grid.Columns))
		empty := true
		for i := range grid.Columns {
			var raw interface{}
			if i < len(row) {
				raw = row[i]
			}
			values[i] = record.Normalize(raw)
			if !values[i].IsNull() {
				empty = false
			}
		}
		if empty {
			continue
		}
		data := make(map[string]record.Value, len(grid.Columns))
		for i, column := range grid.Columns {
			data[column] = values[i]
		}
		records = append(records, record.Record{ID: len(records) + 1, Data: data})
	}

	s.records = records
	s.columns = append([]string(nil), grid.Columns...)
	s.logger.Info("Loaded %d records from %s (%d columns)", len(records), source.SourcePath(), len(grid.Columns))
	return nil
}

// Count returns the number of loaded records
func (s *RecordStore) Count() int {
	return len(s.records)
}

// Columns returns the column names from the last successful load
func (s *RecordStore) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Snapshot returns a defensive copy of the collection. Payload maps are
// copied so callers cannot reach the store's internals; the scalar values
// are shared.
func (s *RecordStore) Snapshot() []record.Record {
	out := make([]record.Record, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

// DisplaySample writes the first n records to w as indented JSON with
// non-ASCII characters kept literal. Purely informational; n clamps to
// the collection size.
func (s *RecordStore) DisplaySample(w io.Writer, n int) error {
	if n > len(s.records) {
		n = len(s.records)
	}
	if n < 0 {
		n = 0
	}
	sample := s.records[:n]
	if sample == nil {
		sample = []record.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(sample)
}
