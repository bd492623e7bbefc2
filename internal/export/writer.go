package export

import (
	"encoding/json"
	"fmt"
	"os"

	"sheetpick/domain/record"
	"sheetpick/internal/errors"
)

// WriteJSON writes the records to path as a pretty-printed JSON array of
// {id, data} objects, 2-space indented, with non-ASCII characters kept
// literal. Failures report as IO errors and never touch in-memory state.
func WriteJSON(records []record.Record, path string) error {
	if records == nil {
		records = []record.Record{}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.IOError(fmt.Sprintf("failed to create export file %s", path), err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return errors.IOError(fmt.Sprintf("failed to encode records to %s", path), err)
	}
	return nil
}
