package ports

// Grid is the raw rectangular payload a source hands the loader: ordered
// column names plus row-major cells. Cells keep the source's native typing
// (float64 for numbers, bool, string, nil for blanks); normalization into
// record values happens downstream.
type Grid struct {
	Columns []string
	Rows    [][]interface{}
}

// GridSource provides one-shot synchronous reads of tabular data
// This keeps the loader independent of the concrete file format
type GridSource interface {
	// ReadGrid reads the named sheet; empty string selects the source's
	// first sheet. Sources without sheets ignore the selector.
	ReadGrid(sheet string) (*Grid, error)

	// SourcePath returns the path this source reads from
	SourcePath() string
}
