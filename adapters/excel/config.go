package excel

// ReaderConfig holds knobs for grid reading
type ReaderConfig struct {
	// Comma is the CSV field delimiter, semicolon for many European exports
	Comma rune
	// TrimCells trims surrounding whitespace from CSV cells
	TrimCells bool
}

// DefaultReaderConfig returns sensible defaults for grid reading
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Comma:     ',',
		TrimCells: true,
	}
}
