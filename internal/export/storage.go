package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sheetpick/domain/record"
	"sheetpick/internal/errors"

	"github.com/google/uuid"
)

// Storage manages the export directory and collision-free artifact names
type Storage struct {
	basePath string
}

// NewStorage creates storage rooted at basePath
func NewStorage(basePath string) *Storage {
	return &Storage{basePath: basePath}
}

// BasePath returns the export directory
func (s *Storage) BasePath() string {
	return s.basePath
}

// Store writes records under a unique name derived from baseName and
// returns the path written. Uniqueness comes from a timestamp plus a short
// UUID fragment, so repeated exports never clobber each other.
func (s *Storage) Store(records []record.Record, baseName string) (string, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", errors.IOError("failed to create export directory", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	uniqueName := fmt.Sprintf("%s_%s_%s.json", baseName, timestamp, uuid.New().String()[:8])
	filePath := filepath.Join(s.basePath, uniqueName)

	if err := WriteJSON(records, filePath); err != nil {
		os.Remove(filePath) // Clean up on failure
		return "", err
	}
	return filePath, nil
}
