package config

import (
	"testing"

	"sheetpick/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHEETPICK_FILE", "")
	t.Setenv("SHEETPICK_SHEET", "")
	t.Setenv("SHEETPICK_EXPORT_DIR", "")
	t.Setenv("SHEETPICK_SEED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Data.FilePath)
	assert.Empty(t, cfg.Data.Sheet)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHEETPICK_FILE", "data/people.xlsx")
	t.Setenv("SHEETPICK_SHEET", "Datos")
	t.Setenv("SHEETPICK_EXPORT_DIR", "/tmp/out")
	t.Setenv("SHEETPICK_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/people.xlsx", cfg.Data.FilePath)
	assert.Equal(t, "Datos", cfg.Data.Sheet)
	assert.Equal(t, "/tmp/out", cfg.Export.Dir)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadRejectsMalformedSeed(t *testing.T) {
	t.Setenv("SHEETPICK_SEED", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
