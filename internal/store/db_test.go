package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-funnel-dashboard/internal/model"
)

func TestStoreNotInitialized(t *testing.T) {
	// Runs before any InitDB call in this package.
	require.Nil(t, db)

	err := SaveRun("x", model.NormalizedDataset{})
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = ListRuns()
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = GetRun("x")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = GetRunWarnings("x")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSaveAndFetchRun(t *testing.T) {
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "store_test.db")))

	ds := model.NormalizedDataset{
		Columns: []model.ColumnDescriptor{
			{Name: "dia", Type: model.ColumnDate},
			{Name: "leads_total", Type: model.ColumnNumber},
		},
		Rows: []model.NormalizedRow{
			{"dia": nil, "leads_total": float64(10)},
			{"dia": nil, "leads_total": float64(12)},
		},
		Warnings: []model.NormalizationWarning{
			{Code: model.WarnInvalidDate, Column: "dia", Message: "row 0: x is not a recognizable date"},
		},
	}

	require.NoError(t, SaveRun("run-1", ds))

	run, err := GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, 2, run.RowCount)
	assert.Equal(t, 2, run.ColumnCount)
	assert.Equal(t, 1, run.WarningCount)
	assert.False(t, run.CreatedAt.IsZero())

	runs, err := ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	warnings, err := GetRunWarnings("run-1")
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnInvalidDate, warnings[0].Code)
	assert.Equal(t, "dia", warnings[0].Column)

	warnings, err = GetRunWarnings("no-such-run")
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestGetRunMissing(t *testing.T) {
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "store_missing.db")))
	_, err := GetRun("nope")
	assert.Error(t, err)
}

func TestSaveRunTruncatesLongMessages(t *testing.T) {
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "store_trunc.db")))

	long := make([]rune, 1000)
	for i := range long {
		long[i] = 'x'
	}
	ds := model.NormalizedDataset{
		Warnings: []model.NormalizationWarning{
			{Code: model.WarnInvalidNumber, Message: string(long)},
		},
	}
	require.NoError(t, SaveRun("run-long", ds))

	warnings, err := GetRunWarnings("run-long")
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Len(t, warnings[0].Message, 500)
}
