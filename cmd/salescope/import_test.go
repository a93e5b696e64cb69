package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlawkins/salescope/internal/analysis"
	"github.com/mlawkins/salescope/internal/importer"
	"github.com/mlawkins/salescope/internal/testutil"
)

func writeSalesFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportOne_FullPipeline(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	dir := t.TempDir()

	path := writeSalesFile(t, dir, "sales_EAST_2024Q1.csv", "150.00,2024-01-10\n75.50,2024-01-15\n")

	count, err := importOne(ctx, db.Store, db.Catalog, path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Records landed with assigned IDs and the region from the file name.
	all, err := db.Store.AllSales(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, d := range all {
		assert.Equal(t, "EAST", d.Region.Code)
		assert.Greater(t, d.ID, int64(0))
	}

	// The summary over the slice matches the imported figures.
	pred, err := analysis.BuildSlice("2024-01-01", "2024-01-31", "EAST")
	require.NoError(t, err)
	records, err := db.Store.FilteredSales(ctx, pred)
	require.NoError(t, err)

	summary := analysis.Summarize(pred, records)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "225.50", summary.Total.StringFixed(2))
	assert.Equal(t, "112.75", summary.Average.StringFixed(2))
	require.Len(t, summary.ByRegion, 1)
	assert.Equal(t, "EAST", summary.ByRegion[0].Code)
	require.Len(t, summary.ByQuarter, 1)
	assert.Equal(t, 1, summary.ByQuarter[0].Quarter)
	require.NotNil(t, summary.TopDay)
	assert.Equal(t, "2024-01-10", summary.TopDay.Date.Format("2006-01-02"))
}

func TestImportOne_SecondImportRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	dir := t.TempDir()

	path := writeSalesFile(t, dir, "sales_WEST_2024Q2.csv", "10.00,2024-04-01\n")

	_, err := importOne(ctx, db.Store, db.Catalog, path)
	require.NoError(t, err)

	_, err = importOne(ctx, db.Store, db.Catalog, path)
	var rejected *importer.ImportRejected
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, importer.RejectAlreadyImported, rejected.Reason)

	// The first batch is still the only data.
	all, err := db.Store.AllSales(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestImportOne_MalformedFileLeavesNoTrace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	dir := t.TempDir()

	path := writeSalesFile(t, dir, "sales_EAST_2024Q2.csv", "10.00,2024-04-01\nnot-a-number,2024-04-02\n")

	_, err := importOne(ctx, db.Store, db.Catalog, path)
	var parseErr *importer.ImportParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, importer.ParseMalformedRow, parseErr.Reason)

	// All-or-nothing: no records and no ledger entry.
	all, err := db.Store.AllSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	imported, err := db.Store.HasBeenImported(ctx, "sales_EAST_2024Q2.csv")
	require.NoError(t, err)
	assert.False(t, imported)
}

func TestImportOne_ZeroAmountRowFailsAtStoreBoundary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	dir := t.TempDir()

	path := writeSalesFile(t, dir, "sales_EAST_2024Q3.csv", "0.00,2024-07-01\n")

	_, err := importOne(ctx, db.Store, db.Catalog, path)
	require.Error(t, err)

	imported, ledgerErr := db.Store.HasBeenImported(ctx, "sales_EAST_2024Q3.csv")
	require.NoError(t, ledgerErr)
	assert.False(t, imported, "a rejected batch must not be marked imported")
}
