package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mlawkins/salescope/internal/cli"
	"github.com/mlawkins/salescope/internal/importer"
	"github.com/mlawkins/salescope/internal/model"
	"github.com/mlawkins/salescope/internal/service"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import sales figures from delimited files",
		Long: `Import regional sales figures from delimited files.

File names must follow the convention sales_<REGION>_<YYYY>Q<1-4>.csv, with
the region code matching the catalog. Each row is (amount, date). A file
that fails validation is skipped with a message; the rest still import.

Examples:
  salescope import sales_EAST_2024Q1.csv
  salescope import data/sales_WEST_2024Q1.csv data/sales_WEST_2024Q2.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, catalog, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	imported := 0
	for _, path := range args {
		count, err := importOne(ctx, store, catalog, path)

		var rejected *importer.ImportRejected
		var parseErr *importer.ImportParseError
		switch {
		case errors.As(err, &rejected):
			slog.Warn("Import rejected",
				"file", path,
				"reason", string(rejected.Reason))
			fmt.Println(cli.ErrorStyle.Render(rejected.Message))
		case errors.As(err, &parseErr):
			slog.Warn("Import failed",
				"file", path,
				"reason", string(parseErr.Reason))
			fmt.Println(cli.ErrorStyle.Render(parseErr.Error()))
		case err != nil:
			// Store faults abort the run; nothing partial was committed.
			return err
		default:
			imported++
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %s (%d records)", path, count)))
		}
	}

	slog.Info("Import finished", "files_requested", len(args), "files_imported", imported)
	return nil
}

// importOne runs the full pipeline for a single file: filename check,
// eligibility guard, parse, append, then ledger mark. Returns the number
// of records written.
func importOne(ctx context.Context, store service.Store, catalog *model.Catalog, path string) (int, error) {
	desc := importer.ParseImportFilename(path, catalog)

	if err := importer.CanImport(ctx, desc, catalog, store); err != nil {
		return 0, err
	}

	records, err := importer.ParseSalesFile(desc)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, &importer.ImportParseError{
			Reason: importer.ParseMalformedRow,
			Name:   desc.RawName,
			Err:    fmt.Errorf("file contains no rows"),
		}
	}

	if err := store.AppendSales(ctx, records); err != nil {
		return 0, err
	}
	if err := store.MarkImported(ctx, desc.RawName); err != nil {
		return 0, err
	}

	return len(records), nil
}
