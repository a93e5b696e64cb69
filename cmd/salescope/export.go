package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlawkins/salescope/internal/analysis"
	"github.com/mlawkins/salescope/internal/cli"
	"github.com/mlawkins/salescope/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a filtered slice of sales records as CSV",
		Long: `Write the records matching the current filters to a CSV file with
columns ID, Date, Region Code, Region Name, Amount, Quarter, ordered by
date then region.

Examples:
  salescope export --output q1.csv --start 2024-01-01 --end 2024-03-31
  salescope export --output east.csv --region EAST`,
		RunE: runExport,
	}

	cmd.Flags().String("start", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "inclusive end date (YYYY-MM-DD)")
	cmd.Flags().String("region", "", "region code filter (blank for all regions)")
	cmd.Flags().StringP("output", "o", "", "destination file path")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	region, _ := cmd.Flags().GetString("region")
	output, _ := cmd.Flags().GetString("output")

	pred, err := analysis.BuildSlice(start, end, region)
	if err != nil {
		return err
	}

	store, catalog, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if pred.RegionCode != "" {
		if _, ok := catalog.Lookup(pred.RegionCode); !ok {
			return fmt.Errorf("region must be one of: %s", strings.Join(catalog.Codes(), ", "))
		}
	}

	records, err := store.FilteredSales(ctx, pred)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println(cli.WarningStyle.Render("No sales match the current filters; nothing exported."))
		return nil
	}

	if err := export.WriteFile(output, records); err != nil {
		return err
	}

	slog.Info("Export complete", "rows", len(records), "file", output)
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Saved %d rows to %s", len(records), output)))
	return nil
}
