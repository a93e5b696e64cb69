package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlawkins/salescope/internal/cli"
	"github.com/mlawkins/salescope/internal/common"
	"github.com/mlawkins/salescope/internal/model"
)

func lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up one sales record by date and region",
		Long: `Find the stored sales record for an exact date and region code, showing
its ID for use with the update command.

Example:
  salescope lookup --date 2024-01-10 --region EAST`,
		RunE: runLookup,
	}

	cmd.Flags().String("date", "", "record date (YYYY-MM-DD)")
	cmd.Flags().String("region", "", "region code")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}

func runLookup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dateText, _ := cmd.Flags().GetString("date")
	region, _ := cmd.Flags().GetString("region")

	date, err := time.Parse(model.DateFormat, strings.TrimSpace(dateText))
	if err != nil {
		return fmt.Errorf("date must be valid and in YYYY-MM-DD format: %q", dateText)
	}

	store, catalog, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	region = strings.TrimSpace(region)
	if _, ok := catalog.Lookup(region); !ok {
		return fmt.Errorf("region must be one of: %s", strings.Join(catalog.Codes(), ", "))
	}

	record, err := store.SalesByDateAndRegion(ctx, date, region)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Println(cli.WarningStyle.Render("No sales amount for the date and region entered."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("ID:     %d\n", record.ID)
	fmt.Printf("Date:   %s\n", record.Date.Format(model.DateFormat))
	fmt.Printf("Region: %s (%s)\n", record.Region.Code, record.Region.Name)
	fmt.Printf("Amount: $%s\n", record.Amount.StringFixed(2))
	return nil
}
