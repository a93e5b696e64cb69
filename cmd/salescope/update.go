package main

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mlawkins/salescope/internal/cli"
	"github.com/mlawkins/salescope/internal/common"
)

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Correct the amount of one stored sales record",
		Long: `Change the amount of a persisted record identified by its ID (use the
lookup command to find it). The new amount must be greater than zero.

Example:
  salescope update --id 42 --amount 199.95`,
		RunE: runUpdate,
	}

	cmd.Flags().Int64("id", 0, "record ID")
	cmd.Flags().String("amount", "", "new amount")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetInt64("id")
	amountText, _ := cmd.Flags().GetString("amount")

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amountText, err)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}

	store, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	err = store.UpdateAmount(ctx, id, amount)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No stored record with ID %d.", id)))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render("Sales amount updated successfully."))
	return nil
}
