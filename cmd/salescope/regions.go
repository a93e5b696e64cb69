package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlawkins/salescope/internal/cli"
)

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the region catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, catalog, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Println(cli.TitleStyle.Render("Regions"))
			mapping := catalog.AsMapping()
			for _, code := range catalog.Codes() {
				fmt.Printf("  %-8s %s\n", code, mapping[code].Name)
			}
			return nil
		},
	}
}
