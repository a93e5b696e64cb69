package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mlawkins/salescope/internal/analysis"
	"github.com/mlawkins/salescope/internal/cli"
	"github.com/mlawkins/salescope/internal/model"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate sales trends for a date/region slice",
		Long: `Compute totals, per-region and per-quarter breakdowns, and the best
day over the stored records, optionally narrowed by an inclusive date range
and a single region.

Examples:
  salescope summary
  salescope summary --start 2024-01-01 --end 2024-03-31
  salescope summary --region EAST`,
		RunE: runSummary,
	}

	cmd.Flags().String("start", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "inclusive end date (YYYY-MM-DD)")
	cmd.Flags().String("region", "", "region code filter (blank for all regions)")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	region, _ := cmd.Flags().GetString("region")

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

	summary := analysis.Summarize(pred, records)
	renderSummary(summary)
	return nil
}

func renderSummary(summary model.SummaryResult) {
	fmt.Println(cli.TitleStyle.Render("Sales summary"))

	topDay := "—"
	if summary.TopDay != nil {
		topDay = fmt.Sprintf("%s ($%s)",
			summary.TopDay.Date.Format(model.DateFormat),
			summary.TopDay.Total.StringFixed(2))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cli.CardStyle.Render(fmt.Sprintf("Total\n$%s", summary.Total.StringFixed(2))),
		cli.CardStyle.Render(fmt.Sprintf("Average\n$%s", summary.Average.StringFixed(2))),
		cli.CardStyle.Render(fmt.Sprintf("Records\n%d", summary.Count)),
		cli.CardStyle.Render(fmt.Sprintf("Best day\n%s", topDay)),
	)
	fmt.Println(cards)

	if summary.Count == 0 {
		fmt.Println(cli.SubtleStyle.Render("No sales match the current filters."))
		return
	}

	fmt.Println(cli.TitleStyle.Render("Totals by region"))
	printTable([]string{"Code", "Region", "Total", "Count"}, regionRows(summary.ByRegion))

	fmt.Println(cli.TitleStyle.Render("Totals by quarter"))
	printTable([]string{"Quarter", "Total"}, quarterRows(summary.ByQuarter))
}

func regionRows(breakdown []model.RegionTotal) [][]string {
	rows := make([][]string, 0, len(breakdown))
	for _, r := range breakdown {
		rows = append(rows, []string{r.Code, r.Name, "$" + r.Total.StringFixed(2), strconv.Itoa(r.Count)})
	}
	return rows
}

func quarterRows(breakdown []model.QuarterTotal) [][]string {
	rows := make([][]string, 0, len(breakdown))
	for _, q := range breakdown {
		rows = append(rows, []string{"Q" + strconv.Itoa(q.Quarter), "$" + q.Total.StringFixed(2)})
	}
	return rows
}

func printTable(header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var headerCells []string
	for i, h := range header {
		headerCells = append(headerCells, cli.TableHeaderStyle.Render(pad(h, widths[i])))
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Bottom, headerCells...))

	for _, row := range rows {
		var cells []string
		for i, cell := range row {
			cells = append(cells, cli.TableCellStyle.Render(pad(cell, widths[i])))
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
}

// pad right-pads by display width so multi-byte region names line up.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
