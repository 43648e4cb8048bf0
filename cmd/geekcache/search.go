package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/geekcache/geekcache/internal/database"
)

func newSearchCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search cached games by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.ops.SearchGames(ctx, args[0])
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, records)
			case "table":
				outputGamesTable(cmd, records)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func outputGamesTable(cmd *cobra.Command, records []database.GameRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Name", "Year", "Rating"})
	for _, record := range records {
		rating := ""
		if record.Stats != nil && record.Stats.Average != 0 {
			rating = fmt.Sprintf("%.2f", record.Stats.Average)
		}
		year := ""
		if record.YearPublished != 0 {
			year = fmt.Sprintf("%d", record.YearPublished)
		}
		// id + year + rating columns plus borders
		t.AppendRow(table.Row{record.ID, truncateName(record.Name, 35), year, rating})
	}

	t.Render()
}
