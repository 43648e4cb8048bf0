package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newHotCmd() *cobra.Command {
	var (
		force  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "hot",
		Short: "Show the current BGG hotness list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.ops.GetOrSyncHotList(ctx, force)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, entries)
			case "table":
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Rank", "ID", "Name", "Year"})
				for _, entry := range entries {
					year := ""
					if entry.YearPublished != 0 {
						year = fmt.Sprintf("%d", entry.YearPublished)
					}
					t.AppendRow(table.Row{entry.Rank, entry.GameID, entry.Name, year})
				}
				t.Render()
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Refetch the hotness list from BGG")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}
