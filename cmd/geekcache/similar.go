package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newSimilarCmd() *cobra.Command {
	var (
		format string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "similar <id>",
		Short: "Find cached games similar to a reference game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid game id: %s", args[0])
			}

			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			scored, err := a.ops.FindSimilar(ctx, id, limit)
			if err != nil {
				return err
			}
			if scored == nil {
				return fmt.Errorf("game not found: %d", id)
			}

			switch format {
			case "json":
				return outputJSON(cmd, scored)
			case "table":
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Score", "ID", "Name", "Year"})
				for _, entry := range scored {
					year := ""
					if entry.Game.YearPublished != 0 {
						year = fmt.Sprintf("%d", entry.Game.YearPublished)
					}
					t.AppendRow(table.Row{fmt.Sprintf("%.3f", entry.Score), entry.Game.ID, entry.Game.Name, year})
				}
				t.Render()
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results (default 10)")

	return cmd
}
