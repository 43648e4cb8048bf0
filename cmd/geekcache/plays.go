package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newPlaysCmd() *cobra.Command {
	var (
		force    bool
		format   string
		maxPlays int
	)

	cmd := &cobra.Command{
		Use:   "plays <username>",
		Short: "Show a user's recent logged plays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.ops.GetOrSyncPlays(ctx, args[0], maxPlays, force)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, records)
			case "table":
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Date", "Game", "Qty", "Players"})
				for _, record := range records {
					t.AppendRow(table.Row{record.Date, record.GameName, record.Quantity, len(record.Players)})
				}
				t.Render()
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Refetch the play log from BGG")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	cmd.Flags().IntVarP(&maxPlays, "max", "n", 0, "Maximum number of plays to show (default 10)")

	return cmd
}
