package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/geekcache/geekcache/internal/database"
)

func newGameCmd() *cobra.Command {
	var (
		force  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "game <id>",
		Short: "Show a game, fetching it from BGG if the cache is stale",
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

			record, err := a.ops.EnsureGameFresh(ctx, id, force)
			if err != nil {
				return err
			}
			if record == nil {
				return fmt.Errorf("game not found: %d", id)
			}

			switch format {
			case "json":
				return outputJSON(cmd, record)
			case "table":
				outputGameTable(cmd, record)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Refetch even if the cached record is fresh")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func outputGameTable(cmd *cobra.Command, record *database.GameRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"ID", record.ID})
	t.AppendRow(table.Row{"Name", record.Name})
	if record.YearPublished != 0 {
		t.AppendRow(table.Row{"Year", record.YearPublished})
	}
	if record.MinPlayers != 0 || record.MaxPlayers != 0 {
		t.AppendRow(table.Row{"Players", fmt.Sprintf("%d-%d", record.MinPlayers, record.MaxPlayers)})
	}
	if record.PlayingTime != 0 {
		t.AppendRow(table.Row{"Playing Time", fmt.Sprintf("%d min", record.PlayingTime)})
	}
	if record.MinAge != 0 {
		t.AppendRow(table.Row{"Min Age", record.MinAge})
	}
	if len(record.Categories) > 0 {
		t.AppendRow(table.Row{"Categories", strings.Join(record.Categories, ", ")})
	}
	if len(record.Mechanics) > 0 {
		t.AppendRow(table.Row{"Mechanics", strings.Join(record.Mechanics, ", ")})
	}
	if len(record.Designers) > 0 {
		t.AppendRow(table.Row{"Designers", strings.Join(record.Designers, ", ")})
	}
	if record.Stats != nil {
		t.AppendRow(table.Row{"Rating", fmt.Sprintf("%.2f (%d ratings)", record.Stats.Average, record.Stats.UsersRated)})
		for _, rank := range record.Stats.Ranks {
			if rank.Value == 0 {
				continue
			}
			t.AppendRow(table.Row{rank.FriendlyName, rank.Value})
		}
	}
	t.AppendRow(table.Row{"Last Updated", record.LastUpdated.Format("2006-01-02 15:04:05")})

	t.Render()
}

func outputJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
