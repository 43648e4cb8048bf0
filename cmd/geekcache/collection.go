package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/geekcache/geekcache/internal/usecase"
)

func newCollectionCmd() *cobra.Command {
	var (
		force      bool
		format     string
		own        bool
		prevOwned  bool
		forTrade   bool
		want       bool
		wantToPlay bool
		wantToBuy  bool
		wishlist   bool
		preordered bool
		played     bool
	)

	cmd := &cobra.Command{
		Use:   "collection <username>",
		Short: "Show a user's collection, syncing it from BGG when stale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			filters := usecase.CollectionFilters{}
			if cmd.Flags().Changed("own") {
				filters.Own = &own
			}
			if cmd.Flags().Changed("prev-owned") {
				filters.PrevOwned = &prevOwned
			}
			if cmd.Flags().Changed("for-trade") {
				filters.ForTrade = &forTrade
			}
			if cmd.Flags().Changed("want") {
				filters.Want = &want
			}
			if cmd.Flags().Changed("want-to-play") {
				filters.WantToPlay = &wantToPlay
			}
			if cmd.Flags().Changed("want-to-buy") {
				filters.WantToBuy = &wantToBuy
			}
			if cmd.Flags().Changed("wishlist") {
				filters.Wishlist = &wishlist
			}
			if cmd.Flags().Changed("preordered") {
				filters.Preordered = &preordered
			}
			if cmd.Flags().Changed("played") {
				filters.Played = &played
			}

			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.ops.GetOrSyncCollection(ctx, username, filters, force)
			if err != nil {
				return err
			}

			if result.Status == usecase.CollectionQueued {
				fmt.Fprintln(cmd.OutOrStdout(), "BGG has queued the collection request; try again in a minute.")
				return nil
			}

			switch format {
			case "json":
				return outputJSON(cmd, result.Items)
			case "table":
				outputCollectionTable(cmd, result)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Resync even if the cached collection is fresh")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	cmd.Flags().BoolVar(&own, "own", false, "Filter by owned status")
	cmd.Flags().BoolVar(&prevOwned, "prev-owned", false, "Filter by previously-owned status")
	cmd.Flags().BoolVar(&forTrade, "for-trade", false, "Filter by for-trade status")
	cmd.Flags().BoolVar(&want, "want", false, "Filter by want-in-trade status")
	cmd.Flags().BoolVar(&wantToPlay, "want-to-play", false, "Filter by want-to-play status")
	cmd.Flags().BoolVar(&wantToBuy, "want-to-buy", false, "Filter by want-to-buy status")
	cmd.Flags().BoolVar(&wishlist, "wishlist", false, "Filter by wishlist status")
	cmd.Flags().BoolVar(&preordered, "preordered", false, "Filter by preordered status")
	cmd.Flags().BoolVar(&played, "played", false, "Filter by played status")

	return cmd
}

func outputCollectionTable(cmd *cobra.Command, result *usecase.CollectionResult) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Name", "Subtype", "Own", "Rating", "Plays"})
	for _, item := range result.Items {
		own := ""
		if item.Status.Own {
			own = "yes"
		}
		rating := ""
		if item.Rating != nil {
			rating = fmt.Sprintf("%.1f", *item.Rating)
		}
		t.AppendRow(table.Row{item.GameID, truncateName(item.GameName, 55), item.Subtype, own, rating, item.NumPlays})
	}

	t.Render()
}
