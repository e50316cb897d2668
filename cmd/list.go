package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/monster-deck/internal/application"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List slides grouped by module",
		RunE: func(cmd *cobra.Command, _ []string) error {
			decks, _, err := app.deckService()
			if err != nil {
				return err
			}

			listing, err := decks.Menu(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(listing)
			}

			tr, err := app.translator()
			if err != nil {
				return err
			}

			return writeListing(cmd.OutOrStdout(), listing, tr.T)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func writeListing(w io.Writer, listing application.DeckListing, t func(string, map[string]any) string) error {
	summary := t("ListSummary", map[string]any{
		"Count":   listing.Slides,
		"Modules": len(listing.Modules),
	})
	if _, err := fmt.Fprintf(w, "%s (%s)\n", listing.Title, summary); err != nil {
		return err
	}

	for ordinal, group := range listing.Modules {
		if _, err := fmt.Fprintf(w, "\n%d. %s\n", ordinal+1, group.Module); err != nil {
			return err
		}
		for _, entry := range group.Entries {
			if _, err := fmt.Fprintf(w, "  %2d  %s — %s  [%s]\n", entry.Index, entry.Title, entry.Subtitle, entry.Kind); err != nil {
				return err
			}
		}
	}

	return nil
}
