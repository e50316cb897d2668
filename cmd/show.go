package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/monster-deck/internal/adapters/render/slide"
	"github.com/spf13/cobra"
)

type slideOutput struct {
	Index         int     `json:"index"`
	Total         int     `json:"total"`
	ID            string  `json:"id"`
	Module        string  `json:"module"`
	ModuleOrdinal int     `json:"module_ordinal"`
	Kind          string  `json:"kind"`
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	Progress      float64 `json:"progress"`
	IsFirst       bool    `json:"is_first"`
	IsLast        bool    `json:"is_last"`
	Body          string  `json:"body"`
}

func newShowCmd(app *app) *cobra.Command {
	var (
		index  int
		width  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render a single slide",
		RunE: func(cmd *cobra.Command, _ []string) error {
			decks, _, err := app.deckService()
			if err != nil {
				return err
			}

			controller, deck, err := decks.Open(cmd.Context(), index)
			if err != nil {
				return err
			}

			snap := controller.Snapshot()
			body, err := decks.ViewBody(cmd.Context(), snap.Slide)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(slideOutput{
					Index:         snap.Index,
					Total:         snap.Total,
					ID:            string(snap.Slide.ID),
					Module:        snap.Slide.Module,
					ModuleOrdinal: snap.ModuleOrdinal,
					Kind:          string(snap.Slide.Kind),
					Title:         snap.Slide.Title,
					Subtitle:      snap.Slide.Subtitle,
					Progress:      snap.Progress,
					IsFirst:       snap.IsFirst,
					IsLast:        snap.IsLast,
					Body:          body,
				})
			}

			tr, err := app.translator()
			if err != nil {
				return err
			}

			rendered, err := app.frameRenderer(slide.Frame{
				DeckTitle: deck.Title,
				Snapshot:  snap,
				Body:      body,
			}, tr, app.renderOptions(width))
			if err != nil {
				return fmt.Errorf("render slide: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Zero-based slide index")
	cmd.Flags().IntVar(&width, "width", 0, "Render width in columns (default: ui.width or 80)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("index")
	return cmd
}
