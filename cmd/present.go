package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/monster-deck/internal/adapters/render/slide"
	"github.com/bnema/monster-deck/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newPresentCmd(app *app) *cobra.Command {
	var (
		start      int
		withRemote bool
		resume     bool
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "present",
		Short: "Present the deck interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			decks, repo, err := app.deckService()
			if err != nil {
				return err
			}

			progress, closeProgress, err := app.progressService(resume)
			if err != nil {
				return err
			}
			defer closeProgress()

			controller, deck, err := app.openPresentation(ctx, decks, repo, progress, start, resume)
			if err != nil {
				return err
			}

			tr, err := app.translator()
			if err != nil {
				return err
			}

			var remoteErr <-chan error
			if withRemote {
				remoteErr, err = app.startRemote(ctx, cmd.ErrOrStderr(), controller, deck.Title, addr)
				if err != nil {
					return err
				}
			}

			renderer := slide.NewRenderer(tr, app.renderOptions(0))
			model := tui.NewModel(ctx, controller, repo, renderer, tui.Options{
				DeckTitle: deck.Title,
				Width:     app.cfg.Width,
				Logger:    app.logger.Named("tui"),
				Follow:    withRemote,
			})

			runErr := app.runPresenter(ctx, model)
			cancel()
			app.recordProgress(ctx, progress, repo, controller)
			if remoteErr != nil {
				if err := <-remoteErr; err != nil && runErr == nil {
					runErr = err
				}
			}
			if runErr != nil {
				return fmt.Errorf("present deck: %w", runErr)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "Zero-based slide index to start on")
	cmd.Flags().BoolVar(&resume, "resume", false, "Start on the slide where the last session ended and save the slide on exit")
	cmd.Flags().BoolVar(&withRemote, "remote", false, "Also serve the browser/websocket remote control")
	cmd.Flags().StringVar(&addr, "addr", "", "Remote listen address (default: remote.addr)")
	return cmd
}
