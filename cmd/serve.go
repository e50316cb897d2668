package cmd

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/monster-deck/internal/adapters/remote"
	"github.com/bnema/monster-deck/internal/application"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var (
		start  int
		resume bool
		addr   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the deck headless and drive it from a browser or websocket client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

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

			errCh, err := app.startRemote(ctx, cmd.OutOrStdout(), controller, deck.Title, addr)
			if err != nil {
				return err
			}

			err = <-errCh
			app.recordProgress(ctx, progress, repo, controller)
			return err
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "Zero-based slide index to start on")
	cmd.Flags().BoolVar(&resume, "resume", false, "Start on the slide where the last session ended and save the slide on exit")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: remote.addr)")
	return cmd
}

// startRemote listens on addr (or remote.addr) and serves controller until ctx
// is done. The returned channel yields the server's exit error.
func (a *app) startRemote(ctx context.Context, out io.Writer, controller *application.Controller, deckTitle, addr string) (<-chan error, error) {
	if addr == "" {
		addr = a.cfg.Remote
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen remote: %w", err)
	}

	if _, err := fmt.Fprintf(out, "remote control for %q on http://%s\n", deckTitle, ln.Addr()); err != nil {
		_ = ln.Close()
		return nil, err
	}

	srv := remote.NewServer(controller, deckTitle, a.logger.Named("remote"))
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx, ln)
	}()

	return errCh, nil
}
