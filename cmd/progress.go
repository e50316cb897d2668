package cmd

import (
	"context"
	"fmt"

	sqliterepo "github.com/bnema/monster-deck/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/monster-deck/internal/adapters/repo/toml"
	"github.com/bnema/monster-deck/internal/application"
	"github.com/bnema/monster-deck/internal/domain"
	"go.uber.org/zap"
)

// progressService opens the progress store when --resume or progress.track
// asks for it; otherwise nothing is persisted. Without --resume a store that
// cannot be opened only disables tracking.
func (a *app) progressService(resume bool) (*application.ProgressService, func(), error) {
	if !resume && !a.cfg.Track {
		return nil, func() {}, nil
	}

	store, err := sqliterepo.NewProgressStore(a.cfg.Progress)
	if err != nil {
		if resume {
			return nil, nil, fmt.Errorf("wire progress store: %w", err)
		}
		a.logger.Warn("progress tracking disabled", zap.Error(err))
		return nil, func() {}, nil
	}

	closeStore := func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("close progress store", zap.Error(err))
		}
	}

	return application.NewProgressService(store, nil, a.logger.Named("progress")), closeStore, nil
}

// openPresentation seeds the controller at start, or at the saved slide when
// resume is set and one is found.
func (a *app) openPresentation(ctx context.Context, decks *application.DeckService, repo *tomlrepo.Repository, progress *application.ProgressService, start int, resume bool) (*application.Controller, domain.Deck, error) {
	if !resume || progress == nil {
		return decks.Open(ctx, start)
	}

	deck, registry, err := decks.Load(ctx)
	if err != nil {
		return nil, domain.Deck{}, err
	}

	index, ok, err := progress.Resume(ctx, repo.Source(), registry)
	if err != nil {
		return nil, domain.Deck{}, err
	}
	if ok {
		a.logger.Info("resuming presentation", zap.String("deck", repo.Source()), zap.Int("index", index))
		start = index
	}

	return decks.Start(deck, registry, start)
}

func (a *app) recordProgress(ctx context.Context, progress *application.ProgressService, repo *tomlrepo.Repository, controller *application.Controller) {
	if progress == nil {
		return
	}

	if err := progress.Record(context.WithoutCancel(ctx), repo.Source(), controller.Snapshot()); err != nil {
		a.logger.Warn("record progress", zap.Error(err))
	}
}
