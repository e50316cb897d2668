package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/monster-deck/internal/domain"
	"github.com/bnema/monster-deck/internal/ports"
	"go.uber.org/zap"
)

type ProgressService struct {
	store  ports.ProgressStore
	clock  ports.Clock
	logger *zap.Logger
}

func NewProgressService(store ports.ProgressStore, clock ports.Clock, logger *zap.Logger) *ProgressService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ProgressService{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Resume finds the saved slide for deck in registry. The slide is matched by
// id, so a deck edited since the last session still resumes on the same
// content. ok is false when there is nothing usable to resume.
func (s *ProgressService) Resume(ctx context.Context, deck string, registry *domain.Registry) (index int, ok bool, err error) {
	progress, err := s.store.Load(ctx, deck)
	if errors.Is(err, domain.ErrNoProgress) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load progress: %w", err)
	}

	index, ok = registry.IndexOf(progress.SlideID)
	if !ok {
		s.logger.Info("saved slide no longer in deck",
			zap.String("deck", deck),
			zap.String("slide", string(progress.SlideID)),
		)
		return 0, false, nil
	}

	return index, true, nil
}

func (s *ProgressService) Record(ctx context.Context, deck string, snap Snapshot) error {
	progress := domain.Progress{
		Deck:      deck,
		SlideID:   snap.Slide.ID,
		Index:     snap.Index,
		UpdatedAt: s.clock.Now().UTC(),
	}

	if err := s.store.Save(ctx, progress); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	s.logger.Debug("progress saved", zap.String("deck", deck), zap.Int("index", snap.Index))
	return nil
}
