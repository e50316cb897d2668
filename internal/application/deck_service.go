package application

import (
	"context"
	"fmt"

	"github.com/bnema/monster-deck/internal/domain"
	"github.com/bnema/monster-deck/internal/ports"
	"go.uber.org/zap"
)

type DeckService struct {
	repo   ports.DeckRepository
	views  ports.ViewSource
	logger *zap.Logger
}

func NewDeckService(repo ports.DeckRepository, views ports.ViewSource, logger *zap.Logger) *DeckService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DeckService{
		repo:   repo,
		views:  views,
		logger: logger,
	}
}

func (s *DeckService) Load(ctx context.Context) (domain.Deck, *domain.Registry, error) {
	deck, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Deck{}, nil, fmt.Errorf("load deck: %w", err)
	}

	registry, err := domain.NewRegistry(deck.Slides)
	if err != nil {
		return domain.Deck{}, nil, fmt.Errorf("build slide registry: %w", err)
	}

	return deck, registry, nil
}

// Open loads the deck and seeds a controller at start.
func (s *DeckService) Open(ctx context.Context, start int) (*Controller, domain.Deck, error) {
	deck, registry, err := s.Load(ctx)
	if err != nil {
		return nil, domain.Deck{}, err
	}

	return s.Start(deck, registry, start)
}

// Start seeds a controller for an already loaded deck.
func (s *DeckService) Start(deck domain.Deck, registry *domain.Registry, start int) (*Controller, domain.Deck, error) {
	state := domain.NewPresentationState()
	state.CurrentIndex = start

	controller, err := NewController(registry, state, s.logger.Named("controller"))
	if err != nil {
		return nil, domain.Deck{}, fmt.Errorf("open presentation: %w", err)
	}

	s.logger.Info("presentation opened",
		zap.String("deck", deck.Title),
		zap.Int("slides", registry.Size()),
		zap.Int("start", start),
	)

	return controller, deck, nil
}

// Menu loads the deck and lists its slides grouped by module.
func (s *DeckService) Menu(ctx context.Context) (DeckListing, error) {
	deck, registry, err := s.Load(ctx)
	if err != nil {
		return DeckListing{}, err
	}

	return DeckListing{
		Title:   deck.Title,
		Slides:  registry.Size(),
		Modules: BuildMenu(registry),
	}, nil
}

func (s *DeckService) ViewBody(ctx context.Context, slide domain.Slide) (string, error) {
	body, err := s.views.Body(ctx, slide.View)
	if err != nil {
		return "", fmt.Errorf("resolve view for slide %q: %w", slide.ID, err)
	}

	return body, nil
}
