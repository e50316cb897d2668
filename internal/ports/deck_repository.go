package ports

import (
	"context"

	"github.com/bnema/monster-deck/internal/domain"
)

type DeckRepository interface {
	Load(ctx context.Context) (domain.Deck, error)
}
