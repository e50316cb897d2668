package ports

import (
	"context"

	"github.com/bnema/monster-deck/internal/domain"
)

// ProgressStore remembers the last slide per deck. Load returns
// domain.ErrNoProgress when nothing was saved for deck.
type ProgressStore interface {
	Load(ctx context.Context, deck string) (domain.Progress, error)
	Save(ctx context.Context, progress domain.Progress) error
}
