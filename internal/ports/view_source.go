package ports

import (
	"context"

	"github.com/bnema/monster-deck/internal/domain"
)

// ViewSource resolves the opaque view handle of a slide into renderable
// markdown.
type ViewSource interface {
	Body(ctx context.Context, ref domain.ViewRef) (string, error)
}
