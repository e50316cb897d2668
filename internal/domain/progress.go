package domain

import "time"

// Progress is the last slide a reader had open in a deck. Deck identifies the
// deck source; SlideID survives reordering where Index does not.
type Progress struct {
	Deck      string
	SlideID   SlideID
	Index     int
	UpdatedAt time.Time
}
