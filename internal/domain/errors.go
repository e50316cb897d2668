package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange       = errors.New("slide index out of range")
	ErrEmptyDeck        = errors.New("deck has no slides")
	ErrDuplicateSlideID = errors.New("duplicate slide id")
	ErrMissingSlideID   = errors.New("slide id is required")
	ErrUnknownKind      = errors.New("unknown slide kind")
	ErrViewNotFound     = errors.New("slide view not found")
	ErrNoProgress       = errors.New("no saved progress")
)

// OutOfRangeError reports an index outside [0, Size). Callers are expected to
// validate indices against the registry, so this is a contract violation.
type OutOfRangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d not in [0, %d)", e.Op, e.Index, e.Size)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
