package domain

import (
	"fmt"
	"strings"
)

type SlideID string
type Kind string

// ViewRef is an opaque handle to renderer-owned content.
type ViewRef string

const (
	KindVisual Kind = "visual"
	KindTheory Kind = "theory"
	KindEnd    Kind = "end"
)

func (k Kind) Valid() bool {
	switch k {
	case KindVisual, KindTheory, KindEnd:
		return true
	default:
		return false
	}
}

type Slide struct {
	ID       SlideID
	Module   string
	Kind     Kind
	Title    string
	Subtitle string
	View     ViewRef
}

func (s Slide) Validate() error {
	if strings.TrimSpace(string(s.ID)) == "" {
		return ErrMissingSlideID
	}
	if !s.Kind.Valid() {
		return fmt.Errorf("slide %q: %w %q", s.ID, ErrUnknownKind, s.Kind)
	}

	return nil
}

type Deck struct {
	Title  string
	Slides []Slide
}

type PresentationState struct {
	CurrentIndex int
	MenuOpen     bool
}

func NewPresentationState() PresentationState {
	return PresentationState{}
}
