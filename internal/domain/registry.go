package domain

import "fmt"

type Group struct {
	Module  string
	Indices []int
}

// Registry is the ordered, read-only slide catalog. It is never mutated after
// NewRegistry returns.
type Registry struct {
	slides   []Slide
	groups   []Group
	ordinals []int
}

func NewRegistry(slides []Slide) (*Registry, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}

	seen := make(map[SlideID]int, len(slides))
	for i, slide := range slides {
		if err := slide.Validate(); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
		if first, ok := seen[slide.ID]; ok {
			return nil, fmt.Errorf("slide %d: %w %q (first at %d)", i, ErrDuplicateSlideID, slide.ID, first)
		}
		seen[slide.ID] = i
	}

	owned := make([]Slide, len(slides))
	copy(owned, slides)

	groups, ordinals := groupByModule(owned)

	return &Registry{slides: owned, groups: groups, ordinals: ordinals}, nil
}

func (r *Registry) Size() int {
	return len(r.slides)
}

func (r *Registry) Get(index int) (Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return Slide{}, &OutOfRangeError{Op: "get", Index: index, Size: len(r.slides)}
	}

	return r.slides[index], nil
}

// Groups returns slide indices grouped by module in first-seen order.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(r.groups))
	for i, group := range r.groups {
		indices := make([]int, len(group.Indices))
		copy(indices, group.Indices)
		out[i] = Group{Module: group.Module, Indices: indices}
	}

	return out
}

// IndexOf returns the position of the slide with the given id.
func (r *Registry) IndexOf(id SlideID) (int, bool) {
	for i, slide := range r.slides {
		if slide.ID == id {
			return i, true
		}
	}

	return 0, false
}

// ModuleOrdinal is the 1-based position of the slide's module in Groups, or 0
// for an invalid index.
func (r *Registry) ModuleOrdinal(index int) int {
	if index < 0 || index >= len(r.ordinals) {
		return 0
	}

	return r.ordinals[index]
}

func groupByModule(slides []Slide) ([]Group, []int) {
	groups := make([]Group, 0)
	position := make(map[string]int)
	ordinals := make([]int, len(slides))

	for i, slide := range slides {
		pos, ok := position[slide.Module]
		if !ok {
			pos = len(groups)
			position[slide.Module] = pos
			groups = append(groups, Group{Module: slide.Module})
		}
		groups[pos].Indices = append(groups[pos].Indices, i)
		ordinals[i] = pos + 1
	}

	return groups, ordinals
}
