package application

import "github.com/bnema/monster-deck/internal/domain"

type Snapshot struct {
	Slide         domain.Slide
	Index         int
	Total         int
	Progress      float64
	IsFirst       bool
	IsLast        bool
	MenuOpen      bool
	ModuleOrdinal int
	// Seq grows with every state change; the larger Seq is the newer state.
	Seq uint64
}

type MenuEntry struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type MenuGroup struct {
	Module  string      `json:"module"`
	Entries []MenuEntry `json:"entries"`
}

type DeckListing struct {
	Title   string      `json:"title"`
	Slides  int         `json:"slides"`
	Modules []MenuGroup `json:"modules"`
}

// BuildMenu turns the registry grouping into menu rows.
func BuildMenu(registry *domain.Registry) []MenuGroup {
	groups := registry.Groups()
	menu := make([]MenuGroup, 0, len(groups))
	for _, group := range groups {
		entries := make([]MenuEntry, 0, len(group.Indices))
		for _, index := range group.Indices {
			slide, err := registry.Get(index)
			if err != nil {
				panic(err)
			}
			entries = append(entries, MenuEntry{
				Index:    index,
				ID:       string(slide.ID),
				Kind:     string(slide.Kind),
				Title:    slide.Title,
				Subtitle: slide.Subtitle,
			})
		}
		menu = append(menu, MenuGroup{Module: group.Module, Entries: entries})
	}

	return menu
}

// MenuOrder flattens the menu into the order a cursor walks it.
func MenuOrder(menu []MenuGroup) []int {
	order := make([]int, 0)
	for _, group := range menu {
		for _, entry := range group.Entries {
			order = append(order, entry.Index)
		}
	}

	return order
}
