package remote

import (
	"errors"
	"fmt"

	"github.com/bnema/monster-deck/internal/application"
)

var ErrUnknownAction = errors.New("unknown remote action")

const (
	actionNext       = "next"
	actionPrevious   = "previous"
	actionFirst      = "first"
	actionLast       = "last"
	actionJump       = "jump"
	actionMenuOpen   = "menu_open"
	actionMenuClose  = "menu_close"
	actionMenuToggle = "menu_toggle"
)

type State struct {
	Index         int     `json:"index"`
	Total         int     `json:"total"`
	ID            string  `json:"id"`
	Module        string  `json:"module"`
	ModuleOrdinal int     `json:"module_ordinal"`
	Kind          string  `json:"kind"`
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	Progress      float64 `json:"progress"`
	IsFirst       bool    `json:"is_first"`
	IsLast        bool    `json:"is_last"`
	MenuOpen      bool    `json:"menu_open"`
}

func stateFromSnapshot(snap application.Snapshot) State {
	return State{
		Index:         snap.Index,
		Total:         snap.Total,
		ID:            string(snap.Slide.ID),
		Module:        snap.Slide.Module,
		ModuleOrdinal: snap.ModuleOrdinal,
		Kind:          string(snap.Slide.Kind),
		Title:         snap.Slide.Title,
		Subtitle:      snap.Slide.Subtitle,
		Progress:      snap.Progress,
		IsFirst:       snap.IsFirst,
		IsLast:        snap.IsLast,
		MenuOpen:      snap.MenuOpen,
	}
}

// Event is what websocket clients receive.
type Event struct {
	Type  string `json:"type"`
	State *State `json:"state,omitempty"`
	Error string `json:"error,omitempty"`
}

// Command is what websocket clients send. Index is only read for "jump".
type Command struct {
	Action string `json:"action"`
	Index  int    `json:"index,omitempty"`
}

type Deck struct {
	Title   string                  `json:"title"`
	Modules []application.MenuGroup `json:"modules"`
}

// apply forwards cmd to the controller.
func apply(controller *application.Controller, cmd Command) error {
	switch cmd.Action {
	case actionNext:
		controller.Next()
	case actionPrevious:
		controller.Previous()
	case actionFirst:
		controller.First()
	case actionLast:
		controller.Last()
	case actionJump:
		return controller.JumpTo(cmd.Index)
	case actionMenuOpen:
		controller.OpenMenu()
	case actionMenuClose:
		controller.CloseMenu()
	case actionMenuToggle:
		controller.ToggleMenu()
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, cmd.Action)
	}

	return nil
}
