package slide

import (
	"github.com/bnema/monster-deck/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type panel int

const (
	panelNone panel = iota
	panelBordered
	panelDouble
)

// kindView is how a slide kind is dressed: the icon next to the subtitle and
// the panel its body sits in.
type kindView struct {
	icon    string
	labelID string
	accent  lipgloss.Color
	panel   panel
}

var kindViews = map[domain.Kind]kindView{
	domain.KindVisual: {icon: "⚡", labelID: "KindVisual", accent: lipgloss.Color("220"), panel: panelNone},
	domain.KindTheory: {icon: "</>", labelID: "KindTheory", accent: lipgloss.Color("33"), panel: panelBordered},
	domain.KindEnd:    {icon: "★", labelID: "KindEnd", accent: lipgloss.Color("135"), panel: panelDouble},
}

func viewFor(kind domain.Kind) kindView {
	if view, ok := kindViews[kind]; ok {
		return view
	}

	return kindViews[domain.KindTheory]
}

func (s styles) panelFor(p panel) (lipgloss.Style, bool) {
	switch p {
	case panelBordered:
		return s.theoryPanel, true
	case panelDouble:
		return s.endPanel, true
	default:
		return lipgloss.Style{}, false
	}
}
