package slide

import "github.com/charmbracelet/lipgloss"

type styles struct {
	deckTitle    lipgloss.Style
	position     lipgloss.Style
	title        lipgloss.Style
	subtitle     lipgloss.Style
	theoryPanel  lipgloss.Style
	endPanel     lipgloss.Style
	navActive    lipgloss.Style
	navPrimary   lipgloss.Style
	navDisabled  lipgloss.Style
	dotCurrent   lipgloss.Style
	dotOther     lipgloss.Style
	menuTitle    lipgloss.Style
	menuModule   lipgloss.Style
	menuEntry    lipgloss.Style
	menuCursor   lipgloss.Style
	menuCurrent  lipgloss.Style
	menuHint     lipgloss.Style
	menuSubtitle lipgloss.Style
}

func newStyles() styles {
	return styles{
		deckTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("183")),
		position:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		theoryPanel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		endPanel:     lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("135")).Padding(0, 1),
		navActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		navPrimary:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("92")).Padding(0, 1),
		navDisabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		dotCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		dotOther:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		menuTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("183")),
		menuModule:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		menuEntry:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		menuCursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("60")),
		menuCurrent:  lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		menuHint:     lipgloss.NewStyle().Faint(true),
		menuSubtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
