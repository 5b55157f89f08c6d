package tui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	dark      bool
	title     lipgloss.Style
	muted     lipgloss.Style
	status    lipgloss.Style
	highlight lipgloss.Style
	bar       lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	box       lipgloss.Style
}

func themeFor(dark bool) theme {
	fg, muted, accent, boxBorder := lipgloss.Color("0"), lipgloss.Color("8"), lipgloss.Color("34"), lipgloss.Color("240")
	if dark {
		fg, muted, accent, boxBorder = lipgloss.Color("15"), lipgloss.Color("245"), lipgloss.Color("71"), lipgloss.Color("238")
	}
	return theme{
		dark:      dark,
		title:     lipgloss.NewStyle().Bold(true).Foreground(fg),
		muted:     lipgloss.NewStyle().Foreground(muted),
		status:    lipgloss.NewStyle().Foreground(accent),
		highlight: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
		bar:       lipgloss.NewStyle().Foreground(accent),
		tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		activeTab: lipgloss.NewStyle().Bold(true).Foreground(fg).Underline(true).Padding(0, 1),
		box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(boxBorder).Padding(0, 1),
	}
}
