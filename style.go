package main

import "github.com/charmbracelet/lipgloss"

const (
	panelBorderColor       = "240"
	activePanelBorderColor = "#fc8d59"
	axisTextFGColor        = "#a0a0a0"
	titleTextFGColor       = "#e0e0e0"
	overlayBGColor         = "236"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(panelBorderColor))
	activePanelStyle = panelStyle.
				BorderForeground(lipgloss.Color(activePanelBorderColor))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleTextFGColor))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(axisTextFGColor))

	brushArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")). // subtle gray
			Padding(0, 0)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(axisTextFGColor)).
			Align(lipgloss.Center, lipgloss.Center)
)
