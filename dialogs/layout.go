package dialogs

import "github.com/charmbracelet/lipgloss"

func center(s string, width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center)
	return box.Render(s)
}

// Overlay renders d in the middle of a width x height area.
func Overlay(d Dialog, width, height int) string {
	if d == nil || !d.IsVisible() {
		return ""
	}
	return center(d.View(), width, height)
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")). // match the overlay
		Padding(1, 2).
		Width(60)
}

func hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}
