package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout puts the parameter list left of the stacked diagram panels,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, paramList, geometryPanel, chronogramPanel, statusBar string) string {
	right := lipgloss.JoinVertical(lipgloss.Left, geometryPanel, chronogramPanel)
	middle := lipgloss.JoinHorizontal(lipgloss.Top, paramList, right)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
