package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sarconf/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, name, convention string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"←→", " adjust"},
		{"U", "ndo"},
		{"C", "onvention"},
		{"E", "xport"},
		{"R", "eset"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	info := StyleMenuLabel.Render(fmt.Sprintf("Config: %s  Angle: %s", name, convention))

	left := StyleMenuKey.Render(title) + menu
	right := info + " "

	// Padding(0, 1) takes two columns of the bar width.
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
