package ui

import "strings"

// RenderDiagramPanel wraps diagram content with a titled, styled border.
// The diagram itself is rendered by the radar package to avoid import cycles.
func RenderDiagramPanel(width, height int, title, content, legend string) string {
	lines := []string{StylePanelTitle.Render(title)}
	if content != "" {
		lines = append(lines, content)
	}
	if legend != "" {
		lines = append(lines, legend)
	}
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}
