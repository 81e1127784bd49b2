package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Summary holds the derived figures shown beside the geometry view.
type Summary struct {
	Incidence      float64 // degrees
	TargetDistance float64 // m
	NearRange      float64 // m
	FarRange       float64 // m
	NadirDelay     float64 // µs
}

// RenderSummary renders the derived figures as a single styled line.
func RenderSummary(width int, s Summary) string {
	labelSty := lipgloss.NewStyle().Foreground(ColorMidGreen)
	valSty := lipgloss.NewStyle().Foreground(ColorMatrixGreen).Bold(true)

	fields := []struct{ label, value string }{
		{"Incidence", fmt.Sprintf("%.1f°", s.Incidence)},
		{"Target distance", fmt.Sprintf("%.1f m", s.TargetDistance)},
		{"RX window", fmt.Sprintf("%.0f-%.0f m", s.NearRange, s.FarRange)},
		{"Nadir echo", fmt.Sprintf("%.2f µs", s.NadirDelay)},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, labelSty.Render(f.label+": ")+valSty.Render(f.value))
	}
	line := strings.Join(parts, "  ")
	if lipgloss.Width(line) > width && width > 0 {
		// Fall back to the two most useful figures on narrow screens.
		line = strings.Join(parts[:2], "  ")
	}
	return line
}
