package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the one-line summary shown at the bottom of the screen.
type Status struct {
	PRF       float64 // Hz
	FinalPRF  float64 // Hz
	Replicas  int
	Span      float64 // µs
	Truncated bool
	Message   string
	Err       error
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	var state string
	switch {
	case s.Err != nil:
		state = StyleStatusError.Render("[" + s.Err.Error() + "]")
	case s.Truncated:
		state = StyleStatusWarn.Render("[TRUNCATED]")
	default:
		state = StyleStatusOK.Render("[OK]")
	}

	ambiguities := s.Replicas - 1
	if ambiguities < 0 {
		ambiguities = 0
	}
	info := fmt.Sprintf(" PRF: %.1f Hz  Final PRF: %.1f Hz  Ambiguities: %d  Span: %.1f µs",
		s.PRF, s.FinalPRF, ambiguities, s.Span)
	if s.Message != "" {
		info += "  " + s.Message
	}

	content := state + StyleStatusBar.Foreground(ColorGreen).Render(info)

	// Padding(0, 1) takes two columns of the bar width.
	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
