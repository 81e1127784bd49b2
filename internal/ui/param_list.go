package ui

import (
	"fmt"
	"strings"

	"sarconf/internal/sar"
)

// RenderParamList renders the scrollable parameter list with a cursor.
// Group headings are inserted whenever the group changes. The title stays
// fixed at the top and the selected field's help line at the bottom; only
// the entries scroll.
func RenderParamList(fields []sar.Field, p sar.Params, width, height, cursorIndex int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("PARAMETERS [%s]", p.Name))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}

	help := ""
	if cursorIndex >= 0 && cursorIndex < len(fields) {
		help = fields[cursorIndex].Help
	}
	footer := StyleHelp.Render(truncRaw(help, innerW))

	innerH := height - 2
	if innerH < len(headerLines)+2 {
		innerH = len(headerLines) + 2
	}
	space := innerH - len(headerLines) - 1

	// Build every row first, remembering where the cursor lands.
	var rows []string
	cursorRow := 0
	group := ""
	for i, f := range fields {
		if f.Group != group {
			group = f.Group
			rows = append(rows, StyleGroupTitle.Render(truncRaw(" "+group, innerW)))
		}
		if i == cursorIndex {
			cursorRow = len(rows)
		}
		rows = append(rows, renderParamEntry(f, p, innerW, i == cursorIndex))
	}

	// Compute viewport start so cursor is always visible
	viewStart := 0
	if cursorRow >= space {
		viewStart = cursorRow - space + 1
	}
	end := viewStart + space
	if end > len(rows) {
		end = len(rows)
	}
	visible := rows[viewStart:end]

	all := make([]string, 0, innerH)
	all = append(all, headerLines...)
	all = append(all, visible...)
	for len(all) < innerH-1 {
		all = append(all, "")
	}
	all = append(all, footer)

	content := strings.Join(all, "\n")
	rendered := StylePanelActive.Width(width - 2).Height(innerH).Render(content)

	// Hard clamp rendered output to exactly `height` lines.
	// lipgloss Height() only sets a minimum; it won't truncate overflow.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

func renderParamEntry(f sar.Field, p sar.Params, maxW int, isCursor bool) string {
	value := FormatValue(f, p)
	labelW := maxW - len([]rune(value)) - len([]rune(f.Unit)) - 4
	if labelW < 4 {
		labelW = 4
	}
	label := truncRaw(f.Label, labelW)

	if isCursor {
		raw := truncRaw(fmt.Sprintf("> %s %s %s", label, value, f.Unit), maxW)
		return cursorRowSty.Render(raw)
	}
	return "  " + StyleParamLabel.Render(label) + " " + StyleParamValue.Render(value) + " " + StyleParamUnit.Render(f.Unit)
}

// FormatValue prints a field value the way the list shows it.
func FormatValue(f sar.Field, p sar.Params) string {
	if f.IsCount() {
		return fmt.Sprintf("%d", int(f.Get(p)))
	}
	return fmt.Sprintf("%.1f", f.Get(p))
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	if len(r) < w {
		return s + strings.Repeat(" ", w-len(r))
	}
	return s
}
