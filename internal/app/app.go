package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"sarconf/internal/chronogram"
	"sarconf/internal/config"
	"sarconf/internal/geometry"
	"sarconf/internal/monitoring"
	"sarconf/internal/plotting"
	"sarconf/internal/radar"
	"sarconf/internal/sar"
	"sarconf/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	history *History
}

// AppModel is the root Bubble Tea model for the configurator.
type AppModel struct {
	width  int
	height int

	params sar.Params
	fields []sar.Field
	cursor int

	exportDir    string
	exportFormat string
	message      string
	exportErr    error

	shared *shared
}

// New creates a new AppModel editing params. Exports go to exportDir.
func New(params sar.Params, exportDir, exportFormat string) AppModel {
	return AppModel{
		params:       params.Clamp(),
		fields:       sar.Fields(),
		exportDir:    exportDir,
		exportFormat: exportFormat,
		shared: &shared{
			history: NewHistory(config.HistoryDepth),
		},
	}
}

// Params returns the current parameter snapshot.
func (m AppModel) Params() sar.Params { return m.params }

// Cursor returns the index of the selected field.
func (m AppModel) Cursor() int { return m.cursor }

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ExportedMsg:
		m.exportErr = msg.Err
		if msg.Err != nil {
			monitoring.Logf("export failed: %v", msg.Err)
			m.message = ""
		} else {
			m.message = fmt.Sprintf("exported %d files to %s", len(msg.Files), m.exportDir)
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}

	case "home":
		m.cursor = 0

	case "end":
		m.cursor = len(m.fields) - 1

	case "right", "l":
		m = m.nudge(1)

	case "left", "h":
		m = m.nudge(-1)

	case "shift+right", "L":
		m = m.nudge(config.CoarseStepScale)

	case "shift+left", "H":
		m = m.nudge(-config.CoarseStepScale)

	case "u", "U":
		if prev, ok := m.shared.history.Pop(); ok {
			m.params = prev
			m.message = "undo"
		}

	case "c", "C":
		m.shared.history.Push(m.params)
		if m.params.Convention == geometry.LookAngle {
			m.params.Convention = geometry.DepressionAngle
		} else {
			m.params.Convention = geometry.LookAngle
		}
		monitoring.Logf("angle convention: %s", m.params.Convention)

	case "r", "R":
		m.shared.history.Push(m.params)
		name := m.params.Name
		m.params = sar.Default()
		m.params.Name = name
		m.message = "reset to defaults"

	case "e", "E":
		m.message = "exporting..."
		return m, exportCmd(m.exportDir, m.exportFormat, m.params)
	}

	return m, nil
}

func (m AppModel) nudge(steps float64) AppModel {
	if m.cursor < 0 || m.cursor >= len(m.fields) {
		return m
	}
	f := m.fields[m.cursor]
	before := f.Get(m.params)
	next := m.params
	f.Nudge(&next, steps)
	if f.Get(next) == before {
		return m
	}
	m.shared.history.Push(m.params)
	m.params = next
	m.message = ""
	monitoring.Logf("%s: %g -> %g", f.Key, before, f.Get(next))
	return m
}

func exportCmd(dir, format string, p sar.Params) tea.Cmd {
	return func() tea.Msg {
		files, err := plotting.Export(dir, format, p)
		return ExportedMsg{Files: files, Err: err}
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing SAR configurator..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 12 {
		bodyH = 12
	}

	listW := m.width / 4
	if listW < 32 {
		listW = 32
	}
	rightW := m.width - listW
	if rightW < 30 {
		rightW = 30
	}

	geoH := bodyH * 2 / 3
	chronoH := bodyH - geoH

	p := m.params
	tl, tlErr := p.Timeline()
	prims := p.Primitives()
	near, far := p.RangeWindow()

	menuBar := ui.RenderMenuBar(m.width, p.Name, p.Convention.String())
	paramList := ui.RenderParamList(m.fields, p, listW, bodyH, m.cursor)

	innerW := rightW - 4
	// border (2) + title (1) + legend (1) + summary (1)
	geoContent := radar.RenderGeometry(innerW, geoH-5, prims)
	legend := radar.RenderLegend(prims) + "\n" + ui.RenderSummary(innerW, ui.Summary{
		Incidence:      p.Incidence(),
		TargetDistance: p.TargetDistance(),
		NearRange:      near,
		FarRange:       far,
		NadirDelay:     p.NadirDelay(),
	})
	geoPanel := ui.RenderDiagramPanel(rightW, geoH, "GEOMETRY", geoContent, legend)

	// border (2) + title (1)
	chronoContent := ""
	if tlErr == nil {
		chronoContent = radar.RenderChronogram(innerW, chronoH-3, tl)
	}
	chronoPanel := ui.RenderDiagramPanel(rightW, chronoH, "CHRONOGRAM", chronoContent, "")

	statusBar := ui.RenderStatusBar(m.width, m.status(tl, tlErr))

	return ui.ComposeLayout(menuBar, paramList, geoPanel, chronoPanel, statusBar)
}

func (m AppModel) status(tl chronogram.Timeline, tlErr error) ui.Status {
	s := ui.Status{
		PRF:       m.params.PRF(),
		FinalPRF:  m.params.FinalPRF(),
		Replicas:  tl.Replicas,
		Span:      tl.Span(),
		Truncated: tl.Truncated,
		Message:   m.message,
		Err:       tlErr,
	}
	if s.Err == nil {
		s.Err = m.exportErr
	}
	return s
}
