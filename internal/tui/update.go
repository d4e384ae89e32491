package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"paleochart/internal/chart"
	"paleochart/internal/export"
	"paleochart/internal/proxy"
)

// Gesture steps.
const (
	wheelFactor = 1.25
	keyFactor   = 1.5
	// panFraction of the canvas width per arrow key press
	panFraction = 0.1
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case recordsMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error("Could not load records", "source", msg.source, "err", msg.err)
			m.setError("load error", msg.err)
			return m, nil
		}
		m.applyRecords(msg.source, msg.recs)
		return m, nil
	case exportedMsg:
		if msg.err != nil {
			m.logger.Error("Could not export chart", "path", msg.path, "err", msg.err)
			m.setError("export error", msg.err)
			return m, nil
		}
		m.logger.Info("Exported chart", "path", msg.path)
		m.setStatus("exported: " + msg.path)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.pasteMode {
		return m.updatePaste(msg)
	}
	if m.showRecords {
		switch {
		case key.Matches(msg, m.keys.Records), key.Matches(msg, m.keys.Close):
			m.showRecords = false
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.CO2):
		m.toggleSeries(0)
	case key.Matches(msg, m.keys.CH4):
		m.toggleSeries(1)
	case key.Matches(msg, m.keys.Temp):
		m.toggleSeries(2)
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoomCentre(keyFactor)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoomCentre(1 / keyFactor)
	case key.Matches(msg, m.keys.Left):
		m.panBy(panFraction)
	case key.Matches(msg, m.keys.Right):
		m.panBy(-panFraction)
	case key.Matches(msg, m.keys.Reset):
		if m.renderer != nil {
			m.renderer.Zoom(chart.Identity)
			m.setStatus("zoom: reset")
		}
	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
		}
		m.resize()
	case key.Matches(msg, m.keys.Close):
		m.showSidebar = false
		m.resize()
	case key.Matches(msg, m.keys.Paste):
		m.pasteMode = true
		m.ta.SetValue("")
		m.setStatus("paste mode")
		return m, m.ta.Focus()
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, m.keys.Records):
		m.showRecords = true
		m.refreshRecords()
	case key.Matches(msg, m.keys.Export):
		return m, m.exportView()
	case key.Matches(msg, m.keys.Refetch):
		if m.opts.URL == "" {
			m.setStatus("no url configured")
			return m, nil
		}
		m.loading = true
		m.setStatus("fetching " + m.opts.URL)
		return m, tea.Batch(m.spin.Tick, fetchCmd(m.fetcher, m.opts.URL))
	case key.Matches(msg, m.keys.Open):
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loading = true
				m.setStatus("loading " + it.title)
				return m, tea.Batch(m.spin.Tick, loadCmd(it.path))
			}
		}
	default:
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.setStatus("view mode")
		return m, nil
	case "enter":
		v := strings.TrimSpace(m.ta.Value())
		if v == "" {
			m.setStatus("paste: empty")
			return m, nil
		}
		recs, err := proxy.Decode(strings.NewReader(v))
		if err != nil {
			m.setError("json error", err)
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		m.applyRecords("paste", recs)
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// updateMouse turns wheel, drag and motion events into gestures and hover.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	if m.renderer == nil || m.showRecords || m.pasteMode {
		return
	}
	p := m.canvas
	inside := p.contains(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Button == tea.MouseButtonWheelUp && inside:
		m.renderer.ScaleBy(wheelFactor, p.micro(msg.X, msg.Y))
		m.setStatus(fmt.Sprintf("zoom: %.2fx", m.renderer.Transform().K))
	case msg.Button == tea.MouseButtonWheelDown && inside:
		m.renderer.ScaleBy(1/wheelFactor, p.micro(msg.X, msg.Y))
		m.setStatus(fmt.Sprintf("zoom: %.2fx", m.renderer.Transform().K))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside:
		m.dragging = true
		m.dragX = msg.X
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.renderer.TranslateBy(float64(2*(msg.X-m.dragX)), 0)
		m.dragX = msg.X
	}

	m.hovering = false
	if inside {
		rec, ok := m.renderer.Chart().Nearest(m.frameX(), p.micro(msg.X, msg.Y).X)
		m.hovering, m.hoverRec = ok, rec
	}
}

// applyRecords filters recs and shows them, keeping the visible series.
func (m *Model) applyRecords(source string, recs []proxy.Record) {
	kept := proxy.Filter(recs, m.opts.Filter)
	m.records = kept
	m.source = source
	m.renderer, m.scene = nil, nil
	m.hovering, m.dragging = false, false
	m.rebuild()
	if m.showRecords {
		m.refreshRecords()
	}
	m.logger.Info("Loaded records", "source", source, "read", len(recs), "kept", len(kept))
	if m.renderer != nil {
		m.logger.Debug("Chart built", "chart", m.renderer.Chart().Describe())
	}
	m.setStatus(fmt.Sprintf("loaded: %s  records=%d of %d", filepath.Base(source), len(kept), len(recs)))
}

func (m *Model) resize() {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}
	m.rebuild()
}

func (m *Model) toggleSeries(i int) {
	m.show[i] = !m.show[i]
	m.setStatus(fmt.Sprintf("%s: %v", chart.AllSeries()[i].Label, m.show[i]))
}

func (m *Model) zoomCentre(factor float64) {
	if m.renderer == nil {
		return
	}
	m.renderer.ScaleBy(factor, m.renderer.Chart().Zoom().Center())
	m.setStatus(fmt.Sprintf("zoom: %.2fx", m.renderer.Transform().K))
}

func (m *Model) panBy(fraction float64) {
	if m.renderer == nil {
		return
	}
	m.renderer.TranslateBy(fraction*m.renderer.Chart().Layout().InnerWidth(), 0)
}

// exportView writes the current view as SVG at the configured canvas size.
func (m *Model) exportView() tea.Cmd {
	if m.renderer == nil {
		m.setStatus("nothing to export")
		return nil
	}
	o := export.Options{
		Layout:  m.opts.Canvas,
		MinZoom: m.opts.MinZoom,
		MaxZoom: m.opts.MaxZoom,
	}
	cur := m.renderer.Chart().Layout()
	o.Transform = m.renderer.Transform().Retarget(
		o.Layout.InnerWidth()/cur.InnerWidth(),
		o.Layout.InnerHeight()/cur.InnerHeight(),
	)
	name := fmt.Sprintf("paleochart-%s.svg", time.Now().Format("20060102-150405"))
	path := filepath.Join(m.opts.ExportDir, name)
	m.setStatus("exporting " + path)
	return exportCmd(path, m.records, o)
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(prefix string, err error) {
	m.status, m.statusErr = prefix+": "+err.Error(), true
}
