package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"paleochart/internal/chart"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	p := m.plotArea()
	bodyHeight := p.h + axisHeight
	chartWidth := contentWidth - p.x + gutterWidth

	// Header
	header := titleStyle.Render(" " + chart.Title + " ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)
	legend := lipgloss.NewStyle().Width(contentWidth).Render(" " + m.renderLegend())

	// Chart area
	var chartView string
	switch {
	case m.showRecords:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(chartWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(bodyHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		chartView = lipgloss.Place(chartWidth, bodyHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(chartWidth)
		m.ta.SetHeight(min(bodyHeight, 12))
		chartView = lipgloss.NewStyle().Width(chartWidth).Height(bodyHeight).Render(m.ta.View())
	case m.renderer == nil:
		msg := "no records"
		if m.loading {
			msg = m.spin.View() + " fetching records"
		}
		chartView = lipgloss.Place(chartWidth, bodyHeight, lipgloss.Center, lipgloss.Center, dimStyle.Render(msg))
	default:
		chartView = m.renderChart()
	}

	// Body row
	body := chartView
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(bodyHeight).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", chartView)
	}

	// Footer: status with hover readout on the right, then help
	status := dimStyle.Render(" " + m.status + " ")
	if m.statusErr {
		status = errStyle.Render(" " + m.status + " ")
	}
	if m.loading {
		status = m.spin.View() + status
	}
	readout := ""
	if m.hovering && m.renderer != nil {
		readout = dimStyle.Render("  " + describeHover(m.hoverRec) + "  ")
	}
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(readout))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), readout)
	helpLine := ""
	if m.helpVisible {
		helpLine = " " + m.help.View(m.keys)
	}
	footer := lipgloss.NewStyle().Width(contentWidth).MaxHeight(footerHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, helpLine))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, legend, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderChart joins the gutter, the canvas and the x-axis rows.
func (m Model) renderChart() string {
	gutter := m.renderGutter()
	canvas := m.renderCanvas()
	rows := make([]string, 0, len(canvas)+axisHeight)
	for i := range canvas {
		rows = append(rows, gutter[i]+canvas[i])
	}
	axis, labels := m.renderXAxis()
	rows = append(rows, axis, labels)
	return strings.Join(rows, "\n")
}
