package tui

import (
	"github.com/charmbracelet/lipgloss"

	"paleochart/internal/chart"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	hoverFg   = lipgloss.Color("#FFA500")
	errFg     = lipgloss.Color("#EF4444")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	axisStyle  = lipgloss.NewStyle().Foreground(baseDimFg)
	hoverStyle = lipgloss.NewStyle().Foreground(hoverFg).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(errFg)
)

// seriesStyles holds one foreground style per series, in chart order.
var seriesStyles = func() []lipgloss.Style {
	all := chart.AllSeries()
	out := make([]lipgloss.Style, len(all))
	for i, s := range all {
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
	}
	return out
}()
