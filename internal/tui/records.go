package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"paleochart/internal/proxy"
)

func recordColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "years", Width: 10},
		{Title: "CO2", Width: 10},
		{Title: "CH4", Width: 10},
		{Title: "Temp", Width: 10},
	}
}

func recordRows(recs []proxy.Record) []table.Row {
	rows := make([]table.Row, 0, len(recs))
	for i, r := range recs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			formatValue(r.YearsBefore2023),
			formatValue(r.CO2),
			formatValue(r.CH4),
			formatValue(r.TempAnomaly),
		})
	}
	return rows
}

// refreshRecords fills the table with the plotted records.
func (m *Model) refreshRecords() {
	if len(m.records) == 0 {
		m.showRecords = false
		m.status = "no records loaded"
		return
	}
	m.tbl.SetRows(recordRows(m.records))
	m.tbl.GotoTop()
}
