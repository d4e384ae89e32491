package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"paleochart/internal/chart"
	"paleochart/internal/proxy"
)

// HTMLPage writes a standalone page with a browser-side zoomable chart of recs.
func HTMLPage(w io.Writer, recs []proxy.Record, layout chart.Layout) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: chart.Title,
			ChartID:   "paleochart",
			Width:     fmt.Sprintf("%dpx", int(layout.Width)),
			Height:    fmt.Sprintf("%dpx", int(layout.Height)),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: chart.Title,
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Year",
			Type: "value",
			Min:  "dataMin",
			Max:  "dataMax",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  chart.CO2.Label,
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", XAxisIndex: []int{0}, Start: 0, End: 100},
			opts.DataZoom{Type: "slider", XAxisIndex: []int{0}, Start: 0, End: 100},
		),
	)
	// CH4 and Temp get their own scales but no visible axis
	line.ExtendYAxis(
		opts.YAxis{Name: chart.CH4.Label, Type: "value", Show: opts.Bool(false), Scale: opts.Bool(true)},
		opts.YAxis{Name: chart.Temp.Label, Type: "value", Show: opts.Bool(false), Scale: opts.Bool(true)},
	)

	for i, s := range chart.AllSeries() {
		line.AddSeries(s.Label, lineData(recs, s),
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: i, ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: 1.5}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}
	return line.Render(w)
}

// lineData pairs each record's year with the series value. Values that are
// not numbers become "-", which the chart draws as a gap.
func lineData(recs []proxy.Record, s chart.Series) []opts.LineData {
	out := make([]opts.LineData, 0, len(recs))
	for _, r := range recs {
		v := s.Value(r)
		if math.IsNaN(v) {
			out = append(out, opts.LineData{Value: []interface{}{r.YearsBefore2023, "-"}})
			continue
		}
		out = append(out, opts.LineData{Value: []interface{}{r.YearsBefore2023, v}})
	}
	return out
}
