package chart

import "paleochart/internal/proxy"

// Series is one plotted field.
type Series struct {
	ID    string
	Key   string
	Label string
	Color string
	Value func(proxy.Record) float64
}

var (
	CO2 = Series{ID: "co2", Key: proxy.KeyCO2, Label: "CO2 (ppmv)", Color: "#ff0000",
		Value: func(r proxy.Record) float64 { return r.CO2 }}
	CH4 = Series{ID: "ch4", Key: proxy.KeyCH4, Label: "CH4", Color: "#0000ff",
		Value: func(r proxy.Record) float64 { return r.CH4 }}
	Temp = Series{ID: "temp", Key: proxy.KeyTemp, Label: "Temp", Color: "#008000",
		Value: func(r proxy.Record) float64 { return r.TempAnomaly }}
)

// AllSeries lists the series in drawing order. The first is the primary one
// and gets the drawn y-axis.
func AllSeries() []Series { return []Series{CO2, CH4, Temp} }

func years(r proxy.Record) float64 { return r.YearsBefore2023 }
