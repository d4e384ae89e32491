package proxy

import "math"

// FilterOptions bounds which records are plotted.
type FilterOptions struct {
	MinYears float64
	MaxYears float64
	// Limit caps the number of retained records; the first Limit valid
	// records in source order are kept. Zero means no cap.
	Limit int
	// ValidateAll also rejects records whose series values are not numeric.
	// Off, such values are kept and show up as gaps in the drawn lines.
	ValidateAll bool
}

func DefaultFilter() FilterOptions {
	return FilterOptions{MinYears: 0, MaxYears: 2500, Limit: 2500}
}

// Valid reports whether r passes the filter.
func (o FilterOptions) Valid(r Record) bool {
	y := r.YearsBefore2023
	if math.IsNaN(y) || y < o.MinYears || y > o.MaxYears {
		return false
	}
	if o.ValidateAll {
		for _, v := range []float64{r.CO2, r.CH4, r.TempAnomaly} {
			if math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}

// Filter returns the valid records of recs in source order, truncated to
// o.Limit. recs is not modified.
func Filter(recs []Record, o FilterOptions) []Record {
	n := len(recs)
	if o.Limit > 0 && o.Limit < n {
		n = o.Limit
	}
	out := make([]Record, 0, n)
	for _, r := range recs {
		if o.Limit > 0 && len(out) >= o.Limit {
			break
		}
		if o.Valid(r) {
			out = append(out, r)
		}
	}
	return out
}
