package proxy

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDecodeTolerantFields(t *testing.T) {
	in := `[
		{"years_before_2023": 0, "co2_ppmv": 300, "ch4_ppb": 700, "temp_anomaly": -0.2},
		{"years_before_2023": " 12.5 ", "co2_ppmv": "281", "ch4_ppb": null, "temp_anomaly": true},
		{"co2_ppmv": 290, "extra": "ignored"},
		{"years_before_2023": "n/a", "co2_ppmv": [1], "ch4_ppb": {}, "temp_anomaly": ""},
		5
	]`
	recs, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("len = %d", len(recs))
	}
	if r := recs[0]; r.YearsBefore2023 != 0 || r.CO2 != 300 || r.CH4 != 700 || r.TempAnomaly != -0.2 {
		t.Fatalf("rec0 = %+v", r)
	}
	if r := recs[1]; r.YearsBefore2023 != 12.5 || r.CO2 != 281 || !math.IsNaN(r.CH4) || !math.IsNaN(r.TempAnomaly) {
		t.Fatalf("rec1 = %+v", r)
	}
	if r := recs[2]; !math.IsNaN(r.YearsBefore2023) || r.CO2 != 290 {
		t.Fatalf("rec2 = %+v", r)
	}
	r := recs[3]
	for name, v := range map[string]float64{"years": r.YearsBefore2023, "co2": r.CO2, "ch4": r.CH4, "temp": r.TempAnomaly} {
		if !math.IsNaN(v) {
			t.Errorf("rec3 %s = %v, want NaN", name, v)
		}
	}
	if !math.IsNaN(recs[4].YearsBefore2023) {
		t.Fatalf("non-object element should decode to NaN record, got %+v", recs[4])
	}
}

func TestDecodeRejectsNonArray(t *testing.T) {
	for _, in := range []string{`{"years_before_2023": 1}`, ``, `"x"`} {
		if _, err := Decode(strings.NewReader(in)); !errors.Is(err, ErrNotArray) {
			t.Errorf("Decode(%q) err = %v, want ErrNotArray", in, err)
		}
	}
	if _, err := Decode(strings.NewReader(`[{"years_before_2023": 1}`)); err == nil {
		t.Error("expected error on truncated array")
	}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{"1": 1, " -2.5 ": -2.5, "1e3": 1000}
	for in, want := range cases {
		if got := ParseNumber(in); got != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "  ", "abc", "Inf", "1,5"} {
		if got := ParseNumber(in); !math.IsNaN(got) {
			t.Errorf("ParseNumber(%q) = %v, want NaN", in, got)
		}
	}
}
