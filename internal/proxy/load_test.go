package proxy

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeCSV(t *testing.T) {
	in := "Years_Before_2023, co2_ppmv ,temp_anomaly\n0,300,-0.2\n100,abc,-0.5\n200\n"
	recs, err := DecodeCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeCSV: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len = %d", len(recs))
	}
	if recs[0].YearsBefore2023 != 0 || recs[0].CO2 != 300 || recs[0].TempAnomaly != -0.2 {
		t.Fatalf("rec0 = %+v", recs[0])
	}
	if !math.IsNaN(recs[0].CH4) {
		t.Fatalf("missing column should be NaN, got %v", recs[0].CH4)
	}
	if !math.IsNaN(recs[1].CO2) || recs[1].TempAnomaly != -0.5 {
		t.Fatalf("rec1 = %+v", recs[1])
	}
	if recs[2].YearsBefore2023 != 200 || !math.IsNaN(recs[2].CO2) {
		t.Fatalf("short row = %+v", recs[2])
	}
}

func TestDecodeCSVNeedsYears(t *testing.T) {
	if _, err := DecodeCSV(strings.NewReader("co2_ppmv\n1\n")); err == nil {
		t.Fatal("expected error without year column")
	}
	if _, err := DecodeCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error on empty input")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	js := filepath.Join(dir, "a.JSON")
	if err := os.WriteFile(js, []byte(`[{"years_before_2023":1,"co2_ppmv":2}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, err := LoadFile(js)
	if err != nil || len(recs) != 1 || recs[0].CO2 != 2 {
		t.Fatalf("json: %v %+v", err, recs)
	}

	cs := filepath.Join(dir, "b.csv")
	if err := os.WriteFile(cs, []byte("years_before_2023,ch4_ppb\n5,600\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, err = LoadFile(cs)
	if err != nil || len(recs) != 1 || recs[0].CH4 != 600 {
		t.Fatalf("csv: %v %+v", err, recs)
	}

	if _, err := LoadFile(filepath.Join(dir, "c.kml")); !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("kml err = %v", err)
	}
}
