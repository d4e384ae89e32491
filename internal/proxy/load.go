package proxy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFile = errors.New("unsupported file")

// LoadFile reads a local dataset; the extension selects the format.
func LoadFile(path string) ([]Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
}

func LoadJSON(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeCSV(f)
}

// DecodeCSV reads records from CSV whose header names the JSON keys
// (case-insensitive). The year column is required; absent series columns
// read as NaN.
func DecodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idx := map[string]int{KeyYears: -1, KeyCO2: -1, KeyCH4: -1, KeyTemp: -1}
	for i, h := range recs[0] {
		k := strings.ToLower(strings.TrimSpace(h))
		if j, ok := idx[k]; ok && j == -1 {
			idx[k] = i
		}
	}
	if idx[KeyYears] == -1 {
		return nil, fmt.Errorf("csv: %s column not found", KeyYears)
	}
	cell := func(row []string, key string) string {
		i := idx[key]
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}
	out := make([]Record, 0, len(recs)-1)
	for _, row := range recs[1:] {
		out = append(out, Record{
			YearsBefore2023: ParseNumber(cell(row, KeyYears)),
			CO2:             ParseNumber(cell(row, KeyCO2)),
			CH4:             ParseNumber(cell(row, KeyCH4)),
			TempAnomaly:     ParseNumber(cell(row, KeyTemp)),
		})
	}
	return out, nil
}
