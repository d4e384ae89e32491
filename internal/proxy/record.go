package proxy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// JSON keys of a proxy record.
const (
	KeyYears = "years_before_2023"
	KeyCO2   = "co2_ppmv"
	KeyCH4   = "ch4_ppb"
	KeyTemp  = "temp_anomaly"
)

var ErrNotArray = errors.New("dataset is not a JSON array")

// Record is one paleoclimate observation. Fields that are missing or not
// numeric in the source hold NaN.
type Record struct {
	YearsBefore2023 float64
	CO2             float64 // ppmv
	CH4             float64 // ppb
	TempAnomaly     float64
}

// NaNRecord returns a record with every field unset.
func NaNRecord() Record {
	nan := math.NaN()
	return Record{YearsBefore2023: nan, CO2: nan, CH4: nan, TempAnomaly: nan}
}

// UnmarshalJSON accepts numbers and numeric strings for every field. Any
// other value, including a non-object element, leaves the field NaN.
func (r *Record) UnmarshalJSON(b []byte) error {
	*r = NaNRecord()
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.YearsBefore2023 = numeric(raw[KeyYears])
	r.CO2 = numeric(raw[KeyCO2])
	r.CH4 = numeric(raw[KeyCH4])
	r.TempAnomaly = numeric(raw[KeyTemp])
	return nil
}

func numeric(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return math.NaN()
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return math.NaN()
		}
		return ParseNumber(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}
	return math.NaN()
}

// ParseNumber parses a decimal number from text, NaN when it is not one.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// Decode reads a JSON array of records.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, ErrNotArray
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return recs, nil
}
