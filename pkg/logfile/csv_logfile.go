package logfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingColumn = errors.New("missing column")

// Timestamp layouts accepted in the timestamp column, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// LoadCSV reads a telemetry table from filename.
func LoadCSV(filename string) (Records, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Printf("loaded %d records from %s", len(recs), filename)
	return recs, nil
}

// ParseCSV reads a telemetry table. Columns are looked up by header name,
// blank rows are skipped and any malformed cell fails the whole table.
func ParseCSV(rd io.Reader) (Records, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty table: %w", ErrMissingColumn)
		}
		return nil, err
	}

	lut := make(map[string]int, len(header))
	for i, name := range header {
		lut[strings.TrimSpace(name)] = i
	}
	idx := make(map[string]int, len(Columns))
	for _, col := range Columns {
		i, ok := lut[col]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
		idx[col] = i
	}

	var recs Records
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if blankRow(row) {
			continue
		}
		line, _ := r.FieldPos(0)
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseRow(row []string, idx map[string]int) (Record, error) {
	cell := func(col string) (string, error) {
		i := idx[col]
		if i >= len(row) {
			return "", fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
		return strings.TrimSpace(row[i]), nil
	}

	var rec Record
	ts, err := cell(ColTimestamp)
	if err != nil {
		return rec, err
	}
	if rec.Timestamp, err = parseTimestamp(ts); err != nil {
		return rec, fmt.Errorf("column %q: %w", ColTimestamp, err)
	}

	fields := []struct {
		col string
		dst *float64
	}{
		{ColWindSpeed, &rec.WindSpeed},
		{ColWindDirection, &rec.WindDirection},
		{ColAirTemperature, &rec.AirTemperature},
		{ColNacelleDirection, &rec.NacelleDirection},
		{ColActivePower, &rec.ActivePower},
		{ColPitchAngle, &rec.PitchAngle},
	}
	for _, f := range fields {
		s, err := cell(f.col)
		if err != nil {
			return rec, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return rec, fmt.Errorf("column %q: %w", f.col, err)
		}
		*f.dst = v
	}
	return rec, nil
}

func parseTimestamp(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
