// Package store holds the immutable housing-sale table and answers the
// analytical queries: filter, sort, group aggregates, and client candidate
// ranking. The table is populated once, validated row by row, and never
// mutated afterwards.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"homescout/internal/types"
)

// Store is the read-only housing record table.
type Store struct {
	records []types.HousingRecord
	byID    map[string]int
}

// Records returns the table in original load order. Callers must not mutate
// the returned slice.
func (s *Store) Records() []types.HousingRecord {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// ByID looks up a record by its identifier.
func (s *Store) ByID(id string) (types.HousingRecord, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.HousingRecord{}, false
	}
	return s.records[i], true
}

// Required source columns. The mapping is fixed; extra columns are ignored.
var requiredColumns = []string{
	"id", "date", "price", "bedrooms", "bathrooms", "sqft_living", "sqft_lot",
	"floors", "waterfront", "view", "condition", "grade", "yr_built",
	"yr_renovated", "zipcode", "lat", "long",
}

// Load parses a CSV source into a validated Store. The first row must be a
// header containing at least the required columns. Any row that fails a
// type or invariant check aborts the load with a MalformedRecordError.
func Load(r io.Reader) (*Store, error) {
	start := time.Now()
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("source is missing required column %q", col)
		}
	}

	var records []types.HousingRecord
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		rec, merr := parseRow(fields, colIdx, row)
		if merr != nil {
			return nil, merr
		}
		records = append(records, rec)
	}

	s, err := build(records)
	if err != nil {
		return nil, err
	}
	slog.Info("housing dataset loaded",
		"records", len(records),
		"elapsed", time.Since(start).Truncate(time.Millisecond))
	return s, nil
}

// LoadRecords builds a Store from already-parsed records, applying the same
// invariant checks as Load. Used by the relational source.
func LoadRecords(records []types.HousingRecord) (*Store, error) {
	return build(records)
}

// build validates invariants, derives neighborhoods, and freezes the table.
func build(records []types.HousingRecord) (*Store, error) {
	byID := make(map[string]int, len(records))
	for i, rec := range records {
		row := i + 1
		if rec.ID == "" {
			return nil, &MalformedRecordError{Row: row, Field: "id", Reason: "empty identifier"}
		}
		if _, dup := byID[rec.ID]; dup {
			return nil, &MalformedRecordError{Row: row, Field: "id", Reason: "duplicate identifier " + rec.ID}
		}
		if err := checkInvariants(rec, row); err != nil {
			return nil, err
		}
		byID[rec.ID] = i
	}

	classifyNeighborhoods(records)
	return &Store{records: records, byID: byID}, nil
}

func checkInvariants(rec types.HousingRecord, row int) error {
	switch {
	case rec.Price < 0:
		return &MalformedRecordError{Row: row, Field: "price", Reason: "negative price"}
	case rec.SqftLiving < 0:
		return &MalformedRecordError{Row: row, Field: "sqft_living", Reason: "negative area"}
	case rec.SqftLot < 0:
		return &MalformedRecordError{Row: row, Field: "sqft_lot", Reason: "negative area"}
	case rec.YrRenovated != 0 && rec.YrRenovated < rec.YrBuilt:
		return &MalformedRecordError{Row: row, Field: "yr_renovated",
			Reason: fmt.Sprintf("renovation year %d precedes build year %d", rec.YrRenovated, rec.YrBuilt)}
	}
	return nil
}

func parseRow(fields []string, colIdx map[string]int, row int) (types.HousingRecord, *MalformedRecordError) {
	var rec types.HousingRecord

	get := func(col string) string {
		i := colIdx[col]
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	var perr *MalformedRecordError
	parseF := func(col string) float64 {
		if perr != nil {
			return 0
		}
		raw := get(col)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			perr = &MalformedRecordError{Row: row, Field: col, Reason: "not a number: " + raw}
		}
		return v
	}
	parseI := func(col string) int {
		// Some exports write integral columns as "2.0"; go through float.
		return int(parseF(col))
	}

	rec.ID = get("id")
	if rec.ID == "" {
		return rec, &MalformedRecordError{Row: row, Field: "id", Reason: "empty identifier"}
	}

	rec.Price = parseF("price")
	rec.Bedrooms = parseI("bedrooms")
	rec.Bathrooms = parseF("bathrooms")
	rec.SqftLiving = parseF("sqft_living")
	rec.SqftLot = parseF("sqft_lot")
	rec.Floors = parseF("floors")
	rec.View = parseI("view")
	rec.Condition = parseI("condition")
	rec.Grade = parseI("grade")
	rec.YrBuilt = parseI("yr_built")
	rec.YrRenovated = parseI("yr_renovated")
	rec.Lat = parseF("lat")
	rec.Long = parseF("long")
	if perr != nil {
		return rec, perr
	}

	switch get("waterfront") {
	case "0", "":
		rec.Waterfront = false
	case "1":
		rec.Waterfront = true
	default:
		return rec, &MalformedRecordError{Row: row, Field: "waterfront", Reason: "expected 0 or 1, got " + get("waterfront")}
	}

	rec.Zipcode = get("zipcode")
	if rec.Zipcode == "" {
		return rec, &MalformedRecordError{Row: row, Field: "zipcode", Reason: "empty zipcode"}
	}

	date, err := parseSaleDate(get("date"))
	if err != nil {
		return rec, &MalformedRecordError{Row: row, Field: "date", Reason: err.Error()}
	}
	rec.SaleDate = date

	return rec, nil
}

// parseSaleDate accepts the snapshot's "20141013T000000" form as well as
// plain "2014-10-13".
func parseSaleDate(raw string) (time.Time, error) {
	for _, layout := range []string{"20060102T150405", "2006-01-02", "20060102"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable sale date: %s", raw)
}
