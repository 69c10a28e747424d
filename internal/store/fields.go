package store

import (
	"strconv"

	"homescout/internal/types"
)

// The field registry maps query-facing attribute names to accessors. Every
// operation that takes a field name (SortBy, Aggregate, Column) resolves it
// here, so unknown names fail the same way everywhere.

var numericFields = map[string]func(types.HousingRecord) float64{
	"price":          func(r types.HousingRecord) float64 { return r.Price },
	"bedrooms":       func(r types.HousingRecord) float64 { return float64(r.Bedrooms) },
	"bathrooms":      func(r types.HousingRecord) float64 { return r.Bathrooms },
	"sqft_living":    func(r types.HousingRecord) float64 { return r.SqftLiving },
	"sqft_lot":       func(r types.HousingRecord) float64 { return r.SqftLot },
	"floors":         func(r types.HousingRecord) float64 { return r.Floors },
	"view":           func(r types.HousingRecord) float64 { return float64(r.View) },
	"condition":      func(r types.HousingRecord) float64 { return float64(r.Condition) },
	"grade":          func(r types.HousingRecord) float64 { return float64(r.Grade) },
	"yr_built":       func(r types.HousingRecord) float64 { return float64(r.YrBuilt) },
	"yr_renovated":   func(r types.HousingRecord) float64 { return float64(r.YrRenovated) },
	"lat":            func(r types.HousingRecord) float64 { return r.Lat },
	"long":           func(r types.HousingRecord) float64 { return r.Long },
	"price_per_sqft": func(r types.HousingRecord) float64 { return r.PricePerSqft() },
	"waterfront": func(r types.HousingRecord) float64 {
		if r.Waterfront {
			return 1
		}
		return 0
	},
	"date": func(r types.HousingRecord) float64 { return float64(r.SaleDate.Unix()) },
}

var categoricalFields = map[string]func(types.HousingRecord) string{
	"id":           func(r types.HousingRecord) string { return r.ID },
	"zipcode":      func(r types.HousingRecord) string { return r.Zipcode },
	"neighborhood": func(r types.HousingRecord) string { return r.Neighborhood },
	"waterfront": func(r types.HousingRecord) string {
		if r.Waterfront {
			return "waterfront"
		}
		return "inland"
	},
	"condition": func(r types.HousingRecord) string { return strconv.Itoa(r.Condition) },
	"grade":     func(r types.HousingRecord) string { return strconv.Itoa(r.Grade) },
	"view":      func(r types.HousingRecord) string { return strconv.Itoa(r.View) },
	"renovated": func(r types.HousingRecord) string {
		if r.Renovated() {
			return "renovated"
		}
		return "original"
	},
}

// NumericFieldNames lists the registry's numeric attributes in no particular
// order. Callers that need a stable listing should sort it.
func NumericFieldNames() []string {
	names := make([]string, 0, len(numericFields))
	for name := range numericFields {
		names = append(names, name)
	}
	return names
}

func numericAccessor(field string) (func(types.HousingRecord) float64, error) {
	fn, ok := numericFields[field]
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}
	return fn, nil
}

func categoricalAccessor(field string) (func(types.HousingRecord) string, error) {
	fn, ok := categoricalFields[field]
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}
	return fn, nil
}
