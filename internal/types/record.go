package types

import "time"

// HousingRecord holds one King County home sale. Field names follow the
// column names of the sales snapshot; keep types parsed (not raw strings)
// so queries never re-parse.
type HousingRecord struct {
	ID       string
	Price    float64
	SaleDate time.Time

	Bedrooms   int
	Bathrooms  float64
	SqftLiving float64
	SqftLot    float64
	Floors     float64

	Waterfront bool
	View       int // 0-4 ordinal
	Condition  int // 1-5 ordinal
	Grade      int // 1-13 ordinal

	YrBuilt     int
	YrRenovated int // 0 = never renovated

	Zipcode string
	Lat     float64
	Long    float64

	// Neighborhood is derived at load time from location and the zipcode
	// price tier; it is not present in the source table.
	Neighborhood string
}

// Renovated reports whether the home was ever renovated.
func (r HousingRecord) Renovated() bool {
	return r.YrRenovated > 0
}

// PricePerSqft returns price divided by living area, or 0 for zero-area rows.
func (r HousingRecord) PricePerSqft() float64 {
	if r.SqftLiving == 0 {
		return 0
	}
	return r.Price / r.SqftLiving
}

// EffectiveYear is the renovation year if renovated, else the build year.
func (r HousingRecord) EffectiveYear() int {
	if r.YrRenovated > 0 {
		return r.YrRenovated
	}
	return r.YrBuilt
}
