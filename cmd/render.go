package main

import (
	"fmt"
	"strings"

	"homescout/internal/store"
	"homescout/internal/types"
)

// renderRecord prints a single sale in a readable layout, with the zipcode
// averages alongside for context.
func (a *app) renderRecord(rec types.HousingRecord) {
	zipMeans, _ := a.store.Aggregate("zipcode", "price", store.MetricMean)
	zipSqft, _ := a.store.Aggregate("zipcode", "price_per_sqft", store.MetricMean)

	// Cheaper than the zipcode average renders green, dearer renders red.
	vsMean := func(v, mean float64) string {
		if mean == 0 {
			return ""
		}
		color := colorRed
		if v <= mean {
			color = colorGreen
		}
		return fmt.Sprintf(" %s[zip avg %.0f]%s", color, mean, colorReset)
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Sale ID           : %s\n", rec.ID)
	fmt.Printf("Sale Date         : %s\n", rec.SaleDate.Format("2006-01-02"))
	fmt.Printf("Price             : $%.0f%s\n", rec.Price, vsMean(rec.Price, zipMeans[rec.Zipcode]))
	fmt.Printf("Price / sqft      : $%.0f%s\n", rec.PricePerSqft(), vsMean(rec.PricePerSqft(), zipSqft[rec.Zipcode]))
	fmt.Println()

	fmt.Printf("Bedrooms/Bath     : %d / %.2f\n", rec.Bedrooms, rec.Bathrooms)
	fmt.Printf("Living Area (sf)  : %.0f\n", rec.SqftLiving)
	fmt.Printf("Lot (sf)          : %.0f\n", rec.SqftLot)
	fmt.Printf("Floors            : %.1f\n", rec.Floors)
	fmt.Println()

	fmt.Printf("Grade             : %d/13\n", rec.Grade)
	fmt.Printf("Condition         : %d/5\n", rec.Condition)
	fmt.Printf("View              : %d/4\n", rec.View)
	if rec.Waterfront {
		fmt.Printf("Waterfront        : %syes%s\n", colorGreen, colorReset)
	} else {
		fmt.Printf("Waterfront        : no\n")
	}
	if rec.Renovated() {
		fmt.Printf("Built / Renovated : %d / %d\n", rec.YrBuilt, rec.YrRenovated)
	} else {
		fmt.Printf("Built             : %d (never renovated)\n", rec.YrBuilt)
	}
	fmt.Println()

	fmt.Printf("Zipcode           : %s\n", rec.Zipcode)
	fmt.Printf("Neighborhood      : %s\n", rec.Neighborhood)
	fmt.Printf("Coordinates       : %.4f, %.4f\n", rec.Lat, rec.Long)

	if school, miles, ok := a.layers.NearestSchool(rec.Lat, rec.Long); ok {
		fmt.Printf("Nearest School    : %s (%s), %.1f mi\n", school.Name, school.Kind, miles)
	}
	if park, ok := a.layers.ParkAt(rec.Lat, rec.Long); ok {
		fmt.Printf("Park              : inside %s\n", park)
	} else if a.layers.NearPark(rec.Lat, rec.Long, 0.25) {
		fmt.Printf("Park              : within a quarter mile\n")
	}
	fmt.Println(strings.Repeat("-", 80))
}
