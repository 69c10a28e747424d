package main

import (
	"fmt"
	"sort"
	"strings"

	"homescout/internal/stats"
	"homescout/internal/store"
)

// ---------------- Descriptive statistics ----------------

// describedFields are the numeric columns shown by the stats command, in
// display order.
var describedFields = []string{
	"price", "bedrooms", "bathrooms", "sqft_living", "sqft_lot", "floors",
	"view", "condition", "grade", "yr_built", "price_per_sqft",
}

// sentinelFields carry a zero sentinel for "absent" rather than a real
// measurement of zero.
var sentinelFields = []string{"yr_renovated", "view", "waterfront"}

// showStats prints a describe()-style table plus sentinel counts.
func (a *app) showStats() {
	fmt.Printf("\n%d sales across %d zipcodes\n\n", a.store.Len(), a.zipcodeCount())

	fmt.Printf("%-15s %8s %12s %12s %10s %10s %10s %10s %12s\n",
		"field", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	fmt.Println(strings.Repeat("-", 105))
	for _, field := range describedFields {
		col, err := a.store.Column(field)
		if err != nil {
			fmt.Printf("Error reading column %s: %v\n", field, err)
			return
		}
		sum := stats.Describe(col)
		fmt.Printf("%-15s %8d %12.2f %12.2f %10.2f %10.2f %10.2f %10.2f %12.2f\n",
			field, sum.Count, sum.Mean, sum.Std, sum.Min, sum.Q1, sum.Median, sum.Q3, sum.Max)
	}

	// The snapshot encodes "absent" as zero for these columns; report how
	// much of the table that covers.
	columns := make([][]float64, len(sentinelFields))
	for i, field := range sentinelFields {
		col, err := a.store.Column(field)
		if err != nil {
			fmt.Printf("Error reading column %s: %v\n", field, err)
			return
		}
		columns[i] = col
	}
	fmt.Printf("\nZero-sentinel columns:\n")
	for _, cell := range stats.MissingSummary(sentinelFields, columns) {
		fmt.Printf("  %-14s %6d (%.1f%%)\n", cell.Field, cell.Zeros, cell.Percent)
	}
	fmt.Println()
}

func (a *app) zipcodeCount() int {
	counts, err := a.store.Aggregate("zipcode", "", store.MetricCount)
	if err != nil {
		return 0
	}
	return len(counts)
}

// ---------------- Correlation grid ----------------

var correlationFields = []string{"price", "bedrooms", "bathrooms", "sqft_living", "grade", "condition", "yr_built"}

// showCorrelations prints a pairwise Pearson grid with significance stars,
// mirroring the correlation pair-grid of the exploratory analysis.
func (a *app) showCorrelations() {
	columns := make([][]float64, len(correlationFields))
	for i, field := range correlationFields {
		col, err := a.store.Column(field)
		if err != nil {
			fmt.Printf("Error reading column %s: %v\n", field, err)
			return
		}
		columns[i] = col
	}

	fmt.Printf("\n%-12s", "")
	for _, f := range correlationFields {
		fmt.Printf(" %11s", f)
	}
	fmt.Println()
	for i, f := range correlationFields {
		fmt.Printf("%-12s", f)
		for j := range correlationFields {
			if j == i {
				fmt.Printf(" %11s", "1.00")
				continue
			}
			r, p := stats.Pearson(columns[i], columns[j])
			fmt.Printf(" %8.2f%-3s", r, stats.SignificanceStars(p))
		}
		fmt.Println()
	}
	fmt.Println("\n(* p<=0.05, ** p<=0.01, *** p<=0.001)")
}

// ---------------- Zipcode aggregates ----------------

// showZipcodes lists zipcodes by mean sale price with counts and medians.
func (a *app) showZipcodes() {
	means, err := a.store.Aggregate("zipcode", "price", store.MetricMean)
	if err != nil {
		fmt.Printf("Error aggregating zipcodes: %v\n", err)
		return
	}
	medians, _ := a.store.Aggregate("zipcode", "price", store.MetricMedian)
	counts, _ := a.store.Aggregate("zipcode", "", store.MetricCount)

	zips := make([]string, 0, len(means))
	for zip := range means {
		zips = append(zips, zip)
	}
	sort.Slice(zips, func(i, j int) bool { return means[zips[i]] > means[zips[j]] })

	fmt.Printf("\n%-8s %8s %14s %14s\n", "zipcode", "sales", "mean price", "median price")
	fmt.Println(strings.Repeat("-", 48))
	for _, zip := range zips {
		fmt.Printf("%-8s %8.0f %14.0f %14.0f\n", zip, counts[zip], means[zip], medians[zip])
	}
	fmt.Println()
}
