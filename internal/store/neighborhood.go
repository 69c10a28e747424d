package store

import (
	"sort"

	"github.com/mmcloughlin/geohash"

	"homescout/internal/stats"
	"homescout/internal/types"
)

// Neighborhood classification: each zipcode gets a price tier from the
// tercile of its mean sale price, and each record gets an area cell from a
// 5-character geohash of its coordinates (~5 km). The label combines both,
// e.g. "premium-c23nb".

const geohashPrecision = 5

var tierNames = [3]string{"value", "mid", "premium"}

// classifyNeighborhoods fills in the derived Neighborhood field in place.
// Must run before the table is frozen.
func classifyNeighborhoods(records []types.HousingRecord) {
	tiers := zipcodeTiers(records)
	for i := range records {
		cell := geohash.EncodeWithPrecision(records[i].Lat, records[i].Long, geohashPrecision)
		records[i].Neighborhood = tiers[records[i].Zipcode] + "-" + cell
	}
}

// zipcodeTiers buckets zipcodes into terciles by mean sale price.
func zipcodeTiers(records []types.HousingRecord) map[string]string {
	prices := make(map[string][]float64)
	for _, r := range records {
		prices[r.Zipcode] = append(prices[r.Zipcode], r.Price)
	}

	type zipMean struct {
		zip  string
		mean float64
	}
	means := make([]zipMean, 0, len(prices))
	for zip, vals := range prices {
		means = append(means, zipMean{zip: zip, mean: stats.Mean(vals)})
	}
	sort.Slice(means, func(i, j int) bool {
		if means[i].mean == means[j].mean {
			return means[i].zip < means[j].zip
		}
		return means[i].mean < means[j].mean
	})

	tiers := make(map[string]string, len(means))
	n := len(means)
	for i, zm := range means {
		tier := 0
		if n > 0 {
			tier = i * 3 / n
		}
		if tier > 2 {
			tier = 2
		}
		tiers[zm.zip] = tierNames[tier]
	}
	return tiers
}
