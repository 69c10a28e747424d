package store

import (
	"strings"
	"testing"

	"homescout/internal/types"
)

func TestZipcodeTiersSplitIntoTerciles(t *testing.T) {
	records := []types.HousingRecord{
		{ID: "1", Price: 100, Zipcode: "98001"},
		{ID: "2", Price: 200, Zipcode: "98002"},
		{ID: "3", Price: 300, Zipcode: "98003"},
		{ID: "4", Price: 400, Zipcode: "98004"},
		{ID: "5", Price: 500, Zipcode: "98005"},
		{ID: "6", Price: 600, Zipcode: "98006"},
	}

	tiers := zipcodeTiers(records)
	want := map[string]string{
		"98001": "value", "98002": "value",
		"98003": "mid", "98004": "mid",
		"98005": "premium", "98006": "premium",
	}
	for zip, tier := range want {
		if tiers[zip] != tier {
			t.Errorf("tier[%s] = %q, want %q", zip, tiers[zip], tier)
		}
	}
}

func TestClassifyNeighborhoodsBuildsStableLabels(t *testing.T) {
	records := []types.HousingRecord{
		{ID: "1", Price: 100000, Zipcode: "98001", Lat: 47.5112, Long: -122.257},
		{ID: "2", Price: 900000, Zipcode: "98039", Lat: 47.6205, Long: -122.2338},
	}
	classifyNeighborhoods(records)

	for _, r := range records {
		parts := strings.SplitN(r.Neighborhood, "-", 2)
		if len(parts) != 2 {
			t.Fatalf("label %q is not tier-cell", r.Neighborhood)
		}
		if parts[0] != "value" && parts[0] != "mid" && parts[0] != "premium" {
			t.Errorf("unexpected tier %q", parts[0])
		}
		if len(parts[1]) != geohashPrecision {
			t.Errorf("cell %q length = %d, want %d", parts[1], len(parts[1]), geohashPrecision)
		}
	}

	// Same coordinates classify to the same cell on every load.
	again := []types.HousingRecord{
		{ID: "1", Price: 100000, Zipcode: "98001", Lat: 47.5112, Long: -122.257},
		{ID: "2", Price: 900000, Zipcode: "98039", Lat: 47.6205, Long: -122.2338},
	}
	classifyNeighborhoods(again)
	for i := range records {
		if records[i].Neighborhood != again[i].Neighborhood {
			t.Errorf("label changed between loads: %q vs %q", records[i].Neighborhood, again[i].Neighborhood)
		}
	}
}
