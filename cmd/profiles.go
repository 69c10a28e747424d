package main

import (
	"fmt"
	"sort"
	"time"

	"homescout/internal/store"
	"homescout/internal/types"
)

// Client profiles are configuration, not code: each is a Criteria value with
// named weights and thresholds, so tuning a recommendation never touches the
// scoring logic.

// clientProfiles returns the built-in fictional client briefs. Proximity
// scoring is wired in by the caller because it needs the GIS layers.
func (a *app) clientProfiles() map[string]store.Criteria {
	return map[string]store.Criteria{
		// Young family: firm budget, needs space, wants a school nearby and
		// a solid unspectacular neighborhood. Buying in spring.
		"family": {
			Budget:       650_000,
			MinBedrooms:  3,
			MinBathrooms: 2,
			TopN:         25,
			Condition:    1.0,
			Grade:        0.5,
			Value:        1.0,
			Neighborhoods:      []string{"mid"},
			NeighborhoodWeight: 0.5,
			SaleAfter:          time.Date(2015, 2, 1, 0, 0, 0, 0, time.UTC),
			TimingWeight:       0.5,
			Proximity:          a.schoolProximity(2.0),
			ProximityWeight:    1.0,
		},

		// Buy-to-renovate investor: cheap per square foot, original
		// condition preferred, value-tier areas, no timing constraint.
		"investor": {
			Budget: 450_000,
			TopN:   25,
			Value:  2.0,
			Neighborhoods:      []string{"value", "mid"},
			NeighborhoodWeight: 1.0,
			Grade:              0.5,
		},

		// Waterfront retiree: the view is the point. Renovated, high grade,
		// premium areas, budget generous but real.
		"retiree": {
			Budget:     2_000_000,
			TopN:       15,
			Waterfront: 2.0,
			View:       1.5,
			Renovated:  1.0,
			Grade:      1.0,
			Neighborhoods:      []string{"premium"},
			NeighborhoodWeight: 0.5,
		},
	}
}

// schoolProximity adapts the GIS school layer into a Criteria scorer.
func (a *app) schoolProximity(maxMiles float64) func(types.HousingRecord) float64 {
	return func(r types.HousingRecord) float64 {
		return a.layers.SchoolScore(r.Lat, r.Long, maxMiles)
	}
}

// listProfiles prints the available client briefs.
func (a *app) listProfiles() {
	profiles := a.clientProfiles()
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := profiles[name]
		fmt.Printf("  %-10s budget $%.0f, top %d\n", name, c.Budget, c.TopN)
	}
}
