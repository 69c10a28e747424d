package store

import (
	"sort"
	"strings"
	"time"

	"homescout/internal/stats"
	"homescout/internal/types"
)

// Criteria is a client profile expressed as explicit weights and
// thresholds. Scoring is a plain weighted sum of [0,1] components, so a
// profile is data, not code: swap the struct, not the branches.
type Criteria struct {
	// Hard constraints. Budget is always a ceiling; a zero budget matches
	// nothing. MinBedrooms/MinBathrooms of 0 impose no floor.
	Budget       float64
	MinBedrooms  int
	MinBathrooms float64

	// TopN limits the result; 0 means return every qualifying record.
	TopN int

	// Soft criteria weights. A zero weight disables the component.
	Waterfront float64 // flat bonus for waterfront homes
	Renovated  float64 // flat bonus for renovated homes
	View       float64 // view ordinal scaled to [0,1]
	Condition  float64 // condition ordinal scaled to [0,1]
	Grade      float64 // grade ordinal scaled to [0,1]
	Value      float64 // cheapness: 1 - price normalized over qualifying set

	// Preferred neighborhood categories (prefix match on the derived
	// label, so "premium" matches every premium-tier cell).
	Neighborhoods      []string
	NeighborhoodWeight float64

	// Timing window on the sale date. Zero times leave the side open.
	SaleAfter    time.Time
	SaleBefore   time.Time
	TimingWeight float64

	// Proximity lets the caller wire in a location scorer (schools, parks)
	// returning [0,1]. Nil disables the component.
	Proximity       func(types.HousingRecord) float64
	ProximityWeight float64
}

// ScoredRecord pairs a record with its weighted score and the per-component
// contributions that produced it.
type ScoredRecord struct {
	types.HousingRecord
	Score      float64
	Components map[string]float64
}

// RankCandidates applies the hard constraints, scores the survivors, and
// returns them by descending score. Equal scores rank the cheaper home
// first; remaining ties keep original load order.
func (s *Store) RankCandidates(c Criteria) []ScoredRecord {
	if c.Budget <= 0 {
		return nil
	}
	candidates := s.Filter(func(r types.HousingRecord) bool {
		return r.Price <= c.Budget &&
			r.Bedrooms >= c.MinBedrooms &&
			r.Bathrooms >= c.MinBathrooms
	})
	if len(candidates) == 0 {
		return nil
	}

	// Cheapness is relative to what the client can actually buy.
	prices := make([]float64, len(candidates))
	for i, r := range candidates {
		prices[i] = r.Price
	}
	cheapness := stats.Normalize(prices)
	for i := range cheapness {
		cheapness[i] = 1 - cheapness[i]
	}

	results := make([]ScoredRecord, 0, len(candidates))
	for i, r := range candidates {
		comps := map[string]float64{}
		if c.Waterfront > 0 && r.Waterfront {
			comps["waterfront"] = c.Waterfront
		}
		if c.Renovated > 0 && r.Renovated() {
			comps["renovated"] = c.Renovated
		}
		if c.View > 0 {
			comps["view"] = c.View * float64(r.View) / 4
		}
		if c.Condition > 0 {
			comps["condition"] = c.Condition * float64(r.Condition-1) / 4
		}
		if c.Grade > 0 {
			comps["grade"] = c.Grade * float64(r.Grade-1) / 12
		}
		if c.Value > 0 {
			comps["value"] = c.Value * cheapness[i]
		}
		if c.NeighborhoodWeight > 0 && matchesNeighborhood(r.Neighborhood, c.Neighborhoods) {
			comps["neighborhood"] = c.NeighborhoodWeight
		}
		if c.TimingWeight > 0 && inWindow(r.SaleDate, c.SaleAfter, c.SaleBefore) {
			comps["timing"] = c.TimingWeight
		}
		if c.ProximityWeight > 0 && c.Proximity != nil {
			comps["proximity"] = c.ProximityWeight * c.Proximity(r)
		}

		var score float64
		for _, v := range comps {
			score += v
		}
		results = append(results, ScoredRecord{HousingRecord: r, Score: score, Components: comps})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Price < results[j].Price
		}
		return results[i].Score > results[j].Score
	})

	if c.TopN > 0 && len(results) > c.TopN {
		results = results[:c.TopN]
	}
	return results
}

func matchesNeighborhood(label string, preferred []string) bool {
	for _, p := range preferred {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && strings.HasPrefix(strings.ToLower(label), p) {
			return true
		}
	}
	return false
}

func inWindow(t, after, before time.Time) bool {
	if !after.IsZero() && t.Before(after) {
		return false
	}
	if !before.IsZero() && t.After(before) {
		return false
	}
	return true
}
