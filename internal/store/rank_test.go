package store

import (
	"testing"

	"homescout/internal/types"
)

func scoredIDs(results []ScoredRecord) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func TestRankCandidatesZeroBudgetReturnsEmpty(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.RankCandidates(Criteria{Budget: 0, Waterfront: 1})
	if len(got) != 0 {
		t.Errorf("expected no candidates with zero budget, got %v", scoredIDs(got))
	}
}

func TestRankCandidatesZeroBudgetExcludesFreeHomes(t *testing.T) {
	// A zero price is valid data, but a zero budget still matches nothing.
	s := mustStore(t, types.HousingRecord{ID: "free", Price: 0, Zipcode: "98001", Lat: 47.3, Long: -122.2})

	got := s.RankCandidates(Criteria{Budget: 0})
	if len(got) != 0 {
		t.Errorf("expected no candidates with zero budget, got %v", scoredIDs(got))
	}
}

func TestRankCandidatesBudgetIsHardCeiling(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.RankCandidates(Criteria{Budget: 350000})
	for _, r := range got {
		if r.Price > 350000 {
			t.Errorf("candidate %s priced %v over budget", r.ID, r.Price)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 candidates, got %v", scoredIDs(got))
	}
}

func TestRankCandidatesOrdersByScoreThenPrice(t *testing.T) {
	s := mustStore(t,
		types.HousingRecord{ID: "cheap", Price: 200000, Waterfront: true, Zipcode: "98001", Lat: 47.3, Long: -122.2},
		types.HousingRecord{ID: "dear", Price: 500000, Waterfront: true, Zipcode: "98001", Lat: 47.3, Long: -122.2},
		types.HousingRecord{ID: "inland", Price: 100000, Waterfront: false, Zipcode: "98001", Lat: 47.3, Long: -122.2},
	)

	got := s.RankCandidates(Criteria{Budget: 1_000_000, Waterfront: 1})
	// Both waterfront homes score 1; the cheaper ranks first. The inland
	// home scores 0 and comes last.
	if !equalIDs(scoredIDs(got), "cheap", "dear", "inland") {
		t.Errorf("ranking = %v, want [cheap dear inland]", scoredIDs(got))
	}
	if got[0].Score != 1 || got[2].Score != 0 {
		t.Errorf("scores = %v/%v, want 1/0", got[0].Score, got[2].Score)
	}
}

func TestRankCandidatesTopN(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.RankCandidates(Criteria{Budget: 1_000_000, Value: 1, TopN: 1})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	// Highest cheapness wins; A and C tie on price, A loaded first.
	if got[0].ID != "A" {
		t.Errorf("top candidate = %s, want A", got[0].ID)
	}
}

func TestRankCandidatesHardConstraints(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.RankCandidates(Criteria{Budget: 1_000_000, MinBedrooms: 4})
	if !equalIDs(scoredIDs(got), "B") {
		t.Errorf("candidates = %v, want [B]", scoredIDs(got))
	}
}

func TestRankCandidatesValueFavorsCheaper(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.RankCandidates(Criteria{Budget: 1_000_000, Value: 1})
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	if got[len(got)-1].ID != "B" {
		t.Errorf("dearest home should rank last, got %v", scoredIDs(got))
	}
	if got[len(got)-1].Score != 0 {
		t.Errorf("dearest home cheapness = %v, want 0", got[len(got)-1].Score)
	}
}

func TestRankCandidatesProximityHook(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.RankCandidates(Criteria{
		Budget:          1_000_000,
		ProximityWeight: 2,
		Proximity: func(r types.HousingRecord) float64 {
			if r.ID == "B" {
				return 1
			}
			return 0
		},
	})
	if got[0].ID != "B" {
		t.Errorf("proximity bonus should rank B first, got %v", scoredIDs(got))
	}
	if got[0].Components["proximity"] != 2 {
		t.Errorf("proximity component = %v, want 2", got[0].Components["proximity"])
	}
}

func TestRankCandidatesTimingWindow(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.RankCandidates(Criteria{
		Budget:       1_000_000,
		SaleAfter:    saleDay(2),
		SaleBefore:   saleDay(3),
		TimingWeight: 1,
	})
	// B (day 2) and C (day 3) fall in the window; A (day 1) does not.
	for _, r := range got {
		inWin := r.Components["timing"] > 0
		if (r.ID == "A") == inWin {
			t.Errorf("record %s timing component = %v", r.ID, r.Components["timing"])
		}
	}
}

func TestRankCandidatesNeighborhoodPreference(t *testing.T) {
	// Three zipcodes with ascending mean prices split into the three
	// tiers; the dearest zipcode is the premium one.
	s := mustStore(t,
		types.HousingRecord{ID: "lo", Price: 100000, Zipcode: "98001", Lat: 47.30, Long: -122.20},
		types.HousingRecord{ID: "mid", Price: 400000, Zipcode: "98002", Lat: 47.40, Long: -122.30},
		types.HousingRecord{ID: "hi", Price: 900000, Zipcode: "98039", Lat: 47.62, Long: -122.23},
	)

	got := s.RankCandidates(Criteria{
		Budget:             1_000_000,
		Neighborhoods:      []string{"premium"},
		NeighborhoodWeight: 1,
	})
	if got[0].ID != "hi" {
		t.Errorf("premium preference should rank hi first, got %v", scoredIDs(got))
	}
	if got[0].Components["neighborhood"] != 1 {
		t.Errorf("neighborhood component = %v, want 1", got[0].Components["neighborhood"])
	}
}
