package store

import (
	"errors"
	"math"
	"testing"
	"time"

	"homescout/internal/types"
)

func mustStore(t *testing.T, records ...types.HousingRecord) *Store {
	t.Helper()
	s, err := LoadRecords(records)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	return s
}

func saleDay(day int) time.Time {
	return time.Date(2014, 10, day, 0, 0, 0, 0, time.UTC)
}

func testRecords() []types.HousingRecord {
	return []types.HousingRecord{
		{ID: "A", Price: 300000, Waterfront: true, Bedrooms: 3, Zipcode: "98001", Lat: 47.3, Long: -122.2, SaleDate: saleDay(1)},
		{ID: "B", Price: 450000, Waterfront: false, Bedrooms: 4, Zipcode: "98002", Lat: 47.4, Long: -122.3, SaleDate: saleDay(2)},
		{ID: "C", Price: 300000, Waterfront: true, Bedrooms: 2, Zipcode: "98001", Lat: 47.3, Long: -122.2, SaleDate: saleDay(3)},
	}
}

func ids(records []types.HousingRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterPreservesOriginalOrder(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.Filter(func(r types.HousingRecord) bool { return r.Waterfront })
	if !equalIDs(ids(got), "A", "C") {
		t.Errorf("waterfront filter = %v, want [A C]", ids(got))
	}
}

func TestFilterEmptyResultIsNotAnError(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got := s.Filter(func(r types.HousingRecord) bool { return r.Price > 1e9 })
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}

func TestFilterComposition(t *testing.T) {
	s := mustStore(t, testRecords()...)

	waterfront := func(r types.HousingRecord) bool { return r.Waterfront }
	affordable := func(r types.HousingRecord) bool { return r.Price <= 350000 }

	// filter(p) then filter(q) must equal filter(p && q)
	first := s.Filter(waterfront)
	var chained []types.HousingRecord
	for _, r := range first {
		if affordable(r) {
			chained = append(chained, r)
		}
	}

	combined := s.Filter(func(r types.HousingRecord) bool { return waterfront(r) && affordable(r) })

	if !equalIDs(ids(chained), ids(combined)...) {
		t.Errorf("chained = %v, combined = %v", ids(chained), ids(combined))
	}
}

func TestSortByPriceAscendingIsIdempotent(t *testing.T) {
	s := mustStore(t, testRecords()...)

	once, err := s.SortBy(SortKey{Field: "price"})
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	resorted, err := mustStore(t, once...).SortBy(SortKey{Field: "price"})
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	if !equalIDs(ids(once), ids(resorted)...) {
		t.Errorf("sort not idempotent: %v then %v", ids(once), ids(resorted))
	}
}

func TestSortByStableForEqualKeys(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got, err := s.SortBy(SortKey{Field: "price"})
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	// A and C share a price; A was loaded first and must stay first.
	if !equalIDs(ids(got), "A", "C", "B") {
		t.Errorf("sorted = %v, want [A C B]", ids(got))
	}
}

func TestSortByMultipleKeys(t *testing.T) {
	s := mustStore(t, testRecords()...)

	got, err := s.SortBy(SortKey{Field: "price", Desc: true}, SortKey{Field: "bedrooms"})
	if err != nil {
		t.Fatalf("SortBy failed: %v", err)
	}
	// B is dearest; among the tie, C has fewer bedrooms.
	if !equalIDs(ids(got), "B", "C", "A") {
		t.Errorf("sorted = %v, want [B C A]", ids(got))
	}
}

func TestSortByUnknownField(t *testing.T) {
	s := mustStore(t, testRecords()...)

	_, err := s.SortBy(SortKey{Field: "garages"})
	var uerr *UnknownFieldError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownFieldError, got %v", err)
	}
	if uerr.Field != "garages" {
		t.Errorf("field = %q, want garages", uerr.Field)
	}
}

func TestAggregateMeanByGroup(t *testing.T) {
	s := mustStore(t,
		types.HousingRecord{ID: "1", Price: 100, Zipcode: "98001", Lat: 47.3, Long: -122.2},
		types.HousingRecord{ID: "2", Price: 200, Zipcode: "98001", Lat: 47.3, Long: -122.2},
		types.HousingRecord{ID: "3", Price: 300, Zipcode: "98002", Lat: 47.4, Long: -122.3},
	)

	got, err := s.Aggregate("zipcode", "price", MetricMean)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if got["98001"] != 150 || got["98002"] != 300 {
		t.Errorf("mean by zipcode = %v, want 98001:150 98002:300", got)
	}
}

func TestAggregateMetrics(t *testing.T) {
	s := mustStore(t,
		types.HousingRecord{ID: "1", Price: 100, Zipcode: "98001", Lat: 47.3, Long: -122.2},
		types.HousingRecord{ID: "2", Price: 200, Zipcode: "98001", Lat: 47.3, Long: -122.2},
		types.HousingRecord{ID: "3", Price: 400, Zipcode: "98001", Lat: 47.3, Long: -122.2},
	)

	tests := []struct {
		metric Metric
		want   float64
	}{
		{MetricMean, 700.0 / 3},
		{MetricMedian, 200},
		{MetricCount, 3},
		{MetricSum, 700},
		{MetricMin, 100},
		{MetricMax, 400},
	}
	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			got, err := s.Aggregate("zipcode", "price", tt.metric)
			if err != nil {
				t.Fatalf("Aggregate failed: %v", err)
			}
			if math.Abs(got["98001"]-tt.want) > 1e-9 {
				t.Errorf("%s = %v, want %v", tt.metric, got["98001"], tt.want)
			}
		})
	}
}

func TestAggregateUnknownFields(t *testing.T) {
	s := mustStore(t, testRecords()...)

	var uerr *UnknownFieldError
	if _, err := s.Aggregate("favorite_color", "price", MetricMean); !errors.As(err, &uerr) {
		t.Errorf("expected UnknownFieldError for group field, got %v", err)
	}
	if _, err := s.Aggregate("zipcode", "garages", MetricMean); !errors.As(err, &uerr) {
		t.Errorf("expected UnknownFieldError for metric field, got %v", err)
	}
}

func TestColumn(t *testing.T) {
	s := mustStore(t, testRecords()...)

	col, err := s.Column("price")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	want := []float64{300000, 450000, 300000}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("col[%d] = %v, want %v", i, col[i], want[i])
		}
	}

	if _, err := s.Column("garages"); err == nil {
		t.Error("expected error for unknown column")
	}
}
