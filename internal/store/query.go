package store

import (
	"sort"

	"homescout/internal/stats"
	"homescout/internal/types"
)

// Filter returns the records satisfying pred, preserving original load
// order. An empty result is a legal empty slice, not an error.
func (s *Store) Filter(pred func(types.HousingRecord) bool) []types.HousingRecord {
	var out []types.HousingRecord
	for _, r := range s.records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// SortKey names an attribute to order by.
type SortKey struct {
	Field string
	Desc  bool
}

// SortBy returns a copy of the table ordered by the given keys, applied in
// order with later keys breaking ties. The sort is stable, so records equal
// under every key keep their original relative order.
func (s *Store) SortBy(keys ...SortKey) ([]types.HousingRecord, error) {
	type keyAccessor struct {
		num  func(types.HousingRecord) float64
		str  func(types.HousingRecord) string
		desc bool
	}
	accessors := make([]keyAccessor, 0, len(keys))
	for _, k := range keys {
		if fn, ok := numericFields[k.Field]; ok {
			accessors = append(accessors, keyAccessor{num: fn, desc: k.Desc})
			continue
		}
		if fn, ok := categoricalFields[k.Field]; ok {
			accessors = append(accessors, keyAccessor{str: fn, desc: k.Desc})
			continue
		}
		return nil, &UnknownFieldError{Field: k.Field}
	}

	out := make([]types.HousingRecord, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		for _, a := range accessors {
			if a.num != nil {
				vi, vj := a.num(out[i]), a.num(out[j])
				if vi == vj {
					continue
				}
				if a.desc {
					return vi > vj
				}
				return vi < vj
			}
			vi, vj := a.str(out[i]), a.str(out[j])
			if vi == vj {
				continue
			}
			if a.desc {
				return vi > vj
			}
			return vi < vj
		}
		return false
	})
	return out, nil
}

// Metric selects the aggregate computed per group.
type Metric string

const (
	MetricMean   Metric = "mean"
	MetricMedian Metric = "median"
	MetricCount  Metric = "count"
	MetricSum    Metric = "sum"
	MetricMin    Metric = "min"
	MetricMax    Metric = "max"
)

// Aggregate groups the table by a categorical attribute and computes the
// metric over a numeric attribute per group. For MetricCount the metric
// field is ignored and may be empty.
func (s *Store) Aggregate(groupField, metricField string, metric Metric) (map[string]float64, error) {
	groupFn, err := categoricalAccessor(groupField)
	if err != nil {
		return nil, err
	}
	var valueFn func(types.HousingRecord) float64
	if metric != MetricCount {
		valueFn, err = numericAccessor(metricField)
		if err != nil {
			return nil, err
		}
	}

	grouped := make(map[string][]float64)
	for _, r := range s.records {
		key := groupFn(r)
		if metric == MetricCount {
			grouped[key] = append(grouped[key], 1)
			continue
		}
		grouped[key] = append(grouped[key], valueFn(r))
	}

	out := make(map[string]float64, len(grouped))
	for key, vals := range grouped {
		switch metric {
		case MetricMean:
			out[key] = stats.Mean(vals)
		case MetricMedian:
			out[key] = stats.Median(vals)
		case MetricCount:
			out[key] = float64(len(vals))
		case MetricSum:
			var sum float64
			for _, v := range vals {
				sum += v
			}
			out[key] = sum
		case MetricMin:
			min := vals[0]
			for _, v := range vals {
				if v < min {
					min = v
				}
			}
			out[key] = min
		case MetricMax:
			max := vals[0]
			for _, v := range vals {
				if v > max {
					max = v
				}
			}
			out[key] = max
		default:
			out[key] = stats.Mean(vals)
		}
	}
	return out, nil
}

// Column extracts a numeric attribute across the whole table, in load order.
func (s *Store) Column(field string) ([]float64, error) {
	fn, err := numericAccessor(field)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(s.records))
	for i, r := range s.records {
		out[i] = fn(r)
	}
	return out, nil
}
