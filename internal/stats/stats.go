// Package stats provides the descriptive statistics used by the housing
// analyses: five-number summaries, min-max normalization, and Pearson
// correlation with significance levels. All functions are pure and operate
// on plain float64 slices.
package stats

import (
	"math"
	"sort"
)

// Summary is a pandas-describe style five-number summary plus mean/std.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes the summary for a column. An empty column yields a zero
// Summary.
func Describe(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := MeanStd(values)
	return Summary{
		Count:  n,
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.50),
		Q3:     percentile(sorted, 0.75),
		Max:    sorted[n-1],
	}
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MeanStd returns the mean and population standard deviation.
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = Mean(values)
	for _, v := range values {
		std += (v - mean) * (v - mean)
	}
	std = math.Sqrt(std / float64(len(values)))
	return mean, std
}

// Median returns the middle value (mean of the two middle values for even
// counts), or 0 for an empty slice.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentile(sorted, 0.50)
}

// percentile interpolates linearly between order statistics. Input must be
// sorted ascending and non-empty.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Normalize rescales values to [0, 1]. A constant column maps to all zeros
// rather than dividing by zero.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return out
	}
	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}

// MissingCell is one row of a missing-values table: how often a column
// carries the zero sentinel the snapshot uses for "absent".
type MissingCell struct {
	Field   string
	Zeros   int
	Percent float64
}

// MissingSummary counts zero sentinels per column together with the share
// of rows they cover. Names and columns match by position; the shorter of
// the two bounds the result.
func MissingSummary(names []string, columns [][]float64) []MissingCell {
	n := len(names)
	if len(columns) < n {
		n = len(columns)
	}
	out := make([]MissingCell, 0, n)
	for i := 0; i < n; i++ {
		zeros := 0
		for _, v := range columns[i] {
			if v == 0 {
				zeros++
			}
		}
		cell := MissingCell{Field: names[i], Zeros: zeros}
		if len(columns[i]) > 0 {
			cell.Percent = 100 * float64(zeros) / float64(len(columns[i]))
		}
		out = append(out, cell)
	}
	return out
}

// Pearson returns the correlation coefficient r between x and y together
// with the two-tailed p-value of the null hypothesis r=0. Slices must be
// equal length; fewer than 3 points yields r=0, p=1.
func Pearson(x, y []float64) (r, p float64) {
	n := len(x)
	if n != len(y) || n < 3 {
		return 0, 1
	}
	mx := Mean(x)
	my := Mean(y)
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, 1
	}
	r = sxy / math.Sqrt(sxx*syy)
	if r >= 1 || r <= -1 {
		return r, 0
	}

	// t-statistic with n-2 degrees of freedom
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	p = 2 * studentTTail(math.Abs(t), df)
	return r, p
}

// SignificanceStars returns the conventional marker for a p-value:
// * (p<=0.05), ** (p<=0.01), *** (p<=0.001), empty otherwise.
func SignificanceStars(p float64) string {
	switch {
	case p <= 0.001:
		return "***"
	case p <= 0.01:
		return "**"
	case p <= 0.05:
		return "*"
	default:
		return ""
	}
}

// CorrelationMatrix computes pairwise Pearson r for the given columns.
// Result[i][j] is the correlation between columns i and j.
func CorrelationMatrix(columns [][]float64) [][]float64 {
	k := len(columns)
	out := make([][]float64, k)
	for i := range out {
		out[i] = make([]float64, k)
		out[i][i] = 1
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			r, _ := Pearson(columns[i], columns[j])
			out[i][j] = r
			out[j][i] = r
		}
	}
	return out
}

// studentTTail returns P(T > t) for Student's t-distribution with df degrees
// of freedom, via the regularized incomplete beta function.
func studentTTail(t, df float64) float64 {
	x := df / (df + t*t)
	return 0.5 * regIncBeta(df/2, 0.5, x)
}

// regIncBeta computes the regularized incomplete beta function I_x(a, b)
// using the continued fraction expansion (Numerical Recipes form).
func regIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	lbeta, _ := math.Lgamma(a + b)
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	front := math.Exp(lbeta - la - lb + a*math.Log(x) + b*math.Log(1-x))

	if x < (a+1)/(a+b+2) {
		return front * betaCF(a, b, x) / a
	}
	return 1 - front*betaCF(b, a, 1-x)/b
}

func betaCF(a, b, x float64) float64 {
	const (
		maxIter = 200
		eps     = 3e-14
		tiny    = 1e-30
	)
	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d
	for m := 1; m <= maxIter; m++ {
		fm := float64(m)
		m2 := 2 * fm
		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c
		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < eps {
			break
		}
	}
	return h
}
