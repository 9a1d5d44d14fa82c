// Package stats holds the descriptive statistics used by the profiler, the
// cleaning steps and the reports. Functions take the non-null values of a
// column and return NaN when the input is empty.
package stats

import (
	"math"
	"sort"
)

// Mean of x.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// SampleStd is the n-1 standard deviation, NaN for fewer than two values.
func SampleStd(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	m := Mean(x)
	var ss float64
	for _, v := range x {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(x)-1))
}

// MinMax returns the smallest and largest value of x.
func MinMax(x []float64) (lo, hi float64) {
	if len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func sorted(x []float64) []float64 {
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	return cp
}

// Median of x. The input is not reordered.
func Median(x []float64) float64 {
	return Percentile(x, 50)
}

// Percentile returns the p-th percentile (0 <= p <= 100) of x, interpolating
// linearly between the closest ranks.
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	s := sorted(x)
	switch {
	case p <= 0:
		return s[0]
	case p >= 100:
		return s[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	if lower+1 >= n {
		return s[lower]
	}
	w := rank - float64(lower)
	return s[lower]*(1-w) + s[lower+1]*w
}

// ModeString returns the most frequent value and whether x had any values.
// Ties go to the lexicographically smallest value.
func ModeString(x []string) (string, bool) {
	if len(x) == 0 {
		return "", false
	}
	counts := make(map[string]int, 8)
	for _, v := range x {
		counts[v]++
	}
	var mode string
	best := 0
	for v, c := range counts {
		if c > best || (c == best && v < mode) {
			mode, best = v, c
		}
	}
	return mode, true
}

// Correlation is the Pearson coefficient of x and y. It is NaN when the
// lengths differ, the input is empty or either side is constant.
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return math.NaN()
	}
	mx, my := Mean(x), Mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}
