// Package models defines data structures for simulated-annealing result plotting.
package models

// ResultSeries is the best C_max found at each iteration of one
// simulated-annealing run, read from a single results file.
type ResultSeries struct {
	// Name is the results file name (no path), e.g. "results_sa_001.txt".
	Name   string
	// Values holds one value per input line, in file order.
	Values []int64
}

// Len returns the number of iterations in the series.
func (s ResultSeries) Len() int {
	return len(s.Values)
}

// X returns the 0-based iteration index of every value.
func (s ResultSeries) X() []float64 {
	xs := make([]float64, len(s.Values))
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// Y returns the values as float64 for plotting.
func (s ResultSeries) Y() []float64 {
	ys := make([]float64, len(s.Values))
	for i, v := range s.Values {
		ys[i] = float64(v)
	}
	return ys
}

// Bounds returns the smallest and largest value of the series.
// Both are zero for an empty series.
func (s ResultSeries) Bounds() (lo, hi int64) {
	if len(s.Values) == 0 {
		return 0, 0
	}
	lo, hi = s.Values[0], s.Values[0]
	for _, v := range s.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
