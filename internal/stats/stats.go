// Package stats provides the summary statistics used to scale charts.
package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptySeries is returned for statistics over a sequence with no values.
var ErrEmptySeries = errors.New("stats: empty series")

// ErrNonFinite is returned by Bounds when a series holds NaN or an infinity.
var ErrNonFinite = errors.New("stats: non-finite value")

// MinOf returns the smallest value in xs.
func MinOf(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySeries
	}
	min := xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
	}
	return min, nil
}

// MaxOf returns the largest value in xs.
func MaxOf(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySeries
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max, nil
}

// Bounds returns the range shared by every series: the least per-series
// minimum and the greatest per-series maximum. Every value must be finite.
func Bounds(series ...[]float64) (lo, hi float64, err error) {
	if len(series) == 0 {
		return 0, 0, ErrEmptySeries
	}
	for i, xs := range series {
		for j, x := range xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, 0, fmt.Errorf("series %d index %d: %w: %g", i, j, ErrNonFinite, x)
			}
		}
		min, err := MinOf(xs)
		if err != nil {
			return 0, 0, fmt.Errorf("series %d: %w", i, err)
		}
		max, _ := MaxOf(xs)
		if i == 0 || min < lo {
			lo = min
		}
		if i == 0 || max > hi {
			hi = max
		}
	}
	return lo, hi, nil
}
