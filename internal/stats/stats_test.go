package stats

import (
	"errors"
	"math"
	"testing"
)

func TestMinMax(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		min, max float64
	}{
		{"unordered", []float64{3, 1, 2}, 1, 3},
		{"single", []float64{4.5}, 4.5, 4.5},
		{"negative", []float64{-2, -7, -1}, -7, -1},
		{"repeated", []float64{2, 2, 2}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, err := MinOf(tt.xs)
			if err != nil {
				t.Fatalf("MinOf failed: %v", err)
			}
			if min != tt.min {
				t.Errorf("MinOf(%v) = %v, want %v", tt.xs, min, tt.min)
			}

			max, err := MaxOf(tt.xs)
			if err != nil {
				t.Fatalf("MaxOf failed: %v", err)
			}
			if max != tt.max {
				t.Errorf("MaxOf(%v) = %v, want %v", tt.xs, max, tt.max)
			}
		})
	}
}

func TestMinMax_Empty(t *testing.T) {
	if _, err := MinOf(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("MinOf(nil) error = %v, want ErrEmptySeries", err)
	}
	if _, err := MaxOf([]float64{}); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("MaxOf([]) error = %v, want ErrEmptySeries", err)
	}
}

func TestBounds(t *testing.T) {
	lo, hi, err := Bounds(
		[]float64{0, 0.5, 1},
		[]float64{-0.25, 0.1},
		[]float64{2, 3.5},
	)
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}
	if lo != -0.25 || hi != 3.5 {
		t.Errorf("Bounds = [%v, %v], want [-0.25, 3.5]", lo, hi)
	}
}

func TestBounds_Empty(t *testing.T) {
	if _, _, err := Bounds(); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("Bounds() error = %v, want ErrEmptySeries", err)
	}
	if _, _, err := Bounds([]float64{1}, nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("Bounds with empty series error = %v, want ErrEmptySeries", err)
	}
}

func TestBounds_NonFinite(t *testing.T) {
	tests := []struct {
		name   string
		series [][]float64
	}{
		{"NaN", [][]float64{{0, 1}, {math.NaN()}}},
		{"+Inf", [][]float64{{0, math.Inf(1)}}},
		{"-Inf", [][]float64{{1}, {2}, {math.Inf(-1), 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Bounds(tt.series...); !errors.Is(err, ErrNonFinite) {
				t.Errorf("Bounds error = %v, want ErrNonFinite", err)
			}
		})
	}
}
