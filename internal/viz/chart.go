package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/reactorsim/internal/reactor"
	"github.com/san-kum/reactorsim/internal/stats"
)

const DefaultCaption = "Change in Concentration vs Time"

// ErrDiverged is returned when a concentration overflowed and the trajectory
// has no finite range to plot.
var ErrDiverged = errors.New("viz: trajectory diverged to a non-finite value")

type ChartOptions struct {
	Width   int
	Height  int
	Caption string
	Color   bool
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 80, Height: 15, Caption: DefaultCaption, Color: true}
}

// Chart plots the three concentration series over one shared axis pair and
// appends the time range covered by the horizontal axis.
func Chart(tr *reactor.Trajectory, opts ChartOptions) (string, error) {
	if tr == nil || tr.Len() == 0 {
		return "", stats.ErrEmptySeries
	}
	lo, hi, err := bounds(tr)
	if err != nil {
		return "", err
	}

	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 15
	}
	if opts.Caption == "" {
		opts.Caption = DefaultCaption
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Precision(3),
		asciigraph.Caption(opts.Caption),
		asciigraph.SeriesLegends(SeriesNames...),
	}
	if opts.Color {
		graphOpts = append(graphOpts, asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Yellow))
	}

	plot := asciigraph.PlotMany(tr.Series(), graphOpts...)
	return plot + "\n" + timeAxis(tr.Times[0], tr.Times[tr.Len()-1], opts.Width), nil
}

func timeAxis(t0, t1 float64, width int) string {
	left := fmt.Sprintf("t=%.4g", t0)
	right := fmt.Sprintf("t=%.4g", t1)
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func bounds(tr *reactor.Trajectory) (lo, hi float64, err error) {
	lo, hi, err = stats.Bounds(tr.Series()...)
	if errors.Is(err, stats.ErrNonFinite) {
		return 0, 0, fmt.Errorf("%w: %w", ErrDiverged, err)
	}
	return lo, hi, err
}
