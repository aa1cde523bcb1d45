package sweep

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/reactorsim/internal/reactor"
)

// Axis is one input varied across a grid.
type Axis struct {
	Field  string
	Values []float64
}

// ParseAxis reads "field=v1,v2,...", e.g. "q31=0,2,4".
func ParseAxis(s string) (Axis, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok || name == "" || list == "" {
		return Axis{}, fmt.Errorf("invalid axis %q: want field=v1,v2,...", s)
	}
	var p reactor.Params
	if _, ok := p.Field(name); !ok {
		return Axis{}, fmt.Errorf("invalid axis %q: unknown field %s", s, name)
	}

	parts := strings.Split(list, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Axis{}, fmt.Errorf("invalid axis %q: %w", s, err)
		}
		values = append(values, v)
	}
	return Axis{Field: name, Values: values}, nil
}

// Grid expands base into one job per combination of axis values. The first
// axis varies slowest. Job names carry the applied values.
func Grid(base Job, axes []Axis) []Job {
	var jobs []Job
	grid(base, axes, 0, &jobs)
	return jobs
}

func grid(current Job, axes []Axis, depth int, jobs *[]Job) {
	if depth == len(axes) {
		*jobs = append(*jobs, current)
		return
	}

	ax := axes[depth]
	for _, v := range ax.Values {
		next := current
		if ptr, ok := next.Params.Field(ax.Field); ok {
			*ptr = v
		}
		next.Name = fmt.Sprintf("%s %s=%g", current.Name, strings.ToLower(ax.Field), v)
		grid(next, axes, depth+1, jobs)
	}
}
