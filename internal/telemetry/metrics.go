package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/san-kum/reactorsim/internal/reactor"
)

// Metrics counts simulation activity on a private registry so a CLI run can
// dump it in textfile-collector format.
type Metrics struct {
	Registry     *prometheus.Registry
	Simulations  prometheus.Counter
	Violations   *prometheus.CounterVec
	Duration     prometheus.Histogram
	RecordsSaved prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		Simulations: f.NewCounter(prometheus.CounterOpts{
			Name: "reactorsim_simulations_total",
			Help: "Completed reactor simulations.",
		}),
		Violations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reactorsim_constraint_violations_total",
			Help: "Mass-balance equations that failed validation.",
		}, []string{"equation"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "reactorsim_simulation_seconds",
			Help:    "Wall time of a single simulation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		RecordsSaved: f.NewCounter(prometheus.CounterOpts{
			Name: "reactorsim_records_saved_total",
			Help: "Input records appended to the record store.",
		}),
	}
}

func (m *Metrics) ObserveSimulation(elapsed time.Duration) {
	m.Simulations.Inc()
	m.Duration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveValidation(v reactor.Validation) {
	for _, eq := range v.Violations {
		m.Violations.WithLabelValues(eq.String()).Inc()
	}
}

// WriteTextfile writes every metric to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
