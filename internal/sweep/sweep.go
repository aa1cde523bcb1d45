// Package sweep runs independent reactor scenarios concurrently.
package sweep

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/reactorsim/internal/reactor"
	"github.com/san-kum/reactorsim/internal/telemetry"
)

type Job struct {
	Name   string
	Params reactor.Params
	Points int
}

// Result holds the outcome of one job. Err carries input or balance errors
// for that job only; it never aborts the rest of the sweep.
type Result struct {
	Job        Job
	Validation reactor.Validation
	Trajectory *reactor.Trajectory
	Elapsed    time.Duration
	Err        error
}

type Sweep struct {
	workers int
	metrics *telemetry.Metrics
	log     *slog.Logger
}

func New(workers int, metrics *telemetry.Metrics, log *slog.Logger) *Sweep {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = telemetry.Logger()
	}
	return &Sweep{workers: workers, metrics: metrics, log: log}
}

// Run executes every job with at most workers in flight. Results are in job
// order. Only context cancellation returns an error.
func (s *Sweep) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.runOne(job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Sweep) runOne(job Job) Result {
	res := Result{Job: job}
	points := job.Points
	if points == 0 {
		points = reactor.DefaultPoints
	}

	if err := reactor.CheckInputs(job.Params); err != nil {
		res.Err = err
		s.log.Warn("sweep.invalid_input", "job", job.Name, "error", err)
		return res
	}

	res.Validation = reactor.ValidateFlows(job.Params.Flows)
	if s.metrics != nil {
		s.metrics.ObserveValidation(res.Validation)
	}
	if err := res.Validation.Err(); err != nil {
		res.Err = err
		s.log.Warn("sweep.constraints_violated", "job", job.Name, "violations", len(res.Validation.Violations))
		return res
	}

	start := time.Now()
	tr, err := reactor.Simulate(job.Params, points)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	res.Trajectory = tr

	if s.metrics != nil {
		s.metrics.ObserveSimulation(res.Elapsed)
	}
	s.log.Debug("sweep.completed", "job", job.Name, "points", points, "elapsed", res.Elapsed)
	return res
}
