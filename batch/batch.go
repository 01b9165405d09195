// Package batch sorts many independent sequences concurrently on a bounded
// worker pool. Each job owns its slice, so jobs never share memory.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorting"
)

// ErrPanicRecovered wraps a panic raised while sorting a job.
var ErrPanicRecovered = errors.New("panic recovered")

// Job is one sequence to sort.
type Job[T any] struct {
	// Name identifies the job in results and logs, e.g. the input file.
	Name string

	// Data is sorted in place.
	Data []T

	// Algorithm defaults to sorting.Merge when empty.
	Algorithm sorting.Algorithm
}

// Result reports how one Job went. Results are returned in job order.
type Result[T any] struct {
	Name     string
	Data     []T
	Err      error
	Duration time.Duration
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers caps the number of jobs sorted at the same time. Values below
// one mean runtime.GOMAXPROCS(0), the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Run sorts every job with sorter on a pool of workers and waits for all of
// them. A job that has not started when ctx is canceled is skipped and
// reports ctx.Err(); a job already running finishes. One failing job does not
// affect the others.
func Run[T any](ctx context.Context, sorter *sorting.Sorter[T], jobs []Job[T], opts ...Option) []Result[T] {
	o := options{workers: runtime.GOMAXPROCS(0)}

	for _, opt := range opts {
		opt(&o)
	}

	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result[T], len(jobs))
	if len(jobs) == 0 {
		return results
	}

	log := logger.Get(ctx)
	log.Debug("Starting batch sort", "jobs", len(jobs), "workers", o.workers, "kind", sorter.Name())

	pool := pond.NewPool(min(o.workers, len(jobs)))
	defer pool.StopAndWait()

	tasks := make([]pond.Task, len(jobs))

	for i, job := range jobs {
		results[i].Name = job.Name
		results[i].Data = job.Data

		tasks[i] = pool.Submit(func() {
			results[i].Duration, results[i].Err = runJob(ctx, sorter, job)
		})
	}

	failed := 0

	for i, task := range tasks {
		if err := task.Wait(); err != nil && results[i].Err == nil {
			results[i].Err = err
		}

		if results[i].Err != nil {
			failed++

			log.Warn("Batch job failed", "job", results[i].Name, "error", results[i].Err)
		}
	}

	log.Debug("Finished batch sort", "jobs", len(jobs), "failed", failed)

	return results
}

// Errors collects the errors of all failed results, or nil.
func Errors[T any](results []Result[T]) error {
	var errs []error

	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}

	return errors.Join(errs...)
}

func runJob[T any](ctx context.Context, sorter *sorting.Sorter[T], job Job[T]) (elapsed time.Duration, err error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}

	alg := job.Algorithm
	if alg == "" {
		alg = sorting.Merge
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w\n%s", ErrPanicRecovered, e, debug.Stack())
			} else {
				err = fmt.Errorf("%w: %v\n%s", ErrPanicRecovered, r, debug.Stack())
			}
		}
	}()

	start := time.Now()
	err = sorter.Sort(alg, job.Data, 0, len(job.Data))

	return time.Since(start), err
}
