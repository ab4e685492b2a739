// Package bench is a small harness for comparing file read methods across
// file sizes. Each (function, param) pair is run for a number of
// iterations with optional setup and teardown around every run; only the
// function itself is timed.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lukaspustina/fastfile/internal/logger"
)

// Param is one input to a benchmark, typically a file of a given size.
type Param[T any] struct {
	// Name identifies the param in CSV output, e.g. "1048576".
	Name string

	// Display is the human-readable name, e.g. "1Mi".
	Display string

	// Amount is the number of bytes processed per run, used for throughput.
	Amount uint64

	Value T
}

// Function is a named benchmarked function.
type Function[T any] struct {
	Name string
	Fn   func(T) error
}

// Benchmark runs every Function against every Param.
type Benchmark[T any] struct {
	// ID identifies the run in logs, traces and results. Run generates
	// one if it is empty.
	ID string

	Name       string
	Params     []Param[T]
	Iterations int
	Functions  []Function[T]

	// Setup and Teardown run before and after every timed run. A Setup
	// error aborts the benchmark; a Teardown error is logged.
	Setup    func(T) error
	Teardown func(T) error
}

// New returns a Benchmark without functions.
func New[T any](name string, params []Param[T], iterations int) *Benchmark[T] {
	return &Benchmark[T]{Name: name, Params: params, Iterations: iterations}
}

// AddFunc appends a function and returns b.
func (b *Benchmark[T]) AddFunc(name string, fn func(T) error) *Benchmark[T] {
	b.Functions = append(b.Functions, Function[T]{Name: name, Fn: fn})
	return b
}

// WithSetup sets the per-run setup and returns b.
func (b *Benchmark[T]) WithSetup(fn func(T) error) *Benchmark[T] {
	b.Setup = fn
	return b
}

// WithTeardown sets the per-run teardown and returns b.
func (b *Benchmark[T]) WithTeardown(fn func(T) error) *Benchmark[T] {
	b.Teardown = fn
	return b
}

// Sample is a single timed run.
type Sample struct {
	Method   string
	Param    string
	Duration time.Duration
}

// Run is the samples of one (function, param) pair.
type Run struct {
	Method  string
	Param   string
	Display string
	Amount  uint64
	Samples []Sample
}

// Summary returns the timing summary of the run.
func (r *Run) Summary() Summary {
	return Summarize(r.Samples)
}

// Throughput returns the throughput summary of the run.
func (r *Run) Throughput() Throughput {
	return NewThroughput(r.Summary(), r.Amount)
}

// Result is the outcome of Benchmark.Run.
type Result struct {
	ID   string
	Name string
	Runs []*Run
}

// Samples returns all samples in run order.
func (r *Result) Samples() []Sample {
	var all []Sample
	for _, run := range r.Runs {
		all = append(all, run.Samples...)
	}
	return all
}

// Run executes the benchmark. It stops early when ctx is done and returns
// the samples collected so far together with the context error.
func (b *Benchmark[T]) Run(ctx context.Context) (*Result, error) {
	if b.Iterations < 1 {
		return nil, fmt.Errorf("benchmark %q: iterations must be at least 1, got %d", b.Name, b.Iterations)
	}

	id := b.ID
	if id == "" {
		id = uuid.NewString()
	}

	res := &Result{
		ID:   id,
		Name: b.Name,
		Runs: make([]*Run, 0, len(b.Params)*len(b.Functions)),
	}

	logger.InfoCtx(ctx, "running benchmark",
		logger.RunID(res.ID),
		"benchmark", b.Name,
		"params", len(b.Params),
		"functions", len(b.Functions),
		logger.Iterations(b.Iterations))

	for _, f := range b.Functions {
		for _, p := range b.Params {
			run, err := b.run(ctx, f, p)
			if run != nil {
				res.Runs = append(res.Runs, run)
			}
			if err != nil {
				return res, err
			}

			sum := run.Summary()
			logger.DebugCtx(ctx, "benchmark run finished",
				logger.RunID(res.ID),
				logger.Method(f.Name),
				"param", p.Display,
				"mean_ms", sum.Mean.Seconds()*1000,
				"throughput", run.Throughput().String())
		}
	}

	return res, nil
}

func (b *Benchmark[T]) run(ctx context.Context, f Function[T], p Param[T]) (*Run, error) {
	run := &Run{
		Method:  f.Name,
		Param:   p.Name,
		Display: p.Display,
		Amount:  p.Amount,
		Samples: make([]Sample, 0, b.Iterations),
	}

	for range b.Iterations {
		if err := ctx.Err(); err != nil {
			return run, err
		}

		if b.Setup != nil {
			if err := b.Setup(p.Value); err != nil {
				return run, fmt.Errorf("setup %s/%s: %w", f.Name, p.Display, err)
			}
		}

		start := time.Now()
		err := f.Fn(p.Value)
		elapsed := time.Since(start)
		if err != nil {
			return run, fmt.Errorf("%s/%s: %w", f.Name, p.Display, err)
		}
		run.Samples = append(run.Samples, Sample{Method: f.Name, Param: p.Name, Duration: elapsed})

		if b.Teardown != nil {
			if err := b.Teardown(p.Value); err != nil {
				logger.WarnCtx(ctx, "benchmark teardown failed",
					logger.Method(f.Name), "param", p.Display, logger.Err(err))
			}
		}
	}

	return run, nil
}
