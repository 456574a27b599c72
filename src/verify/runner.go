// Package verify runs named correctness and quality checks against the
// composite hashers and aggregates their outcome into a Report.
package verify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Blackdeer1524/compositehash/src"
)

var ErrChecksFailed = errors.New("checks failed")

// Metrics carries numeric by-products of a check, e.g. a computed statistic.
type Metrics map[string]float64

type CheckFunc func(ctx context.Context) (Metrics, error)

type Check struct {
	Name string
	Fn   CheckFunc
}

type Result struct {
	Name     string        `yaml:"name"`
	Passed   bool          `yaml:"passed"`
	Error    string        `yaml:"error,omitempty"`
	Duration time.Duration `yaml:"duration"`
	Metrics  Metrics       `yaml:"metrics,omitempty"`
}

type Report struct {
	RunID     string    `yaml:"run_id"`
	StartedAt time.Time `yaml:"started_at"`
	Results   []Result  `yaml:"results"`
	Failed    int       `yaml:"failed"`
}

func (r Report) Passed() bool {
	return r.Failed == 0
}

// Runner executes checks one after another. A failing check is recorded and
// the next one still runs.
type Runner struct {
	log    src.Logger
	checks []Check
}

func NewRunner(log src.Logger) *Runner {
	return &Runner{log: log}
}

func (r *Runner) Register(name string, fn CheckFunc) {
	r.checks = append(r.checks, Check{Name: name, Fn: fn})
}

func (r *Runner) Checks() []Check {
	return r.checks
}

// Run executes every registered check. The returned error wraps
// ErrChecksFailed when at least one check failed, or the context error when
// the run was cut short; the report is filled in either case.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report := Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Results:   make([]Result, 0, len(r.checks)),
	}

	for _, c := range r.checks {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run %s interrupted before %s: %w", report.RunID, c.Name, err)
		}

		res := r.runOne(ctx, c)
		if !res.Passed {
			report.Failed++
			r.log.Errorw("check failed",
				"run_id", report.RunID,
				"check", res.Name,
				"error", res.Error,
			)
		} else {
			r.log.Infow("check passed",
				"run_id", report.RunID,
				"check", res.Name,
				"duration", res.Duration,
			)
		}

		report.Results = append(report.Results, res)
	}

	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrChecksFailed, report.Failed, len(r.checks))
	}

	return report, nil
}

func (r *Runner) runOne(ctx context.Context, c Check) (res Result) {
	res.Name = c.Name

	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)

		if p := recover(); p != nil {
			res.Passed = false
			res.Error = fmt.Sprintf("panic: %v", p)
		}
	}()

	r.log.Debugf("running %s", c.Name)

	metrics, err := c.Fn(ctx)
	res.Metrics = metrics
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Passed = true
	return res
}
