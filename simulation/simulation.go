package simulation

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/sartorproj/gostatsim/descriptive"
)

// SampleGenerator produces a fresh sample of n observations. Generators must
// be safe to call repeatedly; seeded-stochastic generators advance their own
// source between calls.
type SampleGenerator func(n int) ([]float64, error)

// StatisticFunc reduces a sample to a single scalar statistic.
type StatisticFunc func(values []float64) (float64, error)

// Result holds the output of one simulation run. It is immutable after
// construction and owned by the caller.
type Result struct {
	// StatisticName labels the statistic for reporting; informational only.
	StatisticName string `json:"statistic_name"`
	// SampleSize is the size of every drawn sample.
	SampleSize int `json:"sample_size"`
	// NSimulations is the number of trials performed.
	NSimulations int `json:"n_simulations"`
	// Values holds one statistic value per trial, in generation order.
	Values []float64 `json:"values"`
	// Summary describes the distribution of Values.
	Summary *descriptive.Summary `json:"summary"`
	// Metadata carries optional free-form context supplied by the caller,
	// such as distribution parameters.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Options holds optional settings for a simulation run. A nil *Options is
// equivalent to the zero value.
type Options struct {
	// StatisticName overrides the reported statistic label. When empty, the
	// label is derived from the statistic function's name, falling back to
	// "statistic".
	StatisticName string
	// Metadata is attached to the Result unchanged.
	Metadata map[string]any
	// Backend computes the result summary. Defaults to descriptive.Scalar.
	Backend descriptive.Backend
}

// Run performs nSimulations trials, each drawing one sample of sampleSize
// observations from generator and reducing it with statistic, then
// summarizes the collected values.
//
// Trials execute sequentially in order, so a seeded generator yields
// reproducible output. If a generator or statistic fails, the whole run
// aborts and the error carries the 1-based trial index; no partial result is
// returned. On success len(Result.Values) == nSimulations.
//
// The summary's standard deviation uses the sample convention, so runs with
// nSimulations == 1 fail at the summary step with
// descriptive.ErrInsufficientData.
func Run(generator SampleGenerator, statistic StatisticFunc, sampleSize, nSimulations int, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if generator == nil {
		return nil, fmt.Errorf("simulation: generator must be non-nil: %w", descriptive.ErrInvalidParameter)
	}
	if statistic == nil {
		return nil, fmt.Errorf("simulation: statistic must be non-nil: %w", descriptive.ErrInvalidParameter)
	}
	if sampleSize < 1 {
		return nil, fmt.Errorf("simulation: sample size must be positive, got %d: %w",
			sampleSize, descriptive.ErrInvalidParameter)
	}
	if nSimulations < 1 {
		return nil, fmt.Errorf("simulation: simulation count must be positive, got %d: %w",
			nSimulations, descriptive.ErrInvalidParameter)
	}

	name := opts.StatisticName
	if name == "" {
		name = statisticName(statistic)
	}

	values := make([]float64, 0, nSimulations)
	for i := 0; i < nSimulations; i++ {
		sample, err := generator(sampleSize)
		if err != nil {
			return nil, fmt.Errorf("simulation: trial %d: drawing sample: %w", i+1, err)
		}
		if len(sample) != sampleSize {
			return nil, fmt.Errorf("simulation: trial %d: generator returned %d observations, expected %d: %w",
				i+1, len(sample), sampleSize, descriptive.ErrInvalidParameter)
		}
		v, err := statistic(sample)
		if err != nil {
			return nil, fmt.Errorf("simulation: trial %d: computing %s: %w", i+1, name, err)
		}
		values = append(values, v)
	}

	return finish(values, name, sampleSize, nSimulations, opts)
}

// finish summarizes the collected values and assembles the Result.
func finish(values []float64, name string, sampleSize, nSimulations int, opts *Options) (*Result, error) {
	backend := opts.Backend
	if backend == nil {
		backend = descriptive.Scalar{}
	}
	summary, err := backend.Summary(values)
	if err != nil {
		return nil, fmt.Errorf("simulation: summarizing %d values: %w", len(values), err)
	}
	return &Result{
		StatisticName: name,
		SampleSize:    sampleSize,
		NSimulations:  nSimulations,
		Values:        values,
		Summary:       summary,
		Metadata:      opts.Metadata,
	}, nil
}

// statisticName derives a display label from the statistic function's
// declared name, the Go analog of Python's __name__ fallback.
func statisticName(statistic StatisticFunc) string {
	const fallback = "statistic"

	f := runtime.FuncForPC(reflect.ValueOf(statistic).Pointer())
	if f == nil {
		return fallback
	}
	// Closures compile to symbols like pkg.TestX.func3.1, so anonymity must
	// be decided on the full symbol: any funcN or purely numeric segment
	// means there is no declared name to report.
	name := strings.TrimSuffix(f.Name(), "-fm")
	segments := strings.Split(name, ".")
	for _, segment := range segments {
		if anonymousSegment(segment) {
			return fallback
		}
	}
	name = segments[len(segments)-1]
	if name == "" {
		return fallback
	}
	return name
}

// anonymousSegment reports whether a symbol segment is compiler-generated:
// "funcN" or a bare closure counter like "1".
func anonymousSegment(segment string) bool {
	segment = strings.TrimPrefix(segment, "func")
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
