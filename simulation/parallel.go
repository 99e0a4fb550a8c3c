package simulation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gostatsim/descriptive"
)

// TrialGenerator produces the sample for one specific trial. The 0-based
// trial index lets the generator seed itself deterministically per trial,
// which is what makes parallel execution reproducible.
type TrialGenerator func(trial, n int) ([]float64, error)

// RunParallel is the opt-in parallel variant of Run, spreading trials over a
// worker pool of the given size.
//
// Parallel execution reorders trial scheduling, so output is deterministic
// only when the generator derives its randomness from the trial index it is
// given (see sampling.Seeded); a generator sharing one stochastic source
// across trials produces seed-dependent but schedule-dependent results.
// Values are still placed in trial order, one slot per trial, so on success
// len(Result.Values) == nSimulations regardless of scheduling.
//
// The first trial failure cancels the remaining work and aborts the run with
// the 1-based trial index attached.
func RunParallel(generator TrialGenerator, statistic StatisticFunc, sampleSize, nSimulations, workers int, opts *Options) (*Result, error) {
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
	if workers < 1 {
		return nil, fmt.Errorf("simulation: worker count must be positive, got %d: %w",
			workers, descriptive.ErrInvalidParameter)
	}

	name := opts.StatisticName
	if name == "" {
		name = statisticName(statistic)
	}

	values := make([]float64, nSimulations)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < nSimulations; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				// Another trial already failed; skip the remaining work.
				return nil
			}
			sample, err := generator(i, sampleSize)
			if err != nil {
				return fmt.Errorf("simulation: trial %d: drawing sample: %w", i+1, err)
			}
			if len(sample) != sampleSize {
				return fmt.Errorf("simulation: trial %d: generator returned %d observations, expected %d: %w",
					i+1, len(sample), sampleSize, descriptive.ErrInvalidParameter)
			}
			v, err := statistic(sample)
			if err != nil {
				return fmt.Errorf("simulation: trial %d: computing %s: %w", i+1, name, err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return finish(values, name, sampleSize, nSimulations, opts)
}
