package sampling

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gostatsim/descriptive"
	"github.com/sartorproj/gostatsim/simulation"
)

// NewSource returns a seeded PCG source. The same seed always yields the
// same stream, which is what makes sequential simulation runs reproducible.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// distribution is the subset of distuv behavior the generators need.
type distribution interface {
	Rand() float64
}

// fromDist adapts a distribution into a SampleGenerator that draws n
// independent observations per call.
func fromDist(dist distribution) simulation.SampleGenerator {
	return func(n int) ([]float64, error) {
		if n < 1 {
			return nil, fmt.Errorf("sampling: sample size must be positive, got %d: %w",
				n, descriptive.ErrInvalidParameter)
		}
		values := make([]float64, n)
		for i := range values {
			values[i] = dist.Rand()
		}
		return values, nil
	}
}

// Normal returns a generator drawing i.i.d. observations from the normal
// distribution with the given mean and standard deviation.
func Normal(mu, sigma float64, src rand.Source) simulation.SampleGenerator {
	return fromDist(distuv.Normal{Mu: mu, Sigma: sigma, Src: src})
}

// Uniform returns a generator drawing i.i.d. observations uniformly from
// [min, max).
func Uniform(min, max float64, src rand.Source) simulation.SampleGenerator {
	return fromDist(distuv.Uniform{Min: min, Max: max, Src: src})
}

// Exponential returns a generator drawing i.i.d. observations from the
// exponential distribution with the given rate.
func Exponential(rate float64, src rand.Source) simulation.SampleGenerator {
	return fromDist(distuv.Exponential{Rate: rate, Src: src})
}

// Resample returns a bootstrap generator that draws observations from data
// with replacement, for studying a statistic's behavior under the empirical
// distribution of an observed sample.
func Resample(data []float64, src rand.Source) simulation.SampleGenerator {
	rng := rand.New(src)
	return func(n int) ([]float64, error) {
		if len(data) == 0 {
			return nil, fmt.Errorf("sampling: resample data is empty: %w", descriptive.ErrEmptyInput)
		}
		if n < 1 {
			return nil, fmt.Errorf("sampling: sample size must be positive, got %d: %w",
				n, descriptive.ErrInvalidParameter)
		}
		values := make([]float64, n)
		for i := range values {
			values[i] = data[rng.IntN(len(data))]
		}
		return values, nil
	}
}

// Seeded turns a generator constructor into a TrialGenerator whose
// randomness depends only on baseSeed and the trial index, making parallel
// runs deterministic (see simulation.RunParallel).
func Seeded(baseSeed uint64, build func(src rand.Source) simulation.SampleGenerator) simulation.TrialGenerator {
	return func(trial, n int) ([]float64, error) {
		gen := build(rand.NewPCG(baseSeed, uint64(trial)))
		return gen(n)
	}
}

// NormalByTrial returns a per-trial deterministically seeded normal
// generator for use with simulation.RunParallel.
func NormalByTrial(mu, sigma float64, baseSeed uint64) simulation.TrialGenerator {
	return Seeded(baseSeed, func(src rand.Source) simulation.SampleGenerator {
		return Normal(mu, sigma, src)
	})
}
