// Package sampling builds sample generators for the simulation engine.
//
// Generators carry their randomness explicitly as a math/rand/v2 source, so
// there is no process-wide mutable state: two runs built from the same seed
// produce identical samples, and independent generators compose safely.
//
// # Distribution-backed generators
//
//	gen := sampling.Normal(0, 1, sampling.NewSource(42))
//	sample, _ := gen(30)  // 30 i.i.d. standard-normal observations
//
// Uniform and Exponential work the same way, all backed by gonum's distuv
// distributions.
//
// # Bootstrap resampling
//
// Resample draws with replacement from an observed sample, which plugs the
// empirical distribution of real data into the engine:
//
//	gen := sampling.Resample(observed, sampling.NewSource(7))
//
// # Per-trial seeding
//
// Seeded and NormalByTrial derive a fresh source from (baseSeed, trial) for
// each trial, which is the form simulation.RunParallel needs to stay
// deterministic.
package sampling
