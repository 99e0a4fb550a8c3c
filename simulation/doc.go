// Package simulation drives repeated-sampling simulations of a statistic.
//
// The engine implements the pattern behind sampling-distribution
// experiments: draw a random sample of size n, compute a statistic on it,
// repeat many times, then summarize the distribution of the collected
// values. It is distribution-agnostic: callers supply a SampleGenerator and
// a StatisticFunc, so any data-generating process plugs in.
//
// # Running a simulation
//
//	gen := sampling.Normal(0, 1, sampling.NewSource(42))
//	result, err := simulation.Run(gen, descriptive.Mean, 30, 2000, nil)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s: mean=%.4f std=%.4f\n",
//	    result.StatisticName, result.Summary.Mean, result.Summary.Std)
//
// Trials run sequentially in order, so with a seeded generator the same call
// always yields the same Result. A failing trial aborts the run with its
// trial index attached; the engine never skips trials or returns a partial
// Result, since a silently shortened run would produce a misleading summary.
//
// # Parallel runs
//
// RunParallel spreads trials over a worker pool. Determinism then requires a
// TrialGenerator that seeds itself from the trial index:
//
//	gen := sampling.NormalByTrial(0, 1, 42)
//	result, err := simulation.RunParallel(gen, descriptive.Mean, 30, 2000, 8, nil)
package simulation
