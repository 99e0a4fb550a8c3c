// Package gostatsim provides descriptive statistics and sampling-distribution simulation.
//
// GoStatSim is a small Go toolkit for exploring the sampling behavior of a
// statistic: draw a random sample of size n, compute a statistic on it, repeat
// many times, and summarize the distribution of the results. It pairs a
// descriptive-statistics library with a simulation engine that drives the
// repeated-sampling loop.
//
// # Features
//
//   - Descriptive statistics over []float64: mean, median, variance and standard
//     deviation with configurable degrees of freedom, min/max/range, quantiles
//     and IQR, covariance, Pearson correlation, and a composite summary
//   - Two interchangeable statistics backends: a transparent element-wise
//     implementation and a gonum-based vectorized one, equal within tolerance
//   - A simulation engine over caller-supplied sample generators and statistic
//     functions, with deterministic sequential execution and an opt-in
//     worker-pool parallel mode
//   - Seeded sample generators for common distributions and bootstrap resampling
//
// # Quick Start
//
// Simulate the sampling distribution of the mean:
//
//	gen := sampling.Normal(0, 1, sampling.NewSource(42))
//	stat := func(values []float64) (float64, error) {
//		return descriptive.Mean(values)
//	}
//	result, _ := simulation.Run(gen, stat, 30, 2000, &simulation.Options{
//		StatisticName: "mean",
//	})
//	fmt.Println(result.Summary.Mean, result.Summary.Std)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - descriptive: Descriptive statistics with two conforming backends
//   - simulation: Repeated-sampling simulation engine
//   - sampling: Seeded sample generators (distributions, bootstrap)
//
// # References
//
//   - Wasserman, L. (2004). All of Statistics: A Concise Course in Statistical Inference
//   - Efron, B., & Tibshirani, R. J. (1993). An Introduction to the Bootstrap
package gostatsim
