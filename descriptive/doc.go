// Package descriptive provides descriptive statistics over float64 samples.
//
// The package exposes one contract, the Backend interface, with two
// conforming implementations: Scalar computes every statistic with
// transparent element-wise loops, and Vector delegates to gonum. Both share
// failure conditions and agree within a relative tolerance of 1e-9 on
// identical input, so either can be swapped in wherever a Backend is
// accepted.
//
// # Basic statistics
//
// Package-level functions use the Scalar backend and the sample
// degrees-of-freedom convention (ddof=1):
//
//	m, _ := descriptive.Mean(values)
//	sd, _ := descriptive.Std(values)      // divides by n-1
//	q3, _ := descriptive.Quantile(values, 0.75)
//
// For an explicit convention, call a backend directly:
//
//	var b descriptive.Backend = descriptive.Vector{}
//	popVar, _ := b.Variance(values, descriptive.PopulationDDOF)  // divides by n
//
// # Quantile convention
//
// Quantiles are computed by linear interpolation between order statistics at
// rank q*(n-1) over the sorted sample (NumPy's "linear" method). With
// values [1, 2, 3, 4, 5], Q1 falls at rank 1.0 giving 2 and Q3 at rank 3.0
// giving 4, so the IQR is 2.
//
// # Summaries
//
//	s, _ := descriptive.Summarize(values)
//	// s.Mean, s.Std, s.Q1, s.Median, s.Q3, s.IQR, ...
//	fmt.Println(s.Map()["median"])
//
// Summaries are derived from a single sort of the input, so the quantile
// fields are internally consistent. Summary's Variance and Std use ddof=1
// and therefore require at least two observations.
//
// # Errors
//
// All failures wrap one of the package's sentinel errors (ErrEmptyInput,
// ErrInsufficientData, ErrLengthMismatch, ErrInvalidParameter,
// ErrZeroVariance); classify them with errors.Is. The package never returns
// NaN or Inf in place of a reportable failure: correlation against a
// constant series fails with ErrZeroVariance rather than propagating a
// division by zero.
package descriptive
