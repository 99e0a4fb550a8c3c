package descriptive

// Degrees-of-freedom conventions for variance, standard deviation, and
// covariance. PopulationDDOF divides by n, SampleDDOF by n-1 (Bessel's
// correction).
const (
	PopulationDDOF = 0
	SampleDDOF     = 1
)

// Backend computes descriptive statistics over samples of float64 values.
//
// Two conforming implementations exist: Scalar (transparent element-wise
// loops) and Vector (gonum-based). They share failure conditions and agree
// numerically within a relative tolerance of 1e-9 on identical input.
//
// Quantiles use linear interpolation between order statistics at rank
// q*(n-1) over the sorted sample, the same rule as NumPy's default
// ("linear") method. Both implementations use this rule.
type Backend interface {
	// Mean returns the arithmetic mean. Fails with ErrEmptyInput on an
	// empty sample.
	Mean(values []float64) (float64, error)

	// Median returns the midpoint of the sorted sample; for even length,
	// the mean of the two middle values. Fails with ErrEmptyInput on an
	// empty sample.
	Median(values []float64) (float64, error)

	// Variance returns the sum of squared deviations from the mean divided
	// by (n - ddof). Fails with ErrEmptyInput on an empty sample, with
	// ErrInvalidParameter for negative ddof, and with ErrInsufficientData
	// when n - ddof <= 0.
	Variance(values []float64, ddof int) (float64, error)

	// Std returns the square root of Variance, under the same failure
	// conditions.
	Std(values []float64, ddof int) (float64, error)

	// Min returns the smallest value. Fails with ErrEmptyInput on an empty
	// sample.
	Min(values []float64) (float64, error)

	// Max returns the largest value. Fails with ErrEmptyInput on an empty
	// sample.
	Max(values []float64) (float64, error)

	// Range returns Max - Min. Fails with ErrEmptyInput on an empty sample.
	Range(values []float64) (float64, error)

	// Quantile returns the empirical q-th quantile for q in [0, 1] using
	// the rank q*(n-1) linear interpolation rule. Fails with
	// ErrInvalidParameter when q is outside [0, 1] and with ErrEmptyInput
	// on an empty sample.
	Quantile(values []float64, q float64) (float64, error)

	// IQR returns Quantile(values, 0.75) - Quantile(values, 0.25), under
	// the same failure conditions as Quantile.
	IQR(values []float64) (float64, error)

	// Covariance returns the mean of pairwise products of deviations,
	// divided by (n - ddof). Fails with ErrEmptyInput if either sequence is
	// empty, with ErrLengthMismatch if the lengths differ, with
	// ErrInvalidParameter for negative ddof, and with ErrInsufficientData
	// when n - ddof <= 0.
	Covariance(x, y []float64, ddof int) (float64, error)

	// Correlation returns the Pearson correlation coefficient. The ddof
	// convention cancels between numerator and denominator. Fails with
	// ErrZeroVariance when either series has exactly zero variance, and
	// otherwise under the same conditions as Covariance with the sample
	// convention.
	Correlation(x, y []float64) (float64, error)

	// Summary returns a bundle of descriptive statistics computed from one
	// derivation over the sample. Variance and Std use the sample
	// convention (ddof=1), so Summary fails with ErrInsufficientData for
	// samples shorter than two.
	Summary(values []float64) (*Summary, error)

	// Name identifies the implementation for diagnostics.
	Name() string
}
