package descriptive

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Vector is the vectorized Backend implementation built on gonum. It mirrors
// Scalar's contract exactly, including the rank q*(n-1) quantile rule, and
// exists both for throughput and as an independent cross-check of the
// transparent implementation.
type Vector struct{}

// Name implements Backend.
func (Vector) Name() string { return "gonum" }

// Mean calculates the arithmetic mean of the sample.
func (Vector) Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyInput)
	}
	return stat.Mean(values, nil), nil
}

// Median returns the 0.5 quantile, which coincides with the midpoint rule for
// both odd and even lengths.
func (v Vector) Median(values []float64) (float64, error) {
	m, err := v.Quantile(values, 0.5)
	if err != nil {
		return 0, fmt.Errorf("median: %w", err)
	}
	return m, nil
}

// Variance calculates the variance with divisor n-ddof.
func (Vector) Variance(values []float64, ddof int) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("variance: %w", ErrEmptyInput)
	}
	if ddof < 0 {
		return 0, fmt.Errorf("variance: ddof must be non-negative, got %d: %w", ddof, ErrInvalidParameter)
	}
	n := len(values)
	if n <= ddof {
		return 0, fmt.Errorf("variance: need at least %d observations for ddof=%d, got %d: %w",
			ddof+1, ddof, n, ErrInsufficientData)
	}

	dev := make([]float64, n)
	copy(dev, values)
	floats.AddConst(-stat.Mean(values, nil), dev)
	return floats.Dot(dev, dev) / float64(n-ddof), nil
}

// Std calculates the standard deviation with divisor n-ddof.
func (v Vector) Std(values []float64, ddof int) (float64, error) {
	variance, err := v.Variance(values, ddof)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Min returns the minimum value in the sample.
func (Vector) Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("min: %w", ErrEmptyInput)
	}
	return floats.Min(values), nil
}

// Max returns the maximum value in the sample.
func (Vector) Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("max: %w", ErrEmptyInput)
	}
	return floats.Max(values), nil
}

// Range returns max - min.
func (Vector) Range(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("range: %w", ErrEmptyInput)
	}
	return floats.Max(values) - floats.Min(values), nil
}

// Quantile returns the q-th quantile by linear interpolation at rank q*(n-1)
// over the sorted sample. gonum's stat.Quantile implements different
// cumulant conventions, so the interpolation is done directly to stay
// bit-comparable with the Scalar backend.
func (Vector) Quantile(values []float64, q float64) (float64, error) {
	if !(q >= 0 && q <= 1) {
		return 0, fmt.Errorf("quantile: q must be in [0, 1], got %v: %w", q, ErrInvalidParameter)
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("quantile: %w", ErrEmptyInput)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return interpolate(sorted, q), nil
}

func interpolate(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lower := int(pos)
	upper := lower + 1
	if upper > n-1 {
		upper = n - 1
	}
	weight := pos - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IQR returns the interquartile range Q3 - Q1 from a single sort.
func (Vector) IQR(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("iqr: %w", ErrEmptyInput)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return interpolate(sorted, 0.75) - interpolate(sorted, 0.25), nil
}

// Covariance calculates the covariance of paired observations with divisor
// n-ddof.
func (Vector) Covariance(x, y []float64, ddof int) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, fmt.Errorf("covariance: %w", ErrEmptyInput)
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("covariance: x has %d observations, y has %d: %w",
			len(x), len(y), ErrLengthMismatch)
	}
	if ddof < 0 {
		return 0, fmt.Errorf("covariance: ddof must be non-negative, got %d: %w", ddof, ErrInvalidParameter)
	}
	n := len(x)
	if n <= ddof {
		return 0, fmt.Errorf("covariance: need at least %d paired observations for ddof=%d, got %d: %w",
			ddof+1, ddof, n, ErrInsufficientData)
	}

	devX := make([]float64, n)
	copy(devX, x)
	floats.AddConst(-stat.Mean(x, nil), devX)
	devY := make([]float64, n)
	copy(devY, y)
	floats.AddConst(-stat.Mean(y, nil), devY)
	return floats.Dot(devX, devY) / float64(n-ddof), nil
}

// Correlation calculates the Pearson correlation coefficient via
// stat.Correlation after ruling out degenerate series.
func (v Vector) Correlation(x, y []float64) (float64, error) {
	if _, err := v.Covariance(x, y, SampleDDOF); err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	stdX, _ := v.Std(x, SampleDDOF)
	stdY, _ := v.Std(y, SampleDDOF)
	if stdX == 0 || stdY == 0 {
		return 0, fmt.Errorf("correlation: %w", ErrZeroVariance)
	}
	return stat.Correlation(x, y, nil), nil
}

// Summary computes the summary bundle from one sorted derivation of the
// sample, so the quantile-based fields share tie-breaking.
func (v Vector) Summary(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("summary: %w", ErrEmptyInput)
	}

	variance, err := v.Variance(values, SampleDDOF)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min := sorted[0]
	max := sorted[len(sorted)-1]
	q1 := interpolate(sorted, 0.25)
	median := interpolate(sorted, 0.5)
	q3 := interpolate(sorted, 0.75)

	return &Summary{
		Count:    float64(len(values)),
		Mean:     stat.Mean(values, nil),
		Variance: variance,
		Std:      math.Sqrt(variance),
		Min:      min,
		Q1:       q1,
		Median:   median,
		Q3:       q3,
		Max:      max,
		IQR:      q3 - q1,
		Range:    max - min,
	}, nil
}
