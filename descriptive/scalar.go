package descriptive

import (
	"fmt"
	"math"
	"sort"
)

// Scalar is the transparent Backend implementation. Every statistic is an
// explicit element-wise loop so the computation stays easy to follow and
// serves as the reference for the vectorized backend.
type Scalar struct{}

// Name implements Backend.
func (Scalar) Name() string { return "scalar" }

// Mean calculates the arithmetic mean of the sample.
func (Scalar) Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyInput)
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median returns the middle of the sorted sample, averaging the two middle
// values for even lengths.
func (Scalar) Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("median: %w", ErrEmptyInput)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// Variance calculates the variance with divisor n-ddof.
func (s Scalar) Variance(values []float64, ddof int) (float64, error) {
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

	mean, _ := s.Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(n-ddof), nil
}

// Std calculates the standard deviation with divisor n-ddof.
func (s Scalar) Std(values []float64, ddof int) (float64, error) {
	variance, err := s.Variance(values, ddof)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Min returns the minimum value in the sample.
func (Scalar) Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("min: %w", ErrEmptyInput)
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the maximum value in the sample.
func (Scalar) Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("max: %w", ErrEmptyInput)
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// Range returns max - min.
func (s Scalar) Range(values []float64) (float64, error) {
	min, err := s.Min(values)
	if err != nil {
		return 0, fmt.Errorf("range: %w", err)
	}
	max, _ := s.Max(values)
	return max - min, nil
}

// Quantile returns the q-th quantile by linear interpolation at rank q*(n-1)
// over the sorted sample.
func (Scalar) Quantile(values []float64, q float64) (float64, error) {
	if !(q >= 0 && q <= 1) {
		return 0, fmt.Errorf("quantile: q must be in [0, 1], got %v: %w", q, ErrInvalidParameter)
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("quantile: %w", ErrEmptyInput)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 1 {
		return sorted[0], nil
	}

	pos := q * float64(n-1)
	lower := int(pos)
	upper := lower + 1
	if upper > n-1 {
		upper = n - 1
	}
	weight := pos - float64(lower)

	return sorted[lower]*(1-weight) + sorted[upper]*weight, nil
}

// IQR returns the interquartile range Q3 - Q1.
func (s Scalar) IQR(values []float64) (float64, error) {
	q1, err := s.Quantile(values, 0.25)
	if err != nil {
		return 0, fmt.Errorf("iqr: %w", err)
	}
	q3, _ := s.Quantile(values, 0.75)
	return q3 - q1, nil
}

// Covariance calculates the covariance of paired observations with divisor
// n-ddof.
func (s Scalar) Covariance(x, y []float64, ddof int) (float64, error) {
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

	meanX, _ := s.Mean(x)
	meanY, _ := s.Mean(y)
	sum := 0.0
	for i := range x {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}
	return sum / float64(n-ddof), nil
}

// Correlation calculates the Pearson correlation coefficient.
func (s Scalar) Correlation(x, y []float64) (float64, error) {
	cov, err := s.Covariance(x, y, SampleDDOF)
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	stdX, _ := s.Std(x, SampleDDOF)
	stdY, _ := s.Std(y, SampleDDOF)
	if stdX == 0 || stdY == 0 {
		return 0, fmt.Errorf("correlation: %w", ErrZeroVariance)
	}
	return cov / (stdX * stdY), nil
}

// Summary computes the summary bundle from one sorted derivation of the
// sample, so the quantile-based fields share tie-breaking.
func (s Scalar) Summary(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("summary: %w", ErrEmptyInput)
	}

	variance, err := s.Variance(values, SampleDDOF)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	mean, _ := s.Mean(values)
	min, _ := s.Min(values)
	max, _ := s.Max(values)
	q1, _ := s.Quantile(values, 0.25)
	median, _ := s.Quantile(values, 0.5)
	q3, _ := s.Quantile(values, 0.75)

	return &Summary{
		Count:    float64(len(values)),
		Mean:     mean,
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
