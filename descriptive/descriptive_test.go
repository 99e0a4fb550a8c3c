package descriptive

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends() []Backend {
	return []Backend{Scalar{}, Vector{}}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
	}

	for _, b := range backends() {
		for _, tt := range tests {
			t.Run(b.Name()+"/"+tt.name, func(t *testing.T) {
				result, err := b.Mean(tt.values)
				require.NoError(t, err)
				assert.InDelta(t, tt.expected, result, 1e-10)
			})
		}

		_, err := b.Mean(nil)
		assert.ErrorIs(t, err, ErrEmptyInput, b.Name())
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd", []float64{1, 2, 3, 4, 5}, 3.0},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"unsorted", []float64{5, 1, 4, 2, 3}, 3.0},
		{"single", []float64{7}, 7.0},
	}

	for _, b := range backends() {
		for _, tt := range tests {
			t.Run(b.Name()+"/"+tt.name, func(t *testing.T) {
				result, err := b.Median(tt.values)
				require.NoError(t, err)
				assert.InDelta(t, tt.expected, result, 1e-10)
			})
		}

		_, err := b.Median([]float64{})
		assert.ErrorIs(t, err, ErrEmptyInput, b.Name())
	}
}

func TestVariance(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			sample, err := b.Variance(values, SampleDDOF)
			require.NoError(t, err)
			assert.InDelta(t, 2.5, sample, 1e-10)

			population, err := b.Variance(values, PopulationDDOF)
			require.NoError(t, err)
			assert.InDelta(t, 2.0, population, 1e-10)

			// Bessel's correction only ever enlarges the estimate.
			assert.LessOrEqual(t, population, sample)

			_, err = b.Variance([]float64{5}, SampleDDOF)
			assert.ErrorIs(t, err, ErrInsufficientData)

			_, err = b.Variance(nil, SampleDDOF)
			assert.ErrorIs(t, err, ErrEmptyInput)

			_, err = b.Variance(values, -1)
			assert.ErrorIs(t, err, ErrInvalidParameter)

			// Single observation with the population convention is defined.
			zero, err := b.Variance([]float64{5}, PopulationDDOF)
			require.NoError(t, err)
			assert.Equal(t, 0.0, zero)
		})
	}
}

func TestStd(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			variance, err := b.Variance(values, SampleDDOF)
			require.NoError(t, err)

			std, err := b.Std(values, SampleDDOF)
			require.NoError(t, err)
			assert.InDelta(t, math.Sqrt(variance), std, 1e-12)

			_, err = b.Std([]float64{1}, SampleDDOF)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestMinMaxRange(t *testing.T) {
	values := []float64{5, 2, 8, 1, 9, 3}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			min, err := b.Min(values)
			require.NoError(t, err)
			assert.Equal(t, 1.0, min)

			max, err := b.Max(values)
			require.NoError(t, err)
			assert.Equal(t, 9.0, max)

			rng, err := b.Range(values)
			require.NoError(t, err)
			assert.Equal(t, 8.0, rng)

			for _, fn := range []func([]float64) (float64, error){b.Min, b.Max, b.Range} {
				_, err := fn(nil)
				assert.ErrorIs(t, err, ErrEmptyInput)
			}
		})
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			// Rank interpolation at q*(n-1): Q1 at rank 1.0, Q3 at rank 3.0.
			q1, err := b.Quantile(values, 0.25)
			require.NoError(t, err)
			assert.InDelta(t, 2.0, q1, 1e-10)

			q3, err := b.Quantile(values, 0.75)
			require.NoError(t, err)
			assert.InDelta(t, 4.0, q3, 1e-10)

			mid, err := b.Quantile([]float64{1, 2, 3, 4}, 0.5)
			require.NoError(t, err)
			assert.InDelta(t, 2.5, mid, 1e-10)

			single, err := b.Quantile([]float64{7}, 0.3)
			require.NoError(t, err)
			assert.Equal(t, 7.0, single)

			for _, q := range []float64{-0.1, 1.1, math.NaN()} {
				_, err := b.Quantile(values, q)
				assert.ErrorIs(t, err, ErrInvalidParameter, "q=%v", q)
			}

			_, err = b.Quantile(nil, 0.5)
			assert.ErrorIs(t, err, ErrEmptyInput)
		})
	}
}

func TestQuantileEndpoints(t *testing.T) {
	samples := [][]float64{
		{1, 2, 3, 4, 5},
		{3.5},
		{-2, 0, 7, 7, 11, 42},
		{0.25, 0.5, 0.75},
	}

	for _, b := range backends() {
		for _, values := range samples {
			min, err := b.Min(values)
			require.NoError(t, err)
			max, err := b.Max(values)
			require.NoError(t, err)

			q0, err := b.Quantile(values, 0)
			require.NoError(t, err)
			assert.Equal(t, min, q0, b.Name())

			q1, err := b.Quantile(values, 1)
			require.NoError(t, err)
			assert.Equal(t, max, q1, b.Name())
		}
	}
}

func TestIQR(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			iqr, err := b.IQR([]float64{1, 2, 3, 4, 5})
			require.NoError(t, err)
			assert.InDelta(t, 2.0, iqr, 1e-10)

			_, err = b.IQR(nil)
			assert.ErrorIs(t, err, ErrEmptyInput)
		})
	}
}

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			// y = 2x, so cov(x, y) = 2*var(x) = 5 with ddof=1.
			cov, err := b.Covariance(x, y, SampleDDOF)
			require.NoError(t, err)
			assert.InDelta(t, 5.0, cov, 1e-10)

			pop, err := b.Covariance(x, y, PopulationDDOF)
			require.NoError(t, err)
			assert.InDelta(t, 4.0, pop, 1e-10)

			_, err = b.Covariance(x, []float64{1, 2, 3}, SampleDDOF)
			assert.ErrorIs(t, err, ErrLengthMismatch)

			_, err = b.Covariance(nil, nil, SampleDDOF)
			assert.ErrorIs(t, err, ErrEmptyInput)

			_, err = b.Covariance([]float64{1}, []float64{2}, SampleDDOF)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			self, err := b.Correlation(x, x)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, self, 1e-12)

			inverse, err := b.Correlation(x, []float64{5, 4, 3, 2, 1})
			require.NoError(t, err)
			assert.InDelta(t, -1.0, inverse, 1e-12)

			_, err = b.Correlation(x, []float64{3, 3, 3, 3, 3})
			assert.ErrorIs(t, err, ErrZeroVariance)

			_, err = b.Correlation(x, []float64{1, 2})
			assert.ErrorIs(t, err, ErrLengthMismatch)
		})
	}
}

func TestSummary(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			s, err := b.Summary(values)
			require.NoError(t, err)

			assert.Equal(t, 5.0, s.Count)
			assert.InDelta(t, 3.0, s.Mean, 1e-10)
			assert.InDelta(t, 2.5, s.Variance, 1e-10)
			assert.InDelta(t, math.Sqrt(2.5), s.Std, 1e-10)
			assert.Equal(t, 1.0, s.Min)
			assert.InDelta(t, 2.0, s.Q1, 1e-10)
			assert.InDelta(t, 3.0, s.Median, 1e-10)
			assert.InDelta(t, 4.0, s.Q3, 1e-10)
			assert.Equal(t, 5.0, s.Max)
			assert.InDelta(t, 2.0, s.IQR, 1e-10)
			assert.Equal(t, 4.0, s.Range)

			m := s.Map()
			assert.Len(t, m, 11)
			assert.Equal(t, s.Median, m["median"])
			assert.Equal(t, s.IQR, m["iqr"])

			_, err = b.Summary(nil)
			assert.ErrorIs(t, err, ErrEmptyInput)

			// Sample variance needs two observations.
			_, err = b.Summary([]float64{1})
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestSummaryInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 17))

	for _, b := range backends() {
		for trial := 0; trial < 20; trial++ {
			n := 2 + rng.IntN(50)
			values := make([]float64, n)
			for i := range values {
				values[i] = rng.Float64()*20 - 10
			}

			s, err := b.Summary(values)
			require.NoError(t, err)

			assert.LessOrEqual(t, s.Min, s.Q1, b.Name())
			assert.LessOrEqual(t, s.Q1, s.Median, b.Name())
			assert.LessOrEqual(t, s.Median, s.Q3, b.Name())
			assert.LessOrEqual(t, s.Q3, s.Max, b.Name())
			assert.GreaterOrEqual(t, s.Variance, 0.0, b.Name())
			assert.InDelta(t, math.Sqrt(s.Variance), s.Std, 1e-12, b.Name())
			assert.InDelta(t, s.Max-s.Min, s.Range, 1e-12, b.Name())
			assert.InDelta(t, s.Q3-s.Q1, s.IQR, 1e-12, b.Name())
		}
	}
}

// TestBackendsAgree checks that Scalar and Vector return equal results for
// every operation, within a relative tolerance of 1e-9, on shared input.
func TestBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	scalar, vector := Scalar{}, Vector{}

	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.IntN(200)
		x := make([]float64, n)
		y := make([]float64, n)
		for i := range x {
			// Keep values away from zero so relative comparison is meaningful.
			x[i] = 1 + rng.Float64()
			y[i] = 1 + rng.Float64() + 0.5*x[i]
		}

		type unaryOp struct {
			name string
			fn   func(Backend) (float64, error)
		}
		ops := []unaryOp{
			{"mean", func(b Backend) (float64, error) { return b.Mean(x) }},
			{"median", func(b Backend) (float64, error) { return b.Median(x) }},
			{"variance0", func(b Backend) (float64, error) { return b.Variance(x, PopulationDDOF) }},
			{"variance1", func(b Backend) (float64, error) { return b.Variance(x, SampleDDOF) }},
			{"std", func(b Backend) (float64, error) { return b.Std(x, SampleDDOF) }},
			{"min", func(b Backend) (float64, error) { return b.Min(x) }},
			{"max", func(b Backend) (float64, error) { return b.Max(x) }},
			{"range", func(b Backend) (float64, error) { return b.Range(x) }},
			{"q10", func(b Backend) (float64, error) { return b.Quantile(x, 0.1) }},
			{"q50", func(b Backend) (float64, error) { return b.Quantile(x, 0.5) }},
			{"q90", func(b Backend) (float64, error) { return b.Quantile(x, 0.9) }},
			{"iqr", func(b Backend) (float64, error) { return b.IQR(x) }},
			{"covariance", func(b Backend) (float64, error) { return b.Covariance(x, y, SampleDDOF) }},
			{"correlation", func(b Backend) (float64, error) { return b.Correlation(x, y) }},
		}

		for _, op := range ops {
			want, err := op.fn(scalar)
			require.NoError(t, err, op.name)
			got, err := op.fn(vector)
			require.NoError(t, err, op.name)

			if want == 0 {
				assert.InDelta(t, want, got, 1e-9, op.name)
			} else {
				assert.InEpsilon(t, want, got, 1e-9, op.name)
			}
		}

		ss, err := scalar.Summary(x)
		require.NoError(t, err)
		vs, err := vector.Summary(x)
		require.NoError(t, err)
		for key, want := range ss.Map() {
			assert.InEpsilon(t, want, vs.Map()[key], 1e-9, "summary %s", key)
		}
	}
}

// TestDerivedStatisticsPreserveCause checks that statistics built on other
// statistics wrap the inner failure instead of replacing it, so the original
// failing operation stays visible in the chain.
func TestDerivedStatisticsPreserveCause(t *testing.T) {
	var s Scalar
	_, err := s.Range(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.ErrorContains(t, err, "min")

	_, err = s.IQR(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.ErrorContains(t, err, "quantile")

	var v Vector
	_, err = v.Median(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.ErrorContains(t, err, "quantile")
}

func TestPackageLevelDefaults(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	mean, err := Mean(values)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, mean, 1e-10)

	// Package-level Variance uses the sample convention.
	variance, err := Variance(values)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, variance, 1e-10)

	cov, err := Covariance(values, values)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, cov, 1e-10)

	s, err := Summarize(values)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s.IQR, 1e-10)
}
