package descriptive

// Default is the backend used by the package-level convenience functions.
var Default Backend = Scalar{}

// Mean returns the arithmetic mean using the default backend.
func Mean(values []float64) (float64, error) { return Default.Mean(values) }

// Median returns the median using the default backend.
func Median(values []float64) (float64, error) { return Default.Median(values) }

// Variance returns the sample variance (ddof=1) using the default backend.
// Use Backend.Variance for an explicit degrees-of-freedom choice.
func Variance(values []float64) (float64, error) { return Default.Variance(values, SampleDDOF) }

// Std returns the sample standard deviation (ddof=1) using the default
// backend.
func Std(values []float64) (float64, error) { return Default.Std(values, SampleDDOF) }

// Min returns the minimum using the default backend.
func Min(values []float64) (float64, error) { return Default.Min(values) }

// Max returns the maximum using the default backend.
func Max(values []float64) (float64, error) { return Default.Max(values) }

// Range returns max - min using the default backend.
func Range(values []float64) (float64, error) { return Default.Range(values) }

// Quantile returns the q-th quantile using the default backend.
func Quantile(values []float64, q float64) (float64, error) { return Default.Quantile(values, q) }

// IQR returns the interquartile range using the default backend.
func IQR(values []float64) (float64, error) { return Default.IQR(values) }

// Covariance returns the sample covariance (ddof=1) using the default
// backend.
func Covariance(x, y []float64) (float64, error) { return Default.Covariance(x, y, SampleDDOF) }

// Correlation returns the Pearson correlation using the default backend.
func Correlation(x, y []float64) (float64, error) { return Default.Correlation(x, y) }

// Summarize returns the summary bundle using the default backend.
func Summarize(values []float64) (*Summary, error) { return Default.Summary(values) }
