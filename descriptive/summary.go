package descriptive

// Summary bundles common descriptive statistics of a single sample.
// Variance and Std use the sample convention (ddof=1).
type Summary struct {
	Count    float64 `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
	IQR      float64 `json:"iqr"`
	Range    float64 `json:"range"`
}

// Map returns the summary as a map keyed by the stable names
// count, mean, variance, std, min, q1, median, q3, max, iqr, range.
func (s *Summary) Map() map[string]float64 {
	return map[string]float64{
		"count":    s.Count,
		"mean":     s.Mean,
		"variance": s.Variance,
		"std":      s.Std,
		"min":      s.Min,
		"q1":       s.Q1,
		"median":   s.Median,
		"q3":       s.Q3,
		"max":      s.Max,
		"iqr":      s.IQR,
		"range":    s.Range,
	}
}
