package contador

import "slices"

// CalculateMetrics summarises latencies in one pass; times is left unsorted.
func CalculateMetrics(times []float64) TestResult {
	if len(times) == 0 {
		return TestResult{}
	}

	result := TestResult{Min: times[0], Max: times[0]}
	var sum float64
	for _, t := range times {
		result.Min = min(result.Min, t)
		result.Max = max(result.Max, t)
		sum += t
	}
	result.Mean = sum / float64(len(times))

	sorted := slices.Sorted(slices.Values(times))
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		result.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		result.Median = sorted[mid]
	}
	return result
}
