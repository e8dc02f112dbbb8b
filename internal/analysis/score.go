package analysis

import "math"

// DefaultMaxima are the per-category maximum sub-scores. They sum to 100.
var DefaultMaxima = map[Category]int{
	CategoryNaming:        10,
	CategoryModularity:    20,
	CategoryComments:      20,
	CategoryFormatting:    15,
	CategoryReusability:   15,
	CategoryBestPractices: 20,
}

// ComputeScore derives the overall score from the breakdown as
// round(100 * total / sum(maxima)). A nil or empty maxima map uses DefaultMaxima.
func ComputeScore(b Breakdown, maxima map[Category]int) int {
	if len(maxima) == 0 {
		maxima = DefaultMaxima
	}
	maxTotal := 0
	for _, c := range Categories {
		maxTotal += maxima[c]
	}
	if maxTotal <= 0 {
		return 0
	}
	return int(math.Round(float64(b.Total()) / float64(maxTotal) * 100))
}

// Clamp bounds v to [0, max].
func Clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
