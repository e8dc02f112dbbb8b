package analysis

const DefaultMaxRecommendations = 5

// LimitRecommendations returns the first max recommendations in their
// original order. No deduplication or ranking is applied.
func LimitRecommendations(recs []string, max int) []string {
	if max <= 0 {
		max = DefaultMaxRecommendations
	}
	if len(recs) > max {
		recs = recs[:max]
	}
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
