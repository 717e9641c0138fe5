package seo

// Score sums the weights of the tags in Tags whose value is non-empty. The
// csp entry never contributes.
func Score(results Results) int {
	var score int
	for _, t := range Tags {
		if results[t.Key] != "" {
			score += t.Weight
		}
	}
	return score
}

// Grades bucket a score for display.
const (
	GradeGood = "good"
	GradeFair = "fair"
	GradePoor = "poor"
)

// Grade buckets score: above 80 is good, above 50 is fair, the rest poor.
func Grade(score int) string {
	switch {
	case score > 80:
		return GradeGood
	case score > 50:
		return GradeFair
	default:
		return GradePoor
	}
}
