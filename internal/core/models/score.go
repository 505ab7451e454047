package models

// ComputeFocusScore derives the 0-100 quality score for a single session.
// Start at 100, lose 10 per distraction, lose a flat 15 for ending the
// timer early, floor at 0. Inputs can never push the score above 100.
func ComputeFocusScore(distractions int, completed bool) int {
	score := 100 - 10*distractions
	if !completed {
		score -= 15
	}
	if score < 0 {
		score = 0
	}
	return score
}
