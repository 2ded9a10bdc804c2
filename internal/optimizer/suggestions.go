package optimizer

import (
	"fmt"

	"gradeplan/internal/plan"
	"gradeplan/pkg/constants"
)

type tieredCourse struct {
	name  string
	score float64
}

// buildSuggestions partitions the planned courses into difficulty tiers and
// renders the per-tier targets followed by the fixed strategy guidance.
// Empty tiers are omitted entirely.
func buildSuggestions(planned []plan.PlannedCourse, scores []float64) []string {
	var easy, medium, hard []tieredCourse
	for i, course := range planned {
		entry := tieredCourse{name: course.Name, score: scores[i]}
		switch {
		case course.Difficulty < constants.DifficultyEasyBelow:
			easy = append(easy, entry)
		case course.Difficulty < constants.DifficultyMediumBelow:
			medium = append(medium, entry)
		default:
			hard = append(hard, entry)
		}
	}

	suggestions := []string{"optimization summary:"}
	suggestions = appendTier(suggestions, "easy courses (best return on effort):", easy)
	suggestions = appendTier(suggestions, "medium difficulty courses:", medium)
	suggestions = appendTier(suggestions, "hard courses (reaching the target is enough):", hard)

	return append(suggestions,
		"strategy:",
		"  - invest effort in the easy courses first and aim high there",
		"  - hold the hard courses at their target scores, no higher",
		"  - budget study time evenly instead of chasing perfection",
	)
}

func appendTier(suggestions []string, label string, courses []tieredCourse) []string {
	if len(courses) == 0 {
		return suggestions
	}
	suggestions = append(suggestions, label)
	for _, course := range courses {
		suggestions = append(suggestions, fmt.Sprintf("  - %s: target %.1f", course.name, course.score))
	}
	return suggestions
}
