package optimizer

import (
	"strings"
	"testing"

	"gradeplan/internal/plan"
)

func TestBuildSuggestionsTierPartitioning(t *testing.T) {
	planned := []plan.PlannedCourse{
		{Name: "Drawing", Difficulty: 0.1},
		{Name: "Databases", Difficulty: 0.3}, // boundary: 0.3 is medium
		{Name: "Algorithms", Difficulty: 0.7}, // boundary: 0.7 is hard
	}
	scores := []float64{95.25, 82.0, 61.5}

	suggestions := buildSuggestions(planned, scores)
	joined := strings.Join(suggestions, "\n")

	easyIdx := strings.Index(joined, "easy courses")
	mediumIdx := strings.Index(joined, "medium difficulty courses")
	hardIdx := strings.Index(joined, "hard courses")
	strategyIdx := strings.Index(joined, "strategy:")

	if easyIdx == -1 || mediumIdx == -1 || hardIdx == -1 || strategyIdx == -1 {
		t.Fatalf("missing tier or strategy block in:\n%s", joined)
	}
	if !(easyIdx < mediumIdx && mediumIdx < hardIdx && hardIdx < strategyIdx) {
		t.Errorf("blocks out of order in:\n%s", joined)
	}

	// Targets are rendered to one decimal place.
	if !strings.Contains(joined, "Drawing: target 95.2") && !strings.Contains(joined, "Drawing: target 95.3") {
		t.Errorf("expected one-decimal target for Drawing in:\n%s", joined)
	}
	if !strings.Contains(joined, "Algorithms: target 61.5") {
		t.Errorf("expected Algorithms in the hard tier in:\n%s", joined)
	}
}

func TestBuildSuggestionsOmitsEmptyTiers(t *testing.T) {
	planned := []plan.PlannedCourse{
		{Name: "Seminar", Difficulty: 0.9},
	}
	scores := []float64{70}

	suggestions := buildSuggestions(planned, scores)
	joined := strings.Join(suggestions, "\n")

	// Match the tier labels exactly; the strategy lines also mention "easy
	// courses" and must not trip the omission check.
	if strings.Contains(joined, "easy courses (best return on effort):") ||
		strings.Contains(joined, "medium difficulty courses:") {
		t.Errorf("empty tiers must be omitted, got:\n%s", joined)
	}
	if !strings.Contains(joined, "hard courses (reaching the target is enough):") {
		t.Errorf("hard tier missing in:\n%s", joined)
	}
}
