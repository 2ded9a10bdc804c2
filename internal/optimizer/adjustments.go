package optimizer

import "fmt"

// buildAdjustments proposes the three fallback strategies for an
// unreachable target. The added-credit estimate scales the gap by the total
// existing credit over ten; the new-target suggestion sits half a point
// under the computed ceiling.
func buildAdjustments(a analysis, target, gap float64) []Adjustment {
	newTarget := target - gap - 0.5
	additionalCredit := gap * a.totalCredit / 10

	return []Adjustment{
		{
			Kind:        AdjustmentLowerTarget,
			Description: fmt.Sprintf("lower the target average to %.1f", newTarget),
			Feasibility: FeasibilityHigh,
		},
		{
			Kind:        AdjustmentAddCourses,
			Description: fmt.Sprintf("add roughly %.1f credits of courses expected to score above 90", additionalCredit),
			Feasibility: FeasibilityMedium,
		},
		{
			Kind:        AdjustmentRaiseExpectations,
			Description: "revisit the maximum score estimates; they may understate what is achievable",
			Feasibility: FeasibilityMedium,
		},
	}
}
