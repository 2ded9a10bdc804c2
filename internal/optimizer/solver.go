package optimizer

import (
	"sort"

	"gradeplan/internal/plan"
	"gradeplan/pkg/mathutil"
)

// solve returns the score vector minimizing difficulty-weighted effort,
// sum over courses of difficulty * (score - minScore), subject to the box
// bounds and the target-average equality constraint.
//
// With a linear objective and a single weighted-sum constraint the optimum
// raises courses above their floors in ascending order of marginal cost per
// weighted point (difficulty / credit), saturating each at its ceiling
// until the remaining weighted-sum deficit is covered. Ties keep input
// order. The second return value is false when no valid vector could be
// produced, e.g. on non-finite input.
func solve(planned []plan.PlannedCourse, a analysis, target, tolerance float64) ([]float64, bool) {
	scores := make([]float64, len(planned))
	copy(scores, a.minScores)

	deficit := target*a.totalCredit - a.completedWeightedSum
	for i, course := range planned {
		deficit -= course.Credit * a.minScores[i]
	}
	if !mathutil.IsFinite(deficit) {
		return scores, false
	}

	// Deficit is in weighted-sum units; scale the average-level tolerance
	// to match before comparing.
	slack := tolerance * a.totalCredit
	if deficit <= slack {
		return scores, deficit >= -slack
	}

	order := make([]int, 0, len(planned))
	for i, course := range planned {
		if course.Credit <= 0 || a.maxScores[i] <= a.minScores[i] {
			continue
		}
		order = append(order, i)
	}
	sort.SliceStable(order, func(x, y int) bool {
		i, j := order[x], order[y]
		return planned[i].Difficulty/planned[i].Credit < planned[j].Difficulty/planned[j].Credit
	})

	for _, i := range order {
		capacity := planned[i].Credit * (a.maxScores[i] - a.minScores[i])
		if deficit <= capacity {
			scores[i] = a.minScores[i] + deficit/planned[i].Credit
			deficit = 0
			break
		}
		scores[i] = a.maxScores[i]
		deficit -= capacity
	}

	if !mathutil.WithinTolerance(deficit, 0, slack) {
		return scores, false
	}
	for i := range scores {
		if !mathutil.IsFinite(scores[i]) {
			return scores, false
		}
	}
	return scores, true
}
