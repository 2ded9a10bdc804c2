package optimizer

import (
	"gradeplan/internal/plan"
)

// analysis holds the closed-form boundary quantities for one problem
// instance. Both boundary checks and the solver work from the same numbers.
type analysis struct {
	completedCredit      float64
	completedWeightedSum float64
	plannedCredit        float64
	totalCredit          float64
	minScores            []float64
	maxScores            []float64
	minPossibleGPA       float64
	maxPossibleGPA       float64
}

func analyze(completed []plan.CompletedCourse, planned []plan.PlannedCourse) analysis {
	completedCredit, completedAvg := WeightedAverage(completed)
	a := analysis{
		completedCredit:      completedCredit,
		completedWeightedSum: completedAvg * completedCredit,
		minScores:            make([]float64, len(planned)),
		maxScores:            make([]float64, len(planned)),
	}

	var minSum, maxSum float64
	for i, course := range planned {
		a.minScores[i] = course.MinScore
		a.maxScores[i] = course.MaxScore
		if course.Fixed() {
			// Collapsed or inverted bounds pin the course at its minimum.
			a.maxScores[i] = course.MinScore
		}
		a.plannedCredit += course.Credit
		minSum += course.Credit * a.minScores[i]
		maxSum += course.Credit * a.maxScores[i]
	}

	a.totalCredit = a.completedCredit + a.plannedCredit
	if a.totalCredit > 0 {
		a.minPossibleGPA = (a.completedWeightedSum + minSum) / a.totalCredit
		a.maxPossibleGPA = (a.completedWeightedSum + maxSum) / a.totalCredit
	}
	return a
}

// requiredPlannedAverage is the uniform score every planned course would
// need for the combined weighted average to land exactly on target.
func (a analysis) requiredPlannedAverage(target float64) float64 {
	if a.plannedCredit <= 0 {
		return 0
	}
	return (target*a.totalCredit - a.completedWeightedSum) / a.plannedCredit
}

// gpaFor recomputes the combined weighted average for a candidate score
// vector aligned with the planned course list.
func (a analysis) gpaFor(planned []plan.PlannedCourse, scores []float64) float64 {
	if a.totalCredit <= 0 {
		return 0
	}
	sum := a.completedWeightedSum
	for i, course := range planned {
		sum += course.Credit * scores[i]
	}
	return sum / a.totalCredit
}
