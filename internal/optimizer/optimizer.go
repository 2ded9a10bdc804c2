// Package optimizer implements the score planning engine: feasibility
// analysis, constrained score allocation, and the guidance derived from an
// allocation. Every entry point is a pure function of its inputs; the
// package holds no state and is safe for concurrent use.
package optimizer

import (
	"fmt"

	"go.uber.org/zap"

	"gradeplan/internal/plan"
	"gradeplan/pkg/constants"
	"gradeplan/pkg/mathutil"
)

// Options tunes the solver. The zero value uses defaults.
type Options struct {
	// Tolerance bounds the allowed deviation from the target average when
	// verifying a solution.
	Tolerance float64
}

func (o Options) tolerance() float64 {
	if o.Tolerance <= 0 {
		return constants.DefaultSolverTolerance
	}
	return o.Tolerance
}

// Optimize computes per-course target scores so the combined weighted
// average of completed and planned courses reaches the target, preferring
// allocations that demand the least difficulty-weighted effort. It assumes
// well-formed numeric input; range validation belongs to the caller.
func Optimize(logger *zap.Logger, completed []plan.CompletedCourse, planned []plan.PlannedCourse, target float64) Result {
	return OptimizeWithOptions(logger, completed, planned, target, Options{})
}

// OptimizeWithOptions is Optimize with explicit solver options.
//
// Boundary cases resolve without the solver: an unreachable target returns
// the max-score vector with adjustment options, and a target already met at
// minimum scores returns the min-score vector with a reassurance. When the
// solver cannot produce a valid vector the clipped uniform allocation is
// returned instead; its clipped components may miss the target average
// slightly, which is the documented degraded mode rather than an error.
func OptimizeWithOptions(logger *zap.Logger, completed []plan.CompletedCourse, planned []plan.PlannedCourse, target float64, opts Options) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(planned) == 0 {
		return Result{
			Feasible:        false,
			OptimizedScores: []float64{},
			Suggestions:     []string{"no planned courses to optimize"},
		}
	}

	a := analyze(completed, planned)

	if a.maxPossibleGPA < target {
		gap := target - a.maxPossibleGPA
		logger.Debug("target unreachable even at maximum scores",
			zap.String("op", "optimizer.Optimize"),
			zap.Float64("maxPossibleGpa", a.maxPossibleGPA),
			zap.Float64("gap", gap),
		)
		return Result{
			Feasible:        false,
			OptimizedScores: a.maxScores,
			TotalGPA:        a.maxPossibleGPA,
			Suggestions: []string{
				fmt.Sprintf("even with the maximum score in every planned course the weighted average reaches only %.2f", a.maxPossibleGPA),
				fmt.Sprintf("the target is %.2f points out of reach", gap),
				"consider one of the adjustment options below",
			},
			Adjustments: buildAdjustments(a, target, gap),
		}
	}

	if a.minPossibleGPA >= target {
		logger.Debug("target already satisfied at minimum scores",
			zap.String("op", "optimizer.Optimize"),
			zap.Float64("minPossibleGpa", a.minPossibleGPA),
		)
		return Result{
			Feasible:        true,
			OptimizedScores: a.minScores,
			TotalGPA:        a.minPossibleGPA,
			Suggestions: []string{
				fmt.Sprintf("good news: the minimum scores alone reach a weighted average of %.2f", a.minPossibleGPA),
				"keeping up the normal pace is enough",
			},
		}
	}

	scores, ok := solve(planned, a, target, opts.tolerance())
	if !ok {
		uniform := a.requiredPlannedAverage(target)
		fallback := make([]float64, len(planned))
		for i := range planned {
			fallback[i] = mathutil.Clamp(uniform, a.minScores[i], a.maxScores[i])
		}
		logger.Warn("score allocation failed, using uniform fallback",
			zap.String("op", "optimizer.Optimize"),
			zap.Float64("uniformScore", uniform),
		)
		return Result{
			Feasible:        true,
			OptimizedScores: fallback,
			TotalGPA:        target,
			Suggestions: []string{
				"uniform allocation fallback applied; per-course targets may deviate slightly from the target average",
			},
		}
	}

	// Recompute from the vector rather than trusting intermediate values.
	finalGPA := a.gpaFor(planned, scores)
	logger.Debug("score allocation complete",
		zap.String("op", "optimizer.Optimize"),
		zap.Float64("totalGpa", finalGPA),
		zap.Int("courses", len(planned)),
	)

	return Result{
		Feasible:        true,
		OptimizedScores: scores,
		TotalGPA:        finalGPA,
		Suggestions:     buildSuggestions(planned, scores),
	}
}
