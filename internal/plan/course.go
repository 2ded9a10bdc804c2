// Package plan defines the course records a study plan is made of and
// includes functions for persisting, importing, and exporting plans.
package plan

// CompletedCourse is a course that has already been graded. Records are
// immutable once stored except by explicit replacement; identity is the ID.
type CompletedCourse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Credit float64 `json:"credit" validate:"gte=0"`
	Score  float64 `json:"score" validate:"gte=0,lte=100"`
}

// CreditValue returns the course credit weight.
func (c CompletedCourse) CreditValue() float64 {
	return c.Credit
}

// ScoreValue returns the achieved score. Completed courses always have one.
func (c CompletedCourse) ScoreValue() (float64, bool) {
	return c.Score, true
}

// PlannedCourse is a not-yet-completed course with an achievable score range
// and a difficulty coefficient in [0, 1] (higher is harder).
type PlannedCourse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Credit     float64 `json:"credit" validate:"gte=0"`
	MinScore   float64 `json:"min_score"`
	MaxScore   float64 `json:"max_score"`
	Difficulty float64 `json:"difficulty" validate:"gte=0,lte=1"`

	// OptimizedTarget caches the per-course target from the most recent
	// optimization run. It never feeds back into the next run.
	OptimizedTarget *float64 `json:"optimized_target,omitempty"`
}

// CreditValue returns the course credit weight.
func (c PlannedCourse) CreditValue() float64 {
	return c.Credit
}

// ScoreValue returns the cached optimized target, if one has been computed.
func (c PlannedCourse) ScoreValue() (float64, bool) {
	if c.OptimizedTarget == nil {
		return 0, false
	}
	return *c.OptimizedTarget, true
}

// Fixed reports whether the course has no allocatable score range. The
// optimizer holds fixed courses at MinScore instead of dividing by an empty
// or inverted range.
func (c PlannedCourse) Fixed() bool {
	return c.MinScore >= c.MaxScore
}
