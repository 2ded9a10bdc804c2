package optimizer

// Adjustment kinds proposed when a target average is unreachable.
const (
	AdjustmentLowerTarget       = "lower_target"
	AdjustmentAddCourses        = "add_courses"
	AdjustmentRaiseExpectations = "raise_expectations"
)

// Feasibility tiers for adjustments.
const (
	FeasibilityHigh   = "high"
	FeasibilityMedium = "medium"
)

// Adjustment describes one alternative strategy proposed when the target
// average cannot be reached within the planned courses' score bounds.
type Adjustment struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Feasibility string `json:"feasibility"`
}

// Result is the output of one optimization run. OptimizedScores is aligned
// positionally with the planned-course input list. Results carry no
// persistent identity; every invocation constructs a fresh one.
type Result struct {
	Feasible        bool         `json:"feasible"`
	OptimizedScores []float64    `json:"optimizedScores"`
	TotalGPA        float64      `json:"totalGpa"`
	Suggestions     []string     `json:"suggestions"`
	Adjustments     []Adjustment `json:"adjustments,omitempty"`
}
