package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"gradeplan/internal/plan"
	"gradeplan/pkg/constants"
)

var validate = validator.New()

// ValidatePlan checks course lists for domain sanity and returns warnings.
// The optimization engine itself assumes well-formed input, so collaborators
// run this before invoking it. Warnings do not block an optimization run;
// courses with inverted bounds are handled as fixed at their minimum.
func ValidatePlan(completed []plan.CompletedCourse, planned []plan.PlannedCourse) []string {
	var warnings []string

	for _, course := range completed {
		if err := validate.Struct(course); err != nil {
			warnings = append(warnings, describeCourseErrors("completed", course.Name, err))
		}
	}

	for _, course := range planned {
		if err := validate.Struct(course); err != nil {
			warnings = append(warnings, describeCourseErrors("planned", course.Name, err))
		}
		if course.MinScore >= course.MaxScore {
			warnings = append(warnings, fmt.Sprintf(
				"planned course %q has min_score >= max_score (%.1f >= %.1f); it will be treated as fixed at its minimum",
				course.Name, course.MinScore, course.MaxScore))
		}
		if course.MinScore < constants.MinScale || course.MaxScore > constants.MaxScale {
			warnings = append(warnings, fmt.Sprintf(
				"planned course %q has a score range outside [%.0f, %.0f]",
				course.Name, constants.MinScale, constants.MaxScale))
		}
	}

	return warnings
}

func describeCourseErrors(kind, name string, err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range errs {
			return fmt.Sprintf("%s course %q has an out-of-range %s (rule: %s)",
				kind, name, fieldErr.Field(), fieldErr.Tag())
		}
	}
	return fmt.Sprintf("%s course %q failed validation: %v", kind, name, err)
}
