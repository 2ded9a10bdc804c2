// Package output provides utilities for formatting and displaying
// optimization results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gradeplan/internal/optimizer"
	"gradeplan/internal/plan"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result optimizer.Result, planned []plan.PlannedCourse) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Optimization result ---\n")
	if result.Feasible {
		_, _ = p.Printf("Projected weighted average: %.2f\n", result.TotalGPA)
	} else {
		_, _ = p.Printf("Target unreachable; best possible weighted average: %.2f\n", result.TotalGPA)
	}

	if len(result.OptimizedScores) > 0 {
		fmt.Printf("\nCourse            | Credit | Range         | Difficulty | Target\n")
		fmt.Printf("______            | ______ | _____         | __________ | ______\n")
		for i, course := range planned {
			if i >= len(result.OptimizedScores) {
				break
			}
			_, _ = p.Printf("%-17s | %6.1f | %5.1f-%-5.1f  | %10.2f | %6.1f\n",
				course.Name, course.Credit, course.MinScore, course.MaxScore,
				course.Difficulty, result.OptimizedScores[i])
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Printf("\n")
		for _, suggestion := range result.Suggestions {
			fmt.Printf("%s\n", suggestion)
		}
	}

	if len(result.Adjustments) > 0 {
		fmt.Printf("\nAdjustment options:\n")
		for _, adjustment := range result.Adjustments {
			fmt.Printf("  [%s] %s (feasibility: %s)\n",
				adjustment.Kind, adjustment.Description, adjustment.Feasibility)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result optimizer.Result, planned []plan.PlannedCourse) {
	fmt.Print(CsvString(result, planned))
}

// CsvString renders the per-course targets as CSV.
func CsvString(result optimizer.Result, planned []plan.PlannedCourse) string {
	var builder strings.Builder
	builder.WriteString(`"course","credit","min_score","max_score","difficulty","target"` + "\n")
	for i, course := range planned {
		if i >= len(result.OptimizedScores) {
			break
		}
		builder.WriteString(fmt.Sprintf(`"%s","%.1f","%.1f","%.1f","%.2f","%.1f"`+"\n",
			course.Name, course.Credit, course.MinScore, course.MaxScore,
			course.Difficulty, result.OptimizedScores[i]))
	}
	return builder.String()
}

// JSONString renders the full result as indented JSON.
func JSONString(result optimizer.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
