// Package constants provides shared constants for the gradeplan application.
package constants

// Score scale constants
const (
	// MinScale is the lowest score on the grading scale
	MinScale = 0.0

	// MaxScale is the highest score on the grading scale
	MaxScale = 100.0

	// ScorePrecision is the precision for score rounding (1 decimal place)
	ScorePrecision = 10
)

// Difficulty tier thresholds. Any presentation layer classifying courses by
// difficulty must use the same cutoffs as the suggestion generator.
const (
	// DifficultyEasyBelow is the exclusive upper bound of the easy tier
	DifficultyEasyBelow = 0.3

	// DifficultyMediumBelow is the exclusive upper bound of the medium tier
	DifficultyMediumBelow = 0.7
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultPlanFile is the default plan document file name
	DefaultPlanFile = "plan.json"
)

// Plan document constants
const (
	// PlanDocumentVersion is the version tag written on plan export
	PlanDocumentVersion = "2.0"
)

// Solver defaults
const (
	// DefaultSolverTolerance is the tolerance applied when verifying the
	// target-average equality constraint
	DefaultSolverTolerance = 1e-4
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default request body size limit
	DefaultMaxBodyBytes = 1 << 20
)
