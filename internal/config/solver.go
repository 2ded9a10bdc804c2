package config

import (
	"fmt"

	"gradeplan/pkg/constants"
)

// SolverConfig tunes the score allocation solver.
type SolverConfig struct {
	// Tolerance is the allowed deviation from the target average when
	// verifying an allocation.
	Tolerance float64 `yaml:"tolerance,omitempty" mapstructure:"tolerance"`
}

// Normalize ensures defaults are applied before validation.
func (s *SolverConfig) Normalize() {
	if s == nil {
		return
	}
	if s.Tolerance <= 0 {
		s.Tolerance = constants.DefaultSolverTolerance
	}
}

// Validate returns an error when the solver configuration is unusable.
func (s *SolverConfig) Validate() error {
	if s == nil {
		return fmt.Errorf("solver configuration cannot be nil")
	}
	s.Normalize()
	if s.Tolerance >= 1 {
		return fmt.Errorf("solver tolerance %g is too coarse; must be below 1 point", s.Tolerance)
	}
	return nil
}
