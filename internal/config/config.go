// Package config defines the data structures related to application
// configuration and includes functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"gradeplan/pkg/constants"
)

// Configuration holds all configuration for gradeplan.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output  OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
	Solver  SolverConfig  `yaml:"solver,omitempty" mapstructure:"solver"`
	Plan    PlanConfig    `yaml:"plan,omitempty" mapstructure:"plan"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// PlanConfig holds plan persistence configuration options
type PlanConfig struct {
	File string `yaml:"file,omitempty" mapstructure:"file"` // path to the plan document
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields defaults without error so the
// CLI works out of the box.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			conf := &Configuration{}
			conf.Normalize()
			return conf, nil
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.Normalize()
	return &configuration, nil
}

// Normalize applies defaults throughout the configuration.
func (c *Configuration) Normalize() {
	if c.Plan.File == "" {
		c.Plan.File = constants.DefaultPlanFile
	}
	c.Solver.Normalize()
}
