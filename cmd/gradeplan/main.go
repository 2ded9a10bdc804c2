package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"gradeplan/internal/config"
	"gradeplan/internal/optimizer"
	"gradeplan/internal/plan"
	"gradeplan/pkg/constants"
	"gradeplan/pkg/output"
	"gradeplan/pkg/validation"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	planLocation := flag.String("plan", "", "path to plan document override")
	target := flag.Float64("target", -1, "target weighted average (overrides the stored target)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	importPath := flag.String("import", "", "replace the plan with the JSON document at this path")
	exportPath := flag.String("export", "", "write the plan as a versioned JSON document to this path")
	save := flag.Bool("save", false, "write optimized targets back to the plan document")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := config.BuildLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := conf.Solver.Validate(); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	planPath := conf.Plan.File
	if *planLocation != "" {
		planPath = *planLocation
	}

	store := plan.NewStore(plan.FileStorage{Path: planPath}, plan.UUIDGenerator{}, logger)
	if err := store.Load(); err != nil {
		logger.Fatal("failed to load plan",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if *importPath != "" {
		if err := store.Import(*importPath); err != nil {
			logger.Fatal("failed to import plan",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	targetScore := *target
	if targetScore < 0 {
		if store.TargetScore == nil {
			logger.Fatal("no target average provided; use -target or store one in the plan",
				zap.String("op", "main"),
			)
		}
		targetScore = *store.TargetScore
	}

	// Validate the plan and display any warnings
	for _, warning := range validation.ValidatePlan(store.Completed, store.Planned) {
		logger.Warn("Plan warning: "+warning,
			zap.String("op", "main"),
		)
	}

	result := optimizer.OptimizeWithOptions(logger, store.Completed, store.Planned, targetScore,
		optimizer.Options{Tolerance: conf.Solver.Tolerance})

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result, store.Planned)
	case constants.OutputFormatCSV:
		output.CsvFormat(result, store.Planned)
	case constants.OutputFormatJSON:
		rendered, err := output.JSONString(result)
		if err != nil {
			logger.Fatal("failed to render result",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Println(rendered)
	}

	if *save && result.Feasible {
		store.ApplyOptimizedTargets(result.OptimizedScores)
		store.TargetScore = &targetScore
		if err := store.Save(); err != nil {
			logger.Fatal("failed to save plan",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if *exportPath != "" {
		if err := store.Export(*exportPath, nil); err != nil {
			logger.Fatal("failed to export plan",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
