package main

import (
	"fmt"
	"io"

	"github.com/iwvelando/bimatrix-solver/internal/config"
	"github.com/iwvelando/bimatrix-solver/internal/logging"
	"github.com/iwvelando/bimatrix-solver/internal/solver"
	"github.com/iwvelando/bimatrix-solver/pkg/constants"
	"github.com/iwvelando/bimatrix-solver/pkg/output"
	"github.com/iwvelando/bimatrix-solver/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve every active game in a games file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configLocation, _ := cmd.Flags().GetString("config")
		outputFormat, _ := cmd.Flags().GetString("output-format")
		logLevel, _ := cmd.Flags().GetString("log-level")
		return runSolve(cmd.OutOrStdout(), configLocation, outputFormat, logLevel)
	},
}

func init() {
	solveCmd.Flags().String("config", constants.DefaultConfigFile, "path to games file")
	solveCmd.Flags().String("output-format", "", "type of output override: pretty, csv, json")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(w io.Writer, configLocation, outputFormatFlag, logLevel string) error {
	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}

	logger, err := logging.New(conf.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if outputFormatFlag != "" {
		outputFormat = outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.runSolve"),
		)
	}

	results, err := solver.GetSolutions(logger, *conf)
	if err != nil {
		logger.Error("failed to solve games",
			zap.String("op", "main.runSolve"),
			zap.Error(err),
		)
		return err
	}

	return output.Write(w, outputFormat, results)
}
