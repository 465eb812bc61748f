package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"transparencyai/internal/config"
	"transparencyai/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "transparencyai",
		Short:         "Product transparency questionnaire assistant",
		Long:          "Generates follow-up questions for product transparency forms and scores their completeness.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("env-file", config.DefaultEnvFile, "KEY=VALUE file loaded into the environment at startup")

	root.AddCommand(newServeCmd())
	root.AddCommand(newQuestionsCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads the env file named by --env-file, then resolves config and the logger
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		config.LoadEnvFile(envFile)
	}

	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
