package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tnicklin/timesuggest/clock"
	"github.com/tnicklin/timesuggest/config"
	"github.com/tnicklin/timesuggest/logger"
)

var defaultConfigFiles = []string{"config/config.yaml", "config/secrets.yaml"}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configFiles []string

	cfg       *config.AppConfig
	logger    logger.Logger
	reference clock.Monotonic
}

func newRootCmd() *cobra.Command {
	a := &app{reference: clock.Boot(), logger: logger.NewNop()}

	root := &cobra.Command{
		Use:           "timesuggest",
		Short:         "Build, inspect and source time suggestions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringSliceVar(&a.configFiles, "config", defaultConfigFiles,
		"YAML config file(s), merged in order; missing files are ignored")

	root.AddCommand(
		newSuggestCmd(a),
		newDecodeCmd(a),
		newNTPCmd(a),
		newMillisCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.LoadWithDefaults(a.configFiles...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = appLogger
	return nil
}
