package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-versionqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-versionqueue/pkg/logger"
	"github.com/huynhanx03/go-versionqueue/pkg/settings"
)

// app holds what every subcommand needs after the root pre-run.
type app struct {
	configPath string
	cfg        *settings.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "vqueue",
		Short:         "Versioned queue driver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := settings.Load(a.configPath)
			if err != nil {
				return err
			}
			l, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a config file (yaml, json or toml)")

	root.AddCommand(newMenuCmd(a), newBenchCmd(a))
	return root
}

func (a *app) newQueue() *queue.Versioned[int] {
	return queue.NewVersioned[int](
		queue.WithElementCapacity(a.cfg.Queue.ElementCapacity),
		queue.WithVersionCapacity(a.cfg.Queue.VersionCapacity),
		queue.WithLogger(a.logger),
	)
}
