package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-versionqueue/internal/bench"
	"github.com/huynhanx03/go-versionqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-versionqueue/pkg/settings"
)

func newBenchCmd(a *app) *cobra.Command {
	var ops, parallel int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time bulk enqueue and dequeue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("ops") {
				a.cfg.Bench.Operations = ops
			}
			if cmd.Flags().Changed("parallel") {
				a.cfg.Bench.Parallel = parallel
			}
			if err := settings.Validate(a.cfg); err != nil {
				return apperr.MapError("bench", err, apperr.CodeInvalidInput, apperr.MsgInvalidInput)
			}

			results, err := bench.New(a.cfg.Bench, a.cfg.Queue, a.logger).Run(cmd.Context())
			if err != nil {
				return apperr.MapError("bench", err, apperr.CodeInternal, apperr.MsgBenchFailed)
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "worker %d: time taken for enqueueing %d elements is: %.3f milliseconds\n",
					r.Worker, a.cfg.Bench.Operations, bench.Millis(r.Enqueue))
				fmt.Fprintf(out, "worker %d: time taken for dequeueing %d elements is: %.3f milliseconds\n",
					r.Worker, a.cfg.Bench.Operations, bench.Millis(r.Dequeue))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&ops, "ops", "n", settings.Defaults.Bench.Operations, "enqueues (and dequeues) per queue")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", settings.Defaults.Bench.Parallel, "independent queues to run at once")
	return cmd
}
