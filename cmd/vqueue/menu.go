package main

import (
	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-versionqueue/internal/console"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Operate a queue interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.newQueue(), a.logger)
			return c.Run(cmd.Context())
		},
	}
}
