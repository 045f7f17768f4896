package main

import (
	"github.com/go-courier/logr"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "textkit",
		Short: "Small text helpers: quantity phrases, tokens, substitutions and modes",

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			l := newLogger(cmd.ErrOrStderr(), verbose)
			cmd.SetContext(logr.WithLogger(cmd.Context(), l))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newCountCmd())
	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newReplaceCmd())
	cmd.AddCommand(newModeCmd())

	return cmd
}
