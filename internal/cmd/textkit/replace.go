package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-courier/logr"
	"github.com/spf13/cobra"

	"github.com/octohelm/textkit/pkg/replacer"
)

func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace TEXT FROM=TO...",
		Short: "Apply substitutions to the text in order",
		Long: `Apply FROM=TO substitutions to the text, each one to the output of the one before.

Example:
  textkit replace "mad skilled noob" a=4 e=3 i=1 o=0 # m4d sk1ll3d n00b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l := logr.FromContext(cmd.Context()).Start(cmd.Context(), "Replace")
			defer l.End()

			pairs, err := replacer.ParsePairs(args[1:]...)
			if err != nil {
				return err
			}

			l.Debug("pairs %s", spew.Sdump(pairs))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), replacer.Apply(args[0], pairs...))
			return err
		},
	}
}
