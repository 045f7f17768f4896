package main

import (
	"fmt"
	"strings"

	"github.com/go-courier/logr"
	"github.com/spf13/cobra"

	"github.com/octohelm/textkit/pkg/words"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize TEXT...",
		Short: "Print the uppercased words of the text, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l := logr.FromContext(cmd.Context()).Start(cmd.Context(), "Tokenize")
			defer l.End()

			for w := range words.UpperSeq(strings.Join(args, " ")) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), w); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
