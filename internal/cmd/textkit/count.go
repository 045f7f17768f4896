package main

import (
	"fmt"
	"strconv"

	"github.com/go-courier/logr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/octohelm/textkit/pkg/phrase"
)

func newCountCmd() *cobra.Command {
	var plural string
	var inflect bool

	cmd := &cobra.Command{
		Use:   "count N NOUN",
		Short: "Format a quantity phrase",
		Long: `Format a count and a noun as a phrase.

Example:
  textkit count 0 part                    # no parts
  textkit count 2 child --plural children # 2 children
  textkit count 3 mouse --inflect         # 3 mice`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l := logr.FromContext(cmd.Context()).Start(cmd.Context(), "Count")
			defer l.End()

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid count %q", args[0])
			}
			if n < 0 {
				return errors.Errorf("count must not be negative, got %d", n)
			}

			optFns := make([]phrase.OptionFunc, 0, 2)
			if inflect {
				optFns = append(optFns, phrase.WithInflection())
			}
			if cmd.Flags().Changed("plural") {
				optFns = append(optFns, phrase.WithPlural(plural))
			}

			l.Debug("count=%d noun=%s inflect=%t", n, args[1], inflect)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), phrase.Count(n, args[1], optFns...))
			return err
		},
	}

	cmd.Flags().StringVar(&plural, "plural", "", "explicit plural form of the noun")
	cmd.Flags().BoolVar(&inflect, "inflect", false, "derive the plural with English inflection rules")

	return cmd
}
