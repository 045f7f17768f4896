package main

import (
	"fmt"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-courier/logr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/octohelm/textkit/pkg/tally"
)

func newModeCmd() *cobra.Command {
	var asInt bool

	cmd := &cobra.Command{
		Use:   "mode VALUE...",
		Short: "Print the most frequent value",
		Long: `Print the most frequent of the given values.
Among values with the same count, the one given first wins.

Example:
  textkit mode a a b               # a
  textkit mode --int 4 04 8        # 4
  textkit mode --int -- -1 -1 2    # -1, values after -- are never read as flags`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l := logr.FromContext(cmd.Context()).Start(cmd.Context(), "Mode")
			defer l.End()

			if !asInt {
				v, err := tally.Mode(args)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
				return err
			}

			values := make([]int, len(args))
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return errors.Wrapf(err, "invalid integer %q", a)
				}
				values[i] = n
			}

			l.Debug("values %s", spew.Sdump(values))

			v, err := tally.Mode(values)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	cmd.Flags().BoolVar(&asInt, "int", false, "compare values as integers, so 4 and 04 are equal")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, "pass negative values after --")
	})

	return cmd
}
