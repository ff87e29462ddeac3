package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/foundation/chrono"
)

func newNowCmd(a *app) *cobra.Command {
	var utc, exact bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Prints the current date and time",
		Long: `Prints the current date and time from the configured clock.

Without --exact the fraction of the second is dropped, unless the clock
section of the configuration sets exact = true.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("exact") {
				exact = a.cfg.Clock.Exact
			}

			read := chrono.Now
			switch {
			case utc && exact:
				read = chrono.ExactGmtNow
			case utc:
				read = chrono.GmtNow
			case exact:
				read = chrono.ExactNow
			}

			d, err := read(a.clock)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.cfg.FormatDateTime(d))
			return nil
		},
	}

	cmd.Flags().BoolVar(&utc, "utc", false, "print UTC instead of local time")
	cmd.Flags().BoolVar(&exact, "exact", false, "read the clock at full resolution")
	return cmd
}
