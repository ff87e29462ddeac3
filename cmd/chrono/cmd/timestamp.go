package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/foundation/chrono"
	chronoerr "github.com/msto63/chrono/foundation/core/error"
)

func newTimestampCmd(a *app) *cobra.Command {
	var utc bool

	cmd := &cobra.Command{
		Use:   "timestamp <unix>",
		Short: "Converts Unix seconds into a date and time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unix, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return a.fail(chronoerr.Conversion(chrono.ErrInvalidFormat, chronoerr.CodeInvalidFormat,
					"unix time stamp must be an integer").
					WithOperation("timestamp").
					WithInput(args[0]))
			}

			var d chrono.DateTime
			if utc {
				d, err = chrono.FromTimeStampGmt(unix)
			} else {
				d, err = chrono.FromTimeStamp(a.clock, unix)
			}
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.cfg.FormatDateTime(d))
			return nil
		},
	}

	cmd.Flags().BoolVar(&utc, "utc", false, "interpret and print in UTC")
	return cmd
}
