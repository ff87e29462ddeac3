package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/foundation/chrono"
)

func newParseCmd(a *app) *cobra.Command {
	var iso bool

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parses a date and time and shows its components",
		Long: `Parses a date and time in the generic form
"[Weekday ]YYYY-M-D[ H:M[:S[.f]]][ Z|±HH:MM]" or, with --iso, in
ISO-8601 extended form "YYYY-MM-DDTHH:MM:SS[.f][Z|±HH:MM]".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timer := a.logger.StartTimer("parse")

			parse := chrono.FromString
			if iso {
				parse = chrono.FromIsoString
			}
			d, err := parse(args[0])
			if err != nil {
				timer.Cancel()
				return a.fail(err)
			}
			timer.Stop()

			out := cmd.OutOrStdout()
			printField(out, "value", a.cfg.FormatDateTime(d))
			printField(out, "iso", d.IsoString())
			printField(out, "kind", d.Kind().String())
			printField(out, "weekday", d.DayOfWeek().String())
			printField(out, "day of year", strconv.Itoa(d.DayOfYear()))
			printField(out, "leap year", strconv.FormatBool(d.IsLeapYear()))
			printField(out, "ticks", strconv.FormatInt(d.Ticks(), 10))
			printField(out, "unix", strconv.FormatInt(d.UnixTimeStamp(), 10))
			return nil
		},
	}

	cmd.Flags().BoolVar(&iso, "iso", false, "require ISO-8601 input")
	return cmd
}
