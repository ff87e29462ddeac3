package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/chrono/foundation/chrono"
	"github.com/msto63/chrono/foundation/core/log"
)

func newBetweenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "between <begin> <end>",
		Short: "Shows the elapsed time and calendar period between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, err := chrono.FromString(args[0])
			if err != nil {
				return a.fail(err)
			}
			end, err := chrono.FromString(args[1])
			if err != nil {
				return a.fail(err)
			}

			timer := a.logger.StartTimer("period_between")
			p := chrono.PeriodBetween(begin, end)
			timer.WithField("period", p).Stop()

			out := cmd.OutOrStdout()
			printField(out, "elapsed", a.cfg.FormatTimeSpan(end.Sub(begin)))
			printField(out, "period", p.String())
			printField(out, "in words", p.Describe())
			a.logger.Debug("period computed", log.Span("elapsed", end.Sub(begin)))
			return nil
		},
	}
}
