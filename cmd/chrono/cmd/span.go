package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/foundation/chrono"
)

func newSpanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "span <text>",
		Short: "Parses a time span and shows it in every format",
		Long: `Parses a time span given as "[-][[[D:]H:]M:]S[.f]", as measured
tokens like "1 h 30 min 5 s", or as seconds like "5400" or "1e3".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := chrono.ParseTimeSpan(args[0])
			if err != nil {
				return a.fail(err)
			}

			out := cmd.OutOrStdout()
			printField(out, "normal", s.Format(chrono.SpanNormal, false))
			printField(out, "measures", s.Format(chrono.SpanWithMeasures, false))
			printField(out, "seconds", s.Format(chrono.SpanTotalSeconds, false))
			printField(out, "ticks", strconv.FormatInt(s.TotalTicks(), 10))
			return nil
		},
	}
}
