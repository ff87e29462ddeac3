package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/foundation/chrono"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <datetime> <amount>",
		Short: "Adds a time span or an ISO-8601 period to a date",
		Long: `Adds an amount to a date and time. Amounts starting with P or -P are
calendar periods such as "P1Y2M" and move by calendar months and days;
everything else is read as a time span such as "1:30:00" or "2 d 4 h".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := chrono.FromString(args[0])
			if err != nil {
				return a.fail(err)
			}

			amount := strings.TrimSpace(args[1])
			var result chrono.DateTime
			if strings.HasPrefix(strings.TrimPrefix(amount, "-"), "P") {
				p, err := chrono.ParseISOPeriod(amount)
				if err != nil {
					return a.fail(err)
				}
				if result, err = d.AddPeriod(p); err != nil {
					return a.fail(err)
				}
			} else {
				s, err := chrono.ParseTimeSpan(amount)
				if err != nil {
					return a.fail(err)
				}
				if result, err = d.Add(s); err != nil {
					return a.fail(err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.cfg.FormatDateTime(result))
			return nil
		},
	}
}
