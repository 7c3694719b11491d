package main

import (
	"fmt"
	"text/tabwriter"

	"cloud.google.com/go/civil"
	"github.com/ErlanBelekov/period/calendar"
	"github.com/spf13/cobra"
)

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's date",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), calendar.Today(a.clock).String())
		},
	}
}

func newCalendarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "calendar [YYYY-MM-DD]",
		Short:   "Print calendar facts for a date, today by default",
		Example: "  period calendar\n  period calendar 2024-02-29",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := calendar.Today(a.clock)
			if len(args) == 1 {
				var err error
				if d, err = civil.ParseDate(args[0]); err != nil {
					return fmt.Errorf("parse date: %w", err)
				}
			}

			kind := "weekday"
			if calendar.IsWeekend(d) {
				kind = "weekend"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "date\t%s\n", calendar.DateString(d))
			fmt.Fprintf(w, "long\t%s\n", calendar.LongDate(d))
			fmt.Fprintf(w, "short\t%s\n", calendar.ShortDate(d))
			fmt.Fprintf(w, "day of year\t%d\n", calendar.DayOfYear(d))
			fmt.Fprintf(w, "days in month\t%d\n", calendar.DaysInMonth(d))
			fmt.Fprintf(w, "iso week\t%d\n", calendar.WeekOfYear(d))
			fmt.Fprintf(w, "kind\t%s\n", kind)
			return w.Flush()
		},
	}
}
