package main

import (
	"fmt"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/ErlanBelekov/period/relative"
	"github.com/spf13/cobra"
)

type offsetFunc func(relative.Unit, int64) (relative.Moment, error)

func newOffsetCmd(a *app, use, short string, resolve offsetFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use + " <n> <unit>",
		Short:   short,
		Example: "  period " + use + " 3 days\n  period " + use + " 1 mo --format date",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse magnitude %q: must be a whole number", args[0])
			}
			unit, err := relative.ParseUnit(args[1])
			if err != nil {
				return err
			}

			m, err := resolve(unit, n)
			if err != nil {
				a.logger.Debug("offset rejected", "command", use, "unit", unit, "n", n, "error", err)
				return err
			}
			a.logger.Debug("offset resolved", "command", use, "unit", unit, "n", n, "moment", m)

			format, _ := cmd.Flags().GetString("format")
			out, err := project(m, format)
			if err != nil {
				return err
			}
			if h, _ := cmd.Flags().GetBool("humanize"); h {
				out += " (" + a.humanizer.Humanize(m.Time()) + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "datetime", "projection to print: datetime, date or time")
	cmd.Flags().Bool("humanize", false, "append a phrase such as \"3 days ago\"")
	return cmd
}

func project(m relative.Moment, format string) (string, error) {
	switch format {
	case "datetime":
		return m.String(), nil
	case "date":
		return m.Date().String(), nil
	case "time":
		return m.TimeOfDay().String(), nil
	default:
		return "", fmt.Errorf("unknown format %q: use datetime, date or time", format)
	}
}

func newDayCmd(a *app, use, short string, day func() civil.Date) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), day().String())
		},
	}
}
