package main

import (
	"log/slog"

	"github.com/ErlanBelekov/period/clock"
	"github.com/ErlanBelekov/period/humanize"
	ctxlog "github.com/ErlanBelekov/period/internal/log"
	"github.com/ErlanBelekov/period/relative"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs. The logger is replaced once
// flags are parsed.
type app struct {
	clock     clock.Clock
	engine    *relative.Engine
	humanizer *humanize.Humanizer
	logger    *slog.Logger
}

func newRootCmd(c clock.Clock) *cobra.Command {
	a := &app{
		clock:     c,
		engine:    relative.NewEngine(c),
		humanizer: humanize.New(c),
		logger:    slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:   "period",
		Short: "Relative dates and times from the command line",
		Long: "Period resolves offsets such as \"3 days ago\" against the wall clock, " +
			"describes how far a timestamp is from now, and prints calendar facts.\n\n" +
			"Magnitudes must be zero or positive. Pass \"--\" before a negative one " +
			"to see the suggested mirror operation: period ago -- -3 days",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			a.logger = ctxlog.New("local", level, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	root.AddCommand(
		newOffsetCmd(a, "ago", "Resolve a moment n units before now", a.engine.Ago),
		newOffsetCmd(a, "from-now", "Resolve a moment n units after now", a.engine.FromNow),
		newHumanizeCmd(a),
		newDayCmd(a, "yesterday", "Print yesterday's date", a.engine.Yesterday),
		newDayCmd(a, "tomorrow", "Print tomorrow's date", a.engine.Tomorrow),
		newTodayCmd(a),
		newCalendarCmd(a),
	)
	return root
}
