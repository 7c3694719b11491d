package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHumanizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "humanize <timestamp>",
		Short:   "Describe how far an RFC 3339 timestamp is from now",
		Example: "  period humanize 2026-02-22T14:05:00Z",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return fmt.Errorf("parse timestamp: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.humanizer.Humanize(t))
			return nil
		},
	}
}
