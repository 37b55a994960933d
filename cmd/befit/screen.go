package main

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newScreenCmd(opts *options) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "screen <name>",
		Short: "Render a screen, e.g. diet or workouts/push",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if day != "" {
				query.Set("day", day)
			}
			s, err := opts.client().Screen(cmd.Context(), args[0], query)
			if err != nil {
				return err
			}
			return opts.printScreen(cmd.Context(), cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day YYYY-MM-DD for the diet screen (default today)")
	return cmd
}

func newScreenShortcut(opts *options, name string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: "Render the " + name + " screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.client().Screen(cmd.Context(), name, nil)
			if err != nil {
				return err
			}
			return opts.printScreen(cmd.Context(), cmd.OutOrStdout(), s)
		},
	}
}
