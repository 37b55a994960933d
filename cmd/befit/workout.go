package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWorkoutCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Run workout sessions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "start [workout-id]",
		Short: "Start a session (push by default) and show it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{}
			if len(args) == 1 {
				payload["workoutId"] = args[0]
			}
			res, err := opts.client().Dispatch(cmd.Context(), "start_workout", payload)
			if err != nil {
				return err
			}
			return opts.follow(cmd.Context(), cmd.OutOrStdout(), res)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <session-id> <exercise-id>",
		Short: "Mark an exercise done or not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			if err := c.ToggleExercise(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			s, err := c.Get(cmd.Context(), "/workouts/sessions/"+args[0])
			if err != nil {
				return err
			}
			return opts.printScreen(cmd.Context(), cmd.OutOrStdout(), s)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "finish <session-id>",
		Short: "Finish a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().FinishSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session %s finished\n", args[0])
			return nil
		},
	})

	return cmd
}
