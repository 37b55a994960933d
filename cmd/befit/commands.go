package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCommandsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the service accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := opts.client().Commands(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [json-payload]",
		Short: "Dispatch a named command with an optional JSON payload",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload any
			if len(args) == 2 {
				raw := json.RawMessage(args[1])
				if !json.Valid(raw) {
					return fmt.Errorf("invalid JSON payload: %s", args[1])
				}
				payload = raw
			}
			res, err := opts.client().Dispatch(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}
			return opts.follow(cmd.Context(), cmd.OutOrStdout(), res)
		},
	}
}

func newThemeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-theme",
		Short: "Switch between light and dark mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().Dispatch(cmd.Context(), "toggle_theme", nil)
			if err != nil {
				return err
			}
			var data struct {
				Mode string `json:"mode"`
			}
			if err := json.Unmarshal(res.Data, &data); err != nil {
				return fmt.Errorf("decode toggle result: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "display mode: %s\n", data.Mode)
			return nil
		},
	}
}

type foodPayload struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	CarbsG   int    `json:"carbsG"`
	ProteinG int    `json:"proteinG"`
	FatG     int    `json:"fatG"`
}

func newFoodCmd(opts *options) *cobra.Command {
	var p foodPayload

	cmd := &cobra.Command{
		Use:   "add-food <name>",
		Short: "Log a food entry for now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Name = args[0]
			res, err := opts.client().Dispatch(cmd.Context(), "add_food", p)
			if err != nil {
				return err
			}
			return opts.follow(cmd.Context(), cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&p.Calories, "calories", 0, "Calories (kcal)")
	cmd.Flags().IntVar(&p.CarbsG, "carbs", 0, "Carbs (g)")
	cmd.Flags().IntVar(&p.ProteinG, "protein", 0, "Protein (g)")
	cmd.Flags().IntVar(&p.FatG, "fat", 0, "Fat (g)")
	return cmd
}

func newWeightCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add-weight <value>",
		Short: "Record a weight sample for now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[0])
			}
			res, err := opts.client().Dispatch(cmd.Context(), "add_weight", map[string]float64{"weight": value})
			if err != nil {
				return err
			}
			return opts.follow(cmd.Context(), cmd.OutOrStdout(), res)
		},
	}
}
