package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/2beens/befit/internal/client"
	"github.com/2beens/befit/internal/render"
)

type options struct {
	server  string
	width   int
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "befit",
		Short:         "befit shows your BeFit screens in the terminal",
		Long:          "befit is a terminal client for the BeFit service: dashboard, diet, weight, workouts and profile.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultServer := os.Getenv("BEFIT_SERVER")
	if defaultServer == "" {
		defaultServer = client.DefaultBaseURL
	}
	rootCmd.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "BeFit service base URL")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", render.DefaultWidth, "Render width in columns")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		newScreenCmd(opts),
		newCommandsCmd(opts),
		newRunCmd(opts),
		newThemeCmd(opts),
		newFoodCmd(opts),
		newWeightCmd(opts),
		newWorkoutCmd(opts),
	)
	for _, name := range []string{"landing", "dashboard", "diet", "weight", "workouts", "profile"} {
		rootCmd.AddCommand(newScreenShortcut(opts, name))
	}

	return rootCmd
}

func (o *options) client() *client.Client {
	return client.New(o.server, o.timeout)
}

func (o *options) printScreen(ctx context.Context, out io.Writer, s *client.Screen) error {
	rendered, err := render.Screen(s, o.width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}

// follow renders the screen a command result points to. Targets outside the
// service, e.g. documentation links, are printed as they are.
func (o *options) follow(ctx context.Context, out io.Writer, res *client.CommandResult) error {
	switch {
	case res.Navigate == "":
		_, err := fmt.Fprintf(out, "%s: ok\n", res.Command)
		return err
	case strings.HasPrefix(res.Navigate, "/"):
		s, err := o.client().Get(ctx, res.Navigate)
		if err != nil {
			return err
		}
		return o.printScreen(ctx, out, s)
	default:
		_, err := fmt.Fprintf(out, "open %s\n", res.Navigate)
		return err
	}
}
