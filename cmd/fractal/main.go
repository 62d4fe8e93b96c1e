package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"fractal/hal"
	"fractal/viewer"
)

func mainCmd() *cobra.Command {
	var workers int
	var headless hal.HeadlessConfig

	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Interactive viewer of Newton-fractal basins for a cubic with draggable roots",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			newApp := func(h hal.HAL) func() error {
				return viewer.New(h, workers).Step
			}

			if headless.Enabled {
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				headless.Width = viewer.Width
				headless.Height = viewer.Height
				if err := hal.RunHeadless(ctx, newApp, headless); err != nil && err != context.Canceled {
					return err
				}
				return nil
			}

			return hal.RunWindow(viewer.Width, viewer.Height, newApp)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Render queue worker count.")
	cmd.Flags().BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	cmd.Flags().IntVar(&headless.Hz, "hz", 60, "Frame rate in headless mode.")
	cmd.Flags().Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")

	return cmd
}

func main() {
	if err := mainCmd().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
