package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/remind"
	"tableflip.dev/agenda/pkg/runner/reminders"
)

func addRemind(topLevel *cobra.Command) {
	var interval time.Duration
	var once bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Watch for due reminders and deliver them.",
		Example: `
agenda remind
agenda remind --once
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(context.Background(),
				syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, err := loadService()
			if err != nil {
				return err
			}
			s := reminders.Run{
				Interval: interval,
				Once:     once,
				Service:  svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", remind.DefaultInterval,
		"How often to check for due reminders.")
	cmd.Flags().BoolVar(&once, "once", false,
		"Run a single reminder pass and exit.")

	topLevel.AddCommand(cmd)
}
