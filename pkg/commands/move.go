package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	var from, to string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move an event to another date.",
		Example: `
agenda move --id=abcd --from=2026-09-03 --to=2026-09-04
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("--id is required")
			}
			if err := event.ValidateDate(from); err != nil {
				return err
			}
			return event.ValidateDate(to)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := move.Move{
				From:    from,
				To:      to,
				ID:      io.ID,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Date the event is on.")
	cmd.Flags().StringVar(&to, "to", "", "Date to move it to.")
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
