package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}

	var date string

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Show the timeline, or a single date's agenda.",
		Example: `
agenda get
agenda get 2026-09-03
agenda get --past=7 --hide-empty
agenda get --filter=dentist
agenda get --month
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if err := event.ValidateDate(args[0]); err != nil {
				return err
			}
			date = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Get{
				Date:      date,
				Past:      wo.Past,
				Future:    wo.Future,
				HideEmpty: wo.HideEmpty,
				Filter:    wo.Filter,
				Month:     wo.Month,
				ShowID:    io.ShowID,
				Service:   svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
