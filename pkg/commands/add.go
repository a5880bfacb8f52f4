package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event to a date.",
		Example: `
agenda add standup --time=09:30 --remind=10
agenda add "dentist appointment" --on=2026-09-03 --time=14:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			remind, err := eo.RemindPtr()
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Add{
				Date:        date,
				Title:       strings.Join(args, " "),
				Description: eo.Description,
				Time:        eo.TimePtr(),
				EndDate:     eo.EndDatePtr(),
				EndTime:     eo.EndTimePtr(),
				Color:       eo.Color,
				TagIDs:      eo.Tags,
				URLs:        eo.URLs,
				Remind:      remind,
				ShowID:      io.ShowID,
				Service:     svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
